// internal/parse/fields.go
package parse

// FieldKey identifies one canonical submission field.
type FieldKey string

const (
	FieldCompany        FieldKey = "company"
	FieldTitle          FieldKey = "title"
	FieldLocation       FieldKey = "location"
	FieldRemote         FieldKey = "remote"
	FieldEmploymentType FieldKey = "employmentType"
	FieldSeniority      FieldKey = "seniority"
	FieldTags           FieldKey = "tags"
	FieldApplyURL       FieldKey = "applyUrl"
	FieldDescription    FieldKey = "description"
	FieldSalaryRange    FieldKey = "salaryRange"
	FieldContactEmail   FieldKey = "contactEmail"
	FieldExpiryDate     FieldKey = "expiryDate"
	FieldConfirmation   FieldKey = "confirmation"
)

// FieldMap maps canonical field keys to the raw section text carved out
// of a submission body. A key appears at most once; first occurrence wins.
type FieldMap map[FieldKey]string

// headingVocabulary maps normalized heading phrases to field keys. Keys
// are the output of normalizeHeading: lowercase, punctuation runs
// collapsed to single spaces.
var headingVocabulary = map[string]FieldKey{
	"company name":    FieldCompany,
	"role title":      FieldTitle,
	"location":        FieldLocation,
	"remote":          FieldRemote,
	"employment type": FieldEmploymentType,
	"seniority":       FieldSeniority,
	"tags keywords":   FieldTags,
	"apply url":       FieldApplyURL,
	"description":     FieldDescription,
	"salary range":    FieldSalaryRange,
	"contact email":   FieldContactEmail,
	"expiry date":     FieldExpiryDate,
	"confirmation":    FieldConfirmation,
}
