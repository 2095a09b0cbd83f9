// internal/validate/builder.go
package validate

import (
	"fmt"
	"strings"

	"jobfeed-engine/internal/models"
	"jobfeed-engine/internal/parse"
)

// SubmissionFailure records every field-level error for one submission,
// with enough context to point a moderator at the offending issue.
type SubmissionFailure struct {
	ID     int64
	Title  string
	Errors []string
}

// Line renders the failure as one diagnostic report line.
func (f *SubmissionFailure) Line() string {
	return fmt.Sprintf("#%d %s: %s", f.ID, f.Title, strings.Join(f.Errors, "; "))
}

// Result is either a complete JobRecord or a non-empty failure, never
// both and never neither.
type Result struct {
	Record  *models.JobRecord
	Failure *SubmissionFailure
}

// Valid reports whether the submission produced a record.
func (r *Result) Valid() bool {
	return r.Failure == nil
}

// BuildRecord tokenizes one submission body and runs every field
// validator, collecting all errors before deciding pass or fail.
func BuildRecord(sub models.RawSubmission) *Result {
	fields := parse.Tokenize(sub.Body)
	value := func(key parse.FieldKey) string {
		return parse.NormalizeValue(fields[key])
	}

	var errs []string

	company := RequiredText("Company name", value(parse.FieldCompany), &errs)
	title := RequiredText("Role title", value(parse.FieldTitle), &errs)
	location := RequiredText("Location", value(parse.FieldLocation), &errs)
	remote := RemoteFlag(value(parse.FieldRemote), &errs)
	employmentType := RequiredText("Employment type", value(parse.FieldEmploymentType), &errs)
	seniority := RequiredText("Seniority", value(parse.FieldSeniority), &errs)
	tags := Tags(value(parse.FieldTags), &errs)
	applyURL := ApplyURL(value(parse.FieldApplyURL), &errs)
	description := RequiredText("Description", value(parse.FieldDescription), &errs)
	RequiredText("Contact email", value(parse.FieldContactEmail), &errs)
	expiryDate := ExpiryDate(value(parse.FieldExpiryDate), &errs)
	Confirmation(value(parse.FieldConfirmation), &errs)
	createdAt := Timestamp("createdAt", sub.CreatedAt, &errs)
	updatedAt := Timestamp("updatedAt", sub.UpdatedAt, &errs)

	if len(errs) > 0 {
		return &Result{Failure: &SubmissionFailure{
			ID:     sub.ID,
			Title:  sub.Title,
			Errors: errs,
		}}
	}

	var salaryRange *string
	if v := value(parse.FieldSalaryRange); v != "" {
		salaryRange = &v
	}

	return &Result{Record: &models.JobRecord{
		ID:             sub.ID,
		Title:          title,
		Company:        company,
		Location:       location,
		Remote:         remote,
		EmploymentType: employmentType,
		Seniority:      seniority,
		Tags:           tags,
		ApplyURL:       applyURL,
		Description:    description,
		SalaryRange:    salaryRange,
		ExpiryDate:     expiryDate,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}}
}
