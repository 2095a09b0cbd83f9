// internal/feed/schema.go
package feed

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"jobfeed-engine/internal/common/errors"
	"jobfeed-engine/internal/models"
)

//go:embed job-feed.schema.json
var feedSchemaJSON []byte

// ValidateSchema is the publish gate: the assembled feed must conform to
// the embedded output schema before it is considered final. Violations
// are reported with per-field JSON-pointer-style locations.
func ValidateSchema(records []models.JobRecord) error {
	if records == nil {
		records = []models.JobRecord{}
	}

	schemaLoader := gojsonschema.NewBytesLoader(feedSchemaJSON)
	documentLoader := gojsonschema.NewGoLoader(records)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return errors.NewSchemaValidationFailedError(err.Error())
	}
	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, violation := range result.Errors() {
		details = append(details, fmt.Sprintf("/%s: %s", violation.Field(), violation.Description()))
	}
	return errors.NewSchemaValidationFailedError(strings.Join(details, "; "))
}
