package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "jobfeed-engine/internal/common/errors"
	"jobfeed-engine/internal/models"
)

func schemaFixtureRecord() models.JobRecord {
	salary := "70k-90k EUR"
	return models.JobRecord{
		ID:             1,
		Title:          "Backend Engineer",
		Company:        "Acme Corp",
		Location:       "Berlin",
		Remote:         true,
		EmploymentType: "Full-time",
		Seniority:      "Senior",
		Tags:           []string{"go", "backend"},
		ApplyURL:       "https://acme.example/jobs/1",
		Description:    "Ship things.",
		SalaryRange:    &salary,
		ExpiryDate:     "2099-12-31",
		CreatedAt:      "2024-01-01T10:00:00.000Z",
		UpdatedAt:      "2024-01-05T12:30:00.000Z",
	}
}

// ==========================
// Schema Gate Tests
// ==========================

func TestValidateSchema_ValidFeed(t *testing.T) {
	assert.NoError(t, ValidateSchema([]models.JobRecord{schemaFixtureRecord()}))
}

func TestValidateSchema_EmptyFeed(t *testing.T) {
	assert.NoError(t, ValidateSchema(nil))
}

func TestValidateSchema_NullSalaryRange(t *testing.T) {
	rec := schemaFixtureRecord()
	rec.SalaryRange = nil
	assert.NoError(t, ValidateSchema([]models.JobRecord{rec}))
}

func TestValidateSchema_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.JobRecord)
		field  string
	}{
		{
			// Defense in depth: the URL validator rejects non-http(s)
			// schemes long before assembly, but the schema enforces the
			// same rule independently.
			name:   "ftp apply url",
			mutate: func(r *models.JobRecord) { r.ApplyURL = "ftp://acme.example/jobs/1" },
			field:  "applyUrl",
		},
		{
			name:   "empty tags",
			mutate: func(r *models.JobRecord) { r.Tags = []string{} },
			field:  "tags",
		},
		{
			name:   "empty company",
			mutate: func(r *models.JobRecord) { r.Company = "" },
			field:  "company",
		},
		{
			name:   "malformed expiry date",
			mutate: func(r *models.JobRecord) { r.ExpiryDate = "31-12-2099" },
			field:  "expiryDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := schemaFixtureRecord()
			tt.mutate(&rec)

			err := ValidateSchema([]models.JobRecord{rec})
			require.Error(t, err)

			stdErr, ok := err.(*stderrors.StandardError)
			require.True(t, ok)
			assert.Equal(t, stderrors.ErrCodeSchemaValidationFailed, stdErr.Code)
			// Violation location names the offending field.
			assert.Contains(t, stdErr.Details, tt.field)
		})
	}
}
