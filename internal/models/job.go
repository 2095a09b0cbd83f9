// internal/models/job.go
package models

// JobRecord is the validated, publishable representation of one job
// posting. Timestamps are canonical ISO-8601 UTC with millisecond
// precision; ExpiryDate stays a zero-padded YYYY-MM-DD string so that
// lexicographic comparison matches calendar order.
type JobRecord struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	Remote         bool     `json:"remote"`
	EmploymentType string   `json:"employmentType"`
	Seniority      string   `json:"seniority"`
	Tags           []string `json:"tags"`
	ApplyURL       string   `json:"applyUrl"`
	Description    string   `json:"description"`
	SalaryRange    *string  `json:"salaryRange"`
	ExpiryDate     string   `json:"expiryDate"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

// RunSummary carries informational counts for one generation run. It is
// logged and exported as metrics, never written into the feed itself.
type RunSummary struct {
	Fetched int `json:"fetched"`
	Invalid int `json:"invalid"`
	Expired int `json:"expired"`
	Emitted int `json:"emitted"`
}
