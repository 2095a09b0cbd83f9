// internal/models/submission.go
package models

// RawSubmission is one unparsed issue-tracker item as delivered by the
// tracker transport. Timestamps stay in the source's own format until the
// record builder validates and canonicalizes them.
type RawSubmission struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
	IsPullRequest bool   `json:"isPullRequest"`
}
