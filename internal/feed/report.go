// internal/feed/report.go
package feed

import (
	"fmt"
	"strings"

	"jobfeed-engine/internal/validate"
)

// BatchValidationError aggregates every failing submission in a batch.
// Any single failure escalates to this fatal, run-level error.
type BatchValidationError struct {
	Failures []validate.SubmissionFailure
}

func (e *BatchValidationError) Error() string {
	return fmt.Sprintf("%d submission(s) failed validation", len(e.Failures))
}

// Report renders the human-readable diagnostics, one line per failing
// submission: #<id> <title>: <error1>; <error2>; ...
func (e *BatchValidationError) Report() string {
	lines := make([]string, 0, len(e.Failures))
	for i := range e.Failures {
		lines = append(lines, e.Failures[i].Line())
	}
	return strings.Join(lines, "\n")
}
