// internal/feed/assembler.go
package feed

import (
	"sort"
	"time"

	"jobfeed-engine/internal/common/logger"
	"jobfeed-engine/internal/common/metrics"
	"jobfeed-engine/internal/models"
	"jobfeed-engine/internal/validate"
)

const dateLayout = "2006-01-02"

// Assembler applies cross-record policy over a batch of submissions:
// all-or-nothing validation, expiry filtering and deterministic ordering.
type Assembler struct {
	logger logger.Logger

	// Now is swappable for expiry-boundary tests.
	Now func() time.Time
}

func NewAssembler(log logger.Logger) *Assembler {
	return &Assembler{
		logger: log,
		Now:    time.Now,
	}
}

// Assemble builds records for every submission and produces the final
// ordered feed. If any submission is invalid the whole run fails with a
// BatchValidationError - no partial feed is ever produced, so moderators
// must fix or re-reject malformed approved postings before they can
// pollute or silently vanish from the published feed.
func (a *Assembler) Assemble(subs []models.RawSubmission) ([]models.JobRecord, *models.RunSummary, error) {
	summary := &models.RunSummary{Fetched: len(subs)}

	var records []models.JobRecord
	var failures []validate.SubmissionFailure
	for _, sub := range subs {
		result := validate.BuildRecord(sub)
		if !result.Valid() {
			failures = append(failures, *result.Failure)
			continue
		}
		records = append(records, *result.Record)
	}

	if len(failures) > 0 {
		summary.Invalid = len(failures)
		metrics.ValidationFailures.WithLabelValues("field").Add(float64(len(failures)))
		return nil, summary, &BatchValidationError{Failures: failures}
	}

	today := a.Now().UTC().Format(dateLayout)
	live := records[:0]
	for _, rec := range records {
		// Lexicographic compare is calendar-correct for the validator's
		// zero-padded YYYY-MM-DD form. Today's date is kept.
		if rec.ExpiryDate < today {
			summary.Expired++
			a.logger.Debug("Excluding expired posting", map[string]interface{}{
				"id":         rec.ID,
				"expiryDate": rec.ExpiryDate,
			})
			continue
		}
		live = append(live, rec)
	}

	// Newest first; stable so equal timestamps keep their original
	// relative order.
	sort.SliceStable(live, func(i, j int) bool {
		return live[i].UpdatedAt > live[j].UpdatedAt
	})

	summary.Emitted = len(live)
	metrics.RecordsExpired.Add(float64(summary.Expired))
	metrics.RecordsEmitted.Add(float64(summary.Emitted))

	a.logger.Info("Assembled feed", map[string]interface{}{
		"fetched": summary.Fetched,
		"expired": summary.Expired,
		"emitted": summary.Emitted,
	})
	return live, summary, nil
}
