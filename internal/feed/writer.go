// internal/feed/writer.go
package feed

import (
	"encoding/json"
	"os"
	"path/filepath"

	"jobfeed-engine/internal/common/errors"
	"jobfeed-engine/internal/models"
)

// WriteFeed serializes the feed as a pretty-printed JSON array and swaps
// it into place atomically. A failed run therefore never truncates or
// overwrites a previously published feed file.
func WriteFeed(path string, records []models.JobRecord) error {
	if records == nil {
		records = []models.JobRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.NewFeedWriteFailedError(err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jobs-*.json")
	if err != nil {
		return errors.NewFeedWriteFailedError(err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.NewFeedWriteFailedError(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.NewFeedWriteFailedError(err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return errors.NewFeedWriteFailedError(err)
	}
	return nil
}
