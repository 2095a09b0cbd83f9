// cmd/feed-generator/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jobfeed-engine/internal/common/config"
	stderrors "jobfeed-engine/internal/common/errors"
	"jobfeed-engine/internal/common/logger"
	"jobfeed-engine/internal/common/metrics"
	"jobfeed-engine/internal/feed"
	"jobfeed-engine/internal/models"
	"jobfeed-engine/internal/tracker"
)

// retryWithBackoff attempts an operation with exponential backoff,
// stopping early on errors marked non-retryable.
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}
		if !stderrors.IsRetryable(err) {
			return err
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	configPath := flag.String("config", "", "path to config file (default: configs/config.yaml lookup)")
	outputPath := flag.String("out", "", "feed output path (overrides config)")
	dryRun := flag.Bool("dry-run", false, "validate and report without writing the feed")
	flag.Parse()

	if err := run(*configPath, *outputPath, *dryRun); err != nil {
		os.Exit(1)
	}
}

func run(configPath, outputPath string, dryRun bool) error {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		return err
	}
	if outputPath != "" {
		cfg.Feed.OutputPath = outputPath
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	runID := uuid.NewString()
	log := logger.NewZapAdapter(zapLog).WithFields(map[string]interface{}{
		"runId": runID,
	})

	started := time.Now()
	defer func() {
		metrics.RunDuration.Observe(time.Since(started).Seconds())
	}()

	log.Info("Starting feed generation run", map[string]interface{}{
		"repo":   fmt.Sprintf("%s/%s", cfg.Tracker.Owner, cfg.Tracker.Repo),
		"output": cfg.Feed.OutputPath,
		"dryRun": dryRun,
	})

	ctx := context.Background()
	client := tracker.NewClient(cfg.Tracker, log)

	var submissions []models.RawSubmission
	err = retryWithBackoff(func() error {
		var fetchErr error
		submissions, fetchErr = client.FetchSubmissions(ctx)
		return fetchErr
	}, cfg.Tracker.MaxRetries, 2*time.Second, zapLog, "Submission fetch")
	if err != nil {
		log.WithError(err).Error("Fetch failed", nil)
		return err
	}
	metrics.SubmissionsFetched.Add(float64(len(submissions)))

	assembler := feed.NewAssembler(log)
	records, summary, err := assembler.Assemble(submissions)
	if err != nil {
		if batchErr, ok := err.(*feed.BatchValidationError); ok {
			log.Error("Batch validation failed, no feed written", map[string]interface{}{
				"invalid": summary.Invalid,
			})
			fmt.Fprintln(os.Stderr, batchErr.Report())
		} else {
			log.WithError(err).Error("Feed assembly failed", nil)
		}
		return err
	}

	if err := feed.ValidateSchema(records); err != nil {
		metrics.ValidationFailures.WithLabelValues("schema").Inc()
		log.WithError(err).Error("Schema gate rejected the assembled feed", nil)
		return err
	}

	if dryRun {
		log.Info("Dry run complete, feed not written", summaryFields(summary))
		return nil
	}

	if err := feed.WriteFeed(cfg.Feed.OutputPath, records); err != nil {
		log.WithError(err).Error("Feed write failed", nil)
		return err
	}

	log.Info("Feed generation run complete", summaryFields(summary))
	return nil
}

func summaryFields(summary *models.RunSummary) map[string]interface{} {
	return map[string]interface{}{
		"fetched": summary.Fetched,
		"invalid": summary.Invalid,
		"expired": summary.Expired,
		"emitted": summary.Emitted,
	}
}
