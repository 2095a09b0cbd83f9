// Package errors provides standardized error handling for the feed
// generation run. Every fatal condition halts the run entirely; there is
// no best-effort partial publish.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"

	ErrCodeTrackerFetchFailed ErrorCode = "TRACKER_FETCH_FAILED"
	ErrCodeTrackerAuthFailed  ErrorCode = "TRACKER_AUTH_FAILED"
	ErrCodeTrackerRateLimited ErrorCode = "TRACKER_RATE_LIMITED"

	ErrCodeBatchValidationFailed  ErrorCode = "BATCH_VALIDATION_FAILED"
	ErrCodeSchemaValidationFailed ErrorCode = "SCHEMA_VALIDATION_FAILED"
	ErrCodeFeedWriteFailed        ErrorCode = "FEED_WRITE_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewConfigInvalidError creates a non-retryable configuration error.
func NewConfigInvalidError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigInvalid,
		Message:   "Invalid configuration",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTrackerFetchFailedError creates a retryable transport error.
func NewTrackerFetchFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTrackerFetchFailed,
		Message:   "Failed to fetch submissions from the issue tracker",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewTrackerAuthFailedError creates a non-retryable auth error.
func NewTrackerAuthFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTrackerAuthFailed,
		Message:   "Issue tracker rejected the configured credentials",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTrackerRateLimitedError creates a retryable rate-limit error.
func NewTrackerRateLimitedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTrackerRateLimited,
		Message:   "Issue tracker rate limit exhausted",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSchemaValidationFailedError creates a non-retryable schema gate
// error. Details carry the per-field JSON-pointer locations.
func NewSchemaValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSchemaValidationFailed,
		Message:   "Assembled feed does not conform to the output schema",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewFeedWriteFailedError creates a non-retryable output error.
func NewFeedWriteFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeFeedWriteFailed,
		Message:   "Failed to write the feed file",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// Normalize ensures any error surfaces as a StandardError.
func Normalize(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// IsRetryable reports whether a retry loop may attempt the operation
// again. Unknown errors are treated as terminal.
func IsRetryable(err error) bool {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.Retryable
	}
	return false
}
