// internal/validate/validators.go
package validate

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// Validators are pure and independent: each takes a normalized raw value
// plus the shared accumulator, appends a human-readable message on
// failure, and returns the typed value (zero value on failure). The
// record builder never short-circuits, so a submitter gets every problem
// reported in one pass.

const (
	// TimestampLayout is the canonical output form for record timestamps:
	// ISO-8601, millisecond precision, UTC designator.
	TimestampLayout = "2006-01-02T15:04:05.000Z"

	expiryLayout = "2006-01-02"
)

var (
	expiryPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	remoteTrueWords  = map[string]struct{}{"yes": {}, "y": {}, "true": {}}
	remoteFalseWords = map[string]struct{}{"no": {}, "n": {}, "false": {}}
)

// RequiredText passes a non-empty value through unchanged.
func RequiredText(label, value string, errs *[]string) string {
	if value == "" {
		*errs = append(*errs, label+" is required")
		return ""
	}
	return value
}

// Tags splits on commas and deduplicates case-insensitively, preserving
// the original casing and relative order of first occurrence.
func Tags(value string, errs *[]string) []string {
	if value == "" {
		*errs = append(*errs, "Tags/keywords is required")
		return nil
	}

	seen := map[string]struct{}{}
	var tags []string
	for _, piece := range strings.Split(value, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		key := strings.ToLower(piece)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		tags = append(tags, piece)
	}

	if len(tags) == 0 {
		*errs = append(*errs, "Tags/keywords must include at least one value")
		return nil
	}
	return tags
}

// RemoteFlag maps yes/y/true and no/n/false (case-insensitive) onto a
// boolean.
func RemoteFlag(value string, errs *[]string) bool {
	if value == "" {
		*errs = append(*errs, "Remote is required")
		return false
	}

	word := strings.ToLower(strings.TrimSpace(value))
	if _, ok := remoteTrueWords[word]; ok {
		return true
	}
	if _, ok := remoteFalseWords[word]; ok {
		return false
	}

	*errs = append(*errs, fmt.Sprintf("Remote must be yes or no (got %q)", value))
	return false
}

// ApplyURL requires an absolute http or https URL. A syntactically valid
// URL with any other scheme is rejected as well.
func ApplyURL(value string, errs *[]string) string {
	if value == "" {
		*errs = append(*errs, "Apply URL is required")
		return ""
	}

	parsed, err := url.Parse(value)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" ||
		(parsed.Scheme != "http" && parsed.Scheme != "https") {
		*errs = append(*errs, "Apply URL must be a valid absolute http(s) URL")
		return ""
	}
	return value
}

// ExpiryDate enforces the literal YYYY-MM-DD pattern and then that the
// components form a real calendar date in UTC. The original string is
// returned unchanged: downstream expiry comparison is lexicographic,
// which is valid only because this fixed-width zero-padded form is
// enforced here.
func ExpiryDate(value string, errs *[]string) string {
	if value == "" {
		*errs = append(*errs, "Expiry date is required")
		return ""
	}
	if !expiryPattern.MatchString(value) {
		*errs = append(*errs, "Expiry date must be in YYYY-MM-DD format")
		return ""
	}
	if _, err := time.ParseInLocation(expiryLayout, value, time.UTC); err != nil {
		*errs = append(*errs, "Expiry date must be a valid calendar date")
		return ""
	}
	return value
}

// Confirmation scans section lines for a checked markdown checkbox. The
// result gates validation only and is never persisted on the record.
func Confirmation(value string, errs *[]string) bool {
	if value == "" {
		*errs = append(*errs, "Confirmation is required")
		return false
	}

	for _, line := range strings.Split(value, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "- [x]") || strings.HasPrefix(trimmed, "- [X]") {
			return true
		}
	}

	*errs = append(*errs, "Confirmation must be checked")
	return false
}

// Timestamp parses a source-native RFC 3339 timestamp and canonicalizes
// it to ISO-8601 UTC with millisecond precision.
func Timestamp(field, value string, errs *[]string) string {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("%s is not a valid timestamp (got %q)", field, value))
		return ""
	}
	return parsed.UTC().Format(TimestampLayout)
}
