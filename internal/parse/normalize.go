// internal/parse/normalize.go
package parse

import "strings"

// noResponsePlaceholders are the tracker's "no answer" fillers, compared
// case-insensitively after whitespace collapse.
var noResponsePlaceholders = map[string]struct{}{
	"_no response_": {},
	"no response":   {},
}

// NormalizeValue trims a raw section value and maps placeholder answers
// to the empty string. The returned value keeps the original casing and
// internal layout; lowercasing and whitespace collapse happen only for
// the placeholder comparison.
func NormalizeValue(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	comparison := strings.ToLower(strings.Join(strings.Fields(trimmed), " "))
	if _, ok := noResponsePlaceholders[comparison]; ok {
		return ""
	}
	return trimmed
}
