// internal/parse/tokenizer.go
package parse

import (
	"regexp"
	"strings"
)

// headingPattern matches a markdown heading of level 2-6 after the line
// has been trimmed: 2-6 leading '#' followed by whitespace and text.
var headingPattern = regexp.MustCompile(`^(#{2,6})\s+(.+)$`)

// nonAlnumRuns collapses every run of non-alphanumeric characters when
// normalizing heading text for vocabulary lookup.
var nonAlnumRuns = regexp.MustCompile(`[^a-z0-9]+`)

// Tokenize splits a submission body into a FieldMap keyed by the fixed
// heading vocabulary.
//
// Duplicate recognized headings keep first-wins semantics: the repeat
// switches the current buffer target to a write-only discard sink, so
// its lines are swallowed rather than misattributed to the previously
// open field. Unrecognized headings are skipped as heading text while
// their following lines keep accumulating under whatever field is open.
func Tokenize(body string) FieldMap {
	fields := FieldMap{}
	if strings.TrimSpace(body) == "" {
		return fields
	}

	var (
		current FieldKey
		buffer  []string
		open    bool
		discard bool
	)

	commit := func() {
		if !open || discard {
			return
		}
		if _, seen := fields[current]; seen {
			return
		}
		fields[current] = strings.TrimSpace(strings.Join(buffer, "\n"))
	}

	for _, line := range strings.Split(body, "\n") {
		m := headingPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			if open {
				if !discard {
					buffer = append(buffer, line)
				}
			}
			// No field open yet: line is discarded.
			continue
		}

		key, recognized := headingVocabulary[normalizeHeading(m[2])]
		if !recognized {
			// Heading text ignored; current buffer keeps accumulating.
			continue
		}

		commit()
		if _, seen := fields[key]; seen {
			// Duplicate heading: swallow its section into a sink.
			open, discard = true, true
			buffer = nil
			continue
		}
		current = key
		open, discard = true, false
		buffer = nil
	}

	commit()
	return fields
}

// normalizeHeading lowercases heading text and collapses every run of
// non-alphanumeric characters to a single space before vocabulary lookup.
func normalizeHeading(text string) string {
	normalized := nonAlnumRuns.ReplaceAllString(strings.ToLower(text), " ")
	return strings.TrimSpace(normalized)
}
