// Package validation applies the rule-based checks that grade a parsed
// resume. Each category is a pure function from the record to a list of
// issues; rules never mutate their input and never call each other.
package validation

import (
	"regexp"
	"strings"
	"time"
)

// dateFormats are tried in order against a raw date string. Resume dates are
// free-form, so each consumer parses lazily rather than relying on a
// normalized date type.
var dateFormats = []string{
	"Jan 2006",
	"January 2006",
	"01/2006",
	"1/2006",
	"2006-01",
	"2006",
}

var bareYearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// presentWords resolve to the evaluation instant.
var presentWords = map[string]bool{
	"present": true,
	"current": true,
	"now":     true,
	"ongoing": true,
}

// parseFlexibleDate attempts the ordered format list, then falls back to
// extracting a bare 4-digit year. The second return reports success.
func parseFlexibleDate(raw string, now time.Time) (time.Time, bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return time.Time{}, false
	}
	if presentWords[strings.ToLower(cleaned)] {
		return now, true
	}

	// Normalize "Jan. 2020", "Sept 2020" style variants.
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, "Sept ", "Sep ")

	for _, format := range dateFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t, true
		}
	}

	if match := bareYearRe.FindString(cleaned); match != "" {
		if t, err := time.Parse("2006", match); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// monthsBetween returns the number of whole months from a to b, adjusted for
// day of month so that e.g. Jan 31 to Feb 1 does not count as a full month.
// Negative when b precedes a.
func monthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	return months
}

// isPresent reports whether the raw date string denotes an ongoing role.
func isPresent(raw string) bool {
	return presentWords[strings.ToLower(strings.TrimSpace(raw))]
}
