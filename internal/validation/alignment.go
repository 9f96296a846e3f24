package validation

import (
	"fmt"
	"time"

	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// CheckExperienceAlignment compares total experience against the expected
// band for the requested level. Month spans are summed across all entries
// without overlap deduplication, matching how recruiters skim totals.
func CheckExperienceAlignment(record *types.ResumeRecord, level string, now time.Time) []types.Issue {
	totalMonths := TotalExperienceMonths(record, now)
	if totalMonths == 0 && len(record.Experience) == 0 {
		// Section completeness already covers the empty case.
		return nil
	}

	years := float64(totalMonths) / 12.0
	band := taxonomy.RangeForLevel(level)

	switch {
	case years < band.Min-1:
		return []types.Issue{{
			Severity: types.SeverityCritical,
			Category: "underqualified_for_level",
			Message: fmt.Sprintf("Resume shows %.1f years of experience; %s roles typically expect at least %.0f",
				years, level, band.Min),
			Fix: "Target a level matching the documented experience",
		}}
	case years < band.Min:
		return []types.Issue{{
			Severity: types.SeverityWarning,
			Category: "underqualified_for_level",
			Message: fmt.Sprintf("Resume shows %.1f years of experience, slightly under the %.0f expected for %s roles",
				years, band.Min, level),
		}}
	case years > band.Max:
		return []types.Issue{{
			Severity: types.SeverityWarning,
			Category: "overqualified_for_level",
			Message: fmt.Sprintf("Resume shows %.1f years of experience, above the %.0f-year ceiling for %s roles",
				years, band.Max, level),
		}}
	default:
		return nil
	}
}

// TotalExperienceMonths sums the month span of every parseable entry.
// Overlapping roles are summed, not merged.
func TotalExperienceMonths(record *types.ResumeRecord, now time.Time) int {
	total := 0
	for _, exp := range record.Experience {
		start, ok := parseFlexibleDate(exp.StartDate, now)
		if !ok {
			continue
		}
		endRaw := exp.EndDate
		if endRaw == "" {
			endRaw = "present"
		}
		end, ok := parseFlexibleDate(endRaw, now)
		if !ok || end.Before(start) {
			continue
		}
		total += monthsBetween(start, end)
	}
	return total
}
