package validation

import (
	"fmt"
	"time"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// staleMonths is how long ago the most recent role may have ended before the
// resume looks inactive.
const staleMonths = 24

// CheckSectionCompleteness verifies the required sections exist and the work
// history is current.
func CheckSectionCompleteness(record *types.ResumeRecord, now time.Time) []types.Issue {
	var issues []types.Issue

	if len(record.Experience) == 0 {
		issues = append(issues, types.Issue{
			Severity: types.SeverityCritical,
			Category: "missing_experience_section",
			Message:  "No work experience section found",
		})
	}
	if len(record.Education) == 0 {
		issues = append(issues, types.Issue{
			Severity: types.SeverityCritical,
			Category: "missing_education_section",
			Message:  "No education section found",
		})
	}
	if len(record.Skills) == 0 {
		issues = append(issues, types.Issue{
			Severity: types.SeverityCritical,
			Category: "missing_skills_section",
			Message:  "No skills section found",
		})
	}

	if issue := checkStaleness(record, now); issue != nil {
		issues = append(issues, *issue)
	}

	if record.Contact.Summary == "" {
		issues = append(issues, types.Issue{
			Severity: types.SeveritySuggestion,
			Category: "missing_summary",
			Message:  "No professional summary found",
			Fix:      "Add a 2-3 sentence summary targeting the role",
		})
	}

	return issues
}

// checkStaleness flags resumes whose most recent role ended long ago.
func checkStaleness(record *types.ResumeRecord, now time.Time) *types.Issue {
	var latestEnd time.Time
	found := false

	for _, exp := range record.Experience {
		if isPresent(exp.EndDate) || exp.EndDate == "" {
			return nil
		}
		end, ok := parseFlexibleDate(exp.EndDate, now)
		if !ok {
			continue
		}
		if !found || end.After(latestEnd) {
			latestEnd = end
			found = true
		}
	}
	if !found {
		return nil
	}

	months := monthsBetween(latestEnd, now)
	if months <= staleMonths {
		return nil
	}
	return &types.Issue{
		Severity: types.SeverityWarning,
		Category: "stale_experience",
		Message:  fmt.Sprintf("Most recent role ended %d months ago", months),
		Fix:      "Account for the time since the last role",
	}
}
