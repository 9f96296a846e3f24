package validation

import (
	"fmt"
	"sort"
	"time"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Gap thresholds in months.
const (
	criticalGapMonths = 18
	warningGapMonths  = 9
	shortTenureMonths = 12
)

// parsedRole is one experience entry with resolved dates.
type parsedRole struct {
	exp   types.Experience
	start time.Time
	end   time.Time
}

// CheckEmploymentHistory validates date sanity, inter-role gaps, and tenure
// patterns across the work history.
func CheckEmploymentHistory(record *types.ResumeRecord, now time.Time) []types.Issue {
	var issues []types.Issue
	var roles []parsedRole

	for _, exp := range record.Experience {
		label := roleLabel(exp)

		start, startOK := parseFlexibleDate(exp.StartDate, now)
		if !startOK {
			issues = append(issues, types.Issue{
				Severity: types.SeverityCritical,
				Category: "unparsable_date",
				Message:  fmt.Sprintf("Could not parse start date %q for %s", exp.StartDate, label),
				Fix:      "Use a standard date format such as \"Jan 2020\"",
			})
			continue
		}

		// A missing end date is treated as an ongoing role.
		endRaw := exp.EndDate
		if endRaw == "" {
			endRaw = "present"
		}
		end, endOK := parseFlexibleDate(endRaw, now)
		if !endOK {
			issues = append(issues, types.Issue{
				Severity: types.SeverityCritical,
				Category: "unparsable_date",
				Message:  fmt.Sprintf("Could not parse end date %q for %s", exp.EndDate, label),
				Fix:      "Use a standard date format such as \"Jan 2022\" or \"Present\"",
			})
			continue
		}

		if start.After(now) {
			issues = append(issues, types.Issue{
				Severity: types.SeverityCritical,
				Category: "future_start_date",
				Message:  fmt.Sprintf("Start date %q for %s is in the future", exp.StartDate, label),
			})
			continue
		}
		if end.Before(start) {
			issues = append(issues, types.Issue{
				Severity: types.SeverityCritical,
				Category: "end_before_start",
				Message:  fmt.Sprintf("End date precedes start date for %s", label),
			})
			continue
		}

		roles = append(roles, parsedRole{exp: exp, start: start, end: end})
	}

	issues = append(issues, checkGaps(roles)...)
	issues = append(issues, checkJobHopping(roles)...)
	return issues
}

// checkGaps sorts roles by start date descending and measures the gap
// between each role's start and the chronologically previous role's end.
func checkGaps(roles []parsedRole) []types.Issue {
	if len(roles) < 2 {
		return nil
	}

	sorted := make([]parsedRole, len(roles))
	copy(sorted, roles)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].start.After(sorted[j].start)
	})

	var issues []types.Issue
	for i := 0; i < len(sorted)-1; i++ {
		later := sorted[i]
		earlier := sorted[i+1]
		gap := monthsBetween(earlier.end, later.start)

		switch {
		case gap >= criticalGapMonths:
			issues = append(issues, types.Issue{
				Severity: types.SeverityCritical,
				Category: "employment_gap",
				Message: fmt.Sprintf("Employment gap of %d months between %s and %s",
					gap, roleLabel(earlier.exp), roleLabel(later.exp)),
				Fix: "Explain long gaps in the summary or list relevant activity during them",
			})
		case gap >= warningGapMonths:
			issues = append(issues, types.Issue{
				Severity: types.SeverityWarning,
				Category: "employment_gap",
				Message: fmt.Sprintf("Employment gap of %d months between %s and %s",
					gap, roleLabel(earlier.exp), roleLabel(later.exp)),
			})
		}
	}
	return issues
}

// checkJobHopping flags short tenures at two or more employers.
func checkJobHopping(roles []parsedRole) []types.Issue {
	shortTenures := 0
	for _, role := range roles {
		if monthsBetween(role.start, role.end) < shortTenureMonths {
			shortTenures++
		}
	}
	if shortTenures < 2 {
		return nil
	}
	return []types.Issue{{
		Severity: types.SeverityWarning,
		Category: "job_hopping",
		Message:  fmt.Sprintf("%d roles lasted under a year, which reads as job hopping", shortTenures),
		Fix:      "Group short contract roles under a single heading",
	}}
}

func roleLabel(exp types.Experience) string {
	switch {
	case exp.Title != "" && exp.Company != "":
		return exp.Title + " at " + exp.Company
	case exp.Company != "":
		return exp.Company
	case exp.Title != "":
		return exp.Title
	default:
		return "an untitled role"
	}
}
