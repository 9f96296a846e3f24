package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var employmentNow = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

func issuesInCategory(issues []types.Issue, category string) []types.Issue {
	var out []types.Issue
	for _, issue := range issues {
		if issue.Category == category {
			out = append(out, issue)
		}
	}
	return out
}

func TestCheckEmploymentHistoryCriticalGap(t *testing.T) {
	record := &types.ResumeRecord{
		Experience: []types.Experience{
			{Title: "Engineer", Company: "Acme", StartDate: "Mar 2017", EndDate: "Jan 2020"},
			{Title: "Senior Engineer", Company: "Globex", StartDate: "Sep 2021", EndDate: "Present"},
		},
	}

	issues := CheckEmploymentHistory(record, employmentNow)

	gaps := issuesInCategory(issues, "employment_gap")
	require.Len(t, gaps, 1)
	assert.Equal(t, types.SeverityCritical, gaps[0].Severity)
	assert.Contains(t, gaps[0].Message, "20")
	assert.Contains(t, strings.ToLower(gaps[0].Message), "gap")
}

func TestCheckEmploymentHistoryWarningGap(t *testing.T) {
	record := &types.ResumeRecord{
		Experience: []types.Experience{
			{Title: "Engineer", Company: "Acme", StartDate: "Jan 2018", EndDate: "Jan 2020"},
			{Title: "Engineer", Company: "Globex", StartDate: "Nov 2020", EndDate: "Present"},
		},
	}

	issues := CheckEmploymentHistory(record, employmentNow)

	gaps := issuesInCategory(issues, "employment_gap")
	require.Len(t, gaps, 1)
	assert.Equal(t, types.SeverityWarning, gaps[0].Severity)
	assert.Contains(t, gaps[0].Message, "10")
}

func TestCheckEmploymentHistoryNoGapUnderThreshold(t *testing.T) {
	record := &types.ResumeRecord{
		Experience: []types.Experience{
			{Title: "Engineer", Company: "Acme", StartDate: "Jan 2018", EndDate: "Jan 2020"},
			{Title: "Engineer", Company: "Globex", StartDate: "Jun 2020", EndDate: "Present"},
		},
	}

	issues := CheckEmploymentHistory(record, employmentNow)
	assert.Empty(t, issuesInCategory(issues, "employment_gap"))
}

func TestCheckEmploymentHistoryDateSanity(t *testing.T) {
	tests := []struct {
		name     string
		exp      types.Experience
		category string
	}{
		{
			name:     "unparsable start date",
			exp:      types.Experience{Title: "Engineer", Company: "Acme", StartDate: "whenever", EndDate: "Jan 2020"},
			category: "unparsable_date",
		},
		{
			name:     "unparsable end date",
			exp:      types.Experience{Title: "Engineer", Company: "Acme", StartDate: "Jan 2018", EndDate: "later"},
			category: "unparsable_date",
		},
		{
			name:     "future start date",
			exp:      types.Experience{Title: "Engineer", Company: "Acme", StartDate: "Jan 2030", EndDate: "Present"},
			category: "future_start_date",
		},
		{
			name:     "end precedes start",
			exp:      types.Experience{Title: "Engineer", Company: "Acme", StartDate: "Jan 2020", EndDate: "Jan 2018"},
			category: "end_before_start",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := &types.ResumeRecord{Experience: []types.Experience{tt.exp}}
			issues := CheckEmploymentHistory(record, employmentNow)

			found := issuesInCategory(issues, tt.category)
			require.Len(t, found, 1)
			assert.Equal(t, types.SeverityCritical, found[0].Severity)
		})
	}
}

func TestCheckEmploymentHistoryEmptyEndDateIsOngoing(t *testing.T) {
	record := &types.ResumeRecord{
		Experience: []types.Experience{
			{Title: "Engineer", Company: "Acme", StartDate: "Jan 2020", EndDate: ""},
		},
	}

	issues := CheckEmploymentHistory(record, employmentNow)
	assert.Empty(t, issuesInCategory(issues, "unparsable_date"))
}

func TestCheckEmploymentHistoryJobHopping(t *testing.T) {
	record := &types.ResumeRecord{
		Experience: []types.Experience{
			{Title: "Engineer", Company: "Acme", StartDate: "Jan 2020", EndDate: "Aug 2020"},
			{Title: "Engineer", Company: "Globex", StartDate: "Sep 2020", EndDate: "Mar 2021"},
			{Title: "Engineer", Company: "Initech", StartDate: "Apr 2021", EndDate: "Present"},
		},
	}

	issues := CheckEmploymentHistory(record, employmentNow)

	hopping := issuesInCategory(issues, "job_hopping")
	require.Len(t, hopping, 1)
	assert.Equal(t, types.SeverityWarning, hopping[0].Severity)
}

func TestCheckEmploymentHistorySingleShortRoleNotHopping(t *testing.T) {
	record := &types.ResumeRecord{
		Experience: []types.Experience{
			{Title: "Engineer", Company: "Acme", StartDate: "Jan 2015", EndDate: "Aug 2015"},
			{Title: "Engineer", Company: "Globex", StartDate: "Sep 2015", EndDate: "Present"},
		},
	}

	issues := CheckEmploymentHistory(record, employmentNow)
	assert.Empty(t, issuesInCategory(issues, "job_hopping"))
}
