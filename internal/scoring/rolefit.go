package scoring

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/jonathan/resume-analyzer/internal/validation"
)

// Role fit sub-budgets: taxonomy keyword coverage 10, experience band 6,
// metric vocabulary 4.
const (
	coveragePoints   = 10.0
	expBandPoints    = 6.0
	metricHintPoints = 4.0
)

// scoreRoleFit grades how well the resume matches the requested role and
// level profile.
func (e *Engine) scoreRoleFit(record *types.ResumeRecord, profile taxonomy.Profile, now time.Time) types.ComponentScore {
	c := types.ComponentScore{Name: "role_fit", MaxScore: roleFitBudget}
	text := resumeMatchText(record)

	summary := e.matcher.MatchSummary(profile.Keywords, text)
	switch {
	case summary.MatchRate >= 60:
		c.Score += coveragePoints
	case summary.MatchRate >= 40:
		c.Score += 6
	case summary.MatchRate >= 25:
		c.Score += 3
	default:
		c.Issues = append(c.Issues, types.Issue{
			Severity: types.SeverityWarning,
			Category: "low_role_keyword_coverage",
			Message: fmt.Sprintf("Resume covers %.0f%% of the %s vocabulary recruiters scan for",
				summary.MatchRate, profile.Role),
			Fix: "Mirror the role's core terminology where it is truthful",
		})
	}

	years := float64(validation.TotalExperienceMonths(record, now)) / 12.0
	band := taxonomy.RangeForLevel(profile.Level)
	switch {
	case years >= band.Min && years <= band.Max:
		c.Score += expBandPoints
	case years >= band.Min-1 && years <= band.Max+2:
		c.Score += 3
		c.Issues = append(c.Issues, types.Issue{
			Severity: types.SeveritySuggestion,
			Category: "experience_band",
			Message: fmt.Sprintf("%.1f years of experience sits at the edge of the %s band",
				years, profile.Level),
		})
	default:
		c.Issues = append(c.Issues, types.Issue{
			Severity: types.SeverityWarning,
			Category: "experience_band",
			Message: fmt.Sprintf("%.1f years of experience does not fit the %.0f-%.0f year %s band",
				years, band.Min, band.Max, profile.Level),
		})
	}

	switch hints := countMetricHints(text, profile.MetricHints); {
	case hints >= 2:
		c.Score += metricHintPoints
	case hints == 1:
		c.Score += 2
	default:
		c.Issues = append(c.Issues, types.Issue{
			Severity: types.SeveritySuggestion,
			Category: "missing_metric_vocabulary",
			Message:  fmt.Sprintf("None of the %s metrics recruiters expect (%s) appear", profile.Role, strings.Join(profile.MetricHints, ", ")),
		})
	}

	return clampComponent(c)
}

func countMetricHints(text string, hints []string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, hint := range hints {
		if strings.Contains(lower, strings.ToLower(hint)) {
			count++
		}
	}
	return count
}
