package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Keyword tier points. The tier ladder is deliberately a step function: the
// industry pass bar sits near a 60% match rate, so partial credit below it
// drops sharply.
const (
	keywordExcellentPoints = keywordBudget
	keywordPartialPoints   = 10.0
	keywordMinimalPoints   = 5.0
)

// scoreKeywordMatch awards the keyword budget by match tier.
func (e *Engine) scoreKeywordMatch(record *types.ResumeRecord, kws []string) types.ComponentScore {
	c := types.ComponentScore{Name: "keyword_match", MaxScore: keywordBudget}

	if len(kws) == 0 {
		// Nothing to miss; do not punish the resume for a missing job
		// description.
		c.Score = keywordBudget
		c.Issues = append(c.Issues, types.Issue{
			Severity: types.SeverityInfo,
			Category: "no_keywords",
			Message:  "No keywords available to match against",
		})
		return c
	}

	summary := e.matcher.MatchSummary(kws, resumeMatchText(record))
	switch summary.Tier {
	case types.TierExcellent:
		c.Score = keywordExcellentPoints
	case types.TierPartial:
		c.Score = keywordPartialPoints
	case types.TierMinimal:
		c.Score = keywordMinimalPoints
	}

	if len(summary.Missing) > 0 {
		severity := types.SeveritySuggestion
		if summary.Tier == types.TierFail || summary.Tier == types.TierMinimal {
			severity = types.SeverityWarning
		}
		c.Issues = append(c.Issues, types.Issue{
			Severity: severity,
			Category: "missing_keywords",
			Message: fmt.Sprintf("Match rate %.0f%%; missing: %s",
				summary.MatchRate, strings.Join(summary.Missing, ", ")),
			Fix: "Work the missing terms into real accomplishments",
		})
	}

	return clampComponent(c)
}

// resumeMatchText builds the text keywords are matched against: raw text
// when available, otherwise the record's assembled sections.
func resumeMatchText(record *types.ResumeRecord) string {
	if record.RawText != "" {
		return record.RawText
	}
	parts := []string{
		record.Contact.Summary,
		record.ExperienceText(),
		strings.Join(record.Skills, " "),
	}
	return strings.Join(parts, "\n")
}
