package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Bullet length bands in characters.
const (
	bulletCriticalShort = 30
	bulletWarningShort  = 50
	bulletWarningLong   = 151
	bulletCriticalLong  = 201
)

// vaguePhrases read as filler rather than evidence.
var vaguePhrases = []string{
	"responsible for", "worked on", "involved in", "helped with",
	"assisted with", "participated in", "duties included", "tasked with",
	"familiar with", "exposure to",
}

// weakLeadVerbs are openers that bury the actual accomplishment.
var weakLeadVerbs = map[string]bool{
	"helped": true, "worked": true, "assisted": true, "participated": true,
	"supported": true, "did": true, "made": true, "used": true, "was": true,
	"were": true, "being": true, "had": true,
}

// CheckContentDepth grades individual experience bullets: vague phrasing,
// length bands, fragments, and weak leading verbs.
func CheckContentDepth(record *types.ResumeRecord) []types.Issue {
	var issues []types.Issue

	for _, bullet := range BulletLines(record) {
		issues = append(issues, checkBullet(bullet)...)
	}
	return issues
}

func checkBullet(bullet string) []types.Issue {
	var issues []types.Issue
	lower := strings.ToLower(bullet)
	preview := truncate(bullet, 40)

	for _, phrase := range vaguePhrases {
		if strings.Contains(lower, phrase) {
			issues = append(issues, types.Issue{
				Severity: types.SeverityWarning,
				Category: "vague_language",
				Message:  fmt.Sprintf("Bullet uses the vague phrase %q: %q", phrase, preview),
				Fix:      "Lead with a concrete action and its measurable outcome",
			})
			break
		}
	}

	switch length := len(bullet); {
	case length < bulletCriticalShort:
		issues = append(issues, types.Issue{
			Severity: types.SeverityCritical,
			Category: "bullet_too_short",
			Message:  fmt.Sprintf("Bullet is only %d characters: %q", length, preview),
			Fix:      "Expand to a full accomplishment of 50-150 characters",
		})
	case length < bulletWarningShort:
		issues = append(issues, types.Issue{
			Severity: types.SeverityWarning,
			Category: "bullet_too_short",
			Message:  fmt.Sprintf("Bullet is thin at %d characters: %q", length, preview),
		})
	case length >= bulletCriticalLong:
		issues = append(issues, types.Issue{
			Severity: types.SeverityCritical,
			Category: "bullet_too_long",
			Message:  fmt.Sprintf("Bullet runs to %d characters and will be skimmed past: %q", length, preview),
			Fix:      "Split into two bullets or cut qualifiers",
		})
	case length >= bulletWarningLong:
		issues = append(issues, types.Issue{
			Severity: types.SeverityWarning,
			Category: "bullet_too_long",
			Message:  fmt.Sprintf("Bullet is long at %d characters: %q", length, preview),
		})
	}

	words := strings.Fields(bullet)
	if len(words) < 3 {
		issues = append(issues, types.Issue{
			Severity: types.SeverityWarning,
			Category: "fragment",
			Message:  fmt.Sprintf("Bullet is a fragment: %q", preview),
		})
	}

	if weakLeadVerbs[firstWord(bullet)] {
		issues = append(issues, types.Issue{
			Severity: types.SeverityWarning,
			Category: "weak_lead_verb",
			Message:  fmt.Sprintf("Bullet opens with a weak verb: %q", preview),
			Fix:      "Open with a strong action verb",
		})
	}

	return issues
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
