package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/jonathan/resume-analyzer/internal/validation"
)

// Content quality sub-budgets: verb leads 8, quantification 8, bullet
// length 5, tone 4.
const (
	verbPoints       = 8.0
	quantifiedPoints = 8.0
	lengthBandPoints = 5.0
	tonePoints       = 4.0
)

// Bullet length band counted as compliant, in characters.
const (
	compliantBulletLo = 50
	compliantBulletHi = 150
)

var toneWords = []string{
	"synergy", "go-getter", "self-starter", "results-driven", "guru",
	"ninja", "rockstar", "team player", "hard worker", "stuff", "gonna",
}

// scoreContentQuality grades writing strength across all bullets.
func scoreContentQuality(record *types.ResumeRecord, profile taxonomy.Profile) types.ComponentScore {
	c := types.ComponentScore{Name: "content_quality", MaxScore: qualityBudget}

	bullets := validation.BulletLines(record)
	if len(bullets) == 0 {
		c.Issues = append(c.Issues, types.Issue{
			Severity: types.SeverityCritical,
			Category: "no_experience_content",
			Message:  "Experience entries have no descriptions to grade",
			Fix:      "Add 3-5 accomplishment bullets per role",
		})
		return c
	}

	strong := make(map[string]bool, len(profile.StrongVerbs))
	for _, verb := range profile.StrongVerbs {
		strong[strings.ToLower(verb)] = true
	}

	verbLeads, quantified, compliant := 0, 0, 0
	for _, bullet := range bullets {
		if fields := strings.Fields(strings.ToLower(bullet)); len(fields) > 0 && strong[fields[0]] {
			verbLeads++
		}
		if validation.IsQuantified(bullet) {
			quantified++
		}
		if len(bullet) >= compliantBulletLo && len(bullet) <= compliantBulletHi {
			compliant++
		}
	}
	total := float64(len(bullets))

	switch ratio := float64(verbLeads) / total; {
	case ratio >= 0.9:
		c.Score += verbPoints
	case ratio >= 0.7:
		c.Score += 5
	case ratio >= 0.5:
		c.Score += 2
	default:
		c.Issues = append(c.Issues, types.Issue{
			Severity: types.SeverityWarning,
			Category: "weak_action_verbs",
			Message:  fmt.Sprintf("Only %.0f%% of bullets open with a strong verb", ratio*100),
		})
	}

	switch ratio := float64(quantified) / total; {
	case ratio >= 0.6:
		c.Score += quantifiedPoints
	case ratio >= 0.4:
		c.Score += 5
	case ratio >= 0.2:
		c.Score += 2
	default:
		c.Issues = append(c.Issues, types.Issue{
			Severity: types.SeverityWarning,
			Category: "unquantified_achievements",
			Message:  fmt.Sprintf("Only %.0f%% of bullets include a measurable outcome", ratio*100),
		})
	}

	switch ratio := float64(compliant) / total; {
	case ratio >= 0.8:
		c.Score += lengthBandPoints
	case ratio >= 0.5:
		c.Score += 3
	default:
		c.Issues = append(c.Issues, types.Issue{
			Severity: types.SeveritySuggestion,
			Category: "bullet_length",
			Message:  "Most bullets fall outside the 50-150 character sweet spot",
		})
	}

	switch hits := countToneWords(record); {
	case hits == 0:
		c.Score += tonePoints
	case hits <= 2:
		c.Score += 2
	default:
		c.Issues = append(c.Issues, types.Issue{
			Severity: types.SeverityWarning,
			Category: "buzzwords",
			Message:  fmt.Sprintf("%d buzzwords or informal phrases detected", hits),
		})
	}

	return clampComponent(c)
}

func countToneWords(record *types.ResumeRecord) int {
	text := strings.ToLower(record.Contact.Summary + "\n" + record.ExperienceText())
	hits := 0
	for _, word := range toneWords {
		hits += strings.Count(text, word)
	}
	return hits
}
