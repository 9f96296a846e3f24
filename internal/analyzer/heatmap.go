package analyzer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Section rating ladder on the 0-1 health scale.
const (
	sectionStrong   = 0.8
	sectionAdequate = 0.5
)

// SectionHeat grades one resume section.
type SectionHeat struct {
	Score      float64 `json:"score"` // 0-100
	Rating     string  `json:"rating"`
	IssueCount int     `json:"issue_count"`
}

// HeatMapResult maps section names to their heat grades.
type HeatMapResult struct {
	ID       string                 `json:"id"`
	Sections map[string]SectionHeat `json:"sections"`
}

// categorySections routes issue categories to the section they concern.
// Unlisted categories count against the section whose name prefixes them,
// else nowhere.
var categorySections = map[string]string{
	"missing_email":              "contact",
	"missing_phone":              "contact",
	"missing_linkedin":           "contact",
	"missing_location":           "contact",
	"malformed_email":            "contact",
	"outdated_email_provider":    "contact",
	"unprofessional_email":       "contact",
	"short_phone_number":         "contact",
	"inconsistent_phone_format":  "contact",
	"linkedin_company_url":       "contact",
	"malformed_linkedin_url":     "contact",
	"incomplete_location":        "contact",
	"missing_summary":            "summary",
	"first_person_pronouns":      "summary",
	"buzzwords":                  "summary",
	"informal_language":          "summary",
	"missing_experience_section": "experience",
	"employment_gap":             "experience",
	"job_hopping":                "experience",
	"unparsable_date":            "experience",
	"future_start_date":          "experience",
	"end_before_start":           "experience",
	"stale_experience":           "experience",
	"underqualified_for_level":   "experience",
	"overqualified_for_level":    "experience",
	"vague_language":             "experience",
	"bullet_too_short":           "experience",
	"bullet_too_long":            "experience",
	"fragment":                   "experience",
	"weak_lead_verb":             "experience",
	"weak_action_verbs":          "experience",
	"unquantified_achievements":  "experience",
	"passive_voice":              "experience",
	"run_on_sentence":            "experience",
	"no_experience_content":      "experience",
	"missing_education_section":  "education",
	"missing_skills_section":     "skills",
	"orphaned_skills":            "skills",
	"missing_keywords":           "skills",
	"low_role_keyword_coverage":  "skills",
}

var heatSections = []string{"contact", "summary", "experience", "education", "skills"}

// HeatMap grades each resume section from its component score and the issues
// attributed to it.
func (a *Analyzer) HeatMap(ctx context.Context, req Request) (*HeatMapResult, error) {
	if req.Record == nil {
		return nil, fmt.Errorf("resume record is required")
	}

	kws, err := a.resolveKeywords(req)
	if err != nil {
		return nil, err
	}
	profile, _ := a.store.Lookup(req.Role, req.Level)
	now := time.Now()

	issues := a.validator.EvaluateAt(ctx, req.Record, req.Role, req.Level, now)
	breakdown := a.scorer.Score(req.Record, profile, kws, now)
	issues = append(issues, breakdown.AllIssues()...)

	counts := make(map[string]int, len(heatSections))
	for _, issue := range issues {
		if section, ok := categorySections[issue.Category]; ok {
			counts[section]++
			continue
		}
		for _, section := range heatSections {
			if strings.HasPrefix(issue.Category, section) {
				counts[section]++
				break
			}
		}
	}

	result := &HeatMapResult{
		ID:       uuid.NewString(),
		Sections: make(map[string]SectionHeat, len(heatSections)),
	}
	for _, section := range heatSections {
		health := sectionHealth(section, req.Record, breakdown, counts[section])
		result.Sections[section] = SectionHeat{
			Score:      round1(health * 100),
			Rating:     ratingForHealth(health),
			IssueCount: counts[section],
		}
	}
	return result, nil
}

// sectionHealth starts from the relevant component ratio and deducts a tenth
// per attributed issue.
func sectionHealth(section string, record *types.ResumeRecord, breakdown types.ScoreBreakdown, issueCount int) float64 {
	base := 0.0
	switch section {
	case "contact":
		base = componentRatio(breakdown, "contact_info")
	case "summary":
		if record.Contact.Summary != "" {
			base = 1.0
		}
	case "experience":
		base = componentRatio(breakdown, "content_quality")
	case "education":
		if len(record.Education) > 0 {
			base = 1.0
		}
	case "skills":
		base = componentRatio(breakdown, "keyword_match")
	}

	health := base - 0.1*float64(issueCount)
	if health < 0 {
		health = 0
	}
	return health
}

func componentRatio(breakdown types.ScoreBreakdown, name string) float64 {
	for _, component := range breakdown.Components {
		if component.Name == name && component.MaxScore > 0 {
			return component.Score / component.MaxScore
		}
	}
	return 0
}

func ratingForHealth(health float64) string {
	switch {
	case health >= sectionStrong:
		return "strong"
	case health >= sectionAdequate:
		return "adequate"
	default:
		return "weak"
	}
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
