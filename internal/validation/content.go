package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Ratio thresholds for bullet-level quality gates.
const (
	actionVerbCritical = 0.70
	actionVerbWarning  = 0.90
	quantifiedCritical = 0.40
	quantifiedWarning  = 0.60
)

// quantifierRes recognize measurable outcomes: percentages, money,
// multipliers, and time/people/volume units.
var quantifierRes = []*regexp.Regexp{
	regexp.MustCompile(`\d+(\.\d+)?\s*%`),
	regexp.MustCompile(`[$€£]\s*\d`),
	regexp.MustCompile(`\d+(\.\d+)?\s*[xX]\b`),
	regexp.MustCompile(`(?i)\b\d+(\.\d+)?\s*(k|m|b|million|billion|thousand)\b`),
	regexp.MustCompile(`(?i)\b\d+\s*(users?|customers?|clients?|people|engineers?|teams?|members?|requests?|transactions?)\b`),
	regexp.MustCompile(`(?i)\b\d+\s*(hours?|days?|weeks?|months?|years?|ms|seconds?|minutes?)\b`),
}

var passiveVoiceRe = regexp.MustCompile(`(?i)\b(was|were|been|being|is|are)\s+\w+(ed|en)\b`)

var firstPersonRe = regexp.MustCompile(`(?i)\b(i|me|my|mine|myself)\b`)

var buzzwords = []string{
	"synergy", "go-getter", "think outside the box", "self-starter",
	"results-driven", "detail-oriented", "team player", "hard worker",
	"guru", "ninja", "rockstar", "dynamic", "proactive", "best of breed",
}

var informalPhrases = []string{
	"stuff", "things", "a lot of", "kind of", "sort of", "etc", "gonna",
	"pretty much", "awesome", "cool",
}

var conjunctionRe = regexp.MustCompile(`(?i)\b(and|but|or|so|yet)\b`)

// CheckContentAnalysis grades writing quality across all bullets against the
// role profile: verb strength, quantification, voice, tone, and skill
// cross-referencing.
func CheckContentAnalysis(record *types.ResumeRecord, profile taxonomy.Profile) []types.Issue {
	bullets := BulletLines(record)
	var issues []types.Issue

	issues = append(issues, checkActionVerbRatio(bullets, profile)...)
	issues = append(issues, checkQuantifiedRatio(bullets)...)
	issues = append(issues, checkPassiveVoice(bullets)...)
	issues = append(issues, checkFirstPerson(record)...)
	issues = append(issues, checkBuzzwords(record)...)
	issues = append(issues, checkSkillsCrossReference(record)...)
	issues = append(issues, checkRunOns(bullets)...)
	issues = append(issues, checkInformalLanguage(record)...)
	return issues
}

// checkActionVerbRatio measures how many bullets open with a strong verb
// from the role's taxonomy table.
func checkActionVerbRatio(bullets []string, profile taxonomy.Profile) []types.Issue {
	if len(bullets) == 0 {
		return nil
	}

	strong := make(map[string]bool, len(profile.StrongVerbs))
	for _, verb := range profile.StrongVerbs {
		strong[strings.ToLower(verb)] = true
	}

	lead := 0
	for _, bullet := range bullets {
		if strong[firstWord(bullet)] {
			lead++
		}
	}
	ratio := float64(lead) / float64(len(bullets))

	switch {
	case ratio < actionVerbCritical:
		return []types.Issue{{
			Severity: types.SeverityCritical,
			Category: "weak_action_verbs",
			Message:  fmt.Sprintf("Only %.0f%% of bullets open with a strong action verb; aim for 90%%+", ratio*100),
			Fix:      "Open every bullet with a verb like \"built\", \"led\", or \"reduced\"",
		}}
	case ratio < actionVerbWarning:
		return []types.Issue{{
			Severity: types.SeverityWarning,
			Category: "weak_action_verbs",
			Message:  fmt.Sprintf("%.0f%% of bullets open with a strong action verb; aim for 90%%+", ratio*100),
		}}
	default:
		return nil
	}
}

// checkQuantifiedRatio measures how many bullets carry a measurable outcome.
func checkQuantifiedRatio(bullets []string) []types.Issue {
	if len(bullets) == 0 {
		return nil
	}

	quantified := 0
	for _, bullet := range bullets {
		if IsQuantified(bullet) {
			quantified++
		}
	}
	ratio := float64(quantified) / float64(len(bullets))

	switch {
	case ratio < quantifiedCritical:
		return []types.Issue{{
			Severity: types.SeverityCritical,
			Category: "unquantified_achievements",
			Message:  fmt.Sprintf("Only %.0f%% of bullets include a measurable outcome", ratio*100),
			Fix:      "Attach a number to each achievement: %, $, time saved, or scale",
		}}
	case ratio < quantifiedWarning:
		return []types.Issue{{
			Severity: types.SeverityWarning,
			Category: "unquantified_achievements",
			Message:  fmt.Sprintf("%.0f%% of bullets include a measurable outcome; aim for 60%%+", ratio*100),
		}}
	default:
		return nil
	}
}

// IsQuantified reports whether text carries a measurable outcome.
func IsQuantified(text string) bool {
	for _, re := range quantifierRes {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func checkPassiveVoice(bullets []string) []types.Issue {
	var issues []types.Issue
	for _, bullet := range bullets {
		if passiveVoiceRe.MatchString(bullet) {
			issues = append(issues, types.Issue{
				Severity: types.SeverityWarning,
				Category: "passive_voice",
				Message:  fmt.Sprintf("Passive construction: %q", truncate(bullet, 40)),
				Fix:      "Rewrite in active voice",
			})
		}
	}
	return issues
}

func checkFirstPerson(record *types.ResumeRecord) []types.Issue {
	text := record.Contact.Summary + "\n" + record.ExperienceText()
	matches := firstPersonRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	return []types.Issue{{
		Severity: types.SeverityWarning,
		Category: "first_person_pronouns",
		Message:  fmt.Sprintf("First-person pronouns appear %d times; resumes use implied first person", len(matches)),
		Fix:      "Drop \"I\" and \"my\": \"Led migration\" instead of \"I led the migration\"",
	}}
}

func checkBuzzwords(record *types.ResumeRecord) []types.Issue {
	text := strings.ToLower(fullText(record))
	var found []string
	for _, buzzword := range buzzwords {
		if strings.Contains(text, buzzword) {
			found = append(found, buzzword)
		}
	}
	if len(found) == 0 {
		return nil
	}
	return []types.Issue{{
		Severity: types.SeverityWarning,
		Category: "buzzwords",
		Message:  fmt.Sprintf("Buzzwords detected: %s", strings.Join(found, ", ")),
		Fix:      "Replace buzzwords with concrete evidence",
	}}
}

// checkSkillsCrossReference flags listed skills that never appear in the
// experience section.
func checkSkillsCrossReference(record *types.ResumeRecord) []types.Issue {
	if len(record.Skills) == 0 || len(record.Experience) == 0 {
		return nil
	}
	expText := strings.ToLower(record.ExperienceText())

	var unmentioned []string
	for _, skill := range record.Skills {
		if !strings.Contains(expText, strings.ToLower(skill)) {
			unmentioned = append(unmentioned, skill)
		}
	}
	// A few unmentioned skills are normal; flag only when most are orphaned.
	if len(unmentioned)*2 <= len(record.Skills) {
		return nil
	}
	return []types.Issue{{
		Severity: types.SeveritySuggestion,
		Category: "orphaned_skills",
		Message: fmt.Sprintf("%d of %d listed skills never appear in the experience section (e.g. %s)",
			len(unmentioned), len(record.Skills), truncate(strings.Join(unmentioned, ", "), 60)),
		Fix: "Show each key skill in use inside an accomplishment",
	}}
}

// checkRunOns flags bullets that chain many conjunctions with little
// punctuation.
func checkRunOns(bullets []string) []types.Issue {
	var issues []types.Issue
	for _, bullet := range bullets {
		conjunctions := len(conjunctionRe.FindAllString(bullet, -1))
		commas := strings.Count(bullet, ",")
		if conjunctions >= 3 && conjunctions > commas*2 {
			issues = append(issues, types.Issue{
				Severity: types.SeverityWarning,
				Category: "run_on_sentence",
				Message:  fmt.Sprintf("Bullet chains %d conjunctions: %q", conjunctions, truncate(bullet, 40)),
				Fix:      "Split into separate bullets",
			})
		}
	}
	return issues
}

func checkInformalLanguage(record *types.ResumeRecord) []types.Issue {
	text := strings.ToLower(fullText(record))
	var found []string
	for _, phrase := range informalPhrases {
		if containsWholePhrase(text, phrase) {
			found = append(found, phrase)
		}
	}
	if len(found) == 0 {
		return nil
	}
	return []types.Issue{{
		Severity: types.SeverityWarning,
		Category: "informal_language",
		Message:  fmt.Sprintf("Informal language detected: %s", strings.Join(found, ", ")),
	}}
}

// containsWholePhrase is a word-boundary contains check for short phrases.
func containsWholePhrase(text, phrase string) bool {
	idx := 0
	for {
		found := strings.Index(text[idx:], phrase)
		if found < 0 {
			return false
		}
		found += idx
		beforeOK := found == 0 || !isLetter(text[found-1])
		end := found + len(phrase)
		afterOK := end >= len(text) || !isLetter(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = found + 1
	}
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
