package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Word count bands.
const (
	wordCountMin        = 300
	wordCountOptimalLo  = 400
	wordCountOptimalHi  = 800
	wordCountMax        = 1200
	wordsPerPageRedFlag = 150
)

// Keyword density thresholds over non-stopword tokens.
const (
	densitySuggestion = 0.06
	densityWarning    = 0.08
)

// Section balance: experience words as a share of total words.
const (
	balanceIdealLo      = 0.50
	balanceIdealHi      = 0.60
	balanceAcceptableLo = 0.40
	balanceAcceptableHi = 0.70
)

// Flesch-Kincaid grade bands for resume prose.
const (
	gradeTooComplex = 16.0
	gradeComplex    = 13.0
	gradeTooSimple  = 5.0
)

// CheckDocumentMetadata grades document-level signals: page and word counts,
// readability, keyword stuffing, section balance, and combined ATS red flags.
func CheckDocumentMetadata(record *types.ResumeRecord) []types.Issue {
	var issues []types.Issue

	issues = append(issues, checkPageCount(record.Metadata.PageCount)...)
	issues = append(issues, checkWordCount(wordCount(record))...)
	issues = append(issues, checkReadability(fullText(record))...)
	issues = append(issues, checkKeywordDensity(fullText(record))...)
	issues = append(issues, checkSectionBalance(record)...)
	issues = append(issues, checkATSRedFlags(record)...)
	return issues
}

func checkPageCount(pages int) []types.Issue {
	switch {
	case pages <= 0:
		return []types.Issue{{
			Severity: types.SeverityWarning,
			Category: "page_count",
			Message:  "Page count could not be determined",
		}}
	case pages <= 2:
		return nil
	case pages == 3:
		return []types.Issue{{
			Severity: types.SeverityWarning,
			Category: "page_count",
			Message:  "Resume runs to 3 pages; 1-2 is the expected range",
			Fix:      "Cut older or less relevant roles",
		}}
	default:
		return []types.Issue{{
			Severity: types.SeverityCritical,
			Category: "page_count",
			Message:  fmt.Sprintf("Resume runs to %d pages; 1-2 is the expected range", pages),
			Fix:      "Cut older or less relevant roles",
		}}
	}
}

func checkWordCount(words int) []types.Issue {
	switch {
	case words == 0:
		return nil
	case words < wordCountMin:
		return []types.Issue{{
			Severity: types.SeverityCritical,
			Category: "word_count",
			Message:  fmt.Sprintf("Only %d words of content; resumes under %d read as thin", words, wordCountMin),
			Fix:      "Expand accomplishments with scope and outcomes",
		}}
	case words < wordCountOptimalLo:
		return []types.Issue{{
			Severity: types.SeveritySuggestion,
			Category: "word_count",
			Message:  fmt.Sprintf("%d words is on the light side; %d-%d is optimal", words, wordCountOptimalLo, wordCountOptimalHi),
		}}
	case words <= wordCountOptimalHi:
		return nil
	case words <= wordCountMax:
		return []types.Issue{{
			Severity: types.SeveritySuggestion,
			Category: "word_count",
			Message:  fmt.Sprintf("%d words is on the heavy side; %d-%d is optimal", words, wordCountOptimalLo, wordCountOptimalHi),
		}}
	default:
		return []types.Issue{{
			Severity: types.SeverityWarning,
			Category: "word_count",
			Message:  fmt.Sprintf("%d words exceeds the %d-word ceiling", words, wordCountMax),
			Fix:      "Trim to the most recent and relevant material",
		}}
	}
}

func checkReadability(text string) []types.Issue {
	grade := fleschKincaidGrade(text)
	switch {
	case grade == 0:
		return nil
	case grade > gradeTooComplex:
		return []types.Issue{{
			Severity: types.SeverityWarning,
			Category: "readability",
			Message:  fmt.Sprintf("Reading level is grade %.1f; dense prose slows reviewers down", grade),
			Fix:      "Shorten sentences and simplify vocabulary",
		}}
	case grade > gradeComplex:
		return []types.Issue{{
			Severity: types.SeveritySuggestion,
			Category: "readability",
			Message:  fmt.Sprintf("Reading level is grade %.1f, slightly dense for a resume", grade),
		}}
	case grade < gradeTooSimple:
		return []types.Issue{{
			Severity: types.SeveritySuggestion,
			Category: "readability",
			Message:  fmt.Sprintf("Reading level is grade %.1f; very short fragments can read as thin", grade),
		}}
	default:
		return nil
	}
}

// checkKeywordDensity flags keyword stuffing: any single non-stopword token
// dominating the document.
func checkKeywordDensity(text string) []types.Issue {
	tokens := contentTokens(text)
	if len(tokens) < 50 {
		return nil
	}

	counts := make(map[string]int)
	topToken := ""
	topCount := 0
	for _, token := range tokens {
		counts[token]++
		if counts[token] > topCount {
			topToken, topCount = token, counts[token]
		}
	}

	density := float64(topCount) / float64(len(tokens))
	switch {
	case density > densityWarning:
		return []types.Issue{{
			Severity: types.SeverityWarning,
			Category: "keyword_stuffing",
			Message:  fmt.Sprintf("The term %q makes up %.1f%% of content; this trips stuffing detectors", topToken, density*100),
			Fix:      "Vary wording instead of repeating one term",
		}}
	case density > densitySuggestion:
		return []types.Issue{{
			Severity: types.SeveritySuggestion,
			Category: "keyword_stuffing",
			Message:  fmt.Sprintf("The term %q makes up %.1f%% of content", topToken, density*100),
		}}
	default:
		return nil
	}
}

// checkSectionBalance compares experience word share against the ideal band.
func checkSectionBalance(record *types.ResumeRecord) []types.Issue {
	total := wordCount(record)
	if total == 0 || len(record.Experience) == 0 {
		return nil
	}
	expWords := len(strings.Fields(record.ExperienceText()))
	share := float64(expWords) / float64(total)

	switch {
	case share < balanceAcceptableLo || share > balanceAcceptableHi:
		return []types.Issue{{
			Severity: types.SeverityWarning,
			Category: "section_balance",
			Message:  fmt.Sprintf("Experience is %.0f%% of content; 50-60%% is the expected share", share*100),
			Fix:      "Rebalance so experience carries most of the document",
		}}
	case share < balanceIdealLo || share > balanceIdealHi:
		return []types.Issue{{
			Severity: types.SeveritySuggestion,
			Category: "section_balance",
			Message:  fmt.Sprintf("Experience is %.0f%% of content; 50-60%% is ideal", share*100),
		}}
	default:
		return nil
	}
}

// checkATSRedFlags combines document signals that together predict parser
// rejection.
func checkATSRedFlags(record *types.ResumeRecord) []types.Issue {
	var issues []types.Issue

	pages := record.Metadata.PageCount
	words := wordCount(record)
	if pages > 0 && words > 0 && words/pages < wordsPerPageRedFlag {
		issues = append(issues, types.Issue{
			Severity: types.SeverityWarning,
			Category: "ats_red_flag",
			Message:  fmt.Sprintf("Only %d words per page suggests image-heavy or sparse formatting", words/pages),
		})
	}

	missing := 0
	if len(record.Experience) == 0 {
		missing++
	}
	if len(record.Education) == 0 {
		missing++
	}
	if len(record.Skills) == 0 {
		missing++
	}
	if missing >= 2 {
		issues = append(issues, types.Issue{
			Severity: types.SeverityCritical,
			Category: "ats_red_flag",
			Message:  fmt.Sprintf("%d core sections are missing; most ATS filters reject such profiles outright", missing),
		})
	}
	return issues
}

// wordCount prefers the parser's count and falls back to counting the text.
func wordCount(record *types.ResumeRecord) int {
	if record.Metadata.WordCount > 0 {
		return record.Metadata.WordCount
	}
	return len(strings.Fields(fullText(record)))
}
