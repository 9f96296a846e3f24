package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/jonathan/resume-analyzer/internal/validation"
)

// Length/density sub-budgets: word count 6, keyword density 4.
const (
	wordCountPoints = 6.0
	densityCapPoint = 4.0
)

// Word count bands shared with the validation rules.
const (
	scoreWordOptimalLo = 400
	scoreWordOptimalHi = 800
	scoreWordLooseLo   = 300
	scoreWordLooseHi   = 1200
)

// Top-token share thresholds over non-stopword tokens.
const (
	densityClean   = 0.06
	densityStuffed = 0.08
	densityMinimum = 50
)

// scoreLengthDensity grades document length and keyword stuffing.
func scoreLengthDensity(record *types.ResumeRecord) types.ComponentScore {
	c := types.ComponentScore{Name: "length_density", MaxScore: lengthBudget}

	words := record.Metadata.WordCount
	if words == 0 {
		words = len(strings.Fields(record.RawText))
	}
	switch {
	case words >= scoreWordOptimalLo && words <= scoreWordOptimalHi:
		c.Score += wordCountPoints
	case words >= scoreWordLooseLo && words <= scoreWordLooseHi:
		c.Score += 3
	default:
		c.Issues = append(c.Issues, types.Issue{
			Severity: types.SeverityWarning,
			Category: "word_count",
			Message:  fmt.Sprintf("%d words falls outside the %d-%d range", words, scoreWordLooseLo, scoreWordLooseHi),
		})
	}

	switch share := topTokenShare(record); {
	case share < densityClean:
		c.Score += densityCapPoint
	case share < densityStuffed:
		c.Score += 2
		c.Issues = append(c.Issues, types.Issue{
			Severity: types.SeveritySuggestion,
			Category: "keyword_stuffing",
			Message:  fmt.Sprintf("The most repeated term makes up %.1f%% of content", share*100),
		})
	default:
		c.Issues = append(c.Issues, types.Issue{
			Severity: types.SeverityWarning,
			Category: "keyword_stuffing",
			Message:  fmt.Sprintf("The most repeated term makes up %.1f%% of content; this trips stuffing detectors", share*100),
		})
	}

	return clampComponent(c)
}

// topTokenShare returns the frequency share of the most repeated non-stopword
// token, or 0 when there is too little text to judge.
func topTokenShare(record *types.ResumeRecord) float64 {
	text := record.RawText
	if text == "" {
		text = record.Contact.Summary + "\n" + record.ExperienceText()
	}

	counts := make(map[string]int)
	total := 0
	top := 0
	for _, field := range strings.Fields(strings.ToLower(text)) {
		token := strings.Trim(field, ".,;:!?()[]{}\"'•–—*·>")
		if token == "" || validation.IsStopword(token) {
			continue
		}
		total++
		counts[token]++
		if counts[token] > top {
			top = counts[token]
		}
	}
	if total < densityMinimum {
		return 0
	}
	return float64(top) / float64(total)
}
