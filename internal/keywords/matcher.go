// Package keywords implements hybrid keyword matching: exact whole-word
// matching plus synonym expansion, with tiered match-rate scoring.
package keywords

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Tier thresholds for the match rate. A step function: the industry pass bar
// sits near 60%, so partial coverage below it earns sharply fewer points.
const (
	TierExcellentThreshold = 60.0
	TierPartialThreshold   = 40.0
	TierMinimalThreshold   = 25.0
)

// synonymPairs seed the bidirectional expansion table. An acronym counts as
// a match for its expansion and vice versa.
var synonymPairs = [][2]string{
	{"kubernetes", "k8s"},
	{"javascript", "js"},
	{"typescript", "ts"},
	{"amazon web services", "aws"},
	{"google cloud platform", "gcp"},
	{"machine learning", "ml"},
	{"artificial intelligence", "ai"},
	{"natural language processing", "nlp"},
	{"postgresql", "postgres"},
	{"continuous integration", "ci/cd"},
	{"continuous delivery", "ci/cd"},
	{"infrastructure as code", "iac"},
	{"site reliability engineering", "sre"},
	{"customer relationship management", "crm"},
	{"search engine optimization", "seo"},
	{"key performance indicator", "kpi"},
	{"objectives and key results", "okr"},
	{"golang", "go"},
}

// Matcher decides keyword presence in resume or job text. It is stateless
// after construction and safe for concurrent use.
type Matcher struct {
	synonyms map[string][]string
}

// NewMatcher builds a Matcher with the default synonym table.
func NewMatcher() *Matcher {
	synonyms := make(map[string][]string, len(synonymPairs)*2)
	for _, pair := range synonymPairs {
		a, b := pair[0], pair[1]
		synonyms[a] = append(synonyms[a], b)
		synonyms[b] = append(synonyms[b], a)
	}
	return &Matcher{synonyms: synonyms}
}

// Match reports whether keyword appears in text as a whole word, either
// literally or through a synonym expansion.
func (m *Matcher) Match(keyword, text string) bool {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return false
	}
	textLower := strings.ToLower(text)

	if containsWholeWord(textLower, keyword) {
		return true
	}
	for _, alt := range m.synonyms[keyword] {
		if containsWholeWord(textLower, alt) {
			return true
		}
	}
	return false
}

// MatchSummary matches every keyword against text and computes the tiered
// match rate. The rate is matched/total on a 0-100 scale.
func (m *Matcher) MatchSummary(keywords []string, text string) types.KeywordMatchResult {
	result := types.KeywordMatchResult{
		Matched: []string{},
		Missing: []string{},
	}
	if len(keywords) == 0 {
		result.Tier = types.TierFail
		return result
	}

	for _, keyword := range keywords {
		if m.Match(keyword, text) {
			result.Matched = append(result.Matched, keyword)
		} else {
			result.Missing = append(result.Missing, keyword)
		}
	}

	result.MatchRate = float64(len(result.Matched)) / float64(len(keywords)) * 100.0
	result.Tier = TierForRate(result.MatchRate)
	return result
}

// TierForRate maps a 0-100 match rate onto the discrete tier ladder.
func TierForRate(rate float64) string {
	switch {
	case rate >= TierExcellentThreshold:
		return types.TierExcellent
	case rate >= TierPartialThreshold:
		return types.TierPartial
	case rate >= TierMinimalThreshold:
		return types.TierMinimal
	default:
		return types.TierFail
	}
}

// containsWholeWord reports whether word occurs in text bounded by
// non-alphanumeric characters. A manual scan is used instead of \b because
// keywords like "c++" and "ci/cd" end in non-word characters.
func containsWholeWord(text, word string) bool {
	return nextWholeWord(text, word, 0) >= 0
}

// nextWholeWord returns the index of the first whole-word occurrence of word
// in text at or after start, or -1.
func nextWholeWord(text, word string, start int) int {
	for start <= len(text)-len(word) {
		idx := strings.Index(text[start:], word)
		if idx < 0 {
			return -1
		}
		idx += start
		if boundaryBefore(text, idx) && boundaryAfter(text, idx+len(word)) {
			return idx
		}
		start = idx + 1
	}
	return -1
}

func boundaryBefore(text string, idx int) bool {
	if idx == 0 {
		return true
	}
	return !isWordChar(text[idx-1])
}

func boundaryAfter(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	return !isWordChar(text[end])
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
