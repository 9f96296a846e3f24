package ingestion

import (
	"sort"
	"strings"
)

// DefaultKeywordCount is the keyword list size when the caller does not ask
// for a specific number.
const DefaultKeywordCount = 15

var keywordStopwords = map[string]bool{
	"a": true, "about": true, "an": true, "and": true, "are": true,
	"as": true, "at": true, "be": true, "but": true, "by": true,
	"for": true, "from": true, "has": true, "have": true, "if": true,
	"in": true, "is": true, "it": true, "its": true, "of": true,
	"on": true, "or": true, "our": true, "per": true, "that": true,
	"the": true, "their": true, "they": true, "this": true, "to": true,
	"was": true, "we": true, "were": true, "which": true, "while": true,
	"will": true, "with": true, "you": true, "your": true,
	// Job-posting boilerplate that carries no skill signal.
	"experience": true, "years": true, "team": true, "work": true,
	"working": true, "role": true, "job": true, "candidate": true,
	"ability": true, "strong": true, "skills": true, "required": true,
	"preferred": true, "plus": true, "including": true, "knowledge": true,
}

// ExtractKeywords returns the topN most frequent non-stopword tokens from
// jobText, most frequent first. Ties break alphabetically so the result is
// deterministic. topN <= 0 uses DefaultKeywordCount.
func ExtractKeywords(jobText string, topN int) []string {
	if topN <= 0 {
		topN = DefaultKeywordCount
	}

	counts := make(map[string]int)
	for _, field := range strings.Fields(strings.ToLower(jobText)) {
		token := strings.Trim(field, ".,;:!?()[]{}\"'•–—*·>")
		if len(token) < 2 || keywordStopwords[token] || !hasLetter(token) {
			continue
		}
		counts[token]++
	}

	tokens := make([]string, 0, len(counts))
	for token := range counts {
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if counts[tokens[i]] != counts[tokens[j]] {
			return counts[tokens[i]] > counts[tokens[j]]
		}
		return tokens[i] < tokens[j]
	})

	if len(tokens) > topN {
		tokens = tokens[:topN]
	}
	return tokens
}

func hasLetter(token string) bool {
	for _, r := range token {
		if r >= 'a' && r <= 'z' {
			return true
		}
	}
	return false
}
