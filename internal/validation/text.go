package validation

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// bulletMarkers are stripped from the front of each description line.
var bulletMarkers = []string{"•", "◦", "▪", "–", "—", "-", "*", "·", ">"}

// stopwords excluded from keyword-density and frequency counts. The scoring
// package shares this set through IsStopword so the two density heuristics
// stay in agreement.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true, "has": true,
	"have": true, "in": true, "is": true, "it": true, "its": true, "of": true,
	"on": true, "or": true, "that": true, "the": true, "to": true, "was": true,
	"were": true, "which": true, "while": true, "with": true, "i": true,
	"my": true, "we": true, "our": true, "this": true, "these": true,
}

// IsStopword reports whether a lowercased token carries no content weight
// for density and frequency heuristics.
func IsStopword(token string) bool {
	return stopwords[token]
}

// BulletLines splits every experience description into cleaned bullet lines.
func BulletLines(record *types.ResumeRecord) []string {
	var bullets []string
	for _, exp := range record.Experience {
		for _, line := range strings.Split(exp.Description, "\n") {
			cleaned := stripBulletMarker(line)
			if cleaned != "" {
				bullets = append(bullets, cleaned)
			}
		}
	}
	return bullets
}

// stripBulletMarker removes a leading bullet glyph and surrounding space.
func stripBulletMarker(line string) string {
	cleaned := strings.TrimSpace(line)
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(cleaned, marker) {
			cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, marker))
			break
		}
	}
	return cleaned
}

// tokenize lowercases and splits text into plain word tokens, trimming
// punctuation from the edges of each token.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		token := strings.Trim(field, ".,;:!?()[]{}\"'•–—*·>")
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// contentTokens filters stopwords out of the token stream.
func contentTokens(text string) []string {
	var tokens []string
	for _, token := range tokenize(text) {
		if !stopwords[token] {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// firstWord returns the first token of a bullet, lowercased and trimmed.
func firstWord(text string) string {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], ".,;:!?")
}

// fullText returns the best available plain-text rendering of the record.
func fullText(record *types.ResumeRecord) string {
	if record.RawText != "" {
		return record.RawText
	}
	var sb strings.Builder
	sb.WriteString(record.Contact.Summary)
	sb.WriteString("\n")
	sb.WriteString(record.ExperienceText())
	for _, edu := range record.Education {
		sb.WriteString("\n")
		sb.WriteString(edu.Degree)
		sb.WriteString(" ")
		sb.WriteString(edu.Institution)
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Join(record.Skills, " "))
	return sb.String()
}
