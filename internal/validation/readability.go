package validation

import (
	"regexp"
	"strings"
)

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// countSyllables approximates syllables as vowel groups with a silent-e
// adjustment. Every word counts at least one syllable.
func countSyllables(word string) int {
	word = strings.ToLower(strings.Trim(word, ".,;:!?()\"'"))
	if word == "" {
		return 0
	}

	count := 0
	inVowelGroup := false
	for _, r := range word {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !inVowelGroup {
			count++
		}
		inVowelGroup = isVowel
	}

	// Trailing silent e: "code" is one syllable, not two.
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// splitSentences splits on terminal punctuation and drops fragments shorter
// than three words.
func splitSentences(text string) []string {
	var sentences []string
	for _, part := range sentenceSplitRe.Split(text, -1) {
		part = strings.TrimSpace(part)
		if len(strings.Fields(part)) >= 3 {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

// fleschKincaidGrade computes the grade-level readability of text.
// Returns 0 when there is not enough text to measure.
func fleschKincaidGrade(text string) float64 {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return 0
	}

	words := 0
	syllables := 0
	for _, sentence := range sentences {
		for _, word := range strings.Fields(sentence) {
			words++
			syllables += countSyllables(word)
		}
	}
	if words == 0 {
		return 0
	}

	grade := 0.39*(float64(words)/float64(len(sentences))) +
		11.8*(float64(syllables)/float64(words)) - 15.59
	if grade < 0 {
		grade = 0
	}
	return grade
}
