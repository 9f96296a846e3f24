package keywords

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// cueWindow is how far back (in bytes) to look for a requirement cue before
// each keyword occurrence.
const cueWindow = 120

// requiredFrequency is the occurrence count at which an uncued keyword is
// treated as required.
const requiredFrequency = 3

var requiredCues = []string{
	"required", "must have", "must-have", "essential", "minimum qualifications",
}

var preferredCues = []string{
	"preferred", "nice to have", "nice-to-have", "bonus", "a plus", "desirable",
}

// ClassifyRequirements decides whether each keyword extracted from a job
// description is required or preferred. For each occurrence the window of
// text immediately preceding it is scanned for cue phrases and the textually
// nearest cue wins; with no cue anywhere, frequency >= 3 means required.
func (m *Matcher) ClassifyRequirements(jobText string, kws []string) []types.KeywordRequirement {
	textLower := strings.ToLower(jobText)
	results := make([]types.KeywordRequirement, 0, len(kws))

	for _, keyword := range kws {
		kw := strings.ToLower(strings.TrimSpace(keyword))
		if kw == "" {
			continue
		}

		occurrences := wholeWordOccurrences(textLower, kw)
		requirement := ""
		for _, pos := range occurrences {
			if cue := nearestCue(textLower, pos); cue != "" {
				requirement = cue
				break
			}
		}
		if requirement == "" {
			if len(occurrences) >= requiredFrequency {
				requirement = "required"
			} else {
				requirement = "preferred"
			}
		}

		results = append(results, types.KeywordRequirement{
			Keyword:     keyword,
			Requirement: requirement,
			Occurrences: len(occurrences),
		})
	}
	return results
}

// wholeWordOccurrences returns the start index of every whole-word occurrence.
func wholeWordOccurrences(text, word string) []int {
	var positions []int
	start := 0
	for {
		idx := nextWholeWord(text, word, start)
		if idx < 0 {
			return positions
		}
		positions = append(positions, idx)
		start = idx + 1
	}
}

// nearestCue scans the window before pos and returns "required" or
// "preferred" for the cue ending closest to pos, or "" when no cue appears.
func nearestCue(text string, pos int) string {
	windowStart := pos - cueWindow
	if windowStart < 0 {
		windowStart = 0
	}
	window := text[windowStart:pos]

	bestType := ""
	bestDistance := -1
	scan := func(cues []string, cueType string) {
		for _, cue := range cues {
			idx := strings.LastIndex(window, cue)
			if idx < 0 {
				continue
			}
			distance := len(window) - (idx + len(cue))
			if bestDistance < 0 || distance < bestDistance {
				bestDistance = distance
				bestType = cueType
			}
		}
	}
	scan(requiredCues, "required")
	scan(preferredCues, "preferred")
	return bestType
}
