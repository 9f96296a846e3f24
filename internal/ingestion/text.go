package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpaceRe = regexp.MustCompile(`\s+`)
	blankRunRe   = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes pasted job-description text while preserving its line
// structure: line endings are unified, trailing whitespace dropped, runs of
// spaces collapsed, and blank-line runs reduced to at most one blank line.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRunRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine collapses interior whitespace but keeps bullet markers and their
// indentation, which downstream cue scanning relies on.
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}

	indent := len(line) - len(strings.TrimLeft(line, " \t"))
	content := multiSpaceRe.ReplaceAllString(trimmed, " ")
	if indent > 0 && isBulletLine(trimmed) {
		return strings.Repeat(" ", indent) + content
	}
	return content
}

func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") ||
		strings.HasPrefix(line, "• ") || strings.HasPrefix(line, "· ")
}
