package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Formatting sub-budgets: page count 6, bullet structure 5, text density 5,
// file format 4.
const (
	pageCountPoints  = 6.0
	bulletPoints     = 5.0
	densityPoints    = 5.0
	fileFormatPoints = 4.0
)

// Words-per-page band considered parse-friendly.
const (
	wppIdealLo = 150
	wppIdealHi = 600
	wppLooseLo = 100
	wppLooseHi = 800
)

var atsSafeFormats = map[string]bool{
	"pdf":  true,
	"docx": true,
	"doc":  true,
}

// scoreFormatting grades document shape: page count, bullet usage, text
// density per page, and file format.
func scoreFormatting(record *types.ResumeRecord) types.ComponentScore {
	c := types.ComponentScore{Name: "formatting", MaxScore: formattingBudget}

	pages := record.Metadata.PageCount
	switch {
	case pages >= 1 && pages <= 2:
		c.Score += pageCountPoints
	case pages == 3:
		c.Score += pageCountPoints / 2
		c.Issues = append(c.Issues, types.Issue{
			Severity: types.SeverityWarning,
			Category: "page_count",
			Message:  "Resume runs to 3 pages; 1-2 is the expected range",
		})
	default:
		c.Issues = append(c.Issues, types.Issue{
			Severity: types.SeverityWarning,
			Category: "page_count",
			Message:  fmt.Sprintf("Page count %d falls outside the 1-2 page norm", pages),
		})
	}

	switch bullets := countBullets(record); {
	case bullets >= 5:
		c.Score += bulletPoints
	case bullets >= 2:
		c.Score += 3
	default:
		c.Issues = append(c.Issues, types.Issue{
			Severity: types.SeverityWarning,
			Category: "no_bullet_structure",
			Message:  "Experience is not written as bullet points",
			Fix:      "Break each role into 3-5 bulleted accomplishments",
		})
	}

	words := record.Metadata.WordCount
	switch {
	case pages <= 0 || words <= 0:
		// Unknown metadata is not the candidate's fault.
		c.Score += densityPoints / 2
	case words/pages >= wppIdealLo && words/pages <= wppIdealHi:
		c.Score += densityPoints
	case words/pages >= wppLooseLo && words/pages <= wppLooseHi:
		c.Score += 2
		c.Issues = append(c.Issues, types.Issue{
			Severity: types.SeveritySuggestion,
			Category: "text_density",
			Message:  fmt.Sprintf("%d words per page is outside the comfortable range", words/pages),
		})
	default:
		c.Issues = append(c.Issues, types.Issue{
			Severity: types.SeverityWarning,
			Category: "text_density",
			Message:  fmt.Sprintf("%d words per page suggests sparse or crammed formatting", words/pages),
		})
	}

	switch format := strings.ToLower(record.Metadata.FileFormat); {
	case format == "":
		c.Score += fileFormatPoints / 2
	case atsSafeFormats[format]:
		c.Score += fileFormatPoints
	default:
		c.Issues = append(c.Issues, types.Issue{
			Severity: types.SeverityWarning,
			Category: "risky_file_format",
			Message:  fmt.Sprintf("File format %q is unreliable in ATS parsers", format),
			Fix:      "Export as PDF or DOCX",
		})
	}

	return clampComponent(c)
}

// countBullets counts non-empty description lines across all roles.
func countBullets(record *types.ResumeRecord) int {
	count := 0
	for _, exp := range record.Experience {
		for _, line := range strings.Split(exp.Description, "\n") {
			if strings.TrimSpace(line) != "" {
				count++
			}
		}
	}
	return count
}
