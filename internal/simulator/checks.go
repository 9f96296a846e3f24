package simulator

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Structural check ids. Each maps to a per-platform deduction weight.
const (
	CheckTables         = "tables"
	CheckTextBoxes      = "text_boxes"
	CheckHeadersFooters = "headers_footers"
	CheckMultiColumn    = "multi_column"
	CheckSpecialChars   = "special_characters"
	CheckParseQuality   = "low_parse_quality"
	CheckMissingContact = "missing_contact_info"
)

const (
	// nonASCIIThreshold is the fraction of non-ASCII runes above which the
	// document is flagged as decoration-heavy.
	nonASCIIThreshold = 0.05
	// minWordsPerPage below which extraction quality is considered poor.
	minWordsPerPage = 120
	// columnarLineThreshold is the fraction of lines with wide internal gaps
	// that indicates a multi-column layout.
	columnarLineThreshold = 0.25
)

var (
	headerFooterRe = regexp.MustCompile(`(?i)\bpage\s+\d+(\s+of\s+\d+)?\b`)
	columnGapRe    = regexp.MustCompile(`\S\s{4,}\S`)
)

// detection holds one triggered structural problem before platform-specific
// weighting is applied.
type detection struct {
	check   string
	message string
	fix     string
}

// detectStructuralIssues runs every structural check against the record.
// The returned order is fixed so simulation output is deterministic.
func detectStructuralIssues(record *types.ResumeRecord) []detection {
	var found []detection
	text := record.RawText

	if hasTableMarkers(text) {
		found = append(found, detection{
			check:   CheckTables,
			message: "Table layouts detected; most ATS parsers read tables out of order or drop them entirely",
			fix:     "Replace tables with plain left-aligned text",
		})
	}
	if hasTextBoxMarkers(text) {
		found = append(found, detection{
			check:   CheckTextBoxes,
			message: "Text box or shape artifacts detected; content inside shapes is invisible to many parsers",
			fix:     "Move content out of text boxes into the document body",
		})
	}
	if headerFooterRe.MatchString(text) {
		found = append(found, detection{
			check:   CheckHeadersFooters,
			message: "Header/footer content detected; several ATS platforms skip headers and footers during extraction",
			fix:     "Keep contact details in the document body, not the header",
		})
	}
	if hasColumnarLayout(text) {
		found = append(found, detection{
			check:   CheckMultiColumn,
			message: "Multi-column layout detected; column text is often interleaved when parsed",
			fix:     "Use a single-column layout",
		})
	}
	if nonASCIIDensity(text) > nonASCIIThreshold {
		found = append(found, detection{
			check:   CheckSpecialChars,
			message: "High density of special characters; decorative glyphs confuse older parsers",
			fix:     "Replace decorative symbols with plain ASCII punctuation",
		})
	}
	if lowParseQuality(record) {
		found = append(found, detection{
			check:   CheckParseQuality,
			message: "Very little text extracted per page, which suggests image-based or poorly parsed content",
			fix:     "Export the resume as a text-based PDF rather than a scan",
		})
	}
	if record.Contact.Email == "" || record.Contact.Phone == "" {
		found = append(found, detection{
			check:   CheckMissingContact,
			message: "Missing email or phone; ATS platforms auto-reject profiles they cannot contact",
			fix:     "Add an email address and phone number near the top",
		})
	}

	return found
}

// hasTableMarkers flags Markdown-style or pipe-delimited table rows.
func hasTableMarkers(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if strings.Count(line, "|") >= 2 {
			return true
		}
	}
	return false
}

// hasTextBoxMarkers flags box-drawing characters left behind when shapes and
// text boxes are flattened to text.
func hasTextBoxMarkers(text string) bool {
	for _, r := range text {
		if r >= 0x2500 && r <= 0x257F {
			return true
		}
	}
	return false
}

// hasColumnarLayout flags documents where a large share of lines contain wide
// internal whitespace gaps, the signature of side-by-side columns.
func hasColumnarLayout(text string) bool {
	lines := strings.Split(text, "\n")
	total, gapped := 0, 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		total++
		if columnGapRe.MatchString(line) {
			gapped++
		}
	}
	if total < 4 {
		return false
	}
	return float64(gapped)/float64(total) > columnarLineThreshold
}

func nonASCIIDensity(text string) float64 {
	if text == "" {
		return 0
	}
	total, high := 0, 0
	for _, r := range text {
		total++
		if r > 127 {
			high++
		}
	}
	return float64(high) / float64(total)
}

func lowParseQuality(record *types.ResumeRecord) bool {
	pages := record.Metadata.PageCount
	if pages < 1 {
		pages = 1
	}
	words := record.Metadata.WordCount
	if words == 0 {
		words = len(strings.Fields(record.RawText))
	}
	if words == 0 {
		return true
	}
	return words/pages < minWordsPerPage
}
