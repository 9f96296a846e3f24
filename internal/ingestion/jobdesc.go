// Package ingestion turns raw job-description input, pasted text or HTML,
// into normalized plain text plus a keyword list for skills analysis.
package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// htmlHints are markers that identify markup without a full parse.
var htmlHints = []string{"<html", "<body", "<div", "<p>", "<p ", "<ul", "<li", "<br", "<span", "<!doctype"}

// Normalize accepts pasted text or an HTML page and returns clean plain
// text. HTML is detected heuristically; non-HTML input passes through text
// cleanup only.
func Normalize(input string) (string, error) {
	if LooksLikeHTML(input) {
		text, err := htmlToText(input)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from HTML: %w", err)
		}
		return CleanText(text), nil
	}
	return CleanText(input), nil
}

// LooksLikeHTML reports whether the input appears to be markup rather than
// plain text.
func LooksLikeHTML(input string) bool {
	lower := strings.ToLower(input)
	for _, hint := range htmlHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

// htmlToText parses markup and extracts visible text. Script, style, and
// noscript subtrees are removed; block elements become line breaks.
func htmlToText(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript").Remove()

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	var sb strings.Builder
	root.Find("h1, h2, h3, h4, h5, h6, p, li, td, th, div, section, article").Each(func(_ int, s *goquery.Selection) {
		// Only leaf-ish nodes; containers repeat their children's text.
		if s.Children().Filter("p, li, div, section, article, ul, ol, table").Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	})

	if sb.Len() == 0 {
		return strings.TrimSpace(root.Text()), nil
	}
	return sb.String(), nil
}
