package validation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestCheckPageCount(t *testing.T) {
	tests := []struct {
		pages    int
		severity string
	}{
		{pages: 0, severity: types.SeverityWarning},
		{pages: 1},
		{pages: 2},
		{pages: 3, severity: types.SeverityWarning},
		{pages: 4, severity: types.SeverityCritical},
		{pages: 7, severity: types.SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d pages", tt.pages), func(t *testing.T) {
			issues := checkPageCount(tt.pages)
			if tt.severity == "" {
				assert.Empty(t, issues)
				return
			}
			require.Len(t, issues, 1)
			assert.Equal(t, "page_count", issues[0].Category)
			assert.Equal(t, tt.severity, issues[0].Severity)
		})
	}
}

func TestCheckWordCount(t *testing.T) {
	tests := []struct {
		words    int
		severity string
	}{
		{words: 0},
		{words: 200, severity: types.SeverityCritical},
		{words: 350, severity: types.SeveritySuggestion},
		{words: 500},
		{words: 800},
		{words: 1000, severity: types.SeveritySuggestion},
		{words: 1500, severity: types.SeverityWarning},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d words", tt.words), func(t *testing.T) {
			issues := checkWordCount(tt.words)
			if tt.severity == "" {
				assert.Empty(t, issues)
				return
			}
			require.Len(t, issues, 1)
			assert.Equal(t, "word_count", issues[0].Category)
			assert.Equal(t, tt.severity, issues[0].Severity)
		})
	}
}

func TestCheckKeywordDensity(t *testing.T) {
	var filler []string
	for i := 0; i < 54; i++ {
		filler = append(filler, fmt.Sprintf("term%d", i))
	}

	stuffed := strings.Join(filler, " ") + strings.Repeat(" kubernetes", 6)
	issues := checkKeywordDensity(stuffed)
	require.Len(t, issues, 1)
	assert.Equal(t, "keyword_stuffing", issues[0].Category)
	assert.Equal(t, types.SeverityWarning, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "kubernetes")

	varied := strings.Join(filler, " ") + " kubernetes"
	assert.Empty(t, checkKeywordDensity(varied))

	// Under 50 content tokens the check stays silent.
	assert.Empty(t, checkKeywordDensity(strings.Repeat("kubernetes ", 20)))
}

func TestCheckSectionBalance(t *testing.T) {
	words := func(n int) string {
		return strings.TrimSpace(strings.Repeat("word ", n))
	}

	balanced := &types.ResumeRecord{
		Contact:    types.Contact{Summary: words(45)},
		Experience: []types.Experience{{Description: words(55)}},
	}
	assert.Empty(t, checkSectionBalance(balanced))

	thin := &types.ResumeRecord{
		Contact:    types.Contact{Summary: words(80)},
		Experience: []types.Experience{{Description: words(20)}},
	}
	issues := checkSectionBalance(thin)
	require.Len(t, issues, 1)
	assert.Equal(t, "section_balance", issues[0].Category)
	assert.Equal(t, types.SeverityWarning, issues[0].Severity)

	slightlyOff := &types.ResumeRecord{
		Contact:    types.Contact{Summary: words(55)},
		Experience: []types.Experience{{Description: words(45)}},
	}
	issues = checkSectionBalance(slightlyOff)
	require.Len(t, issues, 1)
	assert.Equal(t, types.SeveritySuggestion, issues[0].Severity)
}

func TestCheckATSRedFlags(t *testing.T) {
	sparse := &types.ResumeRecord{
		Metadata:   types.Metadata{PageCount: 2, WordCount: 200},
		Experience: []types.Experience{{Description: "x"}},
		Education:  []types.Education{{Degree: "BS"}},
		Skills:     []string{"Go"},
	}
	issues := checkATSRedFlags(sparse)
	require.Len(t, issues, 1)
	assert.Equal(t, "ats_red_flag", issues[0].Category)
	assert.Equal(t, types.SeverityWarning, issues[0].Severity)

	gutted := &types.ResumeRecord{
		Metadata: types.Metadata{PageCount: 1, WordCount: 400},
	}
	issues = checkATSRedFlags(gutted)
	require.Len(t, issues, 1)
	assert.Equal(t, types.SeverityCritical, issues[0].Severity)
}

func TestWordCountPrefersParserCount(t *testing.T) {
	record := &types.ResumeRecord{
		Metadata: types.Metadata{WordCount: 512},
		RawText:  "only three words",
	}
	assert.Equal(t, 512, wordCount(record))

	record.Metadata.WordCount = 0
	assert.Equal(t, 3, wordCount(record))
}
