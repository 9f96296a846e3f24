// Package scoring aggregates six fixed-budget components into the headline
// 0-100 score. Every sub-metric is a threshold ladder rather than a
// continuous function, which keeps scores comparable across resumes and
// mirrors how ATS vendors apply discrete pass gates.
package scoring

import (
	"time"

	"github.com/jonathan/resume-analyzer/internal/keywords"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Component point budgets. They sum to exactly 100, so the overall score is
// bounded without normalization.
const (
	contactBudget    = 10.0
	formattingBudget = 20.0
	qualityBudget    = 25.0
	keywordBudget    = 15.0
	lengthBudget     = 10.0
	roleFitBudget    = 20.0
)

// Engine scores resumes against an injected taxonomy profile. The engine is
// stateless and role-agnostic; all role awareness flows in through the
// profile argument.
type Engine struct {
	matcher *keywords.Matcher
}

// NewEngine builds a scoring engine. matcher may be nil.
func NewEngine(matcher *keywords.Matcher) *Engine {
	if matcher == nil {
		matcher = keywords.NewMatcher()
	}
	return &Engine{matcher: matcher}
}

// Score runs every component and returns the full breakdown. jobKeywords may
// be empty, in which case the keyword component falls back to the profile's
// role keywords.
func (e *Engine) Score(record *types.ResumeRecord, profile taxonomy.Profile, jobKeywords []string, now time.Time) types.ScoreBreakdown {
	kws := jobKeywords
	if len(kws) == 0 {
		kws = profile.Keywords
	}

	return types.ScoreBreakdown{Components: []types.ComponentScore{
		scoreContact(record),
		scoreFormatting(record),
		scoreContentQuality(record, profile),
		e.scoreKeywordMatch(record, kws),
		scoreLengthDensity(record),
		e.scoreRoleFit(record, profile, now),
	}}
}

// clampComponent guards against a component exceeding its declared budget.
func clampComponent(c types.ComponentScore) types.ComponentScore {
	if c.Score > c.MaxScore {
		c.Score = c.MaxScore
	}
	if c.Score < 0 {
		c.Score = 0
	}
	return c
}
