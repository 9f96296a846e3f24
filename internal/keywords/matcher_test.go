package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestMatch_WholeWord(t *testing.T) {
	m := NewMatcher()

	assert.True(t, m.Match("python", "Built pipelines in Python and Go"))
	assert.False(t, m.Match("java", "Wrote javascript services"))
	assert.True(t, m.Match("go", "Services written in Go."))
}

func TestMatch_SymbolKeywords(t *testing.T) {
	m := NewMatcher()

	assert.True(t, m.Match("c++", "Ten years of C++ experience"))
	assert.True(t, m.Match("ci/cd", "Owned the CI/CD pipeline"))
	assert.False(t, m.Match("c++", "Knows C and Java"))
}

func TestMatch_SynonymExpansion(t *testing.T) {
	m := NewMatcher()

	// Acronym in the resume matches the expanded keyword, and vice versa.
	assert.True(t, m.Match("kubernetes", "Deployed workloads on k8s clusters"))
	assert.True(t, m.Match("k8s", "Ran services on Kubernetes"))
	assert.True(t, m.Match("amazon web services", "Certified in AWS"))
}

func TestMatchSummary_AllMatched(t *testing.T) {
	m := NewMatcher()
	text := "Senior engineer: Python, Django, Docker, PostgreSQL, and Git daily."

	result := m.MatchSummary([]string{"Python", "Django", "Docker", "PostgreSQL", "Git"}, text)

	assert.InDelta(t, 100.0, result.MatchRate, 0.001)
	assert.Equal(t, types.TierExcellent, result.Tier)
	assert.Len(t, result.Matched, 5)
	assert.Empty(t, result.Missing)
}

func TestMatchSummary_TierLadder(t *testing.T) {
	tests := []struct {
		rate float64
		tier string
	}{
		{100, types.TierExcellent},
		{60, types.TierExcellent},
		{59.9, types.TierPartial},
		{40, types.TierPartial},
		{25, types.TierMinimal},
		{24.9, types.TierFail},
		{0, types.TierFail},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.tier, TierForRate(tt.rate), "rate %.1f", tt.rate)
	}
}

func TestMatchSummary_MonotonicInMatches(t *testing.T) {
	m := NewMatcher()
	kws := []string{"python", "django", "docker", "postgresql", "git"}

	// Growing the resume text can only add matches, never remove them.
	texts := []string{
		"",
		"python",
		"python django",
		"python django docker",
		"python django docker postgresql git",
	}
	prev := -1.0
	for _, text := range texts {
		rate := m.MatchSummary(kws, text).MatchRate
		assert.GreaterOrEqual(t, rate, prev)
		prev = rate
	}
}

func TestMatchSummary_NoKeywords(t *testing.T) {
	m := NewMatcher()

	result := m.MatchSummary(nil, "anything")

	assert.Equal(t, 0.0, result.MatchRate)
	assert.Equal(t, types.TierFail, result.Tier)
}

func TestClassifyRequirements_CuePhrases(t *testing.T) {
	m := NewMatcher()
	jobText := "Required skills: Python and SQL. Nice to have: Terraform experience."

	reqs := m.ClassifyRequirements(jobText, []string{"Python", "Terraform"})

	byKeyword := map[string]string{}
	for _, r := range reqs {
		byKeyword[r.Keyword] = r.Requirement
	}
	assert.Equal(t, "required", byKeyword["Python"])
	assert.Equal(t, "preferred", byKeyword["Terraform"])
}

func TestClassifyRequirements_NearestCueWins(t *testing.T) {
	m := NewMatcher()
	jobText := "Required background welcome. Preferred: Kafka streaming."

	reqs := m.ClassifyRequirements(jobText, []string{"Kafka"})

	assert.Equal(t, "preferred", reqs[0].Requirement)
}

func TestClassifyRequirements_FrequencyFallback(t *testing.T) {
	m := NewMatcher()
	jobText := "We use Go everywhere. Go services, Go tooling. Some Ruby too."

	reqs := m.ClassifyRequirements(jobText, []string{"Go", "Ruby"})

	byKeyword := map[string]types.KeywordRequirement{}
	for _, r := range reqs {
		byKeyword[r.Keyword] = r
	}
	assert.Equal(t, "required", byKeyword["Go"].Requirement)
	assert.Equal(t, 3, byKeyword["Go"].Occurrences)
	assert.Equal(t, "preferred", byKeyword["Ruby"].Requirement)
}
