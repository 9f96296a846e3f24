package types

// Match tiers for keyword matching. The thresholds are a step function
// modeling the hard pass bar real ATS vendors apply near 60%.
const (
	TierExcellent = "excellent"
	TierPartial   = "partial"
	TierMinimal   = "minimal"
	TierFail      = "fail"
)

// KeywordMatchResult summarizes keyword coverage of a text.
type KeywordMatchResult struct {
	Matched   []string `json:"matched"`
	Missing   []string `json:"missing"`
	MatchRate float64  `json:"match_rate"`
	Tier      string   `json:"tier"`
}

// KeywordRequirement classifies a job-description keyword as required or
// preferred, with the occurrence count that informed the decision.
type KeywordRequirement struct {
	Keyword     string `json:"keyword"`
	Requirement string `json:"requirement"` // "required" or "preferred"
	Occurrences int    `json:"occurrences"`
}
