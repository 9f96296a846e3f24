package types

// PlatformResult is the simulated outcome for one ATS platform archetype.
type PlatformResult struct {
	Platform        string  `json:"platform"`
	PassProbability float64 `json:"pass_probability"`
	Rating          string  `json:"rating"`
	Issues          []Issue `json:"issues"`
}

// ATSSimulationResult aggregates per-platform simulations into a
// market-share-weighted compatibility score.
type ATSSimulationResult struct {
	Platforms       map[string]PlatformResult `json:"platforms"`
	OverallScore    float64                   `json:"overall_score"`
	PlatformsPassed int                       `json:"platforms_passed"`
}
