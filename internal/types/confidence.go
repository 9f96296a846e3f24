package types

// ConfidenceInterval wraps a point score with statistical bounds.
// Invariant: Lower <= Score <= Upper and both bounds are within [0,100].
type ConfidenceInterval struct {
	Score           float64 `json:"score"`
	Lower           float64 `json:"lower"`
	Upper           float64 `json:"upper"`
	ConfidenceLevel float64 `json:"confidence_level"`
	MarginOfError   float64 `json:"margin_of_error"`
	Reliability     string  `json:"reliability_rating"`
}
