package types

// ComponentScore is the result of one scoring component. Score never
// exceeds MaxScore; the engine clamps before returning.
type ComponentScore struct {
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	MaxScore float64 `json:"max_score"`
	Issues   []Issue `json:"issues"`
}

// ScoreBreakdown is the full scoring result. Component max scores sum to
// exactly 100, so the overall score is inherently bounded.
type ScoreBreakdown struct {
	Components []ComponentScore `json:"components"`
}

// Overall sums the component scores into the 0-100 headline number.
func (b ScoreBreakdown) Overall() float64 {
	total := 0.0
	for _, c := range b.Components {
		total += c.Score
	}
	return total
}

// MaxTotal sums the declared component budgets.
func (b ScoreBreakdown) MaxTotal() float64 {
	total := 0.0
	for _, c := range b.Components {
		total += c.MaxScore
	}
	return total
}

// AllIssues flattens the per-component issue lists in component order.
func (b ScoreBreakdown) AllIssues() []Issue {
	var issues []Issue
	for _, c := range b.Components {
		issues = append(issues, c.Issues...)
	}
	return issues
}
