package types

// Severity levels for validation issues, ordered from most to least severe.
const (
	SeverityCritical   = "critical"
	SeverityWarning    = "warning"
	SeveritySuggestion = "suggestion"
	SeverityInfo       = "info"
)

// Issue represents a single finding from the validation engine.
// Issues are pure value objects and are never mutated after creation.
type Issue struct {
	Severity string `json:"severity"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Fix      string `json:"fix,omitempty"`
}

// IssueBuckets groups issues by severity for the API response shape.
type IssueBuckets struct {
	Critical    []Issue `json:"critical"`
	Warnings    []Issue `json:"warnings"`
	Suggestions []Issue `json:"suggestions"`
	Info        []Issue `json:"info"`
}

// BucketIssues splits a flat issue list into severity buckets.
// Unknown severities are treated as informational rather than dropped.
func BucketIssues(issues []Issue) IssueBuckets {
	buckets := IssueBuckets{
		Critical:    []Issue{},
		Warnings:    []Issue{},
		Suggestions: []Issue{},
		Info:        []Issue{},
	}
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityCritical:
			buckets.Critical = append(buckets.Critical, issue)
		case SeverityWarning:
			buckets.Warnings = append(buckets.Warnings, issue)
		case SeveritySuggestion:
			buckets.Suggestions = append(buckets.Suggestions, issue)
		default:
			buckets.Info = append(buckets.Info, issue)
		}
	}
	return buckets
}

// Total returns the number of issues across all buckets.
func (b IssueBuckets) Total() int {
	return len(b.Critical) + len(b.Warnings) + len(b.Suggestions) + len(b.Info)
}
