// Package grammar defines the narrow contract to the external grammar
// collaborator and a Gemini-backed implementation of it. The validation
// engine treats the checker as optional: a missing or failed checker simply
// contributes no grammar issues.
package grammar

import "context"

// Error kinds a checker may report. Anything else is remapped to kind
// "grammar" by the consumer.
const (
	KindTypo           = "typo"
	KindGrammar        = "grammar"
	KindCapitalization = "capitalization"
)

// Error is a single finding from the grammar collaborator.
type Error struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Snippet string `json:"snippet,omitempty"`
}

// Checker is the contract to the grammar collaborator.
type Checker interface {
	// Check analyzes text and returns the grammar errors found. An error
	// return means the collaborator is unavailable, not that the text is bad.
	Check(ctx context.Context, text string) ([]Error, error)
}
