package validation

import (
	"context"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/grammar"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxGrammarIssuesPerKind bounds output size per grammar category.
const maxGrammarIssuesPerKind = 10

// checkGrammar delegates to the external grammar collaborator. A nil or
// failing checker yields no issues; this category never aborts an evaluation.
func checkGrammar(ctx context.Context, checker grammar.Checker, record *types.ResumeRecord) []types.Issue {
	if checker == nil {
		return nil
	}

	text := strings.TrimSpace(record.Contact.Summary + "\n" + record.ExperienceText())
	if text == "" {
		return nil
	}

	errs, err := checker.Check(ctx, text)
	if err != nil {
		return nil
	}

	counts := map[string]int{}
	var issues []types.Issue
	for _, gerr := range errs {
		kind := gerr.Kind
		switch kind {
		case grammar.KindTypo, grammar.KindGrammar, grammar.KindCapitalization:
		default:
			kind = grammar.KindGrammar
		}
		if counts[kind] >= maxGrammarIssuesPerKind {
			continue
		}
		counts[kind]++

		severity := types.SeverityWarning
		if kind == grammar.KindCapitalization {
			severity = types.SeveritySuggestion
		}
		issue := types.Issue{
			Severity: severity,
			Category: kind,
			Message:  gerr.Message,
		}
		if gerr.Snippet != "" {
			issue.Message += ": \"" + gerr.Snippet + "\""
		}
		issues = append(issues, issue)
	}
	return issues
}
