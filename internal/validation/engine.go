package validation

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/grammar"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Engine applies every rule category to a resume record. The engine itself
// is stateless; the taxonomy store and grammar checker are injected at
// construction and shared safely across concurrent requests.
type Engine struct {
	store   *taxonomy.Store
	checker grammar.Checker
}

// NewEngine builds an Engine. checker may be nil, in which case the
// grammar/writing category yields no issues.
func NewEngine(store *taxonomy.Store, checker grammar.Checker) *Engine {
	if store == nil {
		store = taxonomy.NewStore()
	}
	return &Engine{store: store, checker: checker}
}

// Evaluate runs all rule categories against the record at the current
// instant.
func (e *Engine) Evaluate(ctx context.Context, record *types.ResumeRecord, role, level string) []types.Issue {
	return e.EvaluateAt(ctx, record, role, level, time.Now())
}

// EvaluateAt is Evaluate with an explicit evaluation instant, which also
// pins "present" dates during tests.
//
// Categories run concurrently; each writes into its own slot so the final
// concatenation order is deterministic and evaluation is idempotent.
func (e *Engine) EvaluateAt(ctx context.Context, record *types.ResumeRecord, role, level string, now time.Time) []types.Issue {
	profile, exact := e.store.Lookup(role, level)

	var issues []types.Issue
	if !exact && (role != "" || level != "") {
		issues = append(issues, types.Issue{
			Severity: types.SeverityInfo,
			Category: "role_fallback",
			Message:  fmt.Sprintf("Unknown role/level %q/%q; evaluated against the generic profile", role, level),
		})
	}

	categories := []func() []types.Issue{
		func() []types.Issue { return CheckEmploymentHistory(record, now) },
		func() []types.Issue { return CheckExperienceAlignment(record, profile.Level, now) },
		func() []types.Issue { return CheckContentDepth(record) },
		func() []types.Issue { return CheckSectionCompleteness(record, now) },
		func() []types.Issue { return CheckProfessionalStandards(record) },
		func() []types.Issue { return checkGrammar(ctx, e.checker, record) },
		func() []types.Issue { return CheckDocumentMetadata(record) },
		func() []types.Issue { return CheckContentAnalysis(record, profile) },
	}

	results := make([][]types.Issue, len(categories))
	group, _ := errgroup.WithContext(ctx)
	for i, category := range categories {
		group.Go(func() error {
			results[i] = category()
			return nil
		})
	}
	// Category functions never return errors; a failed collaborator simply
	// contributes no issues.
	_ = group.Wait()

	for _, result := range results {
		issues = append(issues, result...)
	}
	return issues
}

// Profile resolves the taxonomy profile the engine would evaluate against.
func (e *Engine) Profile(role, level string) (taxonomy.Profile, bool) {
	return e.store.Lookup(role, level)
}
