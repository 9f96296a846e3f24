// Package analyzer orchestrates the evaluation pipeline: validation,
// scoring, ATS simulation, keyword matching, and confidence estimation run
// over one immutable ResumeRecord and merge into a single result.
package analyzer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/confidence"
	"github.com/jonathan/resume-analyzer/internal/grammar"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/keywords"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/simulator"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/jonathan/resume-analyzer/internal/validation"
)

// Request carries one evaluation's inputs. Record is required; everything
// else is optional.
type Request struct {
	Record         *types.ResumeRecord
	Role           string
	Level          string
	JobDescription string   // plain text or HTML
	Keywords       []string // explicit keywords override JD extraction
}

// ComprehensiveResult is the merged output of a full evaluation.
type ComprehensiveResult struct {
	ID           string                    `json:"id"`
	Role         string                    `json:"role"`
	Level        string                    `json:"level"`
	OverallScore float64                   `json:"overall_score"`
	Breakdown    types.ScoreBreakdown      `json:"breakdown"`
	Issues       types.IssueBuckets        `json:"issues"`
	Keywords     types.KeywordMatchResult  `json:"keywords"`
	Simulation   types.ATSSimulationResult `json:"simulation"`
	Confidence   types.ConfidenceInterval  `json:"confidence"`
	GeneratedAt  time.Time                 `json:"generated_at"`
}

// Analyzer wires the evaluation components together. All fields are safe for
// concurrent use; one Analyzer serves every request.
type Analyzer struct {
	store     *taxonomy.Store
	validator *validation.Engine
	scorer    *scoring.Engine
	matcher   *keywords.Matcher
	sim       *simulator.Simulator
	logger    *zap.Logger
}

// New builds an Analyzer. store and checker may be nil; logger may be nil
// for a no-op logger.
func New(store *taxonomy.Store, checker grammar.Checker, logger *zap.Logger) *Analyzer {
	if store == nil {
		store = taxonomy.NewStore()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	matcher := keywords.NewMatcher()
	return &Analyzer{
		store:     store,
		validator: validation.NewEngine(store, checker),
		scorer:    scoring.NewEngine(matcher),
		matcher:   matcher,
		sim:       simulator.New(),
		logger:    logger,
	}
}

// ComprehensiveAnalysis runs every component concurrently over the record
// and merges the results.
func (a *Analyzer) ComprehensiveAnalysis(ctx context.Context, req Request) (*ComprehensiveResult, error) {
	if req.Record == nil {
		return nil, fmt.Errorf("resume record is required")
	}
	start := time.Now()

	kws, err := a.resolveKeywords(req)
	if err != nil {
		return nil, err
	}
	profile, _ := a.store.Lookup(req.Role, req.Level)
	now := time.Now()

	var (
		issues     []types.Issue
		breakdown  types.ScoreBreakdown
		simulation types.ATSSimulationResult
		matched    types.KeywordMatchResult
	)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		issues = a.validator.EvaluateAt(gctx, req.Record, req.Role, req.Level, now)
		return nil
	})
	group.Go(func() error {
		breakdown = a.scorer.Score(req.Record, profile, kws, now)
		return nil
	})
	group.Go(func() error {
		simulation = a.sim.Simulate(req.Record)
		return nil
	})
	group.Go(func() error {
		matched = a.matcher.MatchSummary(kws, matchText(req.Record))
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	overall := breakdown.Overall()
	result := &ComprehensiveResult{
		ID:           uuid.NewString(),
		Role:         profile.Role,
		Level:        profile.Level,
		OverallScore: overall,
		Breakdown:    breakdown,
		Issues:       types.BucketIssues(issues),
		Keywords:     matched,
		Simulation:   simulation,
		Confidence: confidence.Estimate(overall, evidenceCount(req.Record),
			confidence.MeasurementScore, confidence.DefaultLevel),
		GeneratedAt: now,
	}

	a.logger.Info("comprehensive analysis complete",
		zap.String("id", result.ID),
		zap.String("role", result.Role),
		zap.Float64("overall_score", overall),
		zap.Int("issues", result.Issues.Total()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}

// resolveKeywords picks explicit keywords, else extracts them from the job
// description, else falls back to the empty list (the scorer substitutes the
// role profile).
func (a *Analyzer) resolveKeywords(req Request) ([]string, error) {
	if len(req.Keywords) > 0 {
		return req.Keywords, nil
	}
	if req.JobDescription == "" {
		return nil, nil
	}
	text, err := ingestion.Normalize(req.JobDescription)
	if err != nil {
		return nil, err
	}
	kws := ingestion.ExtractKeywords(text, 0)
	a.logger.Debug("keywords extracted from job description",
		zap.Strings("keywords", kws),
		zap.String("job_text_preview", logger.TruncateForLog(text, 160)))
	return kws, nil
}

// normalizedJobText returns the cleaned job description, or "".
func (a *Analyzer) normalizedJobText(req Request) (string, error) {
	if req.JobDescription == "" {
		return "", nil
	}
	return ingestion.Normalize(req.JobDescription)
}

// matchText is the resume text keywords are matched against.
func matchText(record *types.ResumeRecord) string {
	if record.RawText != "" {
		return record.RawText
	}
	return strings.Join([]string{
		record.Contact.Summary,
		record.ExperienceText(),
		strings.Join(record.Skills, " "),
	}, "\n")
}

// evidenceCount sizes the statistical sample behind a score: distinct data
// points the rules actually inspected.
func evidenceCount(record *types.ResumeRecord) int {
	count := len(validation.BulletLines(record)) +
		len(record.Experience) + len(record.Education) + len(record.Skills)
	for _, field := range []string{
		record.Contact.Email, record.Contact.Phone,
		record.Contact.Location, record.Contact.LinkedIn, record.Contact.Summary,
	} {
		if field != "" {
			count++
		}
	}
	if count == 0 {
		count = 1
	}
	return count
}

// ScoreSample is one standalone confidence-interval request entry.
type ScoreSample struct {
	Score       float64 `json:"score"`
	SampleSize  int     `json:"sample_size"`
	Measurement string  `json:"measurement_type,omitempty"`
}

// ConfidenceBatch computes intervals for a map of named score samples.
func ConfidenceBatch(samples map[string]ScoreSample, level float64) map[string]types.ConfidenceInterval {
	out := make(map[string]types.ConfidenceInterval, len(samples))
	for name, sample := range samples {
		measurement := sample.Measurement
		if measurement == "" {
			measurement = confidence.MeasurementScore
		}
		out[name] = confidence.Estimate(sample.Score, sample.SampleSize, measurement, level)
	}
	return out
}
