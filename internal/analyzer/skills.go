package analyzer

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// SkillsResult reports keyword coverage split by requirement strength.
type SkillsResult struct {
	ID               string                     `json:"id"`
	Match            types.KeywordMatchResult   `json:"match"`
	Requirements     []types.KeywordRequirement `json:"requirements"`
	MissingRequired  []string                   `json:"missing_required"`
	MissingPreferred []string                   `json:"missing_preferred"`
}

// SkillsAnalysis matches role and job-description keywords against the
// resume and classifies each missing keyword as required or preferred based
// on how the job description phrases it.
func (a *Analyzer) SkillsAnalysis(req Request) (*SkillsResult, error) {
	if req.Record == nil {
		return nil, fmt.Errorf("resume record is required")
	}

	kws, err := a.resolveKeywords(req)
	if err != nil {
		return nil, err
	}
	if len(kws) == 0 {
		profile, _ := a.store.Lookup(req.Role, req.Level)
		kws = profile.Keywords
	}

	jobText, err := a.normalizedJobText(req)
	if err != nil {
		return nil, err
	}

	result := &SkillsResult{
		ID:               uuid.NewString(),
		Match:            a.matcher.MatchSummary(kws, matchText(req.Record)),
		MissingRequired:  []string{},
		MissingPreferred: []string{},
	}
	result.Requirements = a.matcher.ClassifyRequirements(jobText, kws)

	strength := make(map[string]string, len(result.Requirements))
	for _, requirement := range result.Requirements {
		strength[requirement.Keyword] = requirement.Requirement
	}
	for _, missing := range result.Match.Missing {
		if strength[missing] == "required" {
			result.MissingRequired = append(result.MissingRequired, missing)
		} else {
			result.MissingPreferred = append(result.MissingPreferred, missing)
		}
	}
	return result, nil
}
