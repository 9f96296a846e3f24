// Package simulator approximates how three ATS platform archetypes would
// parse a resume: a strict legacy system, a moderate mainstream one, and a
// lenient modern one. Each platform starts at a pass probability of 100 and
// subtracts a fixed deduction per detected structural issue.
package simulator

import (
	"fmt"
	"sort"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Supported platform ids.
const (
	PlatformTaleo      = "taleo"
	PlatformWorkday    = "workday"
	PlatformGreenhouse = "greenhouse"
)

// PassBar is the pass probability an archetype must clear to count as passed.
const PassBar = 70.0

// otherPlatformsScore is the fixed assumed score for the unmodeled share of
// the ATS market.
const otherPlatformsScore = 75.0

// deduction is one platform's penalty and reported severity for a check.
type deduction struct {
	points   float64
	severity string
}

// platformProfile describes one ATS archetype.
type platformProfile struct {
	name        string
	marketShare float64
	deductions  map[string]deduction
}

// profiles defines the three archetypes. Taleo models strict legacy parsing,
// Workday a moderate mainstream parser, Greenhouse a lenient modern one. The
// remaining market share is covered by the fixed "other" score.
var profiles = map[string]platformProfile{
	PlatformTaleo: {
		name:        PlatformTaleo,
		marketShare: 0.23,
		deductions: map[string]deduction{
			CheckTables:         {points: 25, severity: types.SeverityCritical},
			CheckTextBoxes:      {points: 20, severity: types.SeverityCritical},
			CheckHeadersFooters: {points: 15, severity: types.SeverityWarning},
			CheckMultiColumn:    {points: 20, severity: types.SeverityCritical},
			CheckSpecialChars:   {points: 10, severity: types.SeverityWarning},
			CheckParseQuality:   {points: 15, severity: types.SeverityWarning},
			CheckMissingContact: {points: 15, severity: types.SeverityCritical},
		},
	},
	PlatformWorkday: {
		name:        PlatformWorkday,
		marketShare: 0.38,
		deductions: map[string]deduction{
			CheckTables:         {points: 15, severity: types.SeverityWarning},
			CheckTextBoxes:      {points: 12, severity: types.SeverityWarning},
			CheckHeadersFooters: {points: 8, severity: types.SeverityWarning},
			CheckMultiColumn:    {points: 12, severity: types.SeverityWarning},
			CheckSpecialChars:   {points: 6, severity: types.SeveritySuggestion},
			CheckParseQuality:   {points: 10, severity: types.SeverityWarning},
			CheckMissingContact: {points: 12, severity: types.SeverityCritical},
		},
	},
	PlatformGreenhouse: {
		name:        PlatformGreenhouse,
		marketShare: 0.19,
		deductions: map[string]deduction{
			CheckTables:         {points: 8, severity: types.SeverityWarning},
			CheckTextBoxes:      {points: 6, severity: types.SeveritySuggestion},
			CheckHeadersFooters: {points: 4, severity: types.SeveritySuggestion},
			CheckMultiColumn:    {points: 6, severity: types.SeveritySuggestion},
			CheckSpecialChars:   {points: 3, severity: types.SeveritySuggestion},
			CheckParseQuality:   {points: 5, severity: types.SeverityWarning},
			CheckMissingContact: {points: 10, severity: types.SeverityCritical},
		},
	},
}

// Simulator runs ATS platform simulations. It is stateless and safe for
// concurrent use.
type Simulator struct{}

// New returns a Simulator.
func New() *Simulator {
	return &Simulator{}
}

// Platforms lists the supported platform ids in a stable order.
func Platforms() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SimulatePlatform scores one platform. Unknown platform ids are an error so
// the API layer can reject them with a 400.
func (s *Simulator) SimulatePlatform(platform string, record *types.ResumeRecord) (types.PlatformResult, error) {
	profile, ok := profiles[platform]
	if !ok {
		return types.PlatformResult{}, fmt.Errorf("unknown ATS platform: %s", platform)
	}
	return s.run(profile, detectStructuralIssues(record)), nil
}

// Simulate scores all platforms and folds them into the market-share-weighted
// overall compatibility score.
func (s *Simulator) Simulate(record *types.ResumeRecord) types.ATSSimulationResult {
	detections := detectStructuralIssues(record)

	result := types.ATSSimulationResult{
		Platforms: make(map[string]types.PlatformResult, len(profiles)),
	}

	weighted := 0.0
	modeledShare := 0.0
	for _, name := range Platforms() {
		profile := profiles[name]
		platformResult := s.run(profile, detections)
		result.Platforms[name] = platformResult
		weighted += platformResult.PassProbability * profile.marketShare
		modeledShare += profile.marketShare
		if platformResult.PassProbability >= PassBar {
			result.PlatformsPassed++
		}
	}

	otherShare := 1.0 - modeledShare
	result.OverallScore = weighted + otherPlatformsScore*otherShare
	return result
}

// run applies a platform's deductions to the shared detection list.
func (s *Simulator) run(profile platformProfile, detections []detection) types.PlatformResult {
	score := 100.0
	issues := []types.Issue{}

	for _, d := range detections {
		ded, ok := profile.deductions[d.check]
		if !ok {
			continue
		}
		score -= ded.points
		issues = append(issues, types.Issue{
			Severity: ded.severity,
			Category: d.check,
			Message:  d.message,
			Fix:      d.fix,
		})
	}
	if score < 0 {
		score = 0
	}

	return types.PlatformResult{
		Platform:        profile.name,
		PassProbability: score,
		Rating:          ratingFor(score),
		Issues:          issues,
	}
}

// ratingFor maps a pass probability to the qualitative ladder.
func ratingFor(score float64) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 80:
		return "good"
	case score >= PassBar:
		return "fair"
	case score >= 50:
		return "poor"
	default:
		return "failing"
	}
}
