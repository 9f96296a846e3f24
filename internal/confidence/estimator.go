// Package confidence computes statistical confidence intervals around
// evaluation scores.
package confidence

import (
	"math"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Measurement types. They select the standard-error model.
const (
	MeasurementPercentage = "percentage"
	MeasurementBinary     = "binary"
	MeasurementScore      = "score"
)

// DefaultLevel is the confidence level used when the caller passes an
// unrecognized one.
const DefaultLevel = 0.95

// zTable maps supported confidence levels to their z multipliers.
var zTable = map[float64]float64{
	0.90: 1.645,
	0.95: 1.960,
	0.99: 2.576,
}

// Reliability ratings. A rating requires both a small margin and an adequate
// sample size; neither alone suffices.
const (
	ReliabilityVeryHigh = "Very High"
	ReliabilityHigh     = "High"
	ReliabilityModerate = "Moderate"
	ReliabilityLow      = "Low"
	ReliabilityVeryLow  = "Very Low"
)

// ZScore returns the z multiplier for a confidence level, defaulting to 95%.
func ZScore(level float64) float64 {
	if z, ok := zTable[level]; ok {
		return z
	}
	return zTable[DefaultLevel]
}

// normalizeLevel snaps the level to a supported one for reporting.
func normalizeLevel(level float64) float64 {
	if _, ok := zTable[level]; ok {
		return level
	}
	return DefaultLevel
}

// Estimate wraps a 0-100 point score with a confidence interval. The
// standard error depends on the measurement type: binary scores use the
// binomial proportion SE; everything else uses a heuristic score-scale SE
// that shrinks with sample size and widens toward the maximum-variance point
// at score 50.
func Estimate(score float64, sampleSize int, measurement string, level float64) types.ConfidenceInterval {
	score = clamp(score, 0, 100)
	if sampleSize < 1 {
		sampleSize = 1
	}
	level = normalizeLevel(level)
	z := ZScore(level)

	p := score / 100.0
	n := float64(sampleSize)

	var se float64
	switch measurement {
	case MeasurementBinary:
		se = math.Sqrt(p*(1-p)/n) * 100.0
	default:
		// Heuristic: assumed spread of 20 points plus a variance term
		// peaking at score 50, shrinking with the square root of n.
		se = (20.0 + 30.0*p*(1-p)) / math.Sqrt(n)
	}

	margin := z * se
	return interval(score, margin, level, sampleSize)
}

// EstimateFromObservations builds an interval around the mean of per-component
// observations using the sample standard deviation.
func EstimateFromObservations(observations []float64, level float64) types.ConfidenceInterval {
	level = normalizeLevel(level)
	z := ZScore(level)

	n := len(observations)
	if n == 0 {
		return interval(0, 0, level, 0)
	}

	mean := 0.0
	for _, o := range observations {
		mean += o
	}
	mean /= float64(n)
	mean = clamp(mean, 0, 100)

	if n == 1 {
		return interval(mean, 0, level, 1)
	}

	variance := 0.0
	for _, o := range observations {
		d := o - mean
		variance += d * d
	}
	variance /= float64(n - 1)

	se := math.Sqrt(variance) / math.Sqrt(float64(n))
	return interval(mean, z*se, level, n)
}

// interval assembles the clipped interval plus its reliability rating.
func interval(score, margin float64, level float64, sampleSize int) types.ConfidenceInterval {
	return types.ConfidenceInterval{
		Score:           round2(score),
		Lower:           round2(clamp(score-margin, 0, 100)),
		Upper:           round2(clamp(score+margin, 0, 100)),
		ConfidenceLevel: level,
		MarginOfError:   round2(margin),
		Reliability:     reliability(margin, sampleSize),
	}
}

// reliability rates the interval. Both conditions of each rung must hold.
func reliability(margin float64, sampleSize int) string {
	switch {
	case margin <= 3 && sampleSize >= 50:
		return ReliabilityVeryHigh
	case margin <= 10 && sampleSize >= 25:
		return ReliabilityHigh
	case margin <= 15 && sampleSize >= 10:
		return ReliabilityModerate
	case margin <= 20:
		return ReliabilityLow
	default:
		return ReliabilityVeryLow
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
