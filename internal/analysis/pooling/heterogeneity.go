package pooling

import (
	"math"

	"metapool/domain/meta"
)

// HeterogeneityAnalyzer quantifies between-study variation with Cochran's Q
// and I². Q is computed from the base (fixed-effect) weights against whichever
// pooled estimate was selected, even when that estimate came from the
// random-effects model; that is the standard statistical convention.
type HeterogeneityAnalyzer struct {
	dist *Distributions
}

// NewHeterogeneityAnalyzer creates a new heterogeneity analyzer
func NewHeterogeneityAnalyzer(dist *Distributions) *HeterogeneityAnalyzer {
	return &HeterogeneityAnalyzer{dist: dist}
}

// Analyze computes Q, df, the chi-square p-value, I², and the qualitative
// label for the given studies and selected pooled estimate.
func (a *HeterogeneityAnalyzer) Analyze(studies []meta.NormalizedStudy, pooled meta.PooledEstimate, family meta.ScaleFamily) meta.Heterogeneity {
	pooledScaled := family.ToScaled(pooled.Effect)

	var q float64
	for _, s := range studies {
		dev := s.ScaledEffect - pooledScaled
		q += s.Weight * dev * dev
	}

	df := len(studies) - 1

	iSquared := 0.0
	if q > 0 {
		iSquared = math.Max(0, (q-float64(df))/q*100)
	}

	return meta.Heterogeneity{
		Q:              roundTo(q, 2),
		DF:             df,
		PValue:         roundTo(a.dist.PValueFromQ(q, df), 4),
		ISquared:       roundTo(iSquared, 1),
		Interpretation: interpretISquared(iSquared),
	}
}

// interpretISquared maps an I² percentage to the conventional qualitative
// bands (Higgins thresholds at 25/50/75).
func interpretISquared(iSquared float64) string {
	switch {
	case iSquared < 25:
		return "Low heterogeneity"
	case iSquared < 50:
		return "Moderate heterogeneity"
	case iSquared < 75:
		return "Substantial heterogeneity"
	default:
		return "Considerable heterogeneity"
	}
}

// roundTo rounds v to the given number of decimal places for presentation
func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
