package pooling

import (
	"math"

	"metapool/domain/meta"
)

// RandomEffectsPooler combines normalized studies allowing the true effect to
// vary between studies. The between-study variance tau² is estimated with the
// DerSimonian-Laird method and added to each study's variance before
// reweighting.
type RandomEffectsPooler struct {
	fixed *FixedEffectPooler
}

// NewRandomEffectsPooler creates a new random-effects pooler
func NewRandomEffectsPooler(fixed *FixedEffectPooler) *RandomEffectsPooler {
	return &RandomEffectsPooler{fixed: fixed}
}

// Pool computes the DerSimonian-Laird pooled estimate.
// Q is computed from the base weights against the fixed-effect pooled scaled
// estimate; only the final recombination uses the tau²-adjusted weights.
func (p *RandomEffectsPooler) Pool(studies []meta.NormalizedStudy, family meta.ScaleFamily) meta.PooledEstimate {
	var totalWeight, weightedSum, sumSquaredWeights float64
	for _, s := range studies {
		totalWeight += s.Weight
		weightedSum += s.Weight * s.ScaledEffect
		sumSquaredWeights += s.Weight * s.Weight
	}
	fixedScaled := weightedSum / totalWeight

	var q float64
	for _, s := range studies {
		dev := s.ScaledEffect - fixedScaled
		q += s.Weight * dev * dev
	}

	df := len(studies) - 1
	c := totalWeight - sumSquaredWeights/totalWeight

	// With a single study C is exactly 0; the guard keeps tau² at 0 instead
	// of dividing by zero.
	tauSquared := 0.0
	if c > 0 {
		tauSquared = math.Max(0, (q-float64(df))/c)
	}

	var adjustedTotal, adjustedSum float64
	for _, s := range studies {
		w := adjustedWeight(s.SE, tauSquared)
		adjustedTotal += w
		adjustedSum += w * s.ScaledEffect
	}

	pooledScaled := adjustedSum / adjustedTotal
	pooledSE := math.Sqrt(1 / adjustedTotal)

	est := p.fixed.estimate(pooledScaled, pooledSE, family)
	est.TauSquared = &tauSquared
	return est
}

// adjustedWeight returns 1/(se² + tau²). A degenerate zero total variance
// falls back to weight 1, mirroring the base-weight guard.
func adjustedWeight(se, tauSquared float64) float64 {
	variance := se*se + tauSquared
	if variance > 0 {
		return 1 / variance
	}
	return 1
}
