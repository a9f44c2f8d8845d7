package pooling

import (
	"math"

	"metapool/domain/meta"
)

// FixedEffectPooler combines normalized studies under the assumption of one
// common true effect, weighting each study by its inverse variance.
type FixedEffectPooler struct {
	dist *Distributions
}

// NewFixedEffectPooler creates a new fixed-effect pooler
func NewFixedEffectPooler(dist *Distributions) *FixedEffectPooler {
	return &FixedEffectPooler{dist: dist}
}

// Pool computes the inverse-variance weighted pooled estimate.
// Summation runs in input order; the order is part of the contract.
func (p *FixedEffectPooler) Pool(studies []meta.NormalizedStudy, family meta.ScaleFamily) meta.PooledEstimate {
	var totalWeight, weightedSum float64
	for _, s := range studies {
		totalWeight += s.Weight
		weightedSum += s.Weight * s.ScaledEffect
	}

	pooledScaled := weightedSum / totalWeight
	pooledSE := math.Sqrt(1 / totalWeight)

	return p.estimate(pooledScaled, pooledSE, family)
}

// estimate builds a PooledEstimate from a pooled value and standard error on
// the analysis scale. The CI is symmetric in the scaled unit, so after
// back-transformation it always brackets the point estimate.
func (p *FixedEffectPooler) estimate(pooledScaled, pooledSE float64, family meta.ScaleFamily) meta.PooledEstimate {
	return meta.PooledEstimate{
		Effect:  family.FromScaled(pooledScaled),
		LowerCI: family.FromScaled(pooledScaled - zCritical95*pooledSE),
		UpperCI: family.FromScaled(pooledScaled + zCritical95*pooledSE),
		SE:      pooledSE,
		PValue:  p.dist.PValueFromZ(pooledScaled / pooledSE),
	}
}
