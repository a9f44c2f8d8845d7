package pooling

import (
	"math"

	"metapool/domain/meta"
)

// zCritical95 is the two-tailed standard normal critical value for a 95%
// Wald interval. CI width on the scaled axis / (2 * 1.96) recovers the
// standard error.
const zCritical95 = 1.96

// Normalizer converts one raw study record into analysis units.
// Every missing or degenerate numeric input is defaulted, never rejected,
// so normalization cannot fail.
type Normalizer struct{}

// NewNormalizer creates a new study normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize converts a raw study into a NormalizedStudy under the given
// scale family
func (n *Normalizer) Normalize(study meta.StudyInput, family meta.ScaleFamily) meta.NormalizedStudy {
	if family.IsRatio() {
		return n.normalizeRatio(study)
	}
	return n.normalizeDifference(study)
}

// normalizeRatio handles OR/RR/HR studies: the effect and its CI are moved
// to the log scale and the standard error is recovered from the CI width.
func (n *Normalizer) normalizeRatio(study meta.StudyInput) meta.NormalizedStudy {
	effect := study.EffectSize
	lower := floatOrDefault(study.LowerCI, effect*0.8)
	upper := floatOrDefault(study.UpperCI, effect*1.2)

	logEffect := 0.0
	if effect > 0 {
		logEffect = math.Log(effect)
	}

	// Non-positive bounds can't be log-transformed; fall back to a half-unit
	// offset around the scaled effect.
	logLower := logEffect - 0.5
	if lower > 0 {
		logLower = math.Log(lower)
	}
	logUpper := logEffect + 0.5
	if upper > 0 {
		logUpper = math.Log(upper)
	}

	se := (logUpper - logLower) / (2 * zCritical95)

	return meta.NormalizedStudy{
		Name:         studyName(study),
		N:            study.N,
		Effect:       effect,
		LowerCI:      lower,
		UpperCI:      upper,
		ScaledEffect: logEffect,
		SE:           se,
		Weight:       inverseVarianceWeight(se),
	}
}

// normalizeDifference handles MD studies (and unrecognized measure codes):
// the effect is already on the analysis scale and the standard error is
// reported directly. The display CI is reconstructed as effect ± 1.96·se.
func (n *Normalizer) normalizeDifference(study meta.StudyInput) meta.NormalizedStudy {
	effect := study.EffectSize
	se := floatOrDefault(study.SE, 1.0)

	return meta.NormalizedStudy{
		Name:         studyName(study),
		N:            study.N,
		Effect:       effect,
		LowerCI:      effect - zCritical95*se,
		UpperCI:      effect + zCritical95*se,
		ScaledEffect: effect,
		SE:           se,
		Weight:       inverseVarianceWeight(se),
	}
}

// inverseVarianceWeight returns 1/se². A zero or negative standard error
// falls back to weight 1 so weights stay strictly positive.
func inverseVarianceWeight(se float64) float64 {
	if se > 0 {
		return 1 / (se * se)
	}
	return 1
}

func studyName(study meta.StudyInput) string {
	if study.Name == "" {
		return "Unknown"
	}
	return study.Name
}

func floatOrDefault(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}
