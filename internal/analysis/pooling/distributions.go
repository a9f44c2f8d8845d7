package pooling

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Distributions provides the distribution lookups the pooling pipeline needs.
// Pure numeric functions, no state.
type Distributions struct{}

// NewDistributions creates a new distributions utility
func NewDistributions() *Distributions {
	return &Distributions{}
}

// PValueFromZ computes the two-tailed p-value for a z-statistic using the
// standard normal distribution
func (d *Distributions) PValueFromZ(z float64) float64 {
	return 2 * (1 - distuv.UnitNormal.CDF(math.Abs(z)))
}

// PValueFromQ computes the p-value for a Q-statistic using the chi-square
// distribution with df degrees of freedom
func (d *Distributions) PValueFromQ(q float64, df int) float64 {
	if df <= 0 {
		return 1.0
	}

	chiDist := distuv.ChiSquared{K: float64(df)}
	return 1 - chiDist.CDF(q)
}
