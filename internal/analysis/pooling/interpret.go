package pooling

import (
	"fmt"

	"metapool/domain/meta"
)

// significanceLevel is the two-tailed alpha used when wording the summary
const significanceLevel = 0.05

// InterpretationComposer produces the one-paragraph human-readable summary of
// a pooled result and its heterogeneity.
type InterpretationComposer struct{}

// NewInterpretationComposer creates a new interpretation composer
func NewInterpretationComposer() *InterpretationComposer {
	return &InterpretationComposer{}
}

// Compose builds the summary sentence, e.g.
// "Pooled OR = 0.82, indicating decreased risk (p=0.0312). Low heterogeneity (I²=12.4%)."
func (c *InterpretationComposer) Compose(pooled meta.PooledEstimate, het meta.Heterogeneity, family meta.ScaleFamily) string {
	var summary string
	if family.IsRatio() {
		summary = c.ratioSummary(pooled, family.Measure())
	} else {
		summary = c.differenceSummary(pooled)
	}

	return fmt.Sprintf("%s. %s (I²=%.1f%%)", summary, het.Interpretation, het.ISquared)
}

func (c *InterpretationComposer) ratioSummary(pooled meta.PooledEstimate, measure meta.MeasureType) string {
	if pooled.PValue >= significanceLevel {
		return fmt.Sprintf("Pooled %s = %.2f, not statistically significant (p=%.4f)", measure, pooled.Effect, pooled.PValue)
	}

	direction := "decreased"
	if pooled.Effect > 1 {
		direction = "increased"
	}
	return fmt.Sprintf("Pooled %s = %.2f, indicating %s risk (p=%.4f)", measure, pooled.Effect, direction, pooled.PValue)
}

func (c *InterpretationComposer) differenceSummary(pooled meta.PooledEstimate) string {
	if pooled.PValue >= significanceLevel {
		return fmt.Sprintf("Pooled MD = %.2f, no significant difference (p=%.4f)", pooled.Effect, pooled.PValue)
	}

	direction := "lower"
	if pooled.Effect > 0 {
		direction = "higher"
	}
	return fmt.Sprintf("Pooled MD = %.2f, treatment group %s (p=%.4f)", pooled.Effect, direction, pooled.PValue)
}
