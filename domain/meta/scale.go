package meta

import "math"

// measureLabels maps measure codes to axis labels. Unknown codes fall back
// to the raw code verbatim.
var measureLabels = map[MeasureType]string{
	MeasureOR: "Odds Ratio",
	MeasureRR: "Risk Ratio",
	MeasureHR: "Hazard Ratio",
	MeasureMD: "Mean Difference",
}

// ScaleFamily captures how a measure family maps between reported units and
// analysis units: the scaled-value transform, the back-transform, the axis
// scale, and the no-effect reference line. It is selected once per run and
// carried through pooling, heterogeneity, and plotting so that no downstream
// stage branches on the measure code again.
type ScaleFamily struct {
	measure MeasureType
	ratio   bool
}

// FamilyFor selects the scale family for a measure. OR/RR/HR are ratio
// measures (log scale); everything else, including unrecognized codes, is
// treated as a difference measure (linear scale).
func FamilyFor(measure MeasureType) ScaleFamily {
	return ScaleFamily{measure: measure, ratio: measure.IsRatio()}
}

// Measure returns the measure code the family was built from
func (f ScaleFamily) Measure() MeasureType {
	return f.measure
}

// IsRatio reports whether values are analyzed on the log scale
func (f ScaleFamily) IsRatio() bool {
	return f.ratio
}

// ToScaled converts a value in reported units to the analysis scale.
// Callers must guard non-positive inputs on the ratio path themselves; the
// normalizer owns those defaulting rules.
func (f ScaleFamily) ToScaled(v float64) float64 {
	if f.ratio {
		return math.Log(v)
	}
	return v
}

// FromScaled converts a value on the analysis scale back to reported units
func (f ScaleFamily) FromScaled(v float64) float64 {
	if f.ratio {
		return math.Exp(v)
	}
	return v
}

// AxisScale returns the plot axis scale for this family
func (f ScaleFamily) AxisScale() string {
	if f.ratio {
		return "log"
	}
	return "linear"
}

// AxisLabel returns the human-readable axis label for the measure
func (f ScaleFamily) AxisLabel() string {
	if label, ok := measureLabels[f.measure]; ok {
		return label
	}
	return string(f.measure)
}

// ReferenceLine returns the no-effect line: 1.0 for ratio measures, 0.0
// for difference measures
func (f ScaleFamily) ReferenceLine() float64 {
	if f.ratio {
		return 1.0
	}
	return 0.0
}

// ExpandAxis widens the raw [lo, hi] bound range by 10% for plotting:
// multiplicatively on the ratio (log) axis, additively by 10% of magnitude
// on the linear axis.
func (f ScaleFamily) ExpandAxis(lo, hi float64) (float64, float64) {
	if f.ratio {
		return lo * 0.9, hi * 1.1
	}
	return lo - math.Abs(lo)*0.1, hi + math.Abs(hi)*0.1
}
