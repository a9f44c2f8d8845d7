package pooling

import (
	"github.com/montanaflynn/stats"

	"metapool/domain/meta"
)

// ForestPlotAssembler builds the coordinate structure a renderer needs for a
// forest plot: per-study points in input order, the pooled diamond below
// them, and an axis widened to fit every confidence bound.
type ForestPlotAssembler struct{}

// NewForestPlotAssembler creates a new plot assembler
func NewForestPlotAssembler() *ForestPlotAssembler {
	return &ForestPlotAssembler{}
}

// Assemble builds the PlotData for the given studies and pooled estimate
func (a *ForestPlotAssembler) Assemble(studies []meta.NormalizedStudy, pooled meta.PooledEstimate, family meta.ScaleFamily) meta.PlotData {
	lowers := make([]float64, 0, len(studies)+1)
	uppers := make([]float64, 0, len(studies)+1)
	for _, s := range studies {
		lowers = append(lowers, s.LowerCI)
		uppers = append(uppers, s.UpperCI)
	}
	lowers = append(lowers, pooled.LowerCI)
	uppers = append(uppers, pooled.UpperCI)

	// Slices are never empty here (>= 1 study plus the pooled bound)
	rawMin, _ := stats.Min(lowers)
	rawMax, _ := stats.Max(uppers)
	axisMin, axisMax := family.ExpandAxis(rawMin, rawMax)

	points := make([]meta.PlotPoint, len(studies))
	for i, s := range studies {
		points[i] = meta.PlotPoint{
			Y:       i,
			X:       s.Effect,
			CILower: s.LowerCI,
			CIUpper: s.UpperCI,
			Weight:  s.Weight,
			Label:   s.Name,
		}
	}

	return meta.PlotData{
		Axis: meta.Axis{
			Min:   axisMin,
			Max:   axisMax,
			Scale: family.AxisScale(),
			Label: family.AxisLabel(),
		},
		ReferenceLine: family.ReferenceLine(),
		StudyPoints:   points,
		PooledDiamond: meta.PlotPoint{
			Y:       len(studies),
			X:       pooled.Effect,
			CILower: pooled.LowerCI,
			CIUpper: pooled.UpperCI,
			Label:   "Pooled estimate",
		},
	}
}
