package meta

// ============================================================================
// STABLE PRIMITIVES (Canonical, never change)
// ============================================================================

// MeasureType identifies the effect measure reported by the studies
type MeasureType string

const (
	MeasureOR MeasureType = "OR" // Odds ratio
	MeasureRR MeasureType = "RR" // Risk ratio
	MeasureHR MeasureType = "HR" // Hazard ratio
	MeasureMD MeasureType = "MD" // Mean difference
)

// IsRatio reports whether the measure is analyzed on the log scale.
// Unrecognized codes are treated as difference-scale measures.
func (m MeasureType) IsRatio() bool {
	switch m {
	case MeasureOR, MeasureRR, MeasureHR:
		return true
	}
	return false
}

// ModelType selects the pooling model
type ModelType string

const (
	ModelFixed  ModelType = "fixed"
	ModelRandom ModelType = "random"
)

// StudyInput is one raw study record as submitted by the caller.
// Optional fields are pointers; the normalizer applies defaults when absent.
type StudyInput struct {
	Name       string   `json:"name"`
	N          int      `json:"n,omitempty"` // Sample size, informational only
	EffectSize float64  `json:"effect_size"`
	LowerCI    *float64 `json:"lower_ci,omitempty"` // Ratio measures
	UpperCI    *float64 `json:"upper_ci,omitempty"` // Ratio measures
	SE         *float64 `json:"se,omitempty"`       // Difference measures
}

// NormalizedStudy carries one study in analysis units.
// INVARIANTS:
// - Weight always > 0 (degenerate standard errors fall back to weight = 1)
// - Weight is the base inverse-variance weight, computed once and never
//   overwritten; the heterogeneity analyzer reuses it even after
//   random-effects pooling reweighted internally
type NormalizedStudy struct {
	Name         string  `json:"name"`
	N            int     `json:"n"`
	Effect       float64 `json:"effect"`
	LowerCI      float64 `json:"lower_ci"`
	UpperCI      float64 `json:"upper_ci"`
	ScaledEffect float64 `json:"scaled_effect"` // ln(effect) for ratio measures, effect for MD
	SE           float64 `json:"se"`            // Standard error in the scaled unit
	Weight       float64 `json:"weight"`        // 1/se²
}

// PooledEstimate is the combined effect in original units with its CI.
// The CI is symmetric around the point estimate in the scaled unit, so it
// always brackets the point estimate after back-transformation.
type PooledEstimate struct {
	Effect     float64  `json:"effect"`
	LowerCI    float64  `json:"lower_ci"`
	UpperCI    float64  `json:"upper_ci"`
	SE         float64  `json:"se"` // Scaled units
	PValue     float64  `json:"p_value"`
	TauSquared *float64 `json:"tau_squared,omitempty"` // Random model only, clamped >= 0
}

// Heterogeneity summarizes between-study variation.
// Q, PValue and ISquared are rounded for presentation (2/4/1 decimals).
type Heterogeneity struct {
	Q              float64 `json:"Q"`
	DF             int     `json:"df"` // Number of studies - 1
	PValue         float64 `json:"p_value"`
	ISquared       float64 `json:"I_squared"` // Bounded to [0, 100]
	Interpretation string  `json:"interpretation"`
}

// ============================================================================
// PLOT COORDINATES (renderable structure, no pixels)
// ============================================================================

// Axis describes the x-axis of a forest plot
type Axis struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Scale string  `json:"scale"` // "log" or "linear"
	Label string  `json:"label"`
}

// PlotPoint is one row of a forest plot: a study marker or the pooled diamond
type PlotPoint struct {
	Y       int     `json:"y"` // Input-order rank; the diamond sits at y = n
	X       float64 `json:"x"`
	CILower float64 `json:"ci_lower"`
	CIUpper float64 `json:"ci_upper"`
	Weight  float64 `json:"weight,omitempty"`
	Label   string  `json:"label"`
}

// PlotData is the complete coordinate structure for a forest plot
type PlotData struct {
	Axis          Axis        `json:"x_axis"`
	ReferenceLine float64     `json:"reference_line"` // 1.0 for ratio measures, 0.0 for MD
	StudyPoints   []PlotPoint `json:"study_points"`
	PooledDiamond PlotPoint   `json:"pooled_diamond"`
}

// ============================================================================
// ENGINE CONTRACT
// ============================================================================

// Request is the single entry point input
type Request struct {
	Studies []StudyInput `json:"studies"`
	Measure MeasureType  `json:"measure,omitempty"` // Default "OR"
	Model   ModelType    `json:"model,omitempty"`   // Default "fixed"
}

// Result is the complete meta-analysis output. On the empty-input failure
// only Error is populated, so the result serializes to a bare error object.
type Result struct {
	Error          string            `json:"error,omitempty"`
	Measure        MeasureType       `json:"measure,omitempty"`
	Model          ModelType         `json:"model,omitempty"`
	NStudies       int               `json:"n_studies,omitempty"`
	StudyResults   []NormalizedStudy `json:"study_results,omitempty"`
	PooledEstimate *PooledEstimate   `json:"pooled_estimate,omitempty"`
	Heterogeneity  *Heterogeneity    `json:"heterogeneity,omitempty"`
	PlotData       *PlotData         `json:"plot_data,omitempty"`
	Interpretation string            `json:"interpretation,omitempty"`
}
