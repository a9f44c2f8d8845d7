package pooling

import "metapool/domain/meta"

// errNoStudies is the result-level error text for an empty study list.
// It is part of the wire contract, not a Go error.
const errNoStudies = "No studies provided"

// Engine orchestrates a complete meta-analysis run: validation,
// normalization, pooling under the selected model, heterogeneity analysis,
// plot assembly, and interpretation.
//
// The engine is a pure function of its input. Every invocation allocates
// only local data and all summations iterate studies in input order, so
// results are bitwise-reproducible and the engine is safe for concurrent
// use without locks.
type Engine struct {
	normalizer    *Normalizer
	fixed         *FixedEffectPooler
	random        *RandomEffectsPooler
	heterogeneity *HeterogeneityAnalyzer
	plot          *ForestPlotAssembler
	interpreter   *InterpretationComposer
}

// NewEngine wires up a meta-analysis engine
func NewEngine() *Engine {
	dist := NewDistributions()
	fixed := NewFixedEffectPooler(dist)

	return &Engine{
		normalizer:    NewNormalizer(),
		fixed:         fixed,
		random:        NewRandomEffectsPooler(fixed),
		heterogeneity: NewHeterogeneityAnalyzer(dist),
		plot:          NewForestPlotAssembler(),
		interpreter:   NewInterpretationComposer(),
	}
}

// Run executes one complete meta-analysis. Measure defaults to OR and model
// to fixed; any model other than "fixed" runs the random-effects pooler.
// The only failure mode is an empty study list, reported as a result-level
// error field.
func (e *Engine) Run(req meta.Request) meta.Result {
	if len(req.Studies) == 0 {
		return meta.Result{Error: errNoStudies}
	}

	measure := req.Measure
	if measure == "" {
		measure = meta.MeasureOR
	}
	model := req.Model
	if model == "" {
		model = meta.ModelFixed
	}

	family := meta.FamilyFor(measure)

	normalized := make([]meta.NormalizedStudy, len(req.Studies))
	for i, study := range req.Studies {
		normalized[i] = e.normalizer.Normalize(study, family)
	}

	var pooled meta.PooledEstimate
	if model == meta.ModelFixed {
		pooled = e.fixed.Pool(normalized, family)
	} else {
		pooled = e.random.Pool(normalized, family)
	}

	het := e.heterogeneity.Analyze(normalized, pooled, family)
	plot := e.plot.Assemble(normalized, pooled, family)

	return meta.Result{
		Measure:        measure,
		Model:          model,
		NStudies:       len(req.Studies),
		StudyResults:   normalized,
		PooledEstimate: &pooled,
		Heterogeneity:  &het,
		PlotData:       &plot,
		Interpretation: e.interpreter.Compose(pooled, het, family),
	}
}
