package pooling

import (
	"strings"
	"testing"

	"metapool/domain/meta"
)

func TestInterpretation_SignificantDecreasedRisk(t *testing.T) {
	composer := NewInterpretationComposer()

	pooled := meta.PooledEstimate{Effect: 0.82, PValue: 0.0312}
	het := meta.Heterogeneity{ISquared: 12.4, Interpretation: "Low heterogeneity"}

	got := composer.Compose(pooled, het, meta.FamilyFor(meta.MeasureOR))

	want := "Pooled OR = 0.82, indicating decreased risk (p=0.0312). Low heterogeneity (I²=12.4%)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInterpretation_SignificantIncreasedRisk(t *testing.T) {
	composer := NewInterpretationComposer()

	pooled := meta.PooledEstimate{Effect: 1.47, PValue: 0.001}
	het := meta.Heterogeneity{ISquared: 55.0, Interpretation: "Substantial heterogeneity"}

	got := composer.Compose(pooled, het, meta.FamilyFor(meta.MeasureHR))

	if !strings.Contains(got, "Pooled HR = 1.47") {
		t.Errorf("summary should name the measure and effect: %q", got)
	}
	if !strings.Contains(got, "increased risk") {
		t.Errorf("effect above 1 should read as increased risk: %q", got)
	}
	if !strings.Contains(got, "Substantial heterogeneity (I²=55.0%)") {
		t.Errorf("summary should end with the heterogeneity label: %q", got)
	}
}

func TestInterpretation_NotSignificant(t *testing.T) {
	composer := NewInterpretationComposer()

	pooled := meta.PooledEstimate{Effect: 0.95, PValue: 0.42}
	het := meta.Heterogeneity{ISquared: 8.0, Interpretation: "Low heterogeneity"}

	got := composer.Compose(pooled, het, meta.FamilyFor(meta.MeasureRR))

	if !strings.Contains(got, "not statistically significant (p=0.4200)") {
		t.Errorf("non-significant result should say so: %q", got)
	}
	if strings.Contains(got, "risk") {
		t.Errorf("non-significant result should not claim a direction: %q", got)
	}
}

func TestInterpretation_MeanDifference(t *testing.T) {
	composer := NewInterpretationComposer()
	family := meta.FamilyFor(meta.MeasureMD)

	higher := composer.Compose(
		meta.PooledEstimate{Effect: 2.3, PValue: 0.01},
		meta.Heterogeneity{ISquared: 30.0, Interpretation: "Moderate heterogeneity"},
		family,
	)
	if !strings.Contains(higher, "treatment group higher") {
		t.Errorf("positive MD should read as higher: %q", higher)
	}

	lower := composer.Compose(
		meta.PooledEstimate{Effect: -1.1, PValue: 0.02},
		meta.Heterogeneity{ISquared: 0, Interpretation: "Low heterogeneity"},
		family,
	)
	if !strings.Contains(lower, "treatment group lower") {
		t.Errorf("negative MD should read as lower: %q", lower)
	}

	flat := composer.Compose(
		meta.PooledEstimate{Effect: 0.1, PValue: 0.8},
		meta.Heterogeneity{ISquared: 0, Interpretation: "Low heterogeneity"},
		family,
	)
	if !strings.Contains(flat, "no significant difference") {
		t.Errorf("non-significant MD should say no difference: %q", flat)
	}
}
