package pooling

import (
	"math"
	"testing"
)

func TestDistributions_PValueFromZ(t *testing.T) {
	dist := NewDistributions()

	if p := dist.PValueFromZ(0); math.Abs(p-1.0) > 1e-12 {
		t.Errorf("z=0 should give p=1, got %f", p)
	}

	// 1.96 is the 97.5th percentile of the standard normal
	if p := dist.PValueFromZ(1.96); math.Abs(p-0.05) > 1e-3 {
		t.Errorf("z=1.96 should give p≈0.05, got %f", p)
	}

	// Two-tailed: sign of z must not matter
	if dist.PValueFromZ(-2.5) != dist.PValueFromZ(2.5) {
		t.Error("p-value should be symmetric in z")
	}

	if p := dist.PValueFromZ(10); p > 1e-6 {
		t.Errorf("Extreme z should give a vanishing p-value, got %f", p)
	}
}

func TestDistributions_PValueFromQ(t *testing.T) {
	dist := NewDistributions()

	if p := dist.PValueFromQ(5.0, 0); p != 1.0 {
		t.Errorf("df=0 should give p=1, got %f", p)
	}

	if p := dist.PValueFromQ(0, 3); math.Abs(p-1.0) > 1e-12 {
		t.Errorf("Q=0 should give p=1, got %f", p)
	}

	// Chi-square with 2 df: P(Q > q) = exp(-q/2)
	if p := dist.PValueFromQ(4.0, 2); math.Abs(p-math.Exp(-2)) > 1e-9 {
		t.Errorf("Q=4, df=2 should give p=exp(-2), got %f", p)
	}
}
