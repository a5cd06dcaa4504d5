package regression

import (
	"math"
	"strings"
	"testing"
)

func TestNewEstimator(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
		n      float64
		want   float64
		typ    ModelType
	}{
		{name: "power", coeffs: []float64{2, -0.5}, n: 16, want: 0.5, typ: ModelTypePower},
		{name: "POWER", coeffs: []float64{2, -0.5}, n: 4, want: 1, typ: ModelTypePower},
		{name: "hyperbolic", coeffs: []float64{1, 10}, n: 5, want: 3, typ: ModelTypeHyperbolic},
		{name: "logarithmic", coeffs: []float64{1, 2}, n: math.E, want: 3, typ: ModelTypeLogarithmic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est, err := NewEstimator(tt.name, tt.coeffs)
			if err != nil {
				t.Fatalf("NewEstimator failed: %v", err)
			}
			if est.Type() != tt.typ {
				t.Errorf("type = %s, want %s", est.Type(), tt.typ)
			}
			if got := est.Estimate(tt.n); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Estimate(%v) = %v, want %v", tt.n, got, tt.want)
			}
			if !math.IsInf(est.Estimate(0), 1) {
				t.Error("Estimate(0) should be +Inf")
			}
		})
	}
}

func TestNewEstimator_Errors(t *testing.T) {
	_, err := NewEstimator("cubic", []float64{1, 2})
	if err == nil || !strings.Contains(err.Error(), "hyperbolic, logarithmic, power") {
		t.Errorf("unexpected error: %v", err)
	}

	if _, err := NewEstimator("power", []float64{1}); err == nil {
		t.Error("expected error for wrong coefficient count")
	}
}

func TestEstimatorSetCoefficients(t *testing.T) {
	est := NewPowerEstimator(1, -1)
	if err := est.SetCoefficients([]float64{4, -0.5}); err != nil {
		t.Fatalf("SetCoefficients failed: %v", err)
	}

	coeffs := est.Coefficients()
	if coeffs[0] != 4 || coeffs[1] != -0.5 {
		t.Errorf("coefficients = %v, want [4 -0.5]", coeffs)
	}
	if got := est.Estimate(4); got != 2 {
		t.Errorf("Estimate(4) = %v, want 2", got)
	}

	if err := est.SetCoefficients([]float64{1, 2, 3}); err == nil {
		t.Error("expected error for three coefficients")
	}
}

func TestModelTypeStrings(t *testing.T) {
	for _, mt := range []ModelType{ModelTypeHyperbolic, ModelTypeLogarithmic, ModelTypePower} {
		if ModelTypeFromString(mt.String()) != mt {
			t.Errorf("round trip failed for %s", mt)
		}
	}
	if ModelType(42).String() != "unknown" {
		t.Error("expected unknown for out-of-range type")
	}
	if ModelTypeFromString("nope") != ModelType(-1) {
		t.Error("expected -1 for unknown name")
	}
}

func BenchmarkFitPower(b *testing.B) {
	x := make([]float64, 64)
	y := make([]float64, 64)
	for i := range x {
		x[i] = float64(i + 1)
		y[i] = 1.64 / math.Sqrt(x[i])
	}

	for b.Loop() {
		fitPower(x, y)
	}
}
