package regression

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// ModelType represents the type of convergence model.
type ModelType int

const (
	// ModelTypeHyperbolic represents err = a + b / N.
	ModelTypeHyperbolic ModelType = iota
	// ModelTypeLogarithmic represents err = a + b * ln(N).
	ModelTypeLogarithmic
	// ModelTypePower represents err = a * N^b.
	ModelTypePower
)

var modelTypeNames = map[ModelType]string{
	ModelTypeHyperbolic:  "hyperbolic",
	ModelTypeLogarithmic: "logarithmic",
	ModelTypePower:       "power",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

var modelTypeFromString = map[string]ModelType{
	"hyperbolic":  ModelTypeHyperbolic,
	"logarithmic": ModelTypeLogarithmic,
	"power":       ModelTypePower,
}

// ModelTypeFromString returns the ModelType for a name (case-insensitive).
// Returns ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	if modelType, exists := modelTypeFromString[strings.ToLower(name)]; exists {
		return modelType
	}

	return ModelType(-1)
}

func newEmptyEstimator(modelType ModelType) Estimator {
	switch modelType {
	case ModelTypeHyperbolic:
		return NewHyperbolicEstimator(0, 0)
	case ModelTypeLogarithmic:
		return NewLogarithmicEstimator(0, 0)
	case ModelTypePower:
		return NewPowerEstimator(0, 0)
	default:
		return nil
	}
}

// Estimator predicts the estimation error after N samples.
type Estimator interface {
	// Estimate returns the predicted error for n samples. n must be positive.
	Estimate(n float64) float64
	// Type returns the model type.
	Type() ModelType
	// Coefficients returns [a, b].
	Coefficients() []float64
	// SetCoefficients replaces [a, b] in place.
	SetCoefficients(coeffs []float64) error
}

// pair holds the two coefficients every model uses.
type pair struct {
	a, b   float64
	coeffs []float64 // reused by Coefficients
}

func newPair(a, b float64) pair {
	return pair{a: a, b: b, coeffs: make([]float64, 2)}
}

func (p *pair) Coefficients() []float64 {
	p.coeffs[0] = p.a
	p.coeffs[1] = p.b

	return p.coeffs
}

func (p *pair) set(model string, coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("%s model expects exactly 2 coefficients, got %d", model, len(coeffs))
	}
	p.a = coeffs[0]
	p.b = coeffs[1]

	return nil
}

// HyperbolicEstimator implements err = a + b / N.
type HyperbolicEstimator struct {
	pair
}

// NewHyperbolicEstimator creates a hyperbolic estimator.
func NewHyperbolicEstimator(a, b float64) *HyperbolicEstimator {
	return &HyperbolicEstimator{pair: newPair(a, b)}
}

// Estimate returns a + b / n, or +Inf for n <= 0.
func (h *HyperbolicEstimator) Estimate(n float64) float64 {
	if n <= 0 {
		return math.Inf(1)
	}

	return h.a + h.b/n
}

// Type returns ModelTypeHyperbolic.
func (h *HyperbolicEstimator) Type() ModelType {
	return ModelTypeHyperbolic
}

// SetCoefficients sets [a, b].
func (h *HyperbolicEstimator) SetCoefficients(coeffs []float64) error {
	return h.set("hyperbolic", coeffs)
}

// LogarithmicEstimator implements err = a + b * ln(N).
type LogarithmicEstimator struct {
	pair
}

// NewLogarithmicEstimator creates a logarithmic estimator.
func NewLogarithmicEstimator(a, b float64) *LogarithmicEstimator {
	return &LogarithmicEstimator{pair: newPair(a, b)}
}

// Estimate returns a + b * ln(n), or +Inf for n <= 0.
func (l *LogarithmicEstimator) Estimate(n float64) float64 {
	if n <= 0 {
		return math.Inf(1)
	}

	return l.a + l.b*math.Log(n)
}

// Type returns ModelTypeLogarithmic.
func (l *LogarithmicEstimator) Type() ModelType {
	return ModelTypeLogarithmic
}

// SetCoefficients sets [a, b].
func (l *LogarithmicEstimator) SetCoefficients(coeffs []float64) error {
	return l.set("logarithmic", coeffs)
}

// PowerEstimator implements err = a * N^b.
type PowerEstimator struct {
	pair
}

// NewPowerEstimator creates a power estimator.
func NewPowerEstimator(a, b float64) *PowerEstimator {
	return &PowerEstimator{pair: newPair(a, b)}
}

// Estimate returns a * n^b, or +Inf for n <= 0.
func (p *PowerEstimator) Estimate(n float64) float64 {
	if n <= 0 {
		return math.Inf(1)
	}

	return p.a * math.Pow(n, p.b)
}

// Type returns ModelTypePower.
func (p *PowerEstimator) Type() ModelType {
	return ModelTypePower
}

// SetCoefficients sets [a, b].
func (p *PowerEstimator) SetCoefficients(coeffs []float64) error {
	return p.set("power", coeffs)
}

// NewEstimator creates an estimator by model name ("hyperbolic", "logarithmic"
// or "power", case-insensitive) and its two coefficients.
//
// Example:
//
//	est, err := NewEstimator("power", []float64{1.64, -0.5})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	expected := est.Estimate(10000) // ≈ 0.0164
func NewEstimator(name string, coeffs []float64) (Estimator, error) {
	modelType := ModelTypeFromString(name)
	if modelType == ModelType(-1) {
		supported := make([]string, 0, len(modelTypeNames))
		for _, n := range modelTypeNames {
			supported = append(supported, n)
		}
		slices.Sort(supported)

		return nil, fmt.Errorf("unknown model type: %s. Supported types: %s", name, strings.Join(supported, ", "))
	}

	estimator := newEmptyEstimator(modelType)
	if estimator == nil {
		return nil, fmt.Errorf("failed to create estimator for model type: %s", name)
	}

	if err := estimator.SetCoefficients(coeffs); err != nil {
		return nil, err
	}

	return estimator, nil
}
