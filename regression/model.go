package regression

import "fmt"

// Model is one fitted convergence model.
type Model struct {
	// Type is the model family.
	Type ModelType
	// Coefficients are [a, b] of the model formula.
	Coefficients []float64
	// RSquared is the coefficient of determination (higher is better).
	RSquared float64
	// RMSE is the root mean square residual of the fit.
	RMSE float64
	// Formula is a human-readable form of the fitted model.
	Formula string
	// Estimator predicts the error for a given N.
	Estimator Estimator
}

// String returns a summary of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Type: %s, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.Type, m.RSquared, m.RMSE, m.Formula)
}

// Result is the outcome of a convergence analysis of one tier.
type Result struct {
	// SampleSize is the tier analyzed.
	SampleSize int
	// Attempts is the number of series the errors were averaged over.
	Attempts int
	// Target is the value the estimates were compared against.
	Target float64
	// Checkpoints are the N values the error was measured at.
	Checkpoints []int
	// Errors holds the RMS error at each checkpoint.
	Errors []float64
	// BestFit is the model with the highest R².
	BestFit *Model
	// AllModels holds every fitted model, best first.
	AllModels []*Model
}

// Model returns the fitted model of the given type, or nil.
func (r *Result) Model(t ModelType) *Model {
	for _, m := range r.AllModels {
		if m.Type == t {
			return m
		}
	}

	return nil
}

// Power returns the fitted power model, whose exponent is the convergence rate.
func (r *Result) Power() *Model {
	return r.Model(ModelTypePower)
}

// String returns a summary of the result.
func (r *Result) String() string {
	if r.BestFit == nil {
		return "Result{BestFit: nil}"
	}

	return fmt.Sprintf("Result{N: %d, BestFit: %s, TotalModels: %d}",
		r.SampleSize, r.BestFit, len(r.AllModels))
}
