package regression

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/montepi/errs"
	"github.com/arloliu/montepi/internal/options"
	"github.com/arloliu/montepi/montecarlo"
)

// AnalyzeConvergence measures how fast the estimates of one tier approach the
// target and fits the convergence models to it.
//
// The collection must hold at least one series, and the series must be long
// enough for two checkpoints.
//
// Example:
//
//	fit, err := regression.AnalyzeConvergence(results.Trials[10000])
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rate := fit.Power().Coefficients[1] // ≈ -0.5
func AnalyzeConvergence(c montecarlo.TrialCollection, opts ...AnalyzeOption) (*Result, error) {
	cfg := defaultAnalyzeConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if len(c.Series) == 0 {
		return nil, fmt.Errorf("%w: tier %d has no series", errs.ErrInvalidArgument, c.SampleSize)
	}

	maxN := c.SampleSize
	for _, s := range c.Series {
		maxN = min(maxN, len(s))
	}

	checkpoints := selectCheckpoints(cfg.Checkpoints, maxN)
	if len(checkpoints) < 2 {
		return nil, fmt.Errorf("%w: tier %d yields %d checkpoints, need at least 2",
			errs.ErrInsufficientData, c.SampleSize, len(checkpoints))
	}

	rms := rmsErrors(c.Series, checkpoints, cfg.Target)

	x := make([]float64, len(checkpoints))
	for i, n := range checkpoints {
		x[i] = float64(n)
	}

	res, err := performRegression(x, rms)
	if err != nil {
		return nil, err
	}

	res.SampleSize = c.SampleSize
	res.Attempts = len(c.Series)
	res.Target = cfg.Target
	res.Checkpoints = checkpoints
	res.Errors = rms

	return res, nil
}

// AnalyzeEach runs AnalyzeConvergence for every tier of res, in tier order.
//
// Tiers too small for two checkpoints are skipped.
func AnalyzeEach(res *montecarlo.Results, opts ...AnalyzeOption) ([]*Result, error) {
	if res == nil || len(res.Trials) == 0 {
		return nil, fmt.Errorf("%w: no trials to analyze", errs.ErrInvalidArgument)
	}

	out := make([]*Result, 0, len(res.SampleSizes))
	for _, tier := range res.Tiers() {
		fit, err := AnalyzeConvergence(tier, opts...)
		if errors.Is(err, errs.ErrInsufficientData) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to analyze tier %d: %w", tier.SampleSize, err)
		}
		out = append(out, fit)
	}

	return out, nil
}

// performRegression fits every model to (x, y) and ranks them by R², best first.
func performRegression(x, y []float64) (*Result, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("mismatched data lengths: %d N vs %d error", len(x), len(y))
	}

	if len(x) < 2 {
		return nil, fmt.Errorf("%w: %d data points for regression", errs.ErrInsufficientData, len(x))
	}

	models := []*Model{
		fitPower(x, y),
		fitHyperbolic(x, y),
		fitLogarithmic(x, y),
	}

	slices.SortStableFunc(models, func(a, b *Model) int {
		if a.RSquared > b.RSquared {
			return -1
		}
		if a.RSquared < b.RSquared {
			return 1
		}

		return 0
	})

	return &Result{
		BestFit:   models[0],
		AllModels: models,
	}, nil
}

// linearFit solves y = a + b*x by least squares.
func linearFit(x, y []float64) (a, b float64) {
	n := float64(len(x))

	var sumX, sumY, sumXY, sumX2 float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
	}

	meanX := sumX / n
	meanY := sumY / n
	den := sumX2 - n*meanX*meanX
	if den == 0 {
		return meanY, 0
	}
	b = (sumXY - n*meanX*meanY) / den
	a = meanY - b*meanX

	return a, b
}

// fitPower fits err = a * N^b on ln(err) = ln(a) + b*ln(N). Checkpoints with a
// zero error carry no information on the log scale and are left out of the fit,
// but R² and RMSE are measured against every point.
func fitPower(x, y []float64) *Model {
	lx := make([]float64, 0, len(x))
	ly := make([]float64, 0, len(y))
	for i := range x {
		if y[i] > 0 {
			lx = append(lx, math.Log(x[i]))
			ly = append(ly, math.Log(y[i]))
		}
	}

	if len(lx) < 2 {
		return &Model{
			Type:         ModelTypePower,
			Coefficients: []float64{0, 0},
			Formula:      "err = 0 * N^0",
			Estimator:    NewPowerEstimator(0, 0),
		}
	}

	logA, b := linearFit(lx, ly)
	a := math.Exp(logA)

	predicted := make([]float64, len(x))
	for i := range x {
		predicted[i] = a * math.Pow(x[i], b)
	}

	return &Model{
		Type:         ModelTypePower,
		Coefficients: []float64{a, b},
		RSquared:     calculateRSquared(y, predicted),
		RMSE:         calculateRMSE(y, predicted),
		Formula:      fmt.Sprintf("err = %.4f * N^%.3f", a, b),
		Estimator:    NewPowerEstimator(a, b),
	}
}

// fitHyperbolic fits err = a + b / N on X' = 1/N.
func fitHyperbolic(x, y []float64) *Model {
	inv := make([]float64, len(x))
	for i := range x {
		inv[i] = 1.0 / x[i]
	}

	a, b := linearFit(inv, y)

	predicted := make([]float64, len(x))
	for i := range x {
		predicted[i] = a + b/x[i]
	}

	return &Model{
		Type:         ModelTypeHyperbolic,
		Coefficients: []float64{a, b},
		RSquared:     calculateRSquared(y, predicted),
		RMSE:         calculateRMSE(y, predicted),
		Formula:      fmt.Sprintf("err = %.4f + %.4f / N", a, b),
		Estimator:    NewHyperbolicEstimator(a, b),
	}
}

// fitLogarithmic fits err = a + b * ln(N) on X' = ln(N).
func fitLogarithmic(x, y []float64) *Model {
	lx := make([]float64, len(x))
	for i := range x {
		lx[i] = math.Log(x[i])
	}

	a, b := linearFit(lx, y)

	predicted := make([]float64, len(x))
	for i := range x {
		predicted[i] = a + b*lx[i]
	}

	return &Model{
		Type:         ModelTypeLogarithmic,
		Coefficients: []float64{a, b},
		RSquared:     calculateRSquared(y, predicted),
		RMSE:         calculateRMSE(y, predicted),
		Formula:      fmt.Sprintf("err = %.4f + %.4f * ln(N)", a, b),
		Estimator:    NewLogarithmicEstimator(a, b),
	}
}

// calculateRSquared returns 1 - SS_res/SS_tot, or 0 when observed is constant.
func calculateRSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := calculateMean(observed)
	ssTot := 0.0
	ssRes := 0.0

	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}

func calculateRMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	sumSq := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}

func calculateMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
