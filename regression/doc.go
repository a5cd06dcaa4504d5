// Package regression fits convergence-rate models to Monte Carlo π trials.
//
// For a tier of independent trials, the root-mean-square error of the running
// estimate against a target (π by default) is measured at log-spaced checkpoints
// N = 1, 2, 5, 10, 20, 50, ... up to the tier's sample size. Three models are then
// fitted to the (N, error) pairs by least squares:
//
//   - Power: err = a * N^b (b ≈ -0.5 for an unbiased Monte Carlo estimator)
//   - Hyperbolic: err = a + b / N
//   - Logarithmic: err = a + b * ln(N)
//
// Models are ranked by R² and the best one is reported as Result.BestFit.
//
// # Usage
//
//	results, err := montecarlo.RunTrials(cfg)
//	if err != nil {
//	    return err
//	}
//
//	fit, err := regression.AnalyzeConvergence(results.Trials[results.LargestSize()])
//	if err != nil {
//	    return err
//	}
//
//	fmt.Println(fit.BestFit.Formula)
//	predicted := fit.Power().Estimator.Estimate(1e6) // expected error at N = 1e6
//
// AnalyzeEach runs the same analysis for every tier of a Results value, in tier
// order.
//
// # Estimators
//
// Each fitted Model carries an Estimator that predicts the error for a given N.
// Estimators can also be built from stored coefficients with NewEstimator:
//
//	est, err := regression.NewEstimator("power", []float64{1.64, -0.5})
package regression
