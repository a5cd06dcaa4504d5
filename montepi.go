// Package montepi estimates π by Monte Carlo sampling and packages the results
// for plotting.
//
// Points are drawn uniformly in a square, classified against a quarter circle,
// and the running estimate 4·inside/k is tracked as k grows. The experiment is
// repeated over several sample-size tiers with several independent attempts each.
//
// # Basic Usage
//
//	import "github.com/arloliu/montepi"
//
//	results, err := montepi.Run(
//	    montecarlo.WithSampleSizes(100, 1000, 10000),
//	    montecarlo.WithAttempts(5),
//	    montecarlo.WithSeed(42),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Box-plot input: final estimate of every attempt of one tier
//	finals := results.Finals(1000)
//
//	// Convergence plot input: every series of the largest tier
//	series := results.Convergence()
//
//	// Summaries and convergence-rate fits
//	report, err := montepi.Analyze(results)
//
// Handing results to another process:
//
//	data, err := montepi.Encode(results)
//	...
//	decoded, err := montepi.Decode(data)
//
// # Package Structure
//
// This package provides top-level wrappers for the common cases. For finer
// control use montecarlo, stats, regression and archive directly.
package montepi

import (
	"math"

	"github.com/arloliu/montepi/archive"
	"github.com/arloliu/montepi/format"
	"github.com/arloliu/montepi/montecarlo"
	"github.com/arloliu/montepi/regression"
	"github.com/arloliu/montepi/stats"
)

var defaultArchiveOptions = []archive.EncoderOption{
	archive.WithValueEncoding(format.TypeGorilla),
	archive.WithCompression(format.CompressionZstd),
}

// Run builds a configuration from opts and runs every trial.
//
// Unset options take the montecarlo defaults: tiers 100, 1000 and 10000, five
// attempts, radius 1, bounds [0, 1) and a random seed reported in the result.
func Run(opts ...montecarlo.Option) (*montecarlo.Results, error) {
	cfg, err := montecarlo.NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return montecarlo.RunTrials(cfg)
}

// Report bundles the per-tier summaries and convergence fits of a run.
type Report struct {
	// Tiers summarizes the final estimates of each tier, in tier order.
	Tiers []stats.TierSummary
	// Convergence holds the error-vs-N fit of each tier large enough to fit.
	Convergence []*regression.Result
}

// Analyze summarizes res against π.
func Analyze(res *montecarlo.Results) (*Report, error) {
	tiers, err := stats.SummarizeTiers(res, math.Pi)
	if err != nil {
		return nil, err
	}

	fits, err := regression.AnalyzeEach(res, regression.WithTarget(math.Pi))
	if err != nil {
		return nil, err
	}

	return &Report{Tiers: tiers, Convergence: fits}, nil
}

// Encode packs res into an archive. Without options, values are Gorilla-encoded
// and the payload is zstd-compressed.
func Encode(res *montecarlo.Results, opts ...archive.EncoderOption) ([]byte, error) {
	all := make([]archive.EncoderOption, 0, len(defaultArchiveOptions)+len(opts))
	all = append(all, defaultArchiveOptions...)
	all = append(all, opts...)

	enc, err := archive.NewEncoder(all...)
	if err != nil {
		return nil, err
	}

	return enc.Encode(res)
}

// Decode unpacks an archive produced by Encode.
func Decode(data []byte) (*montecarlo.Results, error) {
	a, err := archive.Decode(data)
	if err != nil {
		return nil, err
	}

	return a.Results(), nil
}
