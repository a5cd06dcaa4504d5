// Package montecarlo estimates π by sampling points in a square and counting how
// many fall under a quarter circle.
//
// The pipeline is generate → classify → reduce:
//
//	sampler := montecarlo.NewSampler(42)
//	points, err := sampler.Generate(10000, montecarlo.DefaultBounds)
//	if err != nil {
//	    return err
//	}
//
//	classified, err := montecarlo.Classify(points, 1.0)
//	if err != nil {
//	    return err
//	}
//
//	series := montecarlo.EstimateSeries(classified)
//	final, _ := series.Final() // ≈ 3.14
//
// RunTrials repeats the pipeline over several sample-size tiers with several
// independent attempts per tier:
//
//	cfg, err := montecarlo.NewConfig(
//	    montecarlo.WithSampleSizes(100, 1000, 10000),
//	    montecarlo.WithAttempts(5),
//	    montecarlo.WithSeed(42),
//	)
//	if err != nil {
//	    return err
//	}
//	results, err := montecarlo.RunTrials(cfg)
//
// # Classification
//
// A point (x, y) is inside when x <= r and y <= sqrt(r² − x²). The boundary is
// inclusive. Points with x > r are outside; this never raises an error.
//
// # Estimates
//
// Element k-1 of a Series is 4·inside/k over the first k points. The series is
// built with a running counter, so it costs O(N) for N points.
//
// # Randomness
//
// Each (tier, attempt) trial draws from its own PCG stream, seeded from the run
// seed and the trial coordinates via xxHash64. The same run seed reproduces the
// same Results; trials never share random state.
//
// All validation failures wrap errs.ErrInvalidArgument and are reported before
// any estimate is computed.
package montecarlo
