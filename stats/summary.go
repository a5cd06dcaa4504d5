package stats

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/arloliu/montepi/errs"
	"github.com/arloliu/montepi/internal/pool"
	"github.com/arloliu/montepi/montecarlo"
)

// whiskerFactor is the Tukey fence distance in IQRs.
const whiskerFactor = 1.5

// z95 is the two-sided 95% quantile of the standard normal distribution.
const z95 = 1.959963984540054

// Summary describes the distribution of a set of estimates.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64 // sample standard deviation; 0 for a single value

	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
	IQR    float64

	// LowerWhisker and UpperWhisker are the most extreme values within
	// 1.5·IQR of the quartiles.
	LowerWhisker float64
	UpperWhisker float64
	// Outliers lists the values beyond the whiskers, ascending.
	Outliers []float64

	// CI95Low and CI95High bound the normal 95% confidence interval of the mean.
	CI95Low  float64
	CI95High float64

	Target       float64
	MeanAbsError float64
}

// Summarize computes the Summary of values against target.
//
// values is not modified. An empty input returns errs.ErrInsufficientData and a
// NaN or infinite value returns errs.ErrInvalidArgument.
func Summarize(values []float64, target float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, fmt.Errorf("%w: no values to summarize", errs.ErrInsufficientData)
	}

	sorted, release := pool.GetFloat64Slice(len(values))
	defer release()
	copy(sorted, values)

	absErr := 0.0
	for i, v := range sorted {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Summary{}, fmt.Errorf("%w: value %d is %g", errs.ErrInvalidArgument, i, v)
		}
		absErr += math.Abs(v - target)
	}

	sample := stats.Sample{Xs: sorted}
	sample.Sort()

	s := Summary{
		Count:        len(values),
		Mean:         sample.Mean(),
		StdDev:       sample.StdDev(),
		Q1:           sample.Quantile(0.25),
		Median:       sample.Quantile(0.5),
		Q3:           sample.Quantile(0.75),
		Target:       target,
		MeanAbsError: absErr / float64(len(values)),
	}
	s.Min, s.Max = sample.Bounds()
	s.IQR = s.Q3 - s.Q1

	if s.Count < 2 || math.IsNaN(s.StdDev) {
		s.StdDev = 0
	}
	half := z95 * s.StdDev / math.Sqrt(float64(s.Count))
	s.CI95Low = s.Mean - half
	s.CI95High = s.Mean + half

	lowFence := s.Q1 - whiskerFactor*s.IQR
	highFence := s.Q3 + whiskerFactor*s.IQR
	s.LowerWhisker, s.UpperWhisker = s.Max, s.Min
	for _, v := range sample.Xs {
		if v < lowFence || v > highFence {
			s.Outliers = append(s.Outliers, v)
			continue
		}
		s.LowerWhisker = min(s.LowerWhisker, v)
		s.UpperWhisker = max(s.UpperWhisker, v)
	}

	return s, nil
}

// TierSummary is the Summary of the final estimates of one tier.
type TierSummary struct {
	SampleSize int
	Summary
}

// SummarizeTiers summarizes the final estimates of every tier of res, in tier order.
func SummarizeTiers(res *montecarlo.Results, target float64) ([]TierSummary, error) {
	if res == nil {
		return nil, fmt.Errorf("%w: nil results", errs.ErrInvalidArgument)
	}

	out := make([]TierSummary, 0, len(res.SampleSizes))
	for _, tier := range res.Tiers() {
		s, err := Summarize(tier.Finals(), target)
		if err != nil {
			return nil, fmt.Errorf("tier %d: %w", tier.SampleSize, err)
		}
		out = append(out, TierSummary{SampleSize: tier.SampleSize, Summary: s})
	}

	return out, nil
}
