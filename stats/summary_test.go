package stats

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/montepi/errs"
	"github.com/arloliu/montepi/montecarlo"
)

func TestSummarize(t *testing.T) {
	values := []float64{3.2, 3.0, 3.1, 3.3, 3.14}
	original := slices.Clone(values)

	s, err := Summarize(values, math.Pi)
	require.NoError(t, err)
	require.Equal(t, original, values, "input must not be reordered")

	require.Equal(t, 5, s.Count)
	require.InDelta(t, 3.148, s.Mean, 1e-12)
	require.InDelta(t, 3.0, s.Min, 0)
	require.InDelta(t, 3.3, s.Max, 0)
	require.InDelta(t, 3.14, s.Median, 0)
	require.LessOrEqual(t, s.Min, s.Q1)
	require.LessOrEqual(t, s.Q1, s.Median)
	require.LessOrEqual(t, s.Median, s.Q3)
	require.LessOrEqual(t, s.Q3, s.Max)
	require.InDelta(t, s.Q3-s.Q1, s.IQR, 1e-12)
	require.Empty(t, s.Outliers)
	require.InDelta(t, s.Min, s.LowerWhisker, 0)
	require.InDelta(t, s.Max, s.UpperWhisker, 0)

	// sample standard deviation of the values above
	var ss float64
	for _, v := range values {
		ss += (v - 3.148) * (v - 3.148)
	}
	require.InDelta(t, math.Sqrt(ss/4), s.StdDev, 1e-9)

	require.Less(t, s.CI95Low, s.Mean)
	require.Greater(t, s.CI95High, s.Mean)
	require.InDelta(t, s.Mean-s.CI95Low, s.CI95High-s.Mean, 1e-12)

	var abs float64
	for _, v := range values {
		abs += math.Abs(v - math.Pi)
	}
	require.InDelta(t, abs/5, s.MeanAbsError, 1e-12)
	require.InDelta(t, math.Pi, s.Target, 0)
}

func TestSummarize_Outliers(t *testing.T) {
	values := []float64{3.14, 3.13, 3.15, 3.14, 3.16, 3.12, 3.14, 10, -5}

	s, err := Summarize(values, math.Pi)
	require.NoError(t, err)

	require.Equal(t, []float64{-5, 10}, s.Outliers)
	require.InDelta(t, 3.12, s.LowerWhisker, 0)
	require.InDelta(t, 3.16, s.UpperWhisker, 0)
	require.InDelta(t, -5.0, s.Min, 0)
	require.InDelta(t, 10.0, s.Max, 0)
	require.InDelta(t, 3.14, s.Median, 0)
}

func TestSummarize_SingleValue(t *testing.T) {
	s, err := Summarize([]float64{4}, math.Pi)
	require.NoError(t, err)

	require.Equal(t, 1, s.Count)
	require.InDelta(t, 4.0, s.Mean, 0)
	require.Zero(t, s.StdDev)
	require.InDelta(t, 4.0, s.Median, 0)
	require.InDelta(t, 4.0, s.CI95Low, 0)
	require.InDelta(t, 4.0, s.CI95High, 0)
	require.InDelta(t, 4-math.Pi, s.MeanAbsError, 1e-12)
	require.Empty(t, s.Outliers)
}

func TestSummarize_Invalid(t *testing.T) {
	_, err := Summarize(nil, math.Pi)
	require.ErrorIs(t, err, errs.ErrInsufficientData)

	_, err = Summarize([]float64{1, math.NaN()}, math.Pi)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = Summarize([]float64{math.Inf(-1)}, math.Pi)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestSummarizeTiers(t *testing.T) {
	cfg, err := montecarlo.NewConfig(
		montecarlo.WithSampleSizes(1000, 100),
		montecarlo.WithAttempts(5),
		montecarlo.WithSeed(17),
	)
	require.NoError(t, err)
	res, err := montecarlo.RunTrials(cfg)
	require.NoError(t, err)

	tiers, err := SummarizeTiers(res, math.Pi)
	require.NoError(t, err)
	require.Len(t, tiers, 2)

	require.Equal(t, 1000, tiers[0].SampleSize)
	require.Equal(t, 100, tiers[1].SampleSize)
	for _, tier := range tiers {
		require.Equal(t, 5, tier.Count)
		require.InDelta(t, math.Pi, tier.Mean, 0.5)

		finals := res.Finals(tier.SampleSize)
		require.InDelta(t, slices.Min(finals), tier.Min, 0)
		require.InDelta(t, slices.Max(finals), tier.Max, 0)
	}

	_, err = SummarizeTiers(nil, math.Pi)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func BenchmarkSummarize(b *testing.B) {
	values := make([]float64, 1000)
	for i := range values {
		values[i] = math.Pi + math.Sin(float64(i))/10
	}

	b.ReportAllocs()
	for b.Loop() {
		_, _ = Summarize(values, math.Pi)
	}
}
