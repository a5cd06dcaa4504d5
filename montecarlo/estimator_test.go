package montecarlo

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/montepi/errs"
)

func TestIsInside(t *testing.T) {
	tests := []struct {
		name   string
		point  Point
		radius float64
		want   bool
	}{
		{name: "origin", point: Point{0, 0}, radius: 1, want: true},
		{name: "top boundary", point: Point{0, 1}, radius: 1, want: true},
		{name: "right boundary", point: Point{1, 0}, radius: 1, want: true},
		{name: "top boundary r2", point: Point{0, 2}, radius: 2, want: true},
		{name: "right boundary r2", point: Point{2, 0}, radius: 2, want: true},
		{name: "just above", point: Point{0, math.Nextafter(1, 2)}, radius: 1, want: false},
		{name: "corner", point: Point{0.9, 0.9}, radius: 1, want: false},
		{name: "x beyond radius", point: Point{1.5, 0}, radius: 1, want: false},
		{name: "x beyond small radius", point: Point{0.6, 0.1}, radius: 0.5, want: false},
		{name: "interior", point: Point{0.5, 0.5}, radius: 1, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsInside(tt.point, tt.radius))
		})
	}
}

func TestClassify_DoesNotMutateInput(t *testing.T) {
	points := PointSet{{0.5, 0.5}, {0.9, 0.9}, {0.1, 0.1}}
	original := slices.Clone(points)

	classified, err := Classify(points, 1)
	require.NoError(t, err)
	require.Equal(t, original, points)
	require.Equal(t, original, classified.Points())

	classified[0].X = 42
	require.Equal(t, original, points)
}

func TestClassify_InvalidRadius(t *testing.T) {
	for _, r := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := Classify(PointSet{{0.1, 0.1}}, r)
		require.ErrorIs(t, err, errs.ErrInvalidArgument, "radius %v", r)
	}
}

func TestClassify_Empty(t *testing.T) {
	classified, err := Classify(PointSet{}, 1)
	require.NoError(t, err)
	require.Empty(t, classified)
}

func TestEstimateSeries_FourPoints(t *testing.T) {
	points := PointSet{{0.1, 0.1}, {0.9, 0.9}, {0.5, 0.4}, {0.99, 0.99}}
	classified, err := Classify(points, 1)
	require.NoError(t, err)

	inside := make([]bool, len(classified))
	for i, p := range classified {
		inside[i] = p.Inside
	}
	require.Equal(t, []bool{true, false, true, false}, inside)

	series := EstimateSeries(classified)
	require.Len(t, series, 4)
	require.InDelta(t, 4.0, series[0], 1e-12)
	require.InDelta(t, 2.0, series[1], 1e-12)
	require.InDelta(t, 8.0/3.0, series[2], 1e-12)
	require.InDelta(t, 2.0, series[3], 1e-12)
}

func TestEstimateSeries_Empty(t *testing.T) {
	series := EstimateSeries(nil)
	require.Empty(t, series)

	_, ok := series.Final()
	require.False(t, ok)
}

func TestEstimateSeries_FinalMatchesInsideRatio(t *testing.T) {
	points, err := NewSampler(11).Generate(2500, DefaultBounds)
	require.NoError(t, err)
	classified, err := Classify(points, 1)
	require.NoError(t, err)

	series := EstimateSeries(classified)
	require.Len(t, series, len(points))

	final, ok := series.Final()
	require.True(t, ok)
	require.InDelta(t, 4*float64(classified.InsideCount())/float64(len(points)), final, 1e-12)
}

func TestEstimateSeries_PrefixTruncation(t *testing.T) {
	points, err := NewSampler(3).Generate(300, DefaultBounds)
	require.NoError(t, err)
	classified, err := Classify(points, 1)
	require.NoError(t, err)

	full := EstimateSeries(classified)
	for _, k := range []int{1, 2, 17, 150, 299, 300} {
		prefix := EstimateSeries(classified[:k])
		require.Equal(t, []float64(full[:k]), []float64(prefix), "k=%d", k)

		at, ok := full.At(k)
		require.True(t, ok)
		require.InDelta(t, 4*float64(classified[:k].InsideCount())/float64(k), at, 1e-12)
	}

	_, ok := full.At(0)
	require.False(t, ok)
	_, ok = full.At(301)
	require.False(t, ok)
}

func TestEstimateSeries_Accuracy(t *testing.T) {
	points, err := NewSampler(20240601).Generate(100_000, DefaultBounds)
	require.NoError(t, err)
	classified, err := Classify(points, 1)
	require.NoError(t, err)

	final, ok := EstimateSeries(classified).Final()
	require.True(t, ok)
	require.InDelta(t, math.Pi, final, 0.05)
}

func BenchmarkEstimateSeries(b *testing.B) {
	points, err := NewSampler(1).Generate(100_000, DefaultBounds)
	require.NoError(b, err)
	classified, err := Classify(points, 1)
	require.NoError(b, err)

	b.ReportAllocs()
	for b.Loop() {
		_ = EstimateSeries(classified)
	}
}

func BenchmarkClassify(b *testing.B) {
	points, err := NewSampler(1).Generate(100_000, DefaultBounds)
	require.NoError(b, err)

	b.ReportAllocs()
	for b.Loop() {
		_, _ = Classify(points, 1)
	}
}
