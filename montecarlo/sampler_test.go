package montecarlo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/montepi/errs"
)

func TestSamplerGenerate_WithinBounds(t *testing.T) {
	tests := []struct {
		name   string
		bounds Bounds
	}{
		{name: "unit", bounds: DefaultBounds},
		{name: "offset", bounds: Bounds{Low: -2, High: 3}},
		{name: "narrow", bounds: Bounds{Low: 1e6, High: 1e6 + 1e-3}},
		{name: "widest finite", bounds: Bounds{Low: -math.MaxFloat64 / 2, High: math.MaxFloat64 / 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := NewSampler(7).Generate(5000, tt.bounds)
			require.NoError(t, err)
			require.Len(t, points, 5000)

			for _, p := range points {
				require.True(t, tt.bounds.Contains(p.X), "x=%v outside %v", p.X, tt.bounds)
				require.True(t, tt.bounds.Contains(p.Y), "y=%v outside %v", p.Y, tt.bounds)
			}
		})
	}
}

func TestSamplerGenerate_Zero(t *testing.T) {
	points, err := NewSampler(1).Generate(0, DefaultBounds)
	require.NoError(t, err)
	require.NotNil(t, points)
	require.Empty(t, points)
}

func TestSamplerGenerate_InvalidArguments(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		bounds Bounds
	}{
		{name: "negative count", n: -1, bounds: DefaultBounds},
		{name: "empty bounds", n: 10, bounds: Bounds{Low: 1, High: 1}},
		{name: "reversed bounds", n: 10, bounds: Bounds{Low: 1, High: 0}},
		{name: "width overflows", n: 3, bounds: Bounds{Low: -math.MaxFloat64, High: math.MaxFloat64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := NewSampler(1).Generate(tt.n, tt.bounds)
			require.ErrorIs(t, err, errs.ErrInvalidArgument)
			require.Nil(t, points)
		})
	}
}

func TestSamplerGenerate_Deterministic(t *testing.T) {
	a, err := NewSampler(99).Generate(100, DefaultBounds)
	require.NoError(t, err)
	b, err := NewSampler(99).Generate(100, DefaultBounds)
	require.NoError(t, err)
	c, err := NewSampler(100).Generate(100, DefaultBounds)
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}

func TestSamplerGenerate_StreamContinues(t *testing.T) {
	s := NewSampler(5)
	first, err := s.Generate(10, DefaultBounds)
	require.NoError(t, err)
	second, err := s.Generate(10, DefaultBounds)
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}
