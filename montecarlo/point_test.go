package montecarlo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/montepi/errs"
)

func TestBoundsValidate(t *testing.T) {
	tests := []struct {
		name    string
		bounds  Bounds
		wantErr bool
	}{
		{name: "unit", bounds: DefaultBounds},
		{name: "offset", bounds: Bounds{Low: -3, High: 7.5}},
		{name: "empty", bounds: Bounds{Low: 1, High: 1}, wantErr: true},
		{name: "reversed", bounds: Bounds{Low: 2, High: 1}, wantErr: true},
		{name: "nan low", bounds: Bounds{Low: math.NaN(), High: 1}, wantErr: true},
		{name: "inf high", bounds: Bounds{Low: 0, High: math.Inf(1)}, wantErr: true},
		{name: "widest finite", bounds: Bounds{Low: -math.MaxFloat64 / 2, High: math.MaxFloat64 / 2}},
		{name: "width overflows", bounds: Bounds{Low: -math.MaxFloat64, High: math.MaxFloat64}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bounds.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestBoundsContains(t *testing.T) {
	b := DefaultBounds
	require.True(t, b.Contains(0))
	require.True(t, b.Contains(0.999))
	require.False(t, b.Contains(1))
	require.False(t, b.Contains(-0.001))
	require.Equal(t, "[0, 1)", b.String())
	require.InDelta(t, 1.0, b.Width(), 0)
}

func TestClassifiedSetHelpers(t *testing.T) {
	set := ClassifiedSet{
		{Point: Point{X: 0.1, Y: 0.1}, Inside: true},
		{Point: Point{X: 0.9, Y: 0.9}, Inside: false},
		{Point: Point{X: 0.2, Y: 0.3}, Inside: true},
	}

	require.Equal(t, 2, set.InsideCount())
	require.Equal(t, PointSet{{0.1, 0.1}, {0.9, 0.9}, {0.2, 0.3}}, set.Points())

	inside, outside := set.Split()
	require.Equal(t, PointSet{{0.1, 0.1}, {0.2, 0.3}}, inside)
	require.Equal(t, PointSet{{0.9, 0.9}}, outside)
}

func TestClassifiedSetHelpers_Empty(t *testing.T) {
	var set ClassifiedSet

	require.Zero(t, set.InsideCount())
	require.Empty(t, set.Points())

	inside, outside := set.Split()
	require.Empty(t, inside)
	require.Empty(t, outside)
}
