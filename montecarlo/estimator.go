package montecarlo

import (
	"fmt"
	"math"

	"github.com/arloliu/montepi/errs"
)

// DefaultRadius is the radius of the reference quarter circle.
const DefaultRadius = 1.0

// Series holds running π estimates; element k-1 uses only the first k points.
type Series []float64

// Final returns the estimate over all points, or false for an empty series.
func (s Series) Final() (float64, bool) {
	if len(s) == 0 {
		return 0, false
	}

	return s[len(s)-1], true
}

// At returns the estimate over the first k points (1-indexed).
func (s Series) At(k int) (float64, bool) {
	if k < 1 || k > len(s) {
		return 0, false
	}

	return s[k-1], true
}

// IsInside applies the quarter-circle membership test to a single point.
//
// The boundary is inclusive. When x > r the square-root argument is negative
// and the point is outside; no NaN escapes.
func IsInside(p Point, r float64) bool {
	if p.X > r {
		return false
	}

	rem := r*r - p.X*p.X
	if rem < 0 {
		return false
	}

	return p.Y <= math.Sqrt(rem)
}

// Classify annotates every point with its quarter-circle membership for radius r.
//
// The input is not modified; a new ClassifiedSet in the same order is returned.
// r must be positive and finite.
func Classify(points PointSet, r float64) (ClassifiedSet, error) {
	if err := validateRadius(r); err != nil {
		return nil, err
	}

	out := make(ClassifiedSet, len(points))
	for i, p := range points {
		out[i] = ClassifiedPoint{Point: p, Inside: IsInside(p, r)}
	}

	return out, nil
}

// EstimateSeries computes 4·inside/k for every prefix length k of points.
//
// The inside count is carried forward, so the cost is linear in len(points).
// An empty set yields an empty series.
func EstimateSeries(points ClassifiedSet) Series {
	series := make(Series, len(points))

	inside := 0
	for i, p := range points {
		if p.Inside {
			inside++
		}
		series[i] = 4 * float64(inside) / float64(i+1)
	}

	return series
}

func validateRadius(r float64) error {
	if !isFinite(r) || r <= 0 {
		return fmt.Errorf("%w: radius %g must be positive and finite", errs.ErrInvalidArgument, r)
	}

	return nil
}
