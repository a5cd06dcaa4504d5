package montecarlo

import (
	"fmt"
	"math"

	"github.com/arloliu/montepi/errs"
)

// Point is a sampled coordinate pair.
type Point struct {
	X, Y float64
}

// PointSet is an ordered sequence of points. The order defines how the
// cumulative estimate grows.
type PointSet []Point

// Bounds is the half-open interval [Low, High) each coordinate is drawn from.
type Bounds struct {
	Low, High float64
}

// DefaultBounds is the unit interval [0, 1).
var DefaultBounds = Bounds{Low: 0, High: 1}

// Validate reports whether b is a finite, non-empty interval whose width is
// also finite.
func (b Bounds) Validate() error {
	if !isFinite(b.Low) || !isFinite(b.High) {
		return fmt.Errorf("%w: bounds [%g, %g) must be finite", errs.ErrInvalidArgument, b.Low, b.High)
	}
	if b.Low >= b.High {
		return fmt.Errorf("%w: bounds low %g must be below high %g", errs.ErrInvalidArgument, b.Low, b.High)
	}
	if !isFinite(b.Width()) {
		return fmt.Errorf("%w: bounds %s are too wide to sample", errs.ErrInvalidArgument, b)
	}

	return nil
}

// Contains reports whether v lies in [Low, High).
func (b Bounds) Contains(v float64) bool {
	return v >= b.Low && v < b.High
}

// Width returns High - Low.
func (b Bounds) Width() float64 {
	return b.High - b.Low
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%g, %g)", b.Low, b.High)
}

// ClassifiedPoint is a point annotated with its quarter-circle membership.
type ClassifiedPoint struct {
	Point
	Inside bool
}

// ClassifiedSet is a PointSet annotated by Classify, in the same order.
type ClassifiedSet []ClassifiedPoint

// InsideCount returns the number of points inside the quarter circle.
func (s ClassifiedSet) InsideCount() int {
	n := 0
	for _, p := range s {
		if p.Inside {
			n++
		}
	}

	return n
}

// Points returns the coordinates without annotations.
func (s ClassifiedSet) Points() PointSet {
	out := make(PointSet, len(s))
	for i, p := range s {
		out[i] = p.Point
	}

	return out
}

// Split separates the points into inside and outside sets, preserving order.
// This is the shape a scatter plot usually wants.
func (s ClassifiedSet) Split() (inside, outside PointSet) {
	inside = make(PointSet, 0, len(s))
	outside = make(PointSet, 0, len(s)/4)
	for _, p := range s {
		if p.Inside {
			inside = append(inside, p.Point)
		} else {
			outside = append(outside, p.Point)
		}
	}

	return inside, outside
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
