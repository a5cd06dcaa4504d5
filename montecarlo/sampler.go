package montecarlo

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/arloliu/montepi/errs"
)

// pcgStream is the fixed PCG increment selector; the seed alone identifies a stream.
const pcgStream = 0xda3e39cb94b95bdb

// Sampler draws uniformly distributed points from its own random stream.
//
// A Sampler is not safe for concurrent use; give each trial its own.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler whose stream is fully determined by seed.
func NewSampler(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(seed, pcgStream))}
}

// Generate returns n points with both coordinates drawn independently and
// uniformly from bounds.
//
// n == 0 yields an empty, non-nil PointSet. A negative n or invalid bounds
// return an error wrapping errs.ErrInvalidArgument.
func (s *Sampler) Generate(n int, bounds Bounds) (PointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: point count %d must not be negative", errs.ErrInvalidArgument, n)
	}
	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	points := make(PointSet, n)
	for i := range points {
		points[i] = Point{
			X: s.uniform(bounds),
			Y: s.uniform(bounds),
		}
	}

	return points, nil
}

// uniform draws from [Low, High). Rounding in Low + Width·u can land exactly on
// High for wide or offset bounds, so the result is pulled back below it.
func (s *Sampler) uniform(b Bounds) float64 {
	v := b.Low + b.Width()*s.rng.Float64()
	if v >= b.High {
		v = math.Nextafter(b.High, b.Low)
	}

	return v
}
