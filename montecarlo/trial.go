package montecarlo

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/arloliu/montepi/errs"
)

// Trial is one generate → classify → estimate run for a fixed sample size.
//
// A Trial carries its own seed and shares no state with other trials, so trials
// can run in any order.
type Trial struct {
	SampleSize int
	Attempt    int
	Seed       uint64
}

// TrialOutcome is the result of running a Trial.
type TrialOutcome struct {
	Trial
	// Points is the classified sample in draw order.
	Points ClassifiedSet
	// Series holds SampleSize running estimates.
	Series Series
}

// Run executes the trial against the given radius and bounds.
func (t Trial) Run(radius float64, bounds Bounds) (TrialOutcome, error) {
	points, err := NewSampler(t.Seed).Generate(t.SampleSize, bounds)
	if err != nil {
		return TrialOutcome{}, err
	}

	classified, err := Classify(points, radius)
	if err != nil {
		return TrialOutcome{}, err
	}

	return TrialOutcome{
		Trial:  t,
		Points: classified,
		Series: EstimateSeries(classified),
	}, nil
}

// TrialCollection holds the series of every attempt of one tier.
type TrialCollection struct {
	SampleSize int
	Series     []Series
}

// Finals returns the last estimate of every series, in attempt order.
func (c TrialCollection) Finals() []float64 {
	finals := make([]float64, 0, len(c.Series))
	for _, s := range c.Series {
		if v, ok := s.Final(); ok {
			finals = append(finals, v)
		}
	}

	return finals
}

// Results is everything a run hands to the visualization side.
type Results struct {
	// Seed is the run seed; passing it to WithSeed replays the run.
	Seed   uint64
	Radius float64
	Bounds Bounds
	// SampleSizes lists the tiers in run order.
	SampleSizes []int
	// Trials maps each sample size to its attempts.
	Trials map[int]TrialCollection
	// Scatter is the classified sample of the first attempt of the largest tier.
	Scatter ClassifiedSet
}

// Collection returns the attempts of one tier.
func (r *Results) Collection(size int) (TrialCollection, bool) {
	c, ok := r.Trials[size]
	return c, ok
}

// Tiers returns the collections in run order.
func (r *Results) Tiers() []TrialCollection {
	tiers := make([]TrialCollection, 0, len(r.SampleSizes))
	for _, size := range r.SampleSizes {
		if c, ok := r.Trials[size]; ok {
			tiers = append(tiers, c)
		}
	}

	return tiers
}

// LargestSize returns the largest tier size, or 0 when there are no tiers.
func (r *Results) LargestSize() int {
	if len(r.SampleSizes) == 0 {
		return 0
	}

	return slices.Max(r.SampleSizes)
}

// Convergence returns every series of the largest tier, for convergence plots.
func (r *Results) Convergence() []Series {
	return r.Trials[r.LargestSize()].Series
}

// Finals returns the final estimate of every attempt of one tier, for box plots.
func (r *Results) Finals(size int) []float64 {
	return r.Trials[size].Finals()
}

// Validate reports whether r has the shape RunTrials produces: a valid radius
// and bounds, at least one tier, every tier holding at least one series of
// exactly SampleSize estimates in [0, 4], and a Scatter that is either absent
// or a classified sample of the largest tier's size drawn from Bounds.
//
// Errors wrap errs.ErrInvalidArgument.
func (r *Results) Validate() error {
	if err := validateRadius(r.Radius); err != nil {
		return err
	}
	if err := r.Bounds.Validate(); err != nil {
		return err
	}
	if len(r.SampleSizes) == 0 {
		return fmt.Errorf("%w: results hold no tiers", errs.ErrInvalidArgument)
	}
	if len(r.Trials) != len(r.SampleSizes) {
		return fmt.Errorf("%w: %d tiers listed but %d collections present",
			errs.ErrInvalidArgument, len(r.SampleSizes), len(r.Trials))
	}

	seen := make(map[int]struct{}, len(r.SampleSizes))
	for _, size := range r.SampleSizes {
		if size <= 0 {
			return fmt.Errorf("%w: sample size %d must be positive", errs.ErrInvalidArgument, size)
		}
		if _, dup := seen[size]; dup {
			return fmt.Errorf("%w: sample size %d listed more than once", errs.ErrInvalidArgument, size)
		}
		seen[size] = struct{}{}
		c, ok := r.Trials[size]
		if !ok {
			return fmt.Errorf("%w: tier %d has no collection", errs.ErrInvalidArgument, size)
		}
		if c.SampleSize != size {
			return fmt.Errorf("%w: tier %d holds a collection for %d", errs.ErrInvalidArgument, size, c.SampleSize)
		}
		if len(c.Series) == 0 {
			return fmt.Errorf("%w: tier %d has no attempts", errs.ErrInvalidArgument, size)
		}
		for attempt, s := range c.Series {
			if len(s) != size {
				return fmt.Errorf("%w: tier %d attempt %d has %d estimates",
					errs.ErrInvalidArgument, size, attempt, len(s))
			}
			for k, v := range s {
				if !(v >= 0 && v <= 4) {
					return fmt.Errorf("%w: tier %d attempt %d estimate %d is %g, outside [0, 4]",
						errs.ErrInvalidArgument, size, attempt, k, v)
				}
			}
		}
	}

	if len(r.Scatter) == 0 {
		return nil
	}
	if largest := r.LargestSize(); len(r.Scatter) != largest {
		return fmt.Errorf("%w: scatter has %d points, largest tier has %d",
			errs.ErrInvalidArgument, len(r.Scatter), largest)
	}
	for i, p := range r.Scatter {
		if !r.Bounds.Contains(p.X) || !r.Bounds.Contains(p.Y) {
			return fmt.Errorf("%w: scatter point %d (%g, %g) lies outside %s",
				errs.ErrInvalidArgument, i, p.X, p.Y, r.Bounds)
		}
		if p.Inside != IsInside(p.Point, r.Radius) {
			return fmt.Errorf("%w: scatter point %d is misclassified", errs.ErrInvalidArgument, i)
		}
	}

	return nil
}

// RunTrials runs cfg.Attempts independent trials for every tier of cfg.
//
// The configuration is validated first; on error no trial runs and no partial
// results are returned.
func RunTrials(cfg Config) (*Results, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.logger()
	largest := slices.Max(cfg.SampleSizes)

	res := &Results{
		Seed:        cfg.Seed,
		Radius:      cfg.Radius,
		Bounds:      cfg.Bounds,
		SampleSizes: slices.Clone(cfg.SampleSizes),
		Trials:      make(map[int]TrialCollection, len(cfg.SampleSizes)),
	}

	logger.Debug("starting trial run",
		zap.Uint64("seed", cfg.Seed),
		zap.Ints("sample_sizes", cfg.SampleSizes),
		zap.Int("attempts", cfg.Attempts),
		zap.Float64("radius", cfg.Radius),
		zap.Stringer("bounds", cfg.Bounds),
	)

	for _, trial := range cfg.Trials() {
		outcome, err := trial.Run(cfg.Radius, cfg.Bounds)
		if err != nil {
			return nil, fmt.Errorf("trial size=%d attempt=%d: %w", trial.SampleSize, trial.Attempt, err)
		}

		collection := res.Trials[trial.SampleSize]
		collection.SampleSize = trial.SampleSize
		collection.Series = append(collection.Series, outcome.Series)
		res.Trials[trial.SampleSize] = collection

		if trial.SampleSize == largest && trial.Attempt == 0 {
			res.Scatter = outcome.Points
		}

		if trial.Attempt == cfg.Attempts-1 {
			finals := collection.Finals()
			logger.Debug("tier complete",
				zap.Int("sample_size", trial.SampleSize),
				zap.Int("attempts", len(collection.Series)),
				zap.Float64s("finals", finals),
			)
		}
	}

	return res, nil
}
