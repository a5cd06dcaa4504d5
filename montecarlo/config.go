package montecarlo

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"go.uber.org/zap"

	"github.com/arloliu/montepi/errs"
	"github.com/arloliu/montepi/internal/collision"
	"github.com/arloliu/montepi/internal/hash"
	"github.com/arloliu/montepi/internal/options"
)

// Defaults used by NewConfig and DefaultConfig.
const (
	DefaultAttempts = 5
)

// DefaultSampleSizes are the tiers run when none are configured.
var DefaultSampleSizes = []int{100, 1000, 10000}

// Config describes one trial run.
type Config struct {
	// SampleSizes lists the tiers in the order they are run. Each must be
	// positive and unique.
	SampleSizes []int
	// Attempts is the number of independent trials per tier.
	Attempts int
	// Radius of the reference quarter circle.
	Radius float64
	// Bounds each coordinate is drawn from.
	Bounds Bounds
	// Seed is the run seed every trial seed is derived from.
	Seed uint64
	// Logger receives debug records per tier. Nil disables logging.
	Logger *zap.Logger
}

// Option configures a Config.
type Option = options.Option[*Config]

var _ options.Validator = (*Config)(nil)

// DefaultConfig returns the documented defaults with a freshly drawn random seed.
func DefaultConfig() Config {
	return Config{
		SampleSizes: slices.Clone(DefaultSampleSizes),
		Attempts:    DefaultAttempts,
		Radius:      DefaultRadius,
		Bounds:      DefaultBounds,
		Seed:        rand.Uint64(), //nolint:gosec // seeds a simulation, not a secret
	}
}

// NewConfig applies opts on top of DefaultConfig and validates the result.
func NewConfig(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	if err := options.ApplyAndValidate(&cfg, opts...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// WithSampleSizes sets the tiers, in run order.
func WithSampleSizes(sizes ...int) Option {
	return options.NoError(func(c *Config) {
		c.SampleSizes = slices.Clone(sizes)
	})
}

// WithAttempts sets the number of independent trials per tier.
func WithAttempts(n int) Option {
	return options.NoError(func(c *Config) {
		c.Attempts = n
	})
}

// WithRadius sets the quarter-circle radius.
func WithRadius(r float64) Option {
	return options.NoError(func(c *Config) {
		c.Radius = r
	})
}

// WithBounds sets the sampling interval for both coordinates.
func WithBounds(low, high float64) Option {
	return options.NoError(func(c *Config) {
		c.Bounds = Bounds{Low: low, High: high}
	})
}

// WithSeed fixes the run seed so the whole run is replayable.
func WithSeed(seed uint64) Option {
	return options.NoError(func(c *Config) {
		c.Seed = seed
	})
}

// WithLogger attaches a logger for per-tier debug records.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(c *Config) {
		c.Logger = logger
	})
}

// Validate checks every field and returns an error wrapping
// errs.ErrInvalidArgument for the first invalid one.
func (c *Config) Validate() error {
	if len(c.SampleSizes) == 0 {
		return fmt.Errorf("%w: at least one sample size is required", errs.ErrInvalidArgument)
	}

	seen := make(map[int]struct{}, len(c.SampleSizes))
	for _, size := range c.SampleSizes {
		if size <= 0 {
			return fmt.Errorf("%w: sample size %d must be positive", errs.ErrInvalidArgument, size)
		}
		if _, dup := seen[size]; dup {
			return fmt.Errorf("%w: sample size %d listed more than once", errs.ErrInvalidArgument, size)
		}
		seen[size] = struct{}{}
	}

	if c.Attempts < 1 {
		return fmt.Errorf("%w: attempts %d must be at least 1", errs.ErrInvalidArgument, c.Attempts)
	}

	if err := validateRadius(c.Radius); err != nil {
		return err
	}

	return c.Bounds.Validate()
}

// Trials enumerates the independent units of work of this run, tier by tier.
//
// Every trial gets a distinct seed; a derived seed that is already taken is
// remixed until it is free, so the result stays a pure function of the run seed.
func (c *Config) Trials() []Trial {
	return c.trials(hash.TrialSeed)
}

// seedFunc derives the seed of one trial from the run seed.
type seedFunc func(runSeed uint64, sampleSize, attempt int) uint64

func (c *Config) trials(derive seedFunc) []Trial {
	logger := c.logger()
	n := len(c.SampleSizes) * max(c.Attempts, 0)
	trials := make([]Trial, 0, n)
	seeds := collision.NewTracker(n)

	for _, size := range c.SampleSizes {
		for attempt := range c.Attempts {
			t := Trial{SampleSize: size, Attempt: attempt, Seed: derive(c.Seed, size, attempt)}
			for !seeds.Track(t.Seed, collision.Key{SampleSize: size, Attempt: attempt}) {
				owner, _ := seeds.Owner(t.Seed)
				logger.Debug("remixing colliding trial seed",
					zap.Int("sample_size", size),
					zap.Int("attempt", attempt),
					zap.Int("owner_sample_size", owner.SampleSize),
					zap.Int("owner_attempt", owner.Attempt),
				)
				t.Seed = hash.Remix(t.Seed)
			}
			trials = append(trials, t)
		}
	}

	if n := seeds.Collisions(); n > 0 {
		logger.Debug("trial seeds remixed", zap.Int("collisions", n))
	}

	return trials
}

func (c *Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}

	return c.Logger
}
