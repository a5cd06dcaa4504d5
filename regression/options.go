package regression

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/montepi/errs"
	"github.com/arloliu/montepi/internal/options"
)

// AnalyzeConfig holds the parameters of a convergence analysis.
type AnalyzeConfig struct {
	// Target is the true value the estimates converge to.
	Target float64
	// Checkpoints overrides the default log-spaced N values. Values larger
	// than the tier size are ignored.
	Checkpoints []int
}

func defaultAnalyzeConfig() AnalyzeConfig {
	return AnalyzeConfig{Target: math.Pi}
}

// AnalyzeOption is a functional option for AnalyzeConfig.
type AnalyzeOption = options.Option[*AnalyzeConfig]

// WithTarget sets the value errors are measured against. Defaults to π.
func WithTarget(target float64) AnalyzeOption {
	return options.New(func(cfg *AnalyzeConfig) error {
		if math.IsNaN(target) || math.IsInf(target, 0) {
			return fmt.Errorf("%w: target %g must be finite", errs.ErrInvalidArgument, target)
		}
		cfg.Target = target

		return nil
	})
}

// WithCheckpoints sets explicit N values to measure the error at.
func WithCheckpoints(checkpoints ...int) AnalyzeOption {
	return options.New(func(cfg *AnalyzeConfig) error {
		for _, n := range checkpoints {
			if n <= 0 {
				return fmt.Errorf("%w: checkpoint %d must be positive", errs.ErrInvalidArgument, n)
			}
		}
		cp := slices.Clone(checkpoints)
		slices.Sort(cp)
		cfg.Checkpoints = slices.Compact(cp)

		return nil
	})
}
