package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Low, High float64
	Name      string
	calls     []string
}

func (c *testConfig) Validate() error {
	if c.Low >= c.High {
		return errors.New("low must be below high")
	}

	return nil
}

func withLow(v float64) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.Low = v
		c.calls = append(c.calls, "low")
	})
}

func withHigh(v float64) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.High = v
		c.calls = append(c.calls, "high")
	})
}

func withName(name string) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if name == "" {
			return errors.New("name cannot be empty")
		}
		c.Name = name
		c.calls = append(c.calls, "name")

		return nil
	})
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withLow(1), withHigh(2), withName("tier"))
		require.NoError(t, err)
		require.Equal(t, []string{"low", "high", "name"}, cfg.calls)
		require.Equal(t, "tier", cfg.Name)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withLow(1), withName(""), withHigh(2))
		require.Error(t, err)
		require.Contains(t, err.Error(), "name cannot be empty")
		require.Equal(t, []string{"low"}, cfg.calls)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg))
		require.Empty(t, cfg.calls)
	})
}

func TestApplyAndValidate(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, ApplyAndValidate(cfg, withLow(0), withHigh(1)))

	cfg = &testConfig{}
	err := ApplyAndValidate(cfg, withLow(1), withHigh(1))
	require.EqualError(t, err, "low must be below high")

	cfg = &testConfig{}
	err = ApplyAndValidate(cfg, withName(""))
	require.EqualError(t, err, "name cannot be empty")
}
