package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	c := &Config{Symbols: []string{"NVDA"}}
	c.ApplyDefaults()
	return c
}

// TestConfig_ApplyDefaults tests that zero values pick up the documented
// defaults and set values survive.
func TestConfig_ApplyDefaults(t *testing.T) {
	c := &Config{Symbols: []string{"NVDA"}, InitialCash: 250000}
	c.ApplyDefaults()

	assert.Equal(t, 250000.0, c.InitialCash)
	assert.Equal(t, DefaultGridSpacing, c.GridSpacing)
	assert.Equal(t, DefaultMaxGridOrders, c.MaxGridOrders)
	assert.Equal(t, DefaultATRPeriod, c.ATRPeriod)
	assert.Equal(t, DefaultRiskFreeRate, c.RiskFreeRate)
	assert.Equal(t, DefaultBenchmarkReturn, c.BenchmarkReturn)
	assert.Equal(t, "data", c.DataRoot)
}

// TestConfig_Validate tests the accept and reject cases.
func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	c := validConfig()
	c.Symbols = nil
	assert.Error(t, c.Validate())

	c = validConfig()
	c.Symbols = []string{"NVDA", ""}
	assert.Error(t, c.Validate())

	c = validConfig()
	c.InitialCash = -1
	assert.Error(t, c.Validate())

	c = validConfig()
	c.GridSpacing = 0
	assert.Error(t, c.Validate())

	c = validConfig()
	c.ATRPeriod = 0
	assert.Error(t, c.Validate())

	c = validConfig()
	c.RiskFreeRate = -0.01
	assert.Error(t, c.Validate())
}

// TestConfig_Validate_ZeroRungsAllowed tests that an empty grid is a valid
// degenerate configuration rather than an error.
func TestConfig_Validate_ZeroRungsAllowed(t *testing.T) {
	c := validConfig()
	c.MaxGridOrders = 0
	assert.NoError(t, c.Validate())

	c.MaxGridOrders = -3
	assert.NoError(t, c.Validate())
}

// TestConfig_DateRange tests parsing and ordering of the optional range.
func TestConfig_DateRange(t *testing.T) {
	c := validConfig()
	c.StartDate = "2023-01-15"
	c.EndDate = "2023-06-30"

	start, end, err := c.DateRange()
	require.NoError(t, err)
	assert.Equal(t, "2023-01-15", start.Format(DateFormat))
	assert.Equal(t, "2023-06-30", end.Format(DateFormat))
}

// TestConfig_DateRange_OpenEnded tests that missing dates come back zero.
func TestConfig_DateRange_OpenEnded(t *testing.T) {
	start, end, err := validConfig().DateRange()
	require.NoError(t, err)
	assert.True(t, start.IsZero())
	assert.True(t, end.IsZero())
}

// TestConfig_DateRange_Errors tests malformed and inverted ranges.
func TestConfig_DateRange_Errors(t *testing.T) {
	c := validConfig()
	c.StartDate = "15/01/2023"
	_, _, err := c.DateRange()
	assert.Error(t, err)

	c = validConfig()
	c.StartDate = "2023-06-30"
	c.EndDate = "2023-01-15"
	_, _, err = c.DateRange()
	assert.Error(t, err)
}
