package config

import (
	"fmt"
	"time"
)

// Default values for the recognized options.
const (
	DefaultGridSpacing     = 0.1
	DefaultMaxGridOrders   = 30
	DefaultATRPeriod       = 17
	DefaultInitialCash     = 500000.0
	DefaultRiskFreeRate    = 0.05
	DefaultBenchmarkReturn = 0.07
)

// DateFormat is the layout for start_date/end_date fields and flags.
const DateFormat = "2006-01-02"

// Config is the full configuration for a grid backtest run.
type Config struct {
	// Instruments
	Symbols  []string `json:"symbols"`
	DataRoot string   `json:"data_root"`

	// Date range (inclusive); empty means open-ended.
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`

	// Strategy parameters
	InitialCash   float64 `json:"initial_cash"`
	GridSpacing   float64 `json:"grid_spacing"`
	MaxGridOrders int     `json:"max_grid_orders"`
	ATRPeriod     int     `json:"atr_period"`

	// Performance accounting
	RiskFreeRate    float64 `json:"risk_free_rate"`
	BenchmarkReturn float64 `json:"benchmark_return"`
}

// ApplyDefaults fills zero-valued fields with the documented defaults.
func (c *Config) ApplyDefaults() {
	if c.DataRoot == "" {
		c.DataRoot = "data"
	}
	if c.InitialCash == 0 {
		c.InitialCash = DefaultInitialCash
	}
	if c.GridSpacing == 0 {
		c.GridSpacing = DefaultGridSpacing
	}
	if c.MaxGridOrders == 0 {
		c.MaxGridOrders = DefaultMaxGridOrders
	}
	if c.ATRPeriod == 0 {
		c.ATRPeriod = DefaultATRPeriod
	}
	if c.RiskFreeRate == 0 {
		c.RiskFreeRate = DefaultRiskFreeRate
	}
	if c.BenchmarkReturn == 0 {
		c.BenchmarkReturn = DefaultBenchmarkReturn
	}
}

// Validate checks the configuration before a run starts. A non-positive
// rung count is deliberately NOT an error: it has the well-defined
// degenerate meaning of an empty grid table.
func (c *Config) Validate() error {
	if len(c.Symbols) == 0 {
		return fmt.Errorf("at least one symbol is required")
	}
	for _, s := range c.Symbols {
		if s == "" {
			return fmt.Errorf("empty symbol in symbol list")
		}
	}
	if c.InitialCash <= 0 {
		return fmt.Errorf("initial_cash must be positive, got: %f", c.InitialCash)
	}
	if c.GridSpacing <= 0 {
		return fmt.Errorf("grid_spacing must be positive, got: %f", c.GridSpacing)
	}
	if c.ATRPeriod < 1 {
		return fmt.Errorf("atr_period must be at least 1, got: %d", c.ATRPeriod)
	}
	if c.RiskFreeRate < 0 {
		return fmt.Errorf("risk_free_rate must not be negative, got: %f", c.RiskFreeRate)
	}

	if _, _, err := c.DateRange(); err != nil {
		return err
	}
	return nil
}

// DateRange parses the configured date range. Zero times stand for an
// open-ended side.
func (c *Config) DateRange() (start, end time.Time, err error) {
	if c.StartDate != "" {
		start, err = time.Parse(DateFormat, c.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date %q: %w", c.StartDate, err)
		}
	}
	if c.EndDate != "" {
		end, err = time.Parse(DateFormat, c.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date %q: %w", c.EndDate, err)
		}
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date %s precedes start_date %s", c.EndDate, c.StartDate)
	}
	return start, end, nil
}
