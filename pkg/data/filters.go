package data

import (
	"fmt"
	"time"

	"github.com/quantfold/gridsim/pkg/types"
)

// DefaultFilter implements Filter for the common narrowing operations.
type DefaultFilter struct{}

// NewDefaultFilter creates a new default filter.
func NewDefaultFilter() *DefaultFilter {
	return &DefaultFilter{}
}

// FilterByDateRange keeps bars whose timestamps fall inside [start, end].
// A zero start or end leaves that side of the range open.
func (f *DefaultFilter) FilterByDateRange(bars []types.OHLCV, start, end time.Time) []types.OHLCV {
	if len(bars) == 0 {
		return bars
	}

	var filtered []types.OHLCV
	for _, bar := range bars {
		if !start.IsZero() && bar.Timestamp.Before(start) {
			continue
		}
		if !end.IsZero() && bar.Timestamp.After(end) {
			continue
		}
		filtered = append(filtered, bar)
	}

	return filtered
}

// ValidateTimeSequence ensures bars are in strictly increasing time order.
func (f *DefaultFilter) ValidateTimeSequence(bars []types.OHLCV) error {
	if len(bars) <= 1 {
		return nil
	}

	for i := 1; i < len(bars); i++ {
		if bars[i].Timestamp.Before(bars[i-1].Timestamp) {
			return fmt.Errorf("bars not in chronological order at index %d: %s comes after %s",
				i, bars[i].Timestamp.Format(time.RFC3339), bars[i-1].Timestamp.Format(time.RFC3339))
		}
		if bars[i].Timestamp.Equal(bars[i-1].Timestamp) {
			return fmt.Errorf("duplicate timestamp at index %d: %s",
				i, bars[i].Timestamp.Format(time.RFC3339))
		}
	}

	return nil
}
