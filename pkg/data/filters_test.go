package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantfold/gridsim/pkg/types"
)

func dailyBars(days int) []types.OHLCV {
	ts := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]types.OHLCV, 0, days)
	for i := 0; i < days; i++ {
		bars = append(bars, types.OHLCV{
			Open: 100, High: 101, Low: 99, Close: 100,
			Timestamp: ts.AddDate(0, 0, i),
		})
	}
	return bars
}

// TestFilterByDateRange_Inclusive tests that both boundary days survive.
func TestFilterByDateRange_Inclusive(t *testing.T) {
	f := NewDefaultFilter()
	bars := dailyBars(10)

	start := time.Date(2023, 1, 4, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 1, 7, 0, 0, 0, 0, time.UTC)

	got := f.FilterByDateRange(bars, start, end)
	require.Len(t, got, 4)
	assert.Equal(t, start, got[0].Timestamp)
	assert.Equal(t, end, got[len(got)-1].Timestamp)
}

// TestFilterByDateRange_OpenEnded tests zero times as open boundaries.
func TestFilterByDateRange_OpenEnded(t *testing.T) {
	f := NewDefaultFilter()
	bars := dailyBars(5)

	assert.Len(t, f.FilterByDateRange(bars, time.Time{}, time.Time{}), 5)

	start := time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)
	assert.Len(t, f.FilterByDateRange(bars, start, time.Time{}), 2)

	end := time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC)
	assert.Len(t, f.FilterByDateRange(bars, time.Time{}, end), 2)
}

// TestValidateTimeSequence tests ordering and duplicate detection.
func TestValidateTimeSequence(t *testing.T) {
	f := NewDefaultFilter()
	bars := dailyBars(5)

	assert.NoError(t, f.ValidateTimeSequence(bars))
	assert.NoError(t, f.ValidateTimeSequence(nil))
	assert.NoError(t, f.ValidateTimeSequence(bars[:1]))

	swapped := append([]types.OHLCV{}, bars...)
	swapped[1], swapped[2] = swapped[2], swapped[1]
	assert.Error(t, f.ValidateTimeSequence(swapped))

	dup := append([]types.OHLCV{}, bars...)
	dup[2].Timestamp = dup[1].Timestamp
	assert.Error(t, f.ValidateTimeSequence(dup))
}
