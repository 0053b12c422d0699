package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantfold/gridsim/pkg/types"
)

func bar(high, low, closePx float64) types.OHLCV {
	return types.OHLCV{Open: closePx, High: high, Low: low, Close: closePx}
}

// TestATR_FirstBarUsesHighLow tests that the first true range degrades to
// the high-low span.
func TestATR_FirstBarUsesHighLow(t *testing.T) {
	atr := NewATR(5)
	got := atr.Update(bar(105, 95, 100))
	assert.InDelta(t, 10.0, got, 1e-9)
}

// TestATR_WarmupAveragesToDate tests the average-to-date behavior before
// the window is full.
func TestATR_WarmupAveragesToDate(t *testing.T) {
	atr := NewATR(5)
	atr.Update(bar(104, 100, 102)) // TR = 4
	got := atr.Update(bar(104, 102, 103)) // TR = max(2, 2, 0) = 2
	assert.InDelta(t, 3.0, got, 1e-9)
}

// TestATR_RollingWindow tests that old true ranges fall out of the window.
func TestATR_RollingWindow(t *testing.T) {
	atr := NewATR(2)
	atr.Update(bar(110, 100, 105)) // TR = 10
	atr.Update(bar(107, 103, 104)) // TR = 4
	got := atr.Update(bar(106, 102, 103)) // TR = 4; window is {4, 4}
	assert.InDelta(t, 4.0, got, 1e-9)
}

// TestATR_TrueRangeUsesPreviousClose tests the gap case where the previous
// close dominates the high-low span.
func TestATR_TrueRangeUsesPreviousClose(t *testing.T) {
	atr := NewATR(10)
	atr.Update(bar(101, 99, 100)) // TR = 2
	got := atr.Update(bar(111, 110, 110)) // TR = max(1, 11, 10) = 11
	assert.InDelta(t, (2.0+11.0)/2, got, 1e-9)
}

// TestATR_ZeroBeforeAnyBar tests the initial value.
func TestATR_ZeroBeforeAnyBar(t *testing.T) {
	assert.Equal(t, 0.0, NewATR(17).Value())
}
