package indicators

import (
	"math"

	"github.com/quantfold/gridsim/pkg/types"
)

// ATR is a streaming Average True Range gauge over a fixed lookback window.
// It is updated once per bar and, until the window fills, yields the average
// of the true ranges seen so far rather than an undefined value.
type ATR struct {
	period    int
	values    []float64
	next      int
	count     int
	sum       float64
	lastClose float64
	seeded    bool
}

// NewATR creates a new gauge with the given lookback period.
func NewATR(period int) *ATR {
	if period < 1 {
		period = 1
	}
	return &ATR{
		period: period,
		values: make([]float64, period),
	}
}

// Update feeds the next bar into the gauge and returns the current value.
func (a *ATR) Update(bar types.OHLCV) float64 {
	tr := a.trueRange(bar)
	a.lastClose = bar.Close
	a.seeded = true

	if a.count < a.period {
		a.values[a.next] = tr
		a.sum += tr
		a.count++
	} else {
		a.sum += tr - a.values[a.next]
		a.values[a.next] = tr
	}
	a.next = (a.next + 1) % a.period

	return a.Value()
}

// Value returns the current average true range. Zero before any bar is seen.
func (a *ATR) Value() float64 {
	if a.count == 0 {
		return 0
	}
	return a.sum / float64(a.count)
}

// Period returns the configured lookback window.
func (a *ATR) Period() int {
	return a.period
}

// trueRange is max(H-L, |H-prevClose|, |L-prevClose|). The first bar has no
// previous close, so its true range degrades to the high-low span.
func (a *ATR) trueRange(bar types.OHLCV) float64 {
	hl := bar.High - bar.Low
	if !a.seeded {
		return hl
	}
	hc := math.Abs(bar.High - a.lastClose)
	lc := math.Abs(bar.Low - a.lastClose)
	return math.Max(hl, math.Max(hc, lc))
}
