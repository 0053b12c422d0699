package broker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantfold/gridsim/internal/ledger"
	"github.com/quantfold/gridsim/pkg/types"
)

// zeroFee keeps cash assertions exact.
type zeroFee struct{}

func (zeroFee) Fee(int, float64, types.OrderSide) float64 { return 0 }

func newTestBroker(cash float64) (*Broker, *[]ledger.Notification) {
	b := New(cash, zeroFee{})
	var notes []ledger.Notification
	b.SetNotificationHandler(func(n ledger.Notification) {
		notes = append(notes, n)
	})
	return b, &notes
}

func buyLimit(symbol string, limit float64, qty int) types.OrderIntent {
	return types.OrderIntent{Symbol: symbol, Side: types.Buy, Limit: limit, Quantity: qty}
}

func sellLimit(symbol string, limit float64, qty int) types.OrderIntent {
	return types.OrderIntent{Symbol: symbol, Side: types.Sell, Limit: limit, Quantity: qty}
}

// TestBroker_BuyFillsAtLimit tests the normal cross where the bar trades
// down through the limit.
func TestBroker_BuyFillsAtLimit(t *testing.T) {
	b, notes := newTestBroker(100000)
	id := b.SubmitLimit(buyLimit("NVDA", 99.0, 100))

	b.ProcessBar("NVDA", types.OHLCV{Open: 100, High: 101, Low: 98.5, Close: 99.5})

	require.Len(t, *notes, 1)
	n := (*notes)[0]
	assert.Equal(t, id, n.OrderID)
	assert.Equal(t, ledger.Filled, n.Status)
	assert.InDelta(t, 99.0, n.Price, 1e-9)
	assert.Equal(t, 100, n.Quantity)

	assert.InDelta(t, 100000-9900, b.Cash(), 1e-9)
	assert.Equal(t, 100, b.Position("NVDA"))
	assert.Equal(t, 0, b.PendingOrders())
}

// TestBroker_BuyGapFillsAtOpen tests price improvement when the bar opens
// below the limit.
func TestBroker_BuyGapFillsAtOpen(t *testing.T) {
	b, notes := newTestBroker(100000)
	b.SubmitLimit(buyLimit("NVDA", 99.0, 100))

	b.ProcessBar("NVDA", types.OHLCV{Open: 95, High: 97, Low: 94, Close: 96})

	require.Len(t, *notes, 1)
	assert.InDelta(t, 95.0, (*notes)[0].Price, 1e-9)
	assert.InDelta(t, 100000-9500, b.Cash(), 1e-9)
}

// TestBroker_BuyRestsUntilCrossed tests that an uncrossed order stays
// pending across bars.
func TestBroker_BuyRestsUntilCrossed(t *testing.T) {
	b, notes := newTestBroker(100000)
	b.SubmitLimit(buyLimit("NVDA", 99.0, 100))

	b.ProcessBar("NVDA", types.OHLCV{Open: 100.5, High: 101, Low: 99.5, Close: 100})
	assert.Empty(t, *notes)
	assert.Equal(t, 1, b.PendingOrders())

	b.ProcessBar("NVDA", types.OHLCV{Open: 100, High: 100.5, Low: 98.9, Close: 99})
	require.Len(t, *notes, 1)
	assert.Equal(t, ledger.Filled, (*notes)[0].Status)
	assert.Equal(t, 0, b.PendingOrders())
}

// TestBroker_SellFillsAtOpenAboveLimit tests the sell-side gap case.
func TestBroker_SellFillsAtOpenAboveLimit(t *testing.T) {
	b, notes := newTestBroker(0)
	b.positions["NVDA"] = 50
	b.SubmitLimit(sellLimit("NVDA", 101.0, 50))

	b.ProcessBar("NVDA", types.OHLCV{Open: 103, High: 104, Low: 102, Close: 102.5})

	require.Len(t, *notes, 1)
	assert.Equal(t, ledger.Filled, (*notes)[0].Status)
	assert.InDelta(t, 103.0, (*notes)[0].Price, 1e-9)
	assert.InDelta(t, 103.0*50, b.Cash(), 1e-9)
	assert.Equal(t, 0, b.Position("NVDA"))
}

// TestBroker_BuyClosesMarginWhenCashShort tests the overdraft path: the
// order resolves with Margin and the account is untouched.
func TestBroker_BuyClosesMarginWhenCashShort(t *testing.T) {
	b, notes := newTestBroker(100)
	b.SubmitLimit(buyLimit("NVDA", 99.0, 100))

	b.ProcessBar("NVDA", types.OHLCV{Open: 100, High: 101, Low: 98, Close: 99})

	require.Len(t, *notes, 1)
	assert.Equal(t, ledger.Margin, (*notes)[0].Status)
	assert.InDelta(t, 100.0, b.Cash(), 1e-9)
	assert.Equal(t, 0, b.Position("NVDA"))
	assert.Equal(t, 0, b.PendingOrders())
}

// TestBroker_SellRejectedWhenPositionShort tests the oversell path.
func TestBroker_SellRejectedWhenPositionShort(t *testing.T) {
	b, notes := newTestBroker(1000)
	b.positions["NVDA"] = 10
	b.SubmitLimit(sellLimit("NVDA", 101.0, 50))

	b.ProcessBar("NVDA", types.OHLCV{Open: 102, High: 103, Low: 101, Close: 102})

	require.Len(t, *notes, 1)
	assert.Equal(t, ledger.Rejected, (*notes)[0].Status)
	assert.InDelta(t, 1000.0, b.Cash(), 1e-9)
	assert.Equal(t, 10, b.Position("NVDA"))
}

// TestBroker_BarsOnlyTouchOwnSymbol tests that an order rests through bars
// of other symbols.
func TestBroker_BarsOnlyTouchOwnSymbol(t *testing.T) {
	b, notes := newTestBroker(100000)
	b.SubmitLimit(buyLimit("NVDA", 99.0, 100))

	b.ProcessBar("TSLA", types.OHLCV{Open: 90, High: 95, Low: 85, Close: 92})
	assert.Empty(t, *notes)
	assert.Equal(t, 1, b.PendingOrders())
}

// TestBroker_ValueMarksAtLastClose tests portfolio valuation.
func TestBroker_ValueMarksAtLastClose(t *testing.T) {
	b, _ := newTestBroker(100000)
	b.SubmitLimit(buyLimit("NVDA", 99.0, 100))
	b.ProcessBar("NVDA", types.OHLCV{Open: 100, High: 101, Low: 98, Close: 99.5})

	// cash 100000 - 9900, position 100 marked at close 99.5
	assert.InDelta(t, 90100+100*99.5, b.Value(), 1e-9)
}

// TestBroker_CommissionAppliedOnSettlement tests that fees flow through the
// fill notification and the cash balance.
func TestBroker_CommissionAppliedOnSettlement(t *testing.T) {
	b := New(100000, NewFixedCommission())
	var notes []ledger.Notification
	b.SetNotificationHandler(func(n ledger.Notification) { notes = append(notes, n) })

	b.SubmitLimit(buyLimit("NVDA", 99.0, 100))
	b.ProcessBar("NVDA", types.OHLCV{Open: 100, High: 101, Low: 98, Close: 99})

	require.Len(t, notes, 1)
	fee := NewFixedCommission().Fee(100, 99.0, types.Buy)
	assert.InDelta(t, fee, notes[0].Commission, 1e-9)
	assert.InDelta(t, 100000-9900-fee, b.Cash(), 1e-9)
}
