package broker

import (
	"github.com/google/uuid"

	"github.com/quantfold/gridsim/internal/ledger"
	"github.com/quantfold/gridsim/pkg/types"
)

// NotificationHandler receives terminal order notifications. Handlers must
// key their bookkeeping on the order ID: the broker may deliver within the
// submitting tick or on a later one depending on when the limit crosses.
type NotificationHandler func(ledger.Notification)

// Broker simulates limit-order execution and cash settlement against
// historical bars. It owns the cash balance and per-symbol positions; the
// strategy core sees it only through the Account view and SubmitLimit.
type Broker struct {
	cash      float64
	positions map[string]int
	lastPrice map[string]float64

	pending map[string]types.OrderIntent
	queue   []string // submission order, for deterministic evaluation

	schedule CommissionSchedule
	notify   NotificationHandler
}

// New creates a broker with the given starting cash and fee schedule.
func New(startingCash float64, schedule CommissionSchedule) *Broker {
	return &Broker{
		cash:      startingCash,
		positions: make(map[string]int),
		lastPrice: make(map[string]float64),
		pending:   make(map[string]types.OrderIntent),
		schedule:  schedule,
	}
}

// SetNotificationHandler registers the terminal-notification sink.
func (b *Broker) SetNotificationHandler(h NotificationHandler) {
	b.notify = h
}

// SubmitLimit accepts a limit intent and returns its assigned order ID.
func (b *Broker) SubmitLimit(intent types.OrderIntent) string {
	id := uuid.NewString()
	b.pending[id] = intent
	b.queue = append(b.queue, id)
	return id
}

// ProcessBar evaluates resting orders for one symbol against a new bar,
// filling those the bar's range crosses. A buy whose settlement would
// overdraw the account closes with Margin status; a sell exceeding the held
// position is Rejected. Fill price is the open when the bar gaps through
// the limit, otherwise the limit itself.
func (b *Broker) ProcessBar(symbol string, bar types.OHLCV) {
	b.lastPrice[symbol] = bar.Close

	remaining := b.queue[:0]
	for _, id := range b.queue {
		intent, ok := b.pending[id]
		if !ok {
			continue
		}
		if intent.Symbol != symbol {
			remaining = append(remaining, id)
			continue
		}

		execPrice, crossed := crossPrice(intent, bar)
		if !crossed {
			remaining = append(remaining, id)
			continue
		}

		delete(b.pending, id)
		b.settle(id, intent, execPrice)
	}
	b.queue = remaining
}

// crossPrice decides whether a bar crosses a limit order and at what price.
func crossPrice(intent types.OrderIntent, bar types.OHLCV) (float64, bool) {
	if intent.Side == types.Buy {
		if bar.Open < intent.Limit {
			return bar.Open, true
		}
		if bar.Low <= intent.Limit {
			return intent.Limit, true
		}
		return 0, false
	}
	if bar.Open > intent.Limit {
		return bar.Open, true
	}
	if bar.High >= intent.Limit {
		return intent.Limit, true
	}
	return 0, false
}

func (b *Broker) settle(id string, intent types.OrderIntent, price float64) {
	fee := b.schedule.Fee(intent.Quantity, price, intent.Side)
	value := price * float64(intent.Quantity)

	switch intent.Side {
	case types.Buy:
		if value+fee > b.cash {
			b.deliver(ledger.Notification{OrderID: id, Status: ledger.Margin, Reason: "insufficient cash at execution"})
			return
		}
		b.cash -= value + fee
		b.positions[intent.Symbol] += intent.Quantity

	case types.Sell:
		if intent.Quantity > b.positions[intent.Symbol] {
			b.deliver(ledger.Notification{OrderID: id, Status: ledger.Rejected, Reason: "insufficient position at execution"})
			return
		}
		b.cash += value - fee
		b.positions[intent.Symbol] -= intent.Quantity
	}

	b.deliver(ledger.Notification{
		OrderID:    id,
		Status:     ledger.Filled,
		Price:      price,
		Quantity:   intent.Quantity,
		Commission: fee,
	})
}

func (b *Broker) deliver(n ledger.Notification) {
	if b.notify != nil {
		b.notify(n)
	}
}

// Cash returns the available cash balance.
func (b *Broker) Cash() float64 { return b.cash }

// Position returns the held share count for a symbol.
func (b *Broker) Position(symbol string) int { return b.positions[symbol] }

// Value returns cash plus all positions marked at their last seen close.
func (b *Broker) Value() float64 {
	total := b.cash
	for symbol, qty := range b.positions {
		total += float64(qty) * b.lastPrice[symbol]
	}
	return total
}

// PendingOrders returns the number of resting orders.
func (b *Broker) PendingOrders() int { return len(b.pending) }
