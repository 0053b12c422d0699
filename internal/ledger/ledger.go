package ledger

import (
	"fmt"
	"log"

	"github.com/quantfold/gridsim/pkg/types"
)

// Status is the lifecycle state of a submitted order. The set is closed:
// an order is Pending until exactly one terminal notification arrives.
type Status int

const (
	Pending Status = iota
	Filled
	Canceled
	Rejected
	Margin
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Filled:
		return "Filled"
	case Canceled:
		return "Canceled"
	case Rejected:
		return "Rejected"
	case Margin:
		return "Margin"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Terminal reports whether the status ends an order's lifecycle.
func (s Status) Terminal() bool {
	return s != Pending
}

// Notification is the terminal outcome delivered by the execution engine,
// keyed by order ID so delivery order within a tick does not matter.
// The execution fields are only meaningful when Status is Filled.
type Notification struct {
	OrderID    string
	Status     Status
	Price      float64
	Quantity   int
	Commission float64
	Reason     string
}

// Record is a submitted order plus its current lifecycle state.
type Record struct {
	ID     string
	Intent types.OrderIntent
	Status Status

	// Execution details, set on fill.
	ExecPrice  float64
	ExecQty    int
	Commission float64
}

// Ledger owns every order the strategy has submitted and applies terminal
// notifications as pure state transitions on the record keyed by ID.
// Failed orders are never resubmitted; the grid level that produced them
// stays eligible on future bars regardless.
type Ledger struct {
	records map[string]*Record
	pending map[string]*Record
	order   []string // submission order, for reporting

	totalCommission float64
	totalBuyVolume  int
	totalSellVolume int

	// Logf receives the one-line fill/failure messages. Defaults to the
	// standard logger.
	Logf func(format string, args ...interface{})
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{
		records: make(map[string]*Record),
		pending: make(map[string]*Record),
		Logf:    log.Printf,
	}
}

// Submit registers a newly issued intent as a pending order.
func (l *Ledger) Submit(id string, intent types.OrderIntent) *Record {
	rec := &Record{ID: id, Intent: intent, Status: Pending}
	l.records[id] = rec
	l.pending[id] = rec
	l.order = append(l.order, id)
	return rec
}

// Apply transitions the referenced order to its terminal state. It is an
// error to notify an order the ledger did not submit, to notify a
// non-pending order, or to deliver a non-terminal status.
func (l *Ledger) Apply(n Notification) error {
	rec, ok := l.pending[n.OrderID]
	if !ok {
		if _, known := l.records[n.OrderID]; known {
			return fmt.Errorf("ledger: order %s already resolved", n.OrderID)
		}
		return fmt.Errorf("ledger: notification for unknown order %s", n.OrderID)
	}

	switch n.Status {
	case Filled:
		rec.Status = Filled
		rec.ExecPrice = n.Price
		rec.ExecQty = n.Quantity
		rec.Commission = n.Commission

		l.totalCommission += n.Commission
		if rec.Intent.Side == types.Buy {
			l.totalBuyVolume += n.Quantity
			l.Logf("%s executed (%s), price: %.2f, cost: %.2f, size: %d, commission: %.2f",
				rec.Intent.Side, rec.Intent.Symbol, n.Price, n.Price*float64(n.Quantity), n.Quantity, n.Commission)
		} else {
			l.totalSellVolume += n.Quantity
			l.Logf("%s executed (%s), price: %.2f, proceeds: %.2f, size: %d, commission: %.2f",
				rec.Intent.Side, rec.Intent.Symbol, n.Price, n.Price*float64(n.Quantity), n.Quantity, n.Commission)
		}

	case Canceled, Rejected, Margin:
		rec.Status = n.Status
		l.Logf("order failed (%s), status: %s, reason: %s", rec.Intent.Symbol, n.Status, n.Reason)

	case Pending:
		return fmt.Errorf("ledger: notification for order %s carries non-terminal status", n.OrderID)

	default:
		return fmt.Errorf("ledger: unknown status %d for order %s", int(n.Status), n.OrderID)
	}

	delete(l.pending, n.OrderID)
	return nil
}

// TotalCommission returns the commission accumulated over all fills.
func (l *Ledger) TotalCommission() float64 { return l.totalCommission }

// BuyVolume returns the total executed buy size in shares.
func (l *Ledger) BuyVolume() int { return l.totalBuyVolume }

// SellVolume returns the total executed sell size in shares.
func (l *Ledger) SellVolume() int { return l.totalSellVolume }

// PendingCount returns the number of unresolved orders.
func (l *Ledger) PendingCount() int { return len(l.pending) }

// Records returns all order records in submission order.
func (l *Ledger) Records() []*Record {
	out := make([]*Record, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.records[id])
	}
	return out
}
