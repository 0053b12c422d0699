package strategy

import (
	"log"

	"github.com/quantfold/gridsim/internal/grid"
	"github.com/quantfold/gridsim/internal/indicators"
	"github.com/quantfold/gridsim/pkg/types"
)

// Account is the view of the broker the decision engine needs for sizing.
type Account interface {
	// Cash returns the currently available cash.
	Cash() float64

	// Value returns the total portfolio value at current prices.
	Value() float64

	// Position returns the held share count for a symbol.
	Position(symbol string) int
}

// InstrumentState is the per-instrument record built once at initialization:
// the immutable ladder plus the rolling volatility gauge.
type InstrumentState struct {
	Symbol string
	Levels []grid.Level
	Gauge  *indicators.ATR
}

// DecisionEngine scans an instrument's ladder against the bar close and
// emits at most one buy and one sell intent per instrument per bar.
type DecisionEngine struct {
	sizer *Sizer

	// Logf receives the per-intent and insufficient-resource lines.
	Logf func(format string, args ...interface{})
}

// NewDecisionEngine creates a decision engine backed by the given sizer.
func NewDecisionEngine(sizer *Sizer) *DecisionEngine {
	return &DecisionEngine{sizer: sizer, Logf: log.Printf}
}

// Scan walks the ladder in generation order. The first eligible level per
// side wins; a level skipped for lack of cash or position leaves its side
// open, so a later level of the same side may still trigger on this bar.
func (e *DecisionEngine) Scan(state *InstrumentState, closePx float64, acct Account) []types.OrderIntent {
	var intents []types.OrderIntent
	buyPlaced := false
	sellPlaced := false

	for _, level := range state.Levels {
		switch level.Side {
		case types.Buy:
			if buyPlaced || closePx > level.Price {
				continue
			}
			qty := e.sizer.BuyQuantity(acct.Cash(), closePx)
			if qty <= 0 {
				e.Logf("insufficient cash to place buy order (%s)", state.Symbol)
				continue
			}
			intents = append(intents, types.OrderIntent{
				Symbol:   state.Symbol,
				Side:     types.Buy,
				Limit:    level.Price,
				Quantity: qty,
			})
			e.Logf("created buy order (%s), price: %.2f, size: %d", state.Symbol, level.Price, qty)
			buyPlaced = true

		case types.Sell:
			if sellPlaced || closePx < level.Price {
				continue
			}
			qty := e.sizer.SellQuantity(acct.Value(), closePx, acct.Position(state.Symbol))
			if qty <= 0 {
				e.Logf("insufficient position to place sell order (%s)", state.Symbol)
				continue
			}
			intents = append(intents, types.OrderIntent{
				Symbol:   state.Symbol,
				Side:     types.Sell,
				Limit:    level.Price,
				Quantity: qty,
			})
			e.Logf("created sell order (%s), price: %.2f, size: %d", state.Symbol, level.Price, qty)
			sellPlaced = true
		}
	}

	return intents
}
