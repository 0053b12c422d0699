package grid

import (
	"fmt"
	"strings"

	"github.com/quantfold/gridsim/pkg/types"
)

// Level is a single rung in the ladder: a trigger price tagged with a side.
type Level struct {
	Side  types.OrderSide
	Price float64
}

func (l Level) String() string {
	return fmt.Sprintf("(%s, %.2f)", l.Side, l.Price)
}

// Generate builds the fixed ladder of trigger prices around an entry price:
// rungs buy levels at entry - i*spacing followed by rungs sell levels at
// entry + i*spacing, nearest to the entry first. The result is deterministic
// and the ladder is never regenerated for the life of a run.
//
// A non-positive rung count yields an empty ladder; that is the documented
// degenerate meaning, not an error.
func Generate(entry, spacing float64, rungs int) []Level {
	if rungs <= 0 {
		return nil
	}

	levels := make([]Level, 0, 2*rungs)
	for i := 1; i <= rungs; i++ {
		levels = append(levels, Level{Side: types.Buy, Price: entry - float64(i)*spacing})
	}
	for i := 1; i <= rungs; i++ {
		levels = append(levels, Level{Side: types.Sell, Price: entry + float64(i)*spacing})
	}
	return levels
}

// Table maps an instrument symbol to its ordered ladder. Ladders are
// installed exactly once, at strategy initialization, and are immutable
// afterward.
type Table struct {
	levels map[string][]Level
}

// NewTable creates an empty grid table.
func NewTable() *Table {
	return &Table{levels: make(map[string][]Level)}
}

// Install generates and stores the ladder for a symbol from its entry price.
// Installing a symbol twice is a programming error.
func (t *Table) Install(symbol string, entry, spacing float64, rungs int) []Level {
	if _, ok := t.levels[symbol]; ok {
		panic(fmt.Sprintf("grid: ladder for %s installed twice", symbol))
	}
	ladder := Generate(entry, spacing, rungs)
	t.levels[symbol] = ladder
	return ladder
}

// Levels returns the ladder for a symbol in generation order.
func (t *Table) Levels(symbol string) []Level {
	return t.levels[symbol]
}

// Describe renders a ladder as a one-line summary for the init log.
func Describe(levels []Level) string {
	parts := make([]string, len(levels))
	for i, l := range levels {
		parts[i] = l.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
