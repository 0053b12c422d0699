package types

import "time"

// OHLCV is a single historical price bar.
type OHLCV struct {
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
	Timestamp time.Time
}

// Instrument couples a symbol with its chronological bar stream.
// The bars are owned by the data feed; the strategy core only reads them.
type Instrument struct {
	Symbol string
	Bars   []OHLCV
}

// OrderSide identifies the direction of an order intent.
type OrderSide int

const (
	Buy OrderSide = iota
	Sell
)

func (s OrderSide) String() string {
	if s == Buy {
		return "buy"
	}
	return "sell"
}

// OrderIntent is a limit order request produced by the decision engine.
// Quantity is always a whole share count.
type OrderIntent struct {
	Symbol   string
	Side     OrderSide
	Limit    float64
	Quantity int
}
