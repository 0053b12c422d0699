package strategy

import "math"

// Sizer computes order quantities from an even cash budget split across
// half the configured rungs. Quantities are floored to whole shares and a
// non-positive result is returned as 0, which the caller treats as "skip".
type Sizer struct {
	maxGridOrders int
}

// NewSizer creates a sizer for the given rungs-per-side count.
func NewSizer(maxGridOrders int) *Sizer {
	return &Sizer{maxGridOrders: maxGridOrders}
}

// BuyQuantity returns the share count a buy order may carry given the
// available cash and the current price.
func (s *Sizer) BuyQuantity(cash, price float64) int {
	if price <= 0 || s.maxGridOrders <= 0 {
		return 0
	}
	qty := int(math.Floor(cash / price / (float64(s.maxGridOrders) / 2)))
	if qty < 0 {
		return 0
	}
	return qty
}

// SellQuantity returns the share count a sell order may carry given total
// portfolio value, the current price and the held position. The result
// never exceeds the position.
func (s *Sizer) SellQuantity(portfolioValue, price float64, position int) int {
	if price <= 0 || s.maxGridOrders <= 0 {
		return 0
	}
	qty := int(math.Floor(portfolioValue / price / (float64(s.maxGridOrders) / 2)))
	if qty > position {
		qty = position
	}
	if qty < 0 {
		return 0
	}
	return qty
}
