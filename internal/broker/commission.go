package broker

import (
	"math"

	"github.com/quantfold/gridsim/pkg/types"
)

// CommissionSchedule is a pure fee function of trade size, price and side.
type CommissionSchedule interface {
	Fee(quantity int, price float64, side types.OrderSide) float64
}

// Per-share fee schedule for a US equities retail account. Base commission
// and platform fee carry per-order minimums; sells additionally pay the SEC
// transaction fee (value-based) and the FINRA trading activity fee.
const (
	commissionPerShare = 0.0049
	commissionMinimum  = 0.99
	platformPerShare   = 0.005
	platformMinimum    = 1.00
	clearingPerShare   = 0.003
	secFeeRate         = 0.00002778
	finraTAFPerShare   = 0.000166
)

// FixedCommission implements the per-share schedule above.
type FixedCommission struct{}

// NewFixedCommission creates the default fee schedule.
func NewFixedCommission() *FixedCommission {
	return &FixedCommission{}
}

// Fee returns the total fee for a trade.
func (c *FixedCommission) Fee(quantity int, price float64, side types.OrderSide) float64 {
	shares := math.Abs(float64(quantity))

	commission := math.Max(shares*commissionPerShare, commissionMinimum)
	platform := math.Max(shares*platformPerShare, platformMinimum)
	clearing := shares * clearingPerShare

	total := commission + platform + clearing
	if side == types.Sell {
		total += shares*price*secFeeRate + shares*finraTAFPerShare
	}
	return total
}
