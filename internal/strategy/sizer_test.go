package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSizer_BuyQuantity tests the floor of the even cash split.
func TestSizer_BuyQuantity(t *testing.T) {
	s := NewSizer(30)

	// 500000 / 100 / 15 = 333.33
	assert.Equal(t, 333, s.BuyQuantity(500000, 100))

	// 1000 / 100 / 15 = 0.67, floors to zero
	assert.Equal(t, 0, s.BuyQuantity(1000, 100))

	assert.Equal(t, 0, s.BuyQuantity(0, 100))
	assert.Equal(t, 0, s.BuyQuantity(-500, 100))
}

// TestSizer_BuyQuantity_DegenerateInputs tests the guard rails.
func TestSizer_BuyQuantity_DegenerateInputs(t *testing.T) {
	assert.Equal(t, 0, NewSizer(30).BuyQuantity(100000, 0))
	assert.Equal(t, 0, NewSizer(0).BuyQuantity(100000, 100))
}

// TestSizer_SellQuantity tests the portfolio-value split capped at the
// held position.
func TestSizer_SellQuantity(t *testing.T) {
	s := NewSizer(4)

	// 10000 / 98 / 2 = 51.02, floors to 51
	assert.Equal(t, 51, s.SellQuantity(10000, 98, 100))

	// position smaller than the split caps the result
	assert.Equal(t, 10, s.SellQuantity(10000, 98, 10))

	// flat position sells nothing
	assert.Equal(t, 0, s.SellQuantity(10000, 98, 0))
}

// TestSizer_SellQuantity_DegenerateInputs tests the guard rails.
func TestSizer_SellQuantity_DegenerateInputs(t *testing.T) {
	assert.Equal(t, 0, NewSizer(4).SellQuantity(10000, 0, 100))
	assert.Equal(t, 0, NewSizer(4).SellQuantity(10000, 98, -3))
	assert.Equal(t, 0, NewSizer(0).SellQuantity(10000, 98, 100))
}
