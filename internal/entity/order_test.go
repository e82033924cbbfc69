package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewOrderLineComputesSubtotal(t *testing.T) {
	line := NewOrderLine("Widget", 3, decimal.RequireFromString("10.50"))

	assert.Equal(t, "Widget", line.ProductName)
	assert.Equal(t, 3, line.Quantity)
	assert.True(t, line.Subtotal.Equal(decimal.RequireFromString("31.50")),
		"subtotal = %s", line.Subtotal)
}

func TestNewOrderLineNoFloatDrift(t *testing.T) {
	// 0.10 * 3 must be exactly 0.30
	line := NewOrderLine("Bolt", 3, decimal.RequireFromString("0.10"))
	assert.True(t, line.Subtotal.Equal(decimal.RequireFromString("0.30")),
		"subtotal = %s", line.Subtotal)
}
