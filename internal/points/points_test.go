package points

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEarned(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{name: "Zero amount earns nothing", amount: "0", expected: "0"},
		{name: "Just below threshold", amount: "999", expected: "0"},
		{name: "Fractional just below threshold", amount: "999.99", expected: "0"},
		{name: "Exactly at threshold", amount: "1000", expected: "1"},
		{name: "Fraction above threshold floors down", amount: "1999.99", expected: "1"},
		{name: "Multiple thousands", amount: "2500", expected: "2"},
		{name: "Large amount", amount: "3500.75", expected: "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			assert.NoError(t, err)

			got := Earned(amount)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)),
				"Earned(%s) = %s, want %s", tt.amount, got, tt.expected)
		})
	}
}

func TestEarnedIsPure(t *testing.T) {
	amount := decimal.RequireFromString("2500.50")
	first := Earned(amount)
	second := Earned(amount)

	assert.True(t, first.Equal(second))
	assert.True(t, amount.Equal(decimal.RequireFromString("2500.50")))
}
