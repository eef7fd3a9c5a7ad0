package compare

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// digits strips everything but the sign and digits
func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '-' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		value  string
	}{
		{amount: 0, value: "0"},
		{amount: 999, value: "999"},
		{amount: 65000, value: "65000"},
		{amount: 43333.333, value: "43333"},
		{amount: 54499.5, value: "54500"},
		{amount: 1234567.89, value: "1234568"},
		{amount: -2500.4, value: "-2500"},
		{amount: 1e19, value: "10000000000000000000"},
		{amount: -1e19, value: "-10000000000000000000"},
		{amount: 1e25, value: "10000000000000000000000000"},
	}

	for _, tt := range tests {
		formatted := FormatCurrency(tt.amount)
		assert.Contains(t, formatted, "₹", "amount %v", tt.amount)
		assert.NotContains(t, formatted, ".", "amount %v", tt.amount)
		assert.Equal(t, tt.value, digits(formatted), "amount %v", tt.amount)
	}
}

func TestFormatCurrency_Sign(t *testing.T) {
	assert.True(t, strings.HasPrefix(FormatCurrency(-10), "-₹"))
	assert.True(t, strings.HasPrefix(FormatCurrency(10), "₹"))
	assert.Equal(t, "₹0", FormatCurrency(-0.4))
}

func TestFormatCurrency_NonFinite(t *testing.T) {
	assert.Equal(t, "₹NaN", FormatCurrency(math.NaN()))
	assert.Equal(t, "₹∞", FormatCurrency(math.Inf(1)))
	assert.Equal(t, "-₹∞", FormatCurrency(math.Inf(-1)))
}

func TestFormatCurrency_IndianGrouping(t *testing.T) {
	assert.Equal(t, "₹12,34,568", FormatCurrency(1234567.89))
	assert.Equal(t, "₹1,00,00,00,00,00,00,00,00,000", FormatCurrency(1e19))
}
