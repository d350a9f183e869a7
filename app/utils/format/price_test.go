package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"120", "ج.م", "120 ج.م"},
		{"120.00", "ج.م", "120 ج.م"},
		{"1500", "ج.م", "1,500 ج.م"},
		{"99.5", "ج.م", "99.50 ج.م"},
		{"75", "", "75"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Price(decimal.RequireFromString(tt.amount), tt.currency))
	}
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "2,250", Amount(decimal.NewFromInt(2250)))
}
