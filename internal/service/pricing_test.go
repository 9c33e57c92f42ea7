package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateTotals(t *testing.T) {
	tests := []struct {
		name         string
		subtotal     string
		wantShipping string
		wantTax      string
		wantTotal    string
	}{
		{"不满包邮", "40.00", "5.99", "3.20", "49.19"},
		{"满包邮", "60.00", "0.00", "4.80", "64.80"},
		{"刚好包邮门槛", "50.00", "0.00", "4.00", "54.00"},
		{"差一分包邮", "49.99", "5.99", "4.00", "59.98"},
		{"税额按分舍入", "10.05", "5.99", "0.80", "16.84"},
		{"空购物车不收运费", "0", "0.00", "0.00", "0.00"},
		{"一分钱也收运费", "0.01", "5.99", "0.00", "6.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTotals(decimal.RequireFromString(tt.subtotal))
			assert.Equal(t, tt.wantShipping, got.Shipping.StringFixed(2))
			assert.Equal(t, tt.wantTax, got.Tax.StringFixed(2))
			assert.Equal(t, tt.wantTotal, got.Total.StringFixed(2))
		})
	}
}

func TestLineSubtotal(t *testing.T) {
	got := LineSubtotal(decimal.RequireFromString("19.99"), 3)
	assert.Equal(t, "59.97", got.StringFixed(2))
}
