package service

import "github.com/shopspring/decimal"

// ==================== 计价规则 ====================

var (
	// FreeShippingThreshold 满 50 包邮
	FreeShippingThreshold = decimal.NewFromInt(50)
	// FlatShippingFee 不满包邮门槛时的运费
	FlatShippingFee = decimal.RequireFromString("5.99")
	// TaxRate 税率 8%
	TaxRate = decimal.RequireFromString("0.08")
)

// Totals 金额明细，全部保留两位小数
type Totals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// CalculateTotals 根据商品小计计算运费、税费和总额
// 小计为 0 (空购物车) 不收运费
// 总额在最后一步四舍五入到分，税额单独四舍五入用于展示
func CalculateTotals(subtotal decimal.Decimal) Totals {
	shipping := FlatShippingFee
	if subtotal.IsZero() || subtotal.GreaterThanOrEqual(FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(TaxRate)
	total := subtotal.Add(shipping).Add(tax)

	return Totals{
		Subtotal: subtotal.Round(2),
		Shipping: shipping,
		Tax:      tax.Round(2),
		Total:    total.Round(2),
	}
}

// LineSubtotal 单价 * 数量
func LineSubtotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}
