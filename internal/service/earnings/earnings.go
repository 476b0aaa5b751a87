package earnings

import "github.com/shopspring/decimal"

var thousand = decimal.NewFromInt(1000)

// Calculate returns the earnings for a view count at the campaign rate:
// (views / 1000) * ratePer1K. No rounding is applied; display formatting
// rounds to two decimals at presentation time only. A negative views value
// yields a negative amount, which the view-update path relies on for
// downward corrections.
func Calculate(views int64, ratePer1K decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(views).Div(thousand).Mul(ratePer1K)
}
