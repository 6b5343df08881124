package inventory

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Trend variación porcentual (current − previous) / previous × 100.
// Con previous == 0 no hay comparación posible y devuelve false (nunca divide por cero).
func Trend(current, previous int) (decimal.Decimal, bool) {
	if previous == 0 {
		return decimal.Zero, false
	}
	cur := decimal.NewFromInt(int64(current))
	prev := decimal.NewFromInt(int64(previous))
	return cur.Sub(prev).Div(prev).Mul(hundred), true
}
