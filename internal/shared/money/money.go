package money

import "github.com/shopspring/decimal"

// Round2 rounds a monetary amount to 2 decimal places, half away from zero.
// Aggregates are computed by the database in floating point; rounding runs
// through decimal so 100.005 + 200.005 lands on 300.01 instead of drifting.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
