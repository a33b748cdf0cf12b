package util

import "github.com/shopspring/decimal"

// Round2 rounds a price to 2 decimal places for display. Intermediate
// computations stay unrounded so dependent formulas do not compound
// rounding error; call this only at the response boundary.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Round2Ptr rounds an optional price, preserving nil.
func Round2Ptr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := Round2(*v)
	return &r
}
