package util

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatAmount renders a rupee amount rounded to whole units with
// thousands separators, e.g. ₹125,000.
func FormatAmount(v float64) string {
	if !IsFinite(v) {
		v = 0
	}
	return "₹" + humanize.Comma(int64(math.Round(v)))
}

// SumMoney adds amounts as decimals so long result sets don't accumulate
// float error. NaN and infinite values are skipped.
func SumMoney(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		if !IsFinite(v) {
			continue
		}
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.InexactFloat64()
}

// RoundTo rounds half away from zero to the given number of decimals.
func RoundTo(v float64, places int32) float64 {
	if !IsFinite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
