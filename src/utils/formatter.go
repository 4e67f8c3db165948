package utils

import (
	"math"
)

const GoldPrecision = 2

type Formatter struct {
}

// FormatGold truncates to the currency precision. Truncation instead of
// rounding keeps a sum of formatted bids from creeping above the budget.
func (m *Formatter) FormatGold(amount float64) float64 {
	output := math.Pow(10, float64(GoldPrecision))
	return math.Floor(amount*output) / output
}
