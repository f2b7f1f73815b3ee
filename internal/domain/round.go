package domain

import "math"

// PercentHalfUp returns num/den as a whole percentage, halves rounding up.
// Integer arithmetic keeps exact halves such as 29/200 from drifting below
// .5. Returns 0 when den is not positive.
func PercentHalfUp(num, den int64) int {
	if den <= 0 {
		return 0
	}
	return int((200*num + den) / (2 * den))
}

// Cents converts a currency amount to whole minor units.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
