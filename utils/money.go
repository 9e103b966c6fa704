package utils

import "math"

// ToPaise converts a rupee amount to the smallest currency unit.
// Gateway amounts and PaymentTransaction rows are always in paise.
func ToPaise(rupees float64) int64 {
	return int64(math.Round(rupees * 100))
}
