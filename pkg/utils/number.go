package utils

import "math"

// RoundWithOneDecimalPlace rounds half away from zero at one decimal place.
func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}
