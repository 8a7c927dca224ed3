package utils

import (
	"math"
	"math/rand"
)

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	if min > max {
		return min
	}
	return rand.Intn(max-min+1) + min //nolint:gosec // Game logic randomness, not security critical
}

// RandomIndex returns a random index into a collection of length n, or -1 when n <= 0
func RandomIndex(n int) int {
	if n <= 0 {
		return -1
	}
	return RandomInt(0, n-1)
}

// Percent returns part/total as a percentage rounded to two decimals.
// A zero total yields 0.
func Percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*10000) / 100
}
