package utils

import (
	"cmp"
	"math"
)

// Clamp bounds v to [lo, hi]. NaN maps to lo.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v != v {
		return lo
	}
	return min(max(v, lo), hi)
}

// Round1 rounds to one decimal place, halves away from zero
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
