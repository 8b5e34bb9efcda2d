package util

import (
	"cmp"
	"math"
)

// Clamp constrains a value to a range.
func Clamp[T cmp.Ordered](value, lo, hi T) T {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Snap rounds value to the nearest multiple of step, halves away from zero.
func Snap(value, step float64) float64 {
	return math.Round(value/step) * step
}

// Wrap folds value into the open interval (-limit, limit) keeping its sign.
func Wrap(value, limit float64) float64 {
	return math.Mod(value, limit)
}
