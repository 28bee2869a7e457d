package util

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Coerce returns a value that is at least min and at most max
func Coerce[T constraints.Ordered](value T, min T, max T) T {
	if value > max {
		return max
	}
	if value < min {
		return min
	}
	return value
}

// Ratio calculates the ration that target has in comparison to rangeMin and rangeMax
// Make sure that:
// rangeMin <= target <= rangeMax
// rangeMax - rangeMin != 0
func Ratio(target float64, rangeMin float64, rangeMax float64) float64 {
	return (target - rangeMin) / (rangeMax - rangeMin)
}

// ReduceToByte returns the 8 most significant bits of a value
// with the given resolution, clamped to the valid range of that resolution.
func ReduceToByte(value int, bits int) uint8 {
	if bits <= 8 {
		return uint8(Coerce(value, 0, math.MaxUint8))
	}
	maxValue := (1 << bits) - 1
	value = Coerce(value, 0, maxValue)
	return uint8(value >> (bits - 8))
}

// MapToByte linearly maps value from [rangeMin, rangeMax] to [0, 255]
func MapToByte(value float64, rangeMin float64, rangeMax float64) uint8 {
	ratio := Coerce(Ratio(value, rangeMin, rangeMax), 0, 1)
	return uint8(math.Round(ratio * math.MaxUint8))
}
