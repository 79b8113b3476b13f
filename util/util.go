package util

import (
	"github.com/fogleman/ease"
)

// GenerateLut returns a symmetric rise-and-fall envelope of the given length,
// easing up from 0 toward the midpoint and back down. Odd lengths peak at
// exactly 1; even lengths have two equal middle entries just below 1.
func GenerateLut(length int) []float64 {
	if length < 2 {
		return make([]float64, length)
	}
	increment := 1.0 / float64(length/2)
	lut := make([]float64, length)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = ease.InOutQuad(value)
		lut[j] = ease.InOutQuad(value)
	}
	if length%2 == 1 {
		lut[length/2] = 1
	}
	return lut
}
