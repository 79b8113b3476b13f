package anim

import "github.com/fogleman/ease"

// Interpolatable is implemented by values that can be blended linearly toward
// another value of the same type. t is in [0, 1]; implementations need not
// clamp it.
type Interpolatable[T any] interface {
	Lerp(end T, t float64) T
}

// Fraction returns how far over is through a blend window of the given length,
// clamped to [0, 1]. A zero-length window never blends.
func Fraction(over, window float64) float64 {
	if window <= 0 || over <= 0 {
		return 0
	}
	t := over / window
	if t > 1 {
		t = 1
	}
	return ease.Linear(t)
}

// LerpFloat blends two scalars.
func LerpFloat(a, b, t float64) float64 {
	return a + t*(b-a)
}
