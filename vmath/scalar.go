package vmath

import "math"

// Lerp interpolates linearly from a to b; t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// ApproxEqual reports whether a and b differ by at most eps
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
