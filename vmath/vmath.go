package vmath

import "math"

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

// Lerp returns a + (b-a)*t, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// EaseOutCubic maps t in [0,1] to 1-(1-t)^3; input is clamped
func EaseOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1)
	inv := 1 - t
	return 1 - inv*inv*inv
}

// Wrap moves v to the opposite edge once it leaves [0, size]
// Values inside the range are returned unchanged, including both edges
func Wrap(v, size float64) float64 {
	if v < 0 {
		return size
	}
	if v > size {
		return 0
	}
	return v
}

// Wave01 maps a sine of phase to [0,1]
func Wave01(phase float64) float64 {
	return (math.Sin(phase) + 1) / 2
}
