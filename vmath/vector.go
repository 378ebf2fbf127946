package vmath

import "math"

// Magnitude returns the Euclidean length of (x, y)
func Magnitude(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// MagnitudeSq returns squared length without sqrt
func MagnitudeSq(x, y float64) float64 {
	return x*x + y*y
}

// Distance returns the Euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return Magnitude(x2-x1, y2-y1)
}

// Normalize2D returns the unit vector of (x, y), zero-safe
func Normalize2D(x, y float64) (nx, ny float64) {
	mag := Magnitude(x, y)
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}

// LerpPoint interpolates between two points by t
func LerpPoint(x1, y1, x2, y2, t float64) (x, y float64) {
	return Lerp(x1, x2, t), Lerp(y1, y2, t)
}

// EasePoint interpolates between two points with EaseOutCubic applied to t
func EasePoint(x1, y1, x2, y2, t float64) (x, y float64) {
	return LerpPoint(x1, y1, x2, y2, EaseOutCubic(t))
}
