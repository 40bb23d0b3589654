package gamemath

import "math"

// Approach moves current toward target by factor of the remaining distance.
func Approach(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInside keeps a w x h box positioned at (x, y) fully within a
// boundsW x boundsH area anchored at the origin.
func ClampInside(x, y, w, h, boundsW, boundsH float64) (float64, float64) {
	return Clamp(x, 0, boundsW-w), Clamp(y, 0, boundsH-h)
}

// ShakeOffset returns the draw offset for a shake with remaining frames left.
func ShakeOffset(remaining int, intensity, frequency float64) (float64, float64) {
	if remaining <= 0 {
		return 0, 0
	}
	t := float64(remaining)
	return math.Sin(t*frequency) * intensity, math.Cos(t*frequency) * intensity
}

// Pulse maps a phase in radians onto [0, 1].
func Pulse(phase float64) float64 {
	return (math.Sin(phase) + 1) / 2
}
