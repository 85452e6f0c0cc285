package gamemath

// Clamp clamps v to [lo, hi]. When lo > hi the lower bound wins, matching
// min-then-max chaining.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// ClampInt clamps v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
