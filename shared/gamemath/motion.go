package gamemath

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

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampToBounds keeps a box of size w x h fully inside a width x height area.
func ClampToBounds(x, y, w, h, width, height float64) (float64, float64) {
	return Clamp(x, 0, width-w), Clamp(y, 0, height-h)
}

// Bounce returns the velocity after a wall check along one axis: it flips
// when pos is at or past either edge of [0, limit-size]. Position is not
// corrected, so a box may sit up to one step outside the area.
func Bounce(pos, size, limit, speed float64) float64 {
	if pos <= 0 || pos >= limit-size {
		return -speed
	}
	return speed
}

// DirectionFromInput converts a pair of opposing flags into -1, 0 or 1.
func DirectionFromInput(negative, positive bool) float64 {
	var d float64
	if negative {
		d--
	}
	if positive {
		d++
	}
	return d
}

// Aim returns the velocity that covers the distance from (fromX, fromY) to
// (toX, toY) in steps ticks. The vector is not normalized.
func Aim(fromX, fromY, toX, toY, steps float64) (float64, float64) {
	return (toX - fromX) / steps, (toY - fromY) / steps
}
