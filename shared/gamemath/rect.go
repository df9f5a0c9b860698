// Package gamemath holds the pure geometry used by the simulation.
// It has no dependencies on ebitengine, donburi, or resolv.
package gamemath

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Center returns the midpoint of the box.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether the interiors of r and o intersect.
// Boxes that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.MaxX() && o.X < r.MaxX() &&
		r.Y < o.MaxY() && o.Y < r.MaxY()
}

// Inside reports whether any part of r lies within a width x height area
// anchored at the origin.
func (r Rect) Inside(width, height float64) bool {
	return r.MaxX() > 0 && r.X < width && r.MaxY() > 0 && r.Y < height
}
