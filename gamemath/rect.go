package gamemath

// Rect is an axis-aligned rectangle in playfield units.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether r and o share interior area.
// Rectangles that only touch along an edge or corner do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		o.X < r.X+r.W &&
		r.Y < o.Y+o.H &&
		o.Y < r.Y+r.H
}
