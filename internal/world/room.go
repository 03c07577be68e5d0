package world

// Rect is an axis-aligned rectangle on the map, used to represent a room.
// The border lines X1, X2, Y1, Y2 stay walls; only the interior is carved.
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRect creates a rectangle with top-left corner (x, y) and size w x h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() int {
	return r.X2 - r.X1
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() int {
	return r.Y2 - r.Y1
}

// Center returns the center coordinates of the room.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Contains returns true if the given point lies in the carved interior.
func (r Rect) Contains(x, y int) bool {
	return x > r.X1 && x < r.X2 && y > r.Y1 && y < r.Y2
}

// Intersects returns true if this room overlaps with another room.
// Edges are inclusive: rooms sharing a border line intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 &&
		r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 &&
		r.Y2 >= other.Y1
}
