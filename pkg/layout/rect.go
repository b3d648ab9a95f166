package layout

// Rect is an axis-aligned rectangle in screen pixels.
// X and Y locate the top-left corner; y grows downward.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a Rect from its top-left corner and size.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x coordinate just past the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y coordinate just past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// CenterX returns the horizontal center of the rectangle, doubled.
// Doubling keeps centers exact for odd widths.
func (r Rect) CenterX() int { return 2*r.X + r.Width }

// CenterY returns the vertical center of the rectangle, doubled.
func (r Rect) CenterY() int { return 2*r.Y + r.Height }

// Contains reports whether the point lies inside the rectangle.
// The left and top edges are inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}
