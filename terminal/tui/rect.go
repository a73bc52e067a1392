package tui

// Point is an absolute cell coordinate
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Rect is an absolute rectangle in cell coordinates
// X and Y are the top-left corner; W and H may be zero or negative after extreme splits
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a Rect with the given position and dimensions
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive)
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive)
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// IsEmpty returns true if the rectangle has zero or negative area
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if p is inside the rectangle
// Left and top edges are inside; right and bottom edges are outside
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Center returns the cell at the rectangle's midpoint
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Inset shrinks the rectangle by n cells on all sides
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
}

// Intersect returns the overlap of two rectangles, or an empty Rect
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	if right <= x || bottom <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, W: right - x, H: bottom - y}
}

// CenteredAt returns a w×h rectangle centered on p, shifted to stay inside r when it fits
func (r Rect) CenteredAt(p Point, w, h int) Rect {
	out := Rect{X: p.X - w/2, Y: p.Y - h/2, W: w, H: h}
	if w <= r.W {
		if out.X < r.X {
			out.X = r.X
		}
		if out.Right() > r.Right() {
			out.X = r.Right() - w
		}
	}
	if h <= r.H {
		if out.Y < r.Y {
			out.Y = r.Y
		}
		if out.Bottom() > r.Bottom() {
			out.Y = r.Bottom() - h
		}
	}
	return out
}

// At returns the point at fractional position (fx, fy) of the rectangle
func (r Rect) At(fx, fy float64) Point {
	return Point{X: r.X + int(float64(r.W)*fx), Y: r.Y + int(float64(r.H)*fy)}
}
