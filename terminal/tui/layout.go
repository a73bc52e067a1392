package tui

// SplitAxis selects which dimension a split divides
type SplitAxis uint8

const (
	SplitColumns SplitAxis = iota // side by side, divides width
	SplitRows                     // stacked, divides height
)

// SplitRect divides r along axis at ratio, leaving a gap of gutter cells between the halves
// The gutter belongs to neither half; ratio is applied to the extent minus the gutter
func SplitRect(r Rect, axis SplitAxis, ratio float64, gutter int) (first, second Rect) {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	if gutter < 0 {
		gutter = 0
	}

	extent := r.W
	if axis == SplitRows {
		extent = r.H
	}
	avail := extent - gutter
	if avail < 0 {
		avail = 0
	}
	a := int(float64(avail)*ratio + 0.5) // Round to nearest cell
	b := avail - a

	if axis == SplitColumns {
		first = Rect{X: r.X, Y: r.Y, W: a, H: r.H}
		second = Rect{X: r.X + a + gutter, Y: r.Y, W: b, H: r.H}
		return
	}
	first = Rect{X: r.X, Y: r.Y, W: r.W, H: a}
	second = Rect{X: r.X, Y: r.Y + a + gutter, W: r.W, H: b}
	return
}

// SplitRectFixed carves a fixed-height band off the top of r
func SplitRectFixed(r Rect, topH int) (top, rest Rect) {
	if topH > r.H {
		topH = r.H
	}
	if topH < 0 {
		topH = 0
	}
	top = Rect{X: r.X, Y: r.Y, W: r.W, H: topH}
	rest = Rect{X: r.X, Y: r.Y + topH, W: r.W, H: r.H - topH}
	return
}

// Center returns a centered region of given size within outer
func Center(outer Region, w, h int) Region {
	x := (outer.W - w) / 2
	y := (outer.H - h) / 2
	return outer.Sub(x, y, w, h)
}
