package tui

import "github.com/lixenwraith/dockspace/terminal"

// Region represents a rectangular area within a cell buffer
// All coordinates are relative to the region's origin
type Region struct {
	Cells  []terminal.Cell
	TotalW int // Total width of the underlying cell buffer
	X, Y   int // Absolute position in cell buffer
	W, H   int // Region dimensions
}

// NewRegion creates a region referencing a cell slice with bounds
func NewRegion(cells []terminal.Cell, totalW, x, y, w, h int) Region {
	return Region{
		Cells:  cells,
		TotalW: totalW,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
	}
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		Cells:  r.Cells,
		TotalW: r.TotalW,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      w,
		H:      h,
	}
}

// Clip returns the part of the region covered by an absolute rect
func (r Region) Clip(rect Rect) Region {
	return r.Sub(rect.X-r.X, rect.Y-r.Y, rect.W, rect.H)
}

// Rect returns the region's absolute bounds
func (r Region) Rect() Rect {
	return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, fg, bg terminal.RGB, attr terminal.Attr) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	absX := r.X + x
	absY := r.Y + y

	if uint(absX) >= uint(r.TotalW) {
		return
	}

	idx := absY*r.TotalW + absX
	if uint(idx) < uint(len(r.Cells)) {
		r.Cells[idx] = terminal.Cell{Rune: ch, Fg: fg, Bg: bg, Attrs: attr}
	}
}

// At returns the cell at region-relative coordinates, zero Cell when out of bounds
func (r Region) At(x, y int) terminal.Cell {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return terminal.Cell{}
	}
	idx := (r.Y+y)*r.TotalW + r.X + x
	if uint(idx) >= uint(len(r.Cells)) {
		return terminal.Cell{}
	}
	return r.Cells[idx]
}

// Tint replaces the background of existing cells, keeping glyphs
func (r Region) Tint(bg terminal.RGB) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			c := r.At(x, y)
			if c.Rune == 0 {
				c.Rune = ' '
			}
			r.Cell(x, y, c.Rune, c.Fg, bg, c.Attrs)
		}
	}
}

// Fill fills entire region with background color
func (r Region) Fill(bg terminal.RGB) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', terminal.RGB{}, bg, terminal.AttrNone)
		}
	}
}

// Clear fills region with spaces and zero colors
func (r Region) Clear() {
	r.Fill(terminal.RGB{})
}
