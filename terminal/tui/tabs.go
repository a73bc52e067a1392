package tui

import "github.com/lixenwraith/dockspace/terminal"

// TabBounds stores position and size of a rendered tab, relative to the bar region
type TabBounds struct {
	X, W int
}

// Contains reports whether region-relative column x falls on the tab
func (b TabBounds) Contains(x int) bool {
	return b.W > 0 && x >= b.X && x < b.X+b.W
}

// TabBarOpts configures tab bar rendering
type TabBarOpts struct {
	ActiveStyle   Style
	InactiveStyle Style
	Emphasis      int    // Tab index rendered with EmphasisStyle, -1 for none
	EmphasisStyle Style  // Used for a tab being dragged
	Separator     string // Between tabs, default " │ "
	Padding       int    // Horizontal padding inside each tab, default 1
	Fill          terminal.RGB
}

// DefaultTabBarOpts returns sensible defaults
func DefaultTabBarOpts() TabBarOpts {
	return TabBarOpts{
		ActiveStyle:   Style{Attr: terminal.AttrBold | terminal.AttrReverse},
		InactiveStyle: Style{Attr: terminal.AttrNone},
		Emphasis:      -1,
		EmphasisStyle: Style{Attr: terminal.AttrDim},
		Separator:     " │ ",
		Padding:       1,
	}
}

// TabBarLayout computes tab bounds for a bar of width w without drawing
// Tabs that do not fit get zero width
func TabBarLayout(w int, titles []string, opts TabBarOpts) []TabBounds {
	if len(titles) == 0 {
		return nil
	}
	if opts.Separator == "" {
		opts.Separator = " │ "
	}

	bounds := make([]TabBounds, len(titles))
	x := 0
	sepLen := RuneLen(opts.Separator)

	for i, title := range titles {
		if x >= w {
			break
		}
		tabW := RuneLen(title) + opts.Padding*2
		if x+tabW > w {
			tabW = w - x
		}
		bounds[i] = TabBounds{X: x, W: tabW}
		x += tabW
		if i < len(titles)-1 {
			x += sepLen
		}
	}
	return bounds
}

// TabBar renders horizontal tab strip at row y
// Returns bounds of each tab for hit testing / navigation
func (r Region) TabBar(y int, titles []string, active int, opts TabBarOpts) []TabBounds {
	if y < 0 || y >= r.H || len(titles) == 0 {
		return nil
	}
	if opts.Separator == "" {
		opts.Separator = " │ "
	}

	if !opts.Fill.IsZero() {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', terminal.RGB{}, opts.Fill, terminal.AttrNone)
		}
	}

	bounds := TabBarLayout(r.W, titles, opts)
	for i, title := range titles {
		b := bounds[i]
		if b.W == 0 {
			continue
		}

		style := opts.InactiveStyle
		if i == active {
			style = opts.ActiveStyle
		}
		if i == opts.Emphasis {
			style = opts.EmphasisStyle
		}

		bar := r.Sub(b.X, y, b.W, 1)
		for j := 0; j < b.W; j++ {
			bar.Cell(j, 0, ' ', style.Fg, style.Bg, style.Attr)
		}
		bar.Text(opts.Padding, 0, Truncate(title, b.W-opts.Padding), style.Fg, style.Bg, style.Attr)

		// Separator between tabs
		if i < len(titles)-1 && i+1 < len(bounds) && bounds[i+1].W > 0 {
			r.Text(b.X+b.W, y, opts.Separator, opts.InactiveStyle.Fg, opts.InactiveStyle.Bg, terminal.AttrDim)
		}
	}

	return bounds
}

// HitTab returns the index of the tab under region-relative column x, or -1
func HitTab(bounds []TabBounds, x int) int {
	for i, b := range bounds {
		if b.Contains(x) {
			return i
		}
	}
	return -1
}
