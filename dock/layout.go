package dock

import "github.com/lixenwraith/dockspace/terminal/tui"

// Layout assigns rect to the tree
func (s *Space) Layout(ctx *Context, rect tui.Rect, flags LayoutFlags) {
	ctx.Attach(s)
	s.rect = rect
	if root := s.Root(); root != nil {
		root.Layout(ctx, rect, flags)
	}
}

// Layout splits rect between children at the node's ratio, or gives a leaf's
// rect to its tab strip row and active window
func (n *Node) Layout(ctx *Context, rect tui.Rect, flags LayoutFlags) {
	n.rect = rect
	n.overlay.Layout(ctx, rect, flags)
	m := ctx.Metrics

	if n.IsLeaf() {
		strip, content := tui.SplitRectFixed(rect, m.TabHeight)
		n.tabs.Layout(ctx, strip)
		n.content = content
		n.bar = tui.Rect{}
		if w := n.ActiveWindow(); w != nil {
			w.Layout(ctx, content, flags|LayoutNoTitle|LayoutNoBorder)
		}
		return
	}

	first, second := tui.SplitRect(rect, n.axis.splitAxis(), n.ratio, m.Gutter)
	n.content = tui.Rect{}
	n.bar = resizeBar(rect, n.axis, first, second)
	if l := n.Left(); l != nil {
		l.Layout(ctx, first, flags)
	}
	if r := n.Right(); r != nil {
		r.Layout(ctx, second, flags)
	}
}

// resizeBar spans the gap between the children, at least one cell thick
func resizeBar(rect tui.Rect, axis Axis, first, second tui.Rect) tui.Rect {
	if axis == Horizontal {
		h := max(second.Y-first.Bottom(), 1)
		return tui.Rect{X: rect.X, Y: first.Bottom(), W: rect.W, H: h}
	}
	w := max(second.X-first.Right(), 1)
	return tui.Rect{X: first.Right(), Y: rect.Y, W: w, H: rect.H}
}

// dragRatio converts a pointer position on the resize bar into a ratio that
// keeps both children at least MinExtent cells
func (n *Node) dragRatio(ctx *Context, p tui.Point) float64 {
	m := ctx.Metrics
	extent, offset := n.rect.W, p.X-n.rect.X
	if n.axis == Horizontal {
		extent, offset = n.rect.H, p.Y-n.rect.Y
	}
	avail := extent - max(m.Gutter, 0)
	if avail <= 0 {
		return n.ratio
	}
	lo, hi := m.MinExtent, avail-m.MinExtent
	if lo > hi {
		lo, hi = avail/2, avail/2
	}
	offset = min(max(offset, lo), hi)
	return clampRatio(float64(offset) / float64(avail))
}
