package dock

import (
	"github.com/lixenwraith/dockspace/terminal"
	"github.com/lixenwraith/dockspace/terminal/tui"
)

// Draw renders the tree into r, then the drop overlays along the pointer while dragging
// r must cover the rect passed to Layout
func (s *Space) Draw(ctx *Context, r tui.Region) {
	root := s.Root()
	if root == nil {
		return
	}
	root.Draw(ctx, r)

	if !ctx.Dragging() {
		return
	}
	p := ctx.Pointer()
	for n := root; n != nil && n.rect.Contains(p); {
		n.overlay.Draw(ctx, r)
		if n.IsLeaf() {
			break
		}
		if l := n.Left(); l != nil && l.rect.Contains(p) {
			n = l
		} else {
			n = n.Right()
		}
	}
}

// Draw renders the node depth-first into the space region r
func (n *Node) Draw(ctx *Context, r tui.Region) {
	th := ctx.Theme
	if n.IsLeaf() {
		area := r.Clip(n.rect)
		bg := th.Bg
		w := n.ActiveWindow()
		if w != nil && w == ctx.ActiveWindow() {
			bg = th.FocusBg
		}
		area.Fill(bg)
		n.tabs.Draw(ctx, r.Clip(n.tabs.rect))
		if w == nil {
			body := r.Clip(n.content)
			body.TextCenter(body.H/2, tui.Truncate("empty", body.W), th.HintFg, bg, terminal.AttrDim)
			return
		}
		w.Draw(ctx, r.Clip(n.content))
		return
	}

	if l := n.Left(); l != nil {
		l.Draw(ctx, r)
	}
	if rt := n.Right(); rt != nil {
		rt.Draw(ctx, r)
	}

	if ctx.Metrics.Gutter == 0 {
		return
	}
	fg := th.Gutter
	hov := ctx.Hovered()
	if ctx.resizing(n) || (hov.Kind == HitResize && hov.Node == n.id) {
		fg = th.GutterActive
	}
	bar := r.Clip(n.bar)
	bar.Fill(th.Bg)
	for i := 0; i < ctx.Metrics.Gutter; i++ {
		if n.axis == Horizontal {
			bar.HLine(i, tui.LineSingle, fg, th.Bg)
		} else {
			bar.VLine(i, tui.LineSingle, fg, th.Bg)
		}
	}
}
