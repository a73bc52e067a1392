package dock

import (
	"github.com/lixenwraith/dockspace/terminal"
	"github.com/lixenwraith/dockspace/terminal/tui"
)

// TabStrip is a leaf's row of tabs, one per hosted window in the same order
type TabStrip struct {
	windows []Window
	current int

	rect   tui.Rect
	bounds []tui.TabBounds
}

func newTabStrip() *TabStrip {
	return &TabStrip{current: -1}
}

func (t *TabStrip) Len() int {
	if t == nil {
		return 0
	}
	return len(t.windows)
}

// Windows returns a copy of the hosted windows
func (t *TabStrip) Windows() []Window {
	out := make([]Window, len(t.windows))
	copy(out, t.windows)
	return out
}

// Current returns the selected tab index, -1 when empty
func (t *TabStrip) Current() int { return t.current }

// Active returns the window of the selected tab
func (t *TabStrip) Active() Window {
	if t.current < 0 || t.current >= len(t.windows) {
		return nil
	}
	return t.windows[t.current]
}

// Window returns the window bound to tab i
func (t *TabStrip) Window(i int) Window {
	if i < 0 || i >= len(t.windows) {
		return nil
	}
	return t.windows[i]
}

// Index returns the tab of w, -1 when absent
func (t *TabStrip) Index(w Window) int {
	if t == nil {
		return -1
	}
	for i, hosted := range t.windows {
		if hosted == w {
			return i
		}
	}
	return -1
}

// Add appends a tab and selects it
func (t *TabStrip) Add(w Window) {
	t.windows = append(t.windows, w)
	t.current = len(t.windows) - 1
	t.bounds = nil
}

// Remove deletes tab i, keeping the selection on the same window when another was active
func (t *TabStrip) Remove(i int) {
	if i < 0 || i >= len(t.windows) {
		return
	}
	t.windows = append(t.windows[:i], t.windows[i+1:]...)
	t.bounds = nil
	switch {
	case len(t.windows) == 0:
		t.current = -1
	case i < t.current:
		t.current--
	case t.current >= len(t.windows):
		t.current = len(t.windows) - 1
	}
}

// Select makes tab i current; out-of-range indexes are ignored
func (t *TabStrip) Select(i int) {
	if i >= 0 && i < len(t.windows) {
		t.current = i
	}
}

// Titles returns the tab labels
func (t *TabStrip) Titles() []string {
	titles := make([]string, len(t.windows))
	for i, w := range t.windows {
		titles[i] = w.Title()
	}
	return titles
}

// Rect returns the strip's last layout rect
func (t *TabStrip) Rect() tui.Rect { return t.rect }

// Bounds returns the laid-out tab extents, relative to the strip
// Adding or removing a tab clears them until the next layout
func (t *TabStrip) Bounds() []tui.TabBounds { return t.bounds }

func (t *TabStrip) opts(ctx *Context, dragged int) tui.TabBarOpts {
	th := ctx.Theme
	opts := tui.DefaultTabBarOpts()
	opts.ActiveStyle = tui.Style{Fg: th.TabActiveFg, Bg: th.TabActiveBg, Attr: terminal.AttrBold}
	opts.InactiveStyle = tui.Style{Fg: th.TabInactiveFg, Bg: th.TabInactiveBg}
	opts.EmphasisStyle = tui.Style{Fg: th.TabDraggedFg, Bg: th.TabInactiveBg}
	opts.Emphasis = dragged
	opts.Fill = th.TabInactiveBg
	return opts
}

// Layout records the strip rect and computes tab extents
func (t *TabStrip) Layout(ctx *Context, rect tui.Rect) {
	t.rect = rect
	t.bounds = tui.TabBarLayout(rect.W, t.Titles(), t.opts(ctx, -1))
}

// HitTest returns HitTab for a labelled tab, HitTabStrip for the rest of the strip
func (t *TabStrip) HitTest(ctx *Context, p tui.Point) HitResult {
	if !t.rect.Contains(p) {
		return HitResult{}
	}
	if i := tui.HitTab(t.bounds, p.X-t.rect.X); i >= 0 && i < len(t.windows) {
		return HitResult{Kind: HitTab, Tab: i, Window: t.windows[i]}
	}
	return HitResult{Kind: HitTabStrip, Tab: -1}
}

// Draw renders the strip into r, which must cover the strip rect
// The tab of a window being dragged is emphasized
func (t *TabStrip) Draw(ctx *Context, r tui.Region) {
	dragged := -1
	if p := ctx.Payload(); p != nil {
		dragged = t.Index(p.Window)
	}
	opts := t.opts(ctx, dragged)
	r.Fill(opts.Fill)
	if len(t.windows) == 0 {
		return
	}
	t.bounds = r.TabBar(0, t.Titles(), t.current, opts)
}
