package dock

import (
	"testing"

	"github.com/lixenwraith/dockspace/terminal"
	"github.com/lixenwraith/dockspace/terminal/tui"
)

// testWindow records what the dock does to it
type testWindow struct {
	title  string
	rect   tui.Rect
	flags  LayoutFlags
	keys   []terminal.Event
	clicks int
}

func newWindow(title string) *testWindow {
	return &testWindow{title: title}
}

func (w *testWindow) Title() string { return w.title }

func (w *testWindow) HitTest(ctx *Context, p tui.Point) HitResult {
	if w.rect.Contains(p) {
		return HitResult{Kind: HitWindow}
	}
	return HitResult{}
}

func (w *testWindow) Layout(ctx *Context, rect tui.Rect, flags LayoutFlags) {
	w.rect = rect
	w.flags = flags
}

func (w *testWindow) Draw(ctx *Context, r tui.Region) {
	r.Text(0, 0, w.title, ctx.Theme.Fg, ctx.Theme.Bg, terminal.AttrNone)
}

func (w *testWindow) HandleMessage(ctx *Context, msg Message) bool {
	switch msg.Kind {
	case MsgKey:
		w.keys = append(w.keys, msg.Event)
		return true
	case MsgMouse:
		w.clicks++
		return true
	}
	return false
}

func newTestContext() *Context {
	return NewContext(tui.DefaultTheme, DefaultMetrics())
}

func layoutAt(ctx *Context, s *Space, w, h int) {
	s.Layout(ctx, tui.NewRect(0, 0, w, h), 0)
}

// twoPane builds an 80x24 space split vertically:
// left leaf "left" hosting A and B (B active), right leaf "right" hosting C
//
//	left  (0,0,40,24)  tabs A at x 0..2, B at x 6..8
//	bar   (40,0,1,24)
//	right (41,0,39,24)
type twoPaneFixture struct {
	ctx         *Context
	space       *Space
	left, right *Node
	a, b, c     *testWindow
	events      []Event
}

func twoPane(t *testing.T) *twoPaneFixture {
	t.Helper()
	f := &twoPaneFixture{
		ctx: newTestContext(),
		a:   newWindow("A"),
		b:   newWindow("B"),
		c:   newWindow("C"),
	}
	f.space = New(WithRootIdentifier("left"), WithListener(func(e Event) {
		f.events = append(f.events, e)
	}))
	f.left = f.space.Root()
	mustAdd(t, f.left, f.a)
	mustAdd(t, f.left, f.b)

	split := f.left.SplitRight(0)
	f.right = split.Right()
	if err := f.right.SetIdentifier("right"); err != nil {
		t.Fatalf("SetIdentifier: %v", err)
	}
	mustAdd(t, f.right, f.c)

	layoutAt(f.ctx, f.space, 80, 24)
	f.ctx.EndFrame()
	f.events = nil
	return f
}

func (f *twoPaneFixture) count(kind EventKind) int {
	n := 0
	for _, e := range f.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func mustAdd(t *testing.T, n *Node, w Window) {
	t.Helper()
	if err := n.AddWindow(w); err != nil {
		t.Fatalf("AddWindow(%s): %v", w.Title(), err)
	}
}

func mustValidate(t *testing.T, s *Space) {
	t.Helper()
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate: %v\n%s", err, s.DebugString())
	}
}

func mouse(x, y int, btn terminal.MouseButton, action terminal.MouseAction) terminal.Event {
	return terminal.Event{
		Type:        terminal.EventMouse,
		MouseX:      x,
		MouseY:      y,
		MouseBtn:    btn,
		MouseAction: action,
	}
}

func press(x, y int) terminal.Event {
	return mouse(x, y, terminal.MouseBtnLeft, terminal.MouseActionPress)
}

func drag(x, y int) terminal.Event {
	return mouse(x, y, terminal.MouseBtnLeft, terminal.MouseActionDrag)
}

func release(x, y int) terminal.Event {
	return mouse(x, y, terminal.MouseBtnLeft, terminal.MouseActionRelease)
}

func titles(n *Node) []string {
	if n == nil || !n.IsLeaf() {
		return nil
	}
	return n.Tabs().Titles()
}
