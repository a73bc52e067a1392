package dock

import "github.com/lixenwraith/dockspace/terminal/tui"

// LayoutFlags adjust how a widget arranges itself inside its rect
type LayoutFlags uint8

const (
	LayoutNoTitle  LayoutFlags = 1 << iota // Host draws the title, e.g. as a tab
	LayoutNoBorder                         // Host owns the frame
)

// Has reports whether every bit of f is set
func (l LayoutFlags) Has(f LayoutFlags) bool {
	return l&f == f
}

// Widget is the contract shared by spaces, nodes, overlays and hosted windows
type Widget interface {
	HitTest(ctx *Context, p tui.Point) HitResult
	Layout(ctx *Context, rect tui.Rect, flags LayoutFlags)
	Draw(ctx *Context, r tui.Region)
	HandleMessage(ctx *Context, msg Message) bool
}

// Window is a dockable widget; the dock never owns it
type Window interface {
	Widget
	Title() string
}

// Owner receives upcalls from a space about interactions that concern its host,
// such as a tab drag starting
type Owner interface {
	Notify(ctx *Context, s *Space, msg Message)
}
