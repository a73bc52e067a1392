package dock

import "github.com/lixenwraith/dockspace/terminal/tui"

// HitKind classifies what a point hit
type HitKind uint8

const (
	HitNone HitKind = iota
	HitTab
	HitTabStrip
	HitWindow
	HitResize
	HitOverlay
)

var hitKindNames = [...]string{"none", "tab", "tabstrip", "window", "resize", "overlay"}

func (k HitKind) String() string {
	if int(k) < len(hitKindNames) {
		return hitKindNames[k]
	}
	return "unknown"
}

// Edge names the side of a node a resize bar sits on
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgeRight
	EdgeBottom
)

// HitResult describes the element under a point
// Part is free for windows to tag their own sub-elements
type HitResult struct {
	Kind   HitKind
	Space  *Space
	Node   NodeID
	Edge   Edge
	Tab    int
	Window Window
	Target DropTarget
	Part   int
}

// IsNone reports whether nothing was hit
func (h HitResult) IsNone() bool {
	return h.Kind == HitNone
}

// HitTest returns the element of the tree under p
// Drop overlays are not considered; see HitTestOverlay
func (s *Space) HitTest(ctx *Context, p tui.Point) HitResult {
	root := s.Root()
	if root == nil || !s.rect.Contains(p) {
		return HitResult{}
	}
	h := root.HitTest(ctx, p)
	if h.Kind != HitNone {
		h.Space = s
	}
	return h
}

// HitTest resolves p against the last layout of the node
func (n *Node) HitTest(ctx *Context, p tui.Point) HitResult {
	if !n.rect.Contains(p) {
		return HitResult{}
	}

	if n.IsLeaf() {
		if h := n.tabs.HitTest(ctx, p); h.Kind != HitNone {
			h.Node = n.id
			h.Space = n.space
			return h
		}
		w := n.ActiveWindow()
		if w == nil || !n.content.Contains(p) {
			return HitResult{}
		}
		h := w.HitTest(ctx, p)
		if h.Kind == HitNone {
			return h
		}
		h.Node = n.id
		h.Space = n.space
		h.Window = w
		return h
	}

	if n.bar.Contains(p) {
		edge := EdgeRight
		if n.axis == Horizontal {
			edge = EdgeBottom
		}
		return HitResult{Kind: HitResize, Space: n.space, Node: n.id, Edge: edge}
	}
	if l := n.Left(); l != nil {
		if h := l.HitTest(ctx, p); h.Kind != HitNone {
			return h
		}
	}
	if r := n.Right(); r != nil {
		return r.HitTest(ctx, p)
	}
	return HitResult{}
}

// HitTestOverlay returns the deepest enabled drop target under p that accepts
// the context's payload. Without an active drag nothing is hit
func (s *Space) HitTestOverlay(ctx *Context, p tui.Point) HitResult {
	if !ctx.Dragging() || !s.rect.Contains(p) {
		return HitResult{}
	}
	var best HitResult
	for n := s.Root(); n != nil; {
		if h := n.overlay.HitTest(ctx, p); h.Kind != HitNone {
			best = h
		}
		if n.IsLeaf() {
			break
		}
		next := n.Left()
		if next == nil || !next.rect.Contains(p) {
			next = n.Right()
		}
		if next == nil || !next.rect.Contains(p) {
			break
		}
		n = next
	}
	return best
}
