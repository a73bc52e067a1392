package dock

import (
	"github.com/lixenwraith/dockspace/terminal/tui"
)

// DropTarget is one of the five positions of a drop overlay
type DropTarget uint8

const (
	TargetNone DropTarget = iota
	TargetCenter
	TargetLeft
	TargetRight
	TargetTop
	TargetBottom
)

var targetNames = [...]string{"none", "center", "left", "right", "top", "bottom"}

func (t DropTarget) String() string {
	if int(t) < len(targetNames) {
		return targetNames[t]
	}
	return "unknown"
}

// IsEdge reports whether dropping on t splits the node
func (t DropTarget) IsEdge() bool {
	return t >= TargetLeft && t <= TargetBottom
}

// Hit order; center first so it wins where squares overlap
var targetOrder = [...]DropTarget{TargetCenter, TargetLeft, TargetRight, TargetTop, TargetBottom}

// Target anchors as fractions of the node rect
var (
	leafAnchors = [...][2]float64{
		TargetCenter: {0.5, 0.5},
		TargetLeft:   {0.25, 0.5},
		TargetRight:  {0.75, 0.5},
		TargetTop:    {0.5, 0.25},
		TargetBottom: {0.5, 0.75},
	}
	edgeAnchors = [...][2]float64{
		TargetLeft:   {0, 0.5},
		TargetRight:  {1, 0.5},
		TargetTop:    {0.5, 0},
		TargetBottom: {0.5, 1},
	}
)

// DragOverlay is a node's set of drop targets, visible while a compatible drag is active
type DragOverlay struct {
	node    NodeID
	space   *Space
	enabled bool
	group   Group
	hovered DropTarget
	leaf    bool
	rect    tui.Rect
}

func (o *DragOverlay) Enabled() bool       { return o.enabled }
func (o *DragOverlay) SetEnabled(on bool)  { o.enabled = on }
func (o *DragOverlay) Group() Group        { return o.group }
func (o *DragOverlay) Hovered() DropTarget { return o.hovered }

// Accepts reports whether the payload's group matches the overlay
func (o *DragOverlay) Accepts(p *DragPayload) bool {
	return p != nil && p.Group == o.group
}

// Targets returns the targets this overlay offers; internal nodes offer edges only
func (o *DragOverlay) Targets() []DropTarget {
	if o.leaf {
		return targetOrder[:]
	}
	return targetOrder[1:]
}

// TargetRect returns the square of target t for the last layout
func (o *DragOverlay) TargetRect(ctx *Context, t DropTarget) (tui.Rect, bool) {
	if t == TargetNone || o.rect.IsEmpty() || (t == TargetCenter && !o.leaf) {
		return tui.Rect{}, false
	}
	anchors := edgeAnchors
	if o.leaf {
		anchors = leafAnchors
	}
	a := anchors[t]
	p := o.rect.At(a[0], a[1])
	if a[0] == 1 {
		p.X = o.rect.Right() - 1
	}
	if a[1] == 1 {
		p.Y = o.rect.Bottom() - 1
	}
	m := ctx.Metrics
	return o.rect.CenteredAt(p, m.TargetW, m.TargetH).Intersect(o.rect), true
}

// PreviewRect returns the area a drop on t would occupy
func (o *DragOverlay) PreviewRect(ctx *Context, t DropTarget) tui.Rect {
	r := o.rect
	g := ctx.Metrics.Gutter
	switch t {
	case TargetLeft:
		first, _ := tui.SplitRect(r, tui.SplitColumns, 0.5, g)
		return first
	case TargetRight:
		_, second := tui.SplitRect(r, tui.SplitColumns, 0.5, g)
		return second
	case TargetTop:
		first, _ := tui.SplitRect(r, tui.SplitRows, 0.5, g)
		return first
	case TargetBottom:
		_, second := tui.SplitRect(r, tui.SplitRows, 0.5, g)
		return second
	case TargetCenter:
		return r
	}
	return tui.Rect{}
}

func (o *DragOverlay) reset() {
	o.enabled = true
	o.hovered = TargetNone
}

// HitTest returns HitOverlay for the target under p when a compatible drag is active
func (o *DragOverlay) HitTest(ctx *Context, p tui.Point) HitResult {
	if !o.enabled || !ctx.Dragging() || !o.Accepts(ctx.Payload()) || !o.rect.Contains(p) {
		return HitResult{}
	}
	for _, t := range o.Targets() {
		if r, ok := o.TargetRect(ctx, t); ok && r.Contains(p) {
			return HitResult{Kind: HitOverlay, Space: o.space, Node: o.node, Target: t}
		}
	}
	return HitResult{}
}

// Layout records the rect of the owning node
func (o *DragOverlay) Layout(ctx *Context, rect tui.Rect, flags LayoutFlags) {
	o.rect = rect
	if n := o.space.Node(o.node); n != nil {
		o.leaf = n.IsLeaf()
	}
}

// Draw paints the drop squares and a preview of the hovered target
// r is the region of the whole space
func (o *DragOverlay) Draw(ctx *Context, r tui.Region) {
	if !o.enabled || !o.Accepts(ctx.Payload()) {
		return
	}
	th := ctx.Theme
	if o.hovered != TargetNone {
		r.Clip(o.PreviewRect(ctx, o.hovered)).Tint(th.DropPreview)
	}
	for _, t := range o.Targets() {
		rect, ok := o.TargetRect(ctx, t)
		if !ok {
			continue
		}
		bg := th.DropTarget
		if t == o.hovered {
			bg = th.HoverBg(th.DropTarget)
		}
		sq := r.Clip(rect)
		sq.Fill(bg)
		sq.TextCenter(sq.H/2, targetGlyph(t), th.Fg, bg, 0)
	}
}

func targetGlyph(t DropTarget) string {
	switch t {
	case TargetLeft:
		return "◀"
	case TargetRight:
		return "▶"
	case TargetTop:
		return "▲"
	case TargetBottom:
		return "▼"
	}
	return "◆"
}

// HandleMessage tracks hover and performs the drop for its node
func (o *DragOverlay) HandleMessage(ctx *Context, msg Message) bool {
	switch msg.Kind {
	case MsgDragHover:
		o.hovered = msg.Target
		return true
	case MsgDrop:
		n := o.space.Node(o.node)
		if n == nil {
			return false
		}
		res := o.space.Drop(ctx, n, msg.Target)
		return res.Outcome == DropSucceeded
	}
	return false
}
