package dock

// DropOutcome is the terminal state of a drag
type DropOutcome uint8

const (
	DropFailed DropOutcome = iota
	DropSucceeded
)

func (o DropOutcome) String() string {
	if o == DropSucceeded {
		return "succeeded"
	}
	return "failed"
}

// DropResult reports what a drop did
type DropResult struct {
	Outcome   DropOutcome
	Target    *Node // Leaf now hosting the window
	Split     *Node // Internal node created by an edge drop
	Collapsed bool  // Source leaf was collapsed away
}

// BeginDrag starts dragging w out of leaf; the space's group travels with the payload
func (s *Space) BeginDrag(ctx *Context, leaf *Node, w Window) bool {
	if ctx.Dragging() || leaf == nil || leaf.space != s || !leaf.IsLeaf() || leaf.tabs.Index(w) < 0 {
		return false
	}
	ctx.Attach(s)
	ctx.drag = &DragPayload{Window: w, Source: s, SourceNode: leaf.id, Group: s.group}
	ctx.clearPress()
	s.emit(Event{Kind: EventDragBegin, Node: leaf.id, Window: w})
	return true
}

// CancelDrag ends the drag without changing any tree
func (s *Space) CancelDrag(ctx *Context) {
	if ctx.Dragging() {
		ctx.cancelDrag()
	}
}

// Drop delivers the dragged window onto target of node n
// A center drop adds the window as a tab; an edge drop splits n and hosts the
// window in the new leaf. Afterwards the source leaf is collapsed away when it
// is left empty and unlocked. On failure no tree is changed
func (s *Space) Drop(ctx *Context, n *Node, target DropTarget) DropResult {
	p := ctx.Payload()
	if p == nil {
		return DropResult{}
	}
	fail := func() DropResult {
		ctx.cancelDrag()
		return DropResult{}
	}
	if n == nil || n.space != s || n.released || !n.overlay.enabled || !n.overlay.Accepts(p) {
		return fail()
	}
	if target == TargetNone || (target == TargetCenter && !n.IsLeaf()) {
		return fail()
	}
	src := p.Source.Node(p.SourceNode)
	if src == nil || src.tabs.Index(p.Window) < 0 {
		return fail()
	}
	w := p.Window

	// Dropping a leaf's window back onto itself changes nothing
	if n == src && (target == TargetCenter || src.tabs.Len() == 1) {
		ctx.endDrag()
		ctx.active = w
		s.emit(Event{Kind: EventDropSucceeded, Node: n.id, Window: w, Target: target})
		return DropResult{Outcome: DropSucceeded, Target: n}
	}

	if err := src.RemoveWindow(w); err != nil {
		return fail()
	}

	res := DropResult{Outcome: DropSucceeded}
	switch target {
	case TargetCenter:
		res.Target = n
	case TargetLeft:
		res.Split = s.SplitLeft(n, Vertical, 0)
		res.Target = res.Split.Left()
	case TargetRight:
		res.Split = s.SplitRight(n, Vertical, 0)
		res.Target = res.Split.Right()
	case TargetTop:
		res.Split = s.SplitLeft(n, Horizontal, 0)
		res.Target = res.Split.Left()
	case TargetBottom:
		res.Split = s.SplitRight(n, Horizontal, 0)
		res.Target = res.Split.Right()
	}
	if err := res.Target.AddWindow(w); err != nil {
		assertf("drop onto %s: %v", res.Target.id, err)
	}

	res.Collapsed = p.Source.collapseEmpty(src)
	ctx.endDrag()
	ctx.active = w
	s.emit(Event{Kind: EventDropSucceeded, Node: res.Target.id, Window: w, Target: target})
	return res
}
