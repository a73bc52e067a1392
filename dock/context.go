package dock

import (
	"github.com/lixenwraith/dockspace/terminal/tui"
)

// DragState is the phase of the drag-and-drop state machine
type DragState uint8

const (
	DragIdle DragState = iota
	DragActive
)

func (d DragState) String() string {
	if d == DragActive {
		return "active"
	}
	return "idle"
}

// DragPayload is the window in flight during a drag
type DragPayload struct {
	Window     Window
	Source     *Space
	SourceNode NodeID
	Group      Group
}

// Context is the per-frame UI state shared by every space drawn in a frame
type Context struct {
	Theme   tui.Theme
	Metrics Metrics

	frame   uint64
	spaces  []*Space
	pointer tui.Point
	hovered HitResult

	pressed    HitResult // Element the primary button went down on
	pressPoint tui.Point

	drag      *DragPayload
	dropHover HitResult
	active    Window
}

// NewContext creates a context with the given theme and metrics
func NewContext(theme tui.Theme, m Metrics) *Context {
	return &Context{Theme: theme, Metrics: m.normalized()}
}

// Attach registers spaces as drop candidates for drags dispatched through the context
func (c *Context) Attach(spaces ...*Space) {
	for _, s := range spaces {
		if s == nil || c.attached(s) {
			continue
		}
		c.spaces = append(c.spaces, s)
	}
}

// Detach removes a space; a drag sourced from it is cancelled
func (c *Context) Detach(s *Space) {
	for i, other := range c.spaces {
		if other == s {
			c.spaces = append(c.spaces[:i], c.spaces[i+1:]...)
			break
		}
	}
	if c.drag != nil && c.drag.Source == s {
		c.cancelDrag()
	}
}

func (c *Context) attached(s *Space) bool {
	for _, other := range c.spaces {
		if other == s {
			return true
		}
	}
	return false
}

// Spaces returns the attached spaces in attach order
func (c *Context) Spaces() []*Space {
	return c.spaces
}

// BeginFrame starts a frame
func (c *Context) BeginFrame() {
	c.frame++
}

// EndFrame finishes a frame; without an active drag every overlay returns to its idle state
func (c *Context) EndFrame() {
	if c.drag != nil {
		return
	}
	c.dropHover = HitResult{}
	for _, s := range c.spaces {
		s.Walk(func(n *Node) bool {
			n.overlay.reset()
			return true
		})
	}
}

// Frame returns the number of frames begun
func (c *Context) Frame() uint64 { return c.frame }

// Pointer returns the last pointer position seen
func (c *Context) Pointer() tui.Point { return c.pointer }

// Hovered returns the element under the pointer at the last pointer event
func (c *Context) Hovered() HitResult { return c.hovered }

// Pressed returns the element the primary button is held on
func (c *Context) Pressed() HitResult { return c.pressed }

// ActiveWindow returns the focused window
func (c *Context) ActiveWindow() Window { return c.active }

// SetActiveWindow focuses w
func (c *Context) SetActiveWindow(w Window) { c.active = w }

// Dragging reports whether a drag payload is in flight
func (c *Context) Dragging() bool { return c.drag != nil }

// DragState returns the current drag phase
func (c *Context) DragState() DragState {
	if c.drag != nil {
		return DragActive
	}
	return DragIdle
}

// Payload returns the drag payload, nil when idle
func (c *Context) Payload() *DragPayload { return c.drag }

func (c *Context) resizing(n *Node) bool {
	return c.pressed.Kind == HitResize && c.pressed.Space == n.space && c.pressed.Node == n.id
}

func (c *Context) press(h HitResult, p tui.Point) {
	c.pressed = h
	c.pressPoint = p
}

func (c *Context) clearPress() {
	c.pressed = HitResult{}
}

// setDropHover moves the hover highlight to h, clearing the previous overlay
func (c *Context) setDropHover(h HitResult) {
	prev := c.dropHover
	if prev.Kind == HitOverlay && (prev.Space != h.Space || prev.Node != h.Node || h.Kind != HitOverlay) {
		if n := prev.Space.Node(prev.Node); n != nil {
			n.overlay.HandleMessage(c, Message{Kind: MsgDragHover, Node: n.id, Target: TargetNone})
		}
	}
	c.dropHover = h
	if h.Kind == HitOverlay {
		if n := h.Space.Node(h.Node); n != nil {
			n.overlay.HandleMessage(c, Message{Kind: MsgDragHover, Node: n.id, Target: h.Target})
		}
	}
}

// overlayHit returns the drop target under p across attached spaces
func (c *Context) overlayHit(p tui.Point) HitResult {
	for _, s := range c.spaces {
		if h := s.HitTestOverlay(c, p); h.Kind == HitOverlay {
			return h
		}
	}
	return HitResult{}
}

// spaceAt returns the first attached space whose last layout contains p
func (c *Context) spaceAt(p tui.Point) *Space {
	for _, s := range c.spaces {
		if s.rect.Contains(p) {
			return s
		}
	}
	return nil
}

func (c *Context) endDrag() {
	c.setDropHover(HitResult{})
	c.drag = nil
}

// cancelDrag discards the payload without touching any tree
func (c *Context) cancelDrag() {
	p := c.drag
	c.endDrag()
	if p != nil && p.Source != nil {
		p.Source.emit(Event{Kind: EventDropFailed, Node: p.SourceNode, Window: p.Window})
	}
}
