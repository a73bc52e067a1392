package dock

import (
	"github.com/lixenwraith/dockspace/terminal"
	"github.com/lixenwraith/dockspace/terminal/tui"
)

// HandleEvent feeds one input event through the context with s attached
func (s *Space) HandleEvent(ctx *Context, ev terminal.Event) bool {
	ctx.Attach(s)
	return ctx.Dispatch(ev)
}

// Dispatch routes an input event to the attached spaces
// Keys go to the focused window. The primary mouse button selects and drags
// tabs, drags resize bars and focuses windows; other pointer input goes to the
// window under the pointer
func (c *Context) Dispatch(ev terminal.Event) bool {
	switch ev.Type {
	case terminal.EventKey:
		if c.drag != nil && ev.Key == terminal.KeyEscape {
			c.drag.Source.HandleMessage(c, Message{Kind: MsgDragCancel, Node: c.drag.SourceNode, Window: c.drag.Window})
			return true
		}
		if c.active == nil {
			return false
		}
		return c.active.HandleMessage(c, Message{Kind: MsgKey, Window: c.active, Event: ev})
	case terminal.EventMouse:
		return c.dispatchMouse(ev)
	}
	return false
}

func (c *Context) dispatchMouse(ev terminal.Event) bool {
	p := tui.Pt(ev.MouseX, ev.MouseY)
	c.pointer = p

	if c.drag != nil {
		return c.dispatchDrag(ev, p)
	}

	switch c.pressed.Kind {
	case HitResize:
		return c.dispatchResize(ev, p)
	case HitTab:
		if ev.MouseAction == terminal.MouseActionDrag && c.travel(p) >= c.Metrics.DragThreshold {
			h := c.pressed
			c.clearPress()
			h.Space.deliver(c, Message{Kind: MsgTabDragBegin, Node: h.Node, Tab: h.Tab, Window: h.Window, Point: p})
			if c.drag != nil {
				c.setDropHover(c.overlayHit(p))
			}
			return true
		}
		if ev.MouseAction == terminal.MouseActionRelease {
			c.clearPress()
			return true
		}
	}

	s := c.spaceAt(p)
	if s == nil {
		c.hovered = HitResult{}
		return false
	}
	hit := s.HitTest(c, p)
	c.hovered = hit

	if ev.MouseBtn == terminal.MouseBtnLeft && ev.MouseAction == terminal.MouseActionPress {
		switch hit.Kind {
		case HitTab:
			c.press(hit, p)
			s.deliver(c, Message{Kind: MsgTabSelect, Node: hit.Node, Tab: hit.Tab, Window: hit.Window, Point: p})
			return true
		case HitResize:
			c.press(hit, p)
			s.deliver(c, Message{Kind: MsgResizeBegin, Node: hit.Node, Point: p})
			return true
		case HitWindow:
			c.active = hit.Window
		}
	}

	if hit.Kind == HitWindow {
		return hit.Window.HandleMessage(c, Message{Kind: MsgMouse, Node: hit.Node, Window: hit.Window, Point: p, Event: ev})
	}
	return hit.Kind != HitNone
}

func (c *Context) dispatchDrag(ev terminal.Event, p tui.Point) bool {
	switch {
	case ev.MouseAction == terminal.MouseActionRelease:
		h := c.overlayHit(p)
		if h.Kind != HitOverlay {
			c.cancelDrag()
			return true
		}
		h.Space.deliver(c, Message{Kind: MsgDrop, Node: h.Node, Target: h.Target, Window: c.drag.Window, Point: p})
		if c.drag != nil {
			c.cancelDrag()
		}
	case ev.MouseBtn != terminal.MouseBtnNone && ev.MouseBtn != terminal.MouseBtnLeft:
		src := c.drag.Source
		src.HandleMessage(c, Message{Kind: MsgDragCancel, Node: c.drag.SourceNode, Window: c.drag.Window})
	default:
		c.setDropHover(c.overlayHit(p))
	}
	return true
}

func (c *Context) dispatchResize(ev terminal.Event, p tui.Point) bool {
	h := c.pressed
	switch ev.MouseAction {
	case terminal.MouseActionRelease:
		c.clearPress()
		h.Space.deliver(c, Message{Kind: MsgResizeEnd, Node: h.Node, Point: p})
	default:
		h.Space.deliver(c, Message{Kind: MsgResizeMove, Node: h.Node, Point: p})
	}
	return true
}

// travel is the Chebyshev distance from the press point
func (c *Context) travel(p tui.Point) int {
	dx, dy := p.X-c.pressPoint.X, p.Y-c.pressPoint.Y
	return max(dx, -dx, dy, -dy)
}

// deliver sends msg to the node it names
func (s *Space) deliver(ctx *Context, msg Message) bool {
	n := s.Node(msg.Node)
	if n == nil {
		return false
	}
	switch msg.Kind {
	case MsgDragHover, MsgDrop:
		return n.overlay.HandleMessage(ctx, msg)
	}
	return n.HandleMessage(ctx, msg)
}

// HandleMessage handles space-level messages and routes the rest to the named node
func (s *Space) HandleMessage(ctx *Context, msg Message) bool {
	switch msg.Kind {
	case MsgTabDragBegin:
		leaf := s.Node(msg.Node)
		if !s.BeginDrag(ctx, leaf, msg.Window) {
			return false
		}
		if s.owner != nil {
			s.owner.Notify(ctx, s, msg)
		}
		return true
	case MsgDragCancel:
		s.CancelDrag(ctx)
		return true
	}
	return s.deliver(ctx, msg)
}

// HandleMessage reacts to messages addressed to the node
func (n *Node) HandleMessage(ctx *Context, msg Message) bool {
	switch msg.Kind {
	case MsgTabSelect:
		if !n.IsLeaf() {
			return false
		}
		n.tabs.Select(msg.Tab)
		ctx.active = n.ActiveWindow()
		if n.space.owner != nil {
			n.space.owner.Notify(ctx, n.space, msg)
		}
		return true

	case MsgTabDragBegin:
		if n.IsLeaf() {
			return n.bubble(ctx, msg)
		}
		return false

	case MsgResizeBegin:
		return !n.IsLeaf()

	case MsgResizeMove, MsgResizeEnd:
		if n.IsLeaf() {
			return false
		}
		n.SetRatio(n.dragRatio(ctx, msg.Point))
		if msg.Kind == MsgResizeEnd {
			n.space.emit(Event{Kind: EventResized, Node: n.id})
		}
		return true

	case MsgDragHover, MsgDrop:
		return n.overlay.HandleMessage(ctx, msg)

	case MsgKey, MsgMouse:
		if w := n.ActiveWindow(); w != nil {
			return w.HandleMessage(ctx, msg)
		}
	}
	return false
}

// bubble offers msg to each ancestor up to the root, then to the space
func (n *Node) bubble(ctx *Context, msg Message) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.HandleMessage(ctx, msg) {
			return true
		}
	}
	return n.space.HandleMessage(ctx, msg)
}
