package dock

import (
	"github.com/lixenwraith/dockspace/terminal"
	"github.com/lixenwraith/dockspace/terminal/tui"
)

// MessageKind identifies a widget message
type MessageKind uint8

const (
	MsgNone MessageKind = iota
	MsgTabSelect
	MsgTabDragBegin
	MsgDragHover
	MsgDrop
	MsgDragCancel
	MsgResizeBegin
	MsgResizeMove
	MsgResizeEnd
	MsgKey   // Keyboard input for the focused window
	MsgMouse // Pointer input over a window's content
)

var messageNames = [...]string{
	"none", "tab-select", "tab-drag-begin", "drag-hover", "drop", "drag-cancel",
	"resize-begin", "resize-move", "resize-end", "key", "mouse",
}

func (k MessageKind) String() string {
	if int(k) < len(messageNames) {
		return messageNames[k]
	}
	return "unknown"
}

// Message is routed between widgets during input dispatch
type Message struct {
	Kind   MessageKind
	Node   NodeID
	Tab    int
	Window Window
	Target DropTarget
	Point  tui.Point
	Event  terminal.Event // Source input for MsgKey and MsgMouse
}
