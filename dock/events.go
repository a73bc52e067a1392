package dock

import "fmt"

// EventKind identifies a structural notification
type EventKind uint8

const (
	EventSplit EventKind = iota
	EventCollapse
	EventWindowAdded
	EventWindowRemoved
	EventDragBegin
	EventDropSucceeded
	EventDropFailed
	EventResized
)

var eventNames = [...]string{
	"split", "collapse", "window-added", "window-removed",
	"drag-begin", "drop-succeeded", "drop-failed", "resized",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event reports a change to a space after it happened
// Node is the node the change produced or affected; it may already be released
type Event struct {
	Kind   EventKind
	Space  *Space
	Node   NodeID
	Window Window
	Target DropTarget
}

func (e Event) String() string {
	if e.Window != nil {
		return fmt.Sprintf("%s %s %q", e.Kind, e.Node, e.Window.Title())
	}
	return fmt.Sprintf("%s %s", e.Kind, e.Node)
}

// Listener observes space events; it must not reshape the tree re-entrantly
type Listener func(Event)

func (s *Space) emit(e Event) {
	e.Space = s
	for _, l := range s.listeners {
		l(e)
	}
}
