package dock

import (
	"fmt"

	"github.com/lixenwraith/dockspace/terminal/tui"
)

// Axis is the direction an internal node divides its rect
type Axis uint8

const (
	Vertical   Axis = iota // Children side by side, left and right
	Horizontal             // Children stacked, top and bottom
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

func (a Axis) splitAxis() tui.SplitAxis {
	if a == Horizontal {
		return tui.SplitRows
	}
	return tui.SplitColumns
}

// Node is one region of a dock space: a leaf hosting windows or an internal
// split with exactly two children
type Node struct {
	space      *Space
	id         NodeID
	identifier string
	locked     bool
	released   bool

	parent   NodeID
	children [2]NodeID
	axis     Axis
	ratio    float64

	tabs    *TabStrip // Leaf only
	overlay *DragOverlay

	// Last layout
	rect    tui.Rect
	content tui.Rect
	bar     tui.Rect
}

func (n *Node) ID() NodeID         { return n.id }
func (n *Node) Space() *Space      { return n.space }
func (n *Node) Identifier() string { return n.identifier }
func (n *Node) Locked() bool       { return n.locked }
func (n *Node) Axis() Axis         { return n.axis }
func (n *Node) Ratio() float64     { return n.ratio }
func (n *Node) Rect() tui.Rect     { return n.rect }

// Overlay returns the node's drop overlay, present on every node
func (n *Node) Overlay() *DragOverlay { return n.overlay }

// Tabs returns the tab strip of a leaf, nil for internal nodes
func (n *Node) Tabs() *TabStrip { return n.tabs }

// Released reports whether the node was removed from its space
func (n *Node) Released() bool { return n.released }

// SetLocked marks the leaf as exempt from collapse when it becomes empty
func (n *Node) SetLocked(locked bool) { n.locked = locked }

// SetIdentifier names the node; names are unique within a space
func (n *Node) SetIdentifier(id string) error {
	if id != "" {
		if other := n.space.FindNode(id); other != nil && other != n {
			return fmt.Errorf("set identifier %q: %w", id, ErrDuplicateIdentifier)
		}
	}
	n.identifier = id
	return nil
}

// SetRatio sets the share of the left or top child, clamped to [0,1]
func (n *Node) SetRatio(r float64) {
	n.ratio = clampRatio(r)
}

func clampRatio(r float64) float64 {
	if r != r || r < 0 { // NaN
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

func (n *Node) Parent() *Node {
	return n.space.Node(n.parent)
}

func (n *Node) Left() *Node {
	return n.space.Node(n.children[0])
}

func (n *Node) Right() *Node {
	return n.space.Node(n.children[1])
}

// IsLeaf reports whether the node has no children
func (n *Node) IsLeaf() bool {
	return !n.children[0].Valid()
}

// IsEmpty reports whether the node is a leaf hosting no windows
func (n *Node) IsEmpty() bool {
	return n.IsLeaf() && n.tabs.Len() == 0
}

// IsRoot reports whether the node is its space's root
func (n *Node) IsRoot() bool {
	return n.space.root == n.id
}

// Windows returns the hosted windows in tab order
func (n *Node) Windows() []Window {
	if n.tabs == nil {
		return nil
	}
	return n.tabs.Windows()
}

// ActiveWindow returns the window shown in the leaf, nil when empty
func (n *Node) ActiveWindow() Window {
	if n.tabs == nil {
		return nil
	}
	return n.tabs.Active()
}

// SetActiveWindow selects the tab of a hosted window
func (n *Node) SetActiveWindow(w Window) error {
	if !n.IsLeaf() {
		return ErrNotLeaf
	}
	i := n.tabs.Index(w)
	if i < 0 {
		return ErrWindowNotHosted
	}
	n.tabs.Select(i)
	return nil
}

// CycleTab moves the selection by delta tabs, wrapping around
func (n *Node) CycleTab(delta int) Window {
	if !n.IsLeaf() || n.tabs.Len() == 0 {
		return nil
	}
	k := n.tabs.Len()
	n.tabs.Select(((n.tabs.Current()+delta)%k + k) % k)
	return n.tabs.Active()
}

// AddWindow appends a tab for w and makes it the active window
func (n *Node) AddWindow(w Window) error {
	if n.released {
		return ErrReleasedNode
	}
	if !n.IsLeaf() {
		return fmt.Errorf("add window: %w", ErrNotLeaf)
	}
	if w == nil {
		return fmt.Errorf("add window: %w", ErrNilWindow)
	}
	// A window lives in at most one leaf of a space
	if n.space.LeafForWindow(w) != nil {
		return fmt.Errorf("add window %q: %w", w.Title(), ErrWindowHosted)
	}
	n.tabs.Add(w)
	n.space.emit(Event{Kind: EventWindowAdded, Node: n.id, Window: w})
	return nil
}

// RemoveWindow drops the tab for w
// When w was active the tab now at its position, or the new last tab, becomes active
func (n *Node) RemoveWindow(w Window) error {
	if n.released {
		return ErrReleasedNode
	}
	if !n.IsLeaf() {
		return fmt.Errorf("remove window: %w", ErrNotLeaf)
	}
	if w == nil {
		return fmt.Errorf("remove window: %w", ErrNilWindow)
	}
	i := n.tabs.Index(w)
	if i < 0 {
		return fmt.Errorf("remove window %q: %w", w.Title(), ErrWindowNotHosted)
	}
	n.tabs.Remove(i)
	n.space.emit(Event{Kind: EventWindowRemoved, Node: n.id, Window: w})
	return nil
}

// FindNode returns the first node in this subtree named identifier, checking
// the node itself, then its left subtree, then its right
func (n *Node) FindNode(identifier string) *Node {
	if identifier == "" {
		return nil
	}
	if n.identifier == identifier {
		return n
	}
	if n.IsLeaf() {
		return nil
	}
	if l := n.Left(); l != nil {
		if f := l.FindNode(identifier); f != nil {
			return f
		}
	}
	if r := n.Right(); r != nil {
		return r.FindNode(identifier)
	}
	return nil
}

// SplitLeft places a new empty leaf left of n and returns the new internal node
func (n *Node) SplitLeft(sizeHint int) *Node {
	return n.space.SplitLeft(n, Vertical, sizeHint)
}

func (n *Node) SplitRight(sizeHint int) *Node {
	return n.space.SplitRight(n, Vertical, sizeHint)
}

func (n *Node) SplitTop(sizeHint int) *Node {
	return n.space.SplitLeft(n, Horizontal, sizeHint)
}

func (n *Node) SplitBottom(sizeHint int) *Node {
	return n.space.SplitRight(n, Horizontal, sizeHint)
}

func (n *Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("leaf %s %q", n.id, n.identifier)
	}
	return fmt.Sprintf("split %s %s %.2f", n.id, n.axis, n.ratio)
}
