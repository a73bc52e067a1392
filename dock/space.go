package dock

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/lixenwraith/dockspace/terminal/tui"
)

// Group tags spaces and overlays that may exchange windows
// Groups compare by identity; two NewGroup calls never match
type Group struct {
	id   uint64
	name string
}

var groupSeq atomic.Uint64

// NewGroup returns a fresh group; name is for diagnostics only
func NewGroup(name string) Group {
	return Group{id: groupSeq.Add(1), name: name}
}

func (g Group) String() string {
	return fmt.Sprintf("%s#%d", g.name, g.id)
}

// Space is the root container of a dock tree and the arena owning its nodes
type Space struct {
	nodes     arena
	root      NodeID
	group     Group
	owner     Owner
	listeners []Listener
	rect      tui.Rect
}

// Option configures a Space at construction
type Option func(*Space)

// WithGroup sets the dock group shared with compatible spaces
func WithGroup(g Group) Option {
	return func(s *Space) { s.group = g }
}

// WithOwner installs the upcall target for drag-begin and tab-select notifications
func WithOwner(o Owner) Option {
	return func(s *Space) { s.owner = o }
}

// WithListener subscribes l to structural events
func WithListener(l Listener) Option {
	return func(s *Space) { s.listeners = append(s.listeners, l) }
}

// WithRootIdentifier names the initial root leaf
func WithRootIdentifier(id string) Option {
	return func(s *Space) { s.Root().identifier = id }
}

// New creates a space holding a single empty root leaf
func New(opts ...Option) *Space {
	s := &Space{group: NewGroup("dock")}
	s.root = s.newLeaf(NodeID{}).id
	for _, opt := range opts {
		opt(s)
	}
	s.Root().overlay.group = s.group
	return s
}

func (s *Space) newNode(parent NodeID) *Node {
	n := &Node{space: s, parent: parent, ratio: 0.5}
	n.id = s.nodes.alloc(n)
	n.overlay = &DragOverlay{node: n.id, space: s, group: s.group, enabled: true}
	return n
}

func (s *Space) newLeaf(parent NodeID) *Node {
	n := s.newNode(parent)
	n.tabs = newTabStrip()
	return n
}

// Root returns the root node
func (s *Space) Root() *Node {
	return s.nodes.get(s.root)
}

// Node resolves id, returning nil for invalid or released IDs
func (s *Space) Node(id NodeID) *Node {
	return s.nodes.get(id)
}

// Len returns the number of live nodes
func (s *Space) Len() int {
	return s.nodes.live
}

// Rect returns the rect of the last layout
func (s *Space) Rect() tui.Rect {
	return s.rect
}

// AddListener subscribes l to structural events
func (s *Space) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

// SetDockGroup assigns the group to the space and every node overlay
func (s *Space) SetDockGroup(g Group) {
	s.group = g
	s.Walk(func(n *Node) bool {
		n.overlay.group = g
		return true
	})
}

func (s *Space) DockGroup() Group {
	return s.group
}

// FindNode returns the first node named identifier in depth-first order
func (s *Space) FindNode(identifier string) *Node {
	root := s.Root()
	if root == nil {
		return nil
	}
	return root.FindNode(identifier)
}

// Walk visits nodes depth-first, parents before children, left before right
// Returning false from fn skips the node's children
func (s *Space) Walk(fn func(*Node) bool) {
	var visit func(n *Node)
	visit = func(n *Node) {
		if n == nil || !fn(n) || n.IsLeaf() {
			return
		}
		visit(n.Left())
		visit(n.Right())
	}
	visit(s.Root())
}

// Leaves returns the leaves left to right
func (s *Space) Leaves() []*Node {
	var leaves []*Node
	s.Walk(func(n *Node) bool {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
		return true
	})
	return leaves
}

// LeafForWindow returns the leaf hosting w, nil when no leaf does
func (s *Space) LeafForWindow(w Window) *Node {
	if w == nil {
		return nil
	}
	var found *Node
	s.Walk(func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.IsLeaf() && n.tabs.Index(w) >= 0 {
			found = n
		}
		return true
	})
	return found
}

// slotOf returns the child slot, or the root slot, that currently holds n
func (s *Space) slotOf(n *Node) *NodeID {
	stack := []*NodeID{&s.root}
	for len(stack) > 0 {
		slot := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if *slot == n.id {
			return slot
		}
		c := s.nodes.get(*slot)
		if c != nil && !c.IsLeaf() {
			stack = append(stack, &c.children[1], &c.children[0])
		}
	}
	panic(fmt.Sprintf("dock: node %s is not reachable from root", n.id))
}

// SplitLeft replaces n with a new internal node whose left (or top) child is a
// new empty leaf and whose right (or bottom) child is n
// sizeHint, when positive, is the new leaf's extent in cells along axis
func (s *Space) SplitLeft(n *Node, axis Axis, sizeHint int) *Node {
	return s.split(n, axis, sizeHint, true)
}

// SplitRight is SplitLeft with the new leaf placed right of (or below) n
func (s *Space) SplitRight(n *Node, axis Axis, sizeHint int) *Node {
	return s.split(n, axis, sizeHint, false)
}

func (s *Space) split(n *Node, axis Axis, sizeHint int, newFirst bool) *Node {
	if n == nil || n.space != s || n.released {
		assertf("split of node outside space")
		return nil
	}
	slot := s.slotOf(n)

	inner := s.newNode(n.parent)
	inner.axis = axis
	inner.rect = n.rect

	fresh := s.newLeaf(inner.id)
	fresh.overlay.enabled = false

	if newFirst {
		inner.children = [2]NodeID{fresh.id, n.id}
	} else {
		inner.children = [2]NodeID{n.id, fresh.id}
	}
	n.parent = inner.id

	extent := n.rect.W
	if axis == Horizontal {
		extent = n.rect.H
	}
	if sizeHint > 0 && extent > 0 {
		r := float64(sizeHint) / float64(extent)
		if !newFirst {
			r = 1 - r
		}
		inner.ratio = clampRatio(r)
	}

	*slot = inner.id
	s.emit(Event{Kind: EventSplit, Node: inner.id})
	return inner
}

// CollapseBranch removes an empty, unlocked child of the internal node n and
// promotes the sibling into n's slot. When both children qualify the left one
// survives. Reports false when n is not an internal node with a removable child
func (s *Space) CollapseBranch(n *Node) bool {
	if n == nil || n.space != s || n.released {
		assertf("collapse of node outside space")
		return false
	}
	slot := s.slotOf(n)
	if n.IsLeaf() {
		assertf("collapse of leaf %s", n.id)
		return false
	}
	left, right := n.Left(), n.Right()
	if left == nil || right == nil {
		assertf("collapse of %s with missing child", n.id)
		return false
	}

	removable := func(c *Node) bool { return c.IsEmpty() && !c.locked }
	var survivor, doomed *Node
	switch {
	case removable(right):
		survivor, doomed = left, right
	case removable(left):
		survivor, doomed = right, left
	default:
		assertf("collapse of %s without an empty unlocked child", n.id)
		return false
	}

	survivor.parent = n.parent
	survivor.rect = n.rect
	*slot = survivor.id

	s.release(doomed)
	s.nodes.release(n.id)
	s.emit(Event{Kind: EventCollapse, Node: survivor.id})
	return true
}

// release frees a detached subtree
func (s *Space) release(n *Node) {
	if n == nil {
		return
	}
	if !n.IsLeaf() {
		s.release(n.Left())
		s.release(n.Right())
	}
	s.nodes.release(n.id)
}

// CloseWindow removes w from its leaf and collapses the leaf away when it is
// left empty and unlocked
func (s *Space) CloseWindow(w Window) bool {
	leaf := s.LeafForWindow(w)
	if leaf == nil {
		return false
	}
	if err := leaf.RemoveWindow(w); err != nil {
		return false
	}
	s.collapseEmpty(leaf)
	return true
}

// collapseEmpty collapses leaf's parent when leaf is empty, unlocked and not the root
func (s *Space) collapseEmpty(leaf *Node) bool {
	if leaf == nil || leaf.released || !leaf.IsEmpty() || leaf.locked || leaf.IsRoot() {
		return false
	}
	return s.CollapseBranch(leaf.Parent())
}

// Prune collapses every branch holding an empty unlocked leaf, returning the count
func (s *Space) Prune() int {
	count := 0
	for {
		var target *Node
		for _, leaf := range s.Leaves() {
			if leaf.IsEmpty() && !leaf.locked && !leaf.IsRoot() {
				target = leaf
				break
			}
		}
		if target == nil || !s.CollapseBranch(target.Parent()) {
			return count
		}
		count++
	}
}

// Validate checks the structural invariants of the tree
func (s *Space) Validate() error {
	root := s.Root()
	if root == nil {
		return fmt.Errorf("root %s does not resolve", s.root)
	}
	if root.parent.Valid() {
		return fmt.Errorf("root %s has parent %s", root.id, root.parent)
	}

	seen := make(map[string]NodeID)
	reached := 0
	var check func(n *Node) error
	check = func(n *Node) error {
		reached++
		if n.overlay == nil {
			return fmt.Errorf("%s: missing overlay", n.id)
		}
		if n.identifier != "" {
			if prev, dup := seen[n.identifier]; dup {
				return fmt.Errorf("%s: identifier %q already used by %s", n.id, n.identifier, prev)
			}
			seen[n.identifier] = n.id
		}
		if n.IsLeaf() {
			if n.children[1].Valid() {
				return fmt.Errorf("%s: leaf with a right child", n.id)
			}
			if n.tabs == nil {
				return fmt.Errorf("%s: leaf without tab strip", n.id)
			}
			if k := n.tabs.Len(); (k == 0) != (n.tabs.current < 0) || n.tabs.current >= k {
				return fmt.Errorf("%s: active tab %d of %d", n.id, n.tabs.current, k)
			}
			return nil
		}
		if n.tabs != nil {
			return fmt.Errorf("%s: internal node with tab strip", n.id)
		}
		if n.ratio < 0 || n.ratio > 1 {
			return fmt.Errorf("%s: ratio %v outside [0,1]", n.id, n.ratio)
		}
		for i, id := range n.children {
			c := s.Node(id)
			if c == nil {
				return fmt.Errorf("%s: child %d (%s) does not resolve", n.id, i, id)
			}
			if c.parent != n.id {
				return fmt.Errorf("%s: child %s points to parent %s", n.id, c.id, c.parent)
			}
			if err := check(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := check(root); err != nil {
		return err
	}
	if reached != s.nodes.live {
		return fmt.Errorf("%d live nodes, %d reachable", s.nodes.live, reached)
	}
	return nil
}

// DebugString renders the tree one node per line, indented by depth
func (s *Space) DebugString() string {
	var b strings.Builder
	var dump func(n *Node, depth int)
	dump = func(n *Node, depth int) {
		if n == nil {
			return
		}
		b.WriteString(strings.Repeat("  ", depth))
		if n.IsLeaf() {
			b.WriteString("leaf")
		} else {
			fmt.Fprintf(&b, "%s %.2f", n.axis, n.ratio)
		}
		if n.identifier != "" {
			fmt.Fprintf(&b, " %q", n.identifier)
		}
		if n.locked {
			b.WriteString(" locked")
		}
		if n.IsLeaf() {
			titles := n.tabs.Titles()
			if c := n.tabs.current; c >= 0 {
				titles[c] += "*"
			}
			fmt.Fprintf(&b, " [%s]", strings.Join(titles, " "))
		}
		b.WriteByte('\n')
		if !n.IsLeaf() {
			dump(n.Left(), depth+1)
			dump(n.Right(), depth+1)
		}
	}
	dump(s.Root(), 0)
	return b.String()
}
