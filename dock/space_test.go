package dock

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestNew_SingleEmptyRoot(t *testing.T) {
	s := New()
	root := s.Root()
	if root == nil {
		t.Fatal("root is nil")
	}
	if !root.IsLeaf() || !root.IsEmpty() {
		t.Errorf("root: leaf=%v empty=%v, want empty leaf", root.IsLeaf(), root.IsEmpty())
	}
	if root.Parent() != nil {
		t.Error("root has a parent")
	}
	if s.Len() != 1 {
		t.Errorf("Len: got %d, want 1", s.Len())
	}
	if !root.Overlay().Enabled() {
		t.Error("root overlay should start enabled")
	}
	mustValidate(t, s)
}

func TestSplit_Placement(t *testing.T) {
	tests := []struct {
		name      string
		split     func(*Node) *Node
		axis      Axis
		freshLeft bool
	}{
		{"left", func(n *Node) *Node { return n.SplitLeft(0) }, Vertical, true},
		{"right", func(n *Node) *Node { return n.SplitRight(0) }, Vertical, false},
		{"top", func(n *Node) *Node { return n.SplitTop(0) }, Horizontal, true},
		{"bottom", func(n *Node) *Node { return n.SplitBottom(0) }, Horizontal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var splits int
			s := New(WithListener(func(e Event) {
				if e.Kind == EventSplit {
					splits++
				}
			}))
			orig := s.Root()
			mustAdd(t, orig, newWindow("A"))

			inner := tt.split(orig)
			if inner == nil || inner.IsLeaf() {
				t.Fatal("split did not return an internal node")
			}
			if s.Root() != inner {
				t.Error("new internal node should take the root slot")
			}
			if inner.Axis() != tt.axis {
				t.Errorf("axis: got %v, want %v", inner.Axis(), tt.axis)
			}
			if inner.Ratio() != 0.5 {
				t.Errorf("ratio: got %v, want 0.5", inner.Ratio())
			}

			fresh, kept := inner.Right(), inner.Left()
			if tt.freshLeft {
				fresh, kept = inner.Left(), inner.Right()
			}
			if kept != orig {
				t.Error("original node should be a child of the new internal node")
			}
			if !fresh.IsEmpty() {
				t.Error("new sibling should be an empty leaf")
			}
			if fresh.Overlay().Enabled() {
				t.Error("new leaf overlay should start disabled")
			}
			if orig.Parent() != inner || fresh.Parent() != inner {
				t.Error("children should point to the new internal node")
			}
			if s.Len() != 3 {
				t.Errorf("Len: got %d, want 3", s.Len())
			}
			if splits != 1 {
				t.Errorf("split events: got %d, want 1", splits)
			}
			mustValidate(t, s)
		})
	}
}

func TestSplit_SizeHintSetsRatio(t *testing.T) {
	tests := []struct {
		name  string
		split func(*Node) *Node
		want  float64
	}{
		{"left", func(n *Node) *Node { return n.SplitLeft(25) }, 0.25},
		{"right", func(n *Node) *Node { return n.SplitRight(25) }, 0.75},
		{"top", func(n *Node) *Node { return n.SplitTop(10) }, 0.25},
		{"bottom", func(n *Node) *Node { return n.SplitBottom(10) }, 0.75},
		{"oversized", func(n *Node) *Node { return n.SplitLeft(500) }, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext()
			s := New()
			layoutAt(ctx, s, 100, 40)

			inner := tt.split(s.Root())
			if math.Abs(inner.Ratio()-tt.want) > 1e-9 {
				t.Errorf("ratio: got %v, want %v", inner.Ratio(), tt.want)
			}
		})
	}
}

func TestSplit_NestedReplacesOwningSlot(t *testing.T) {
	s := New()
	a := s.Root()
	top := a.SplitRight(0)
	b := top.Right()

	inner := b.SplitBottom(0)
	if top.Right() != inner {
		t.Fatal("split of right child should replace the right slot")
	}
	if top.Left() != a {
		t.Error("left slot changed")
	}
	if inner.Parent() != top {
		t.Error("new internal node should inherit the parent link")
	}
	if inner.Left() != b {
		t.Error("split node should move under the new internal node")
	}
	mustValidate(t, s)
}

func TestCollapseBranch_PromotesSurvivor(t *testing.T) {
	var collapses int
	s := New(WithListener(func(e Event) {
		if e.Kind == EventCollapse {
			collapses++
		}
	}))
	orig := s.Root()
	mustAdd(t, orig, newWindow("A"))
	inner := orig.SplitRight(0)
	freshID := inner.Right().ID()
	innerID := inner.ID()

	if !s.CollapseBranch(inner) {
		t.Fatal("CollapseBranch returned false")
	}
	if s.Root() != orig {
		t.Error("surviving child should be promoted to root")
	}
	if orig.Parent() != nil {
		t.Error("promoted root should have no parent")
	}
	if s.Node(innerID) != nil || s.Node(freshID) != nil {
		t.Error("collapsed nodes should no longer resolve")
	}
	if !inner.Released() {
		t.Error("collapsed internal node should be marked released")
	}
	if s.Len() != 1 {
		t.Errorf("Len: got %d, want 1", s.Len())
	}
	if collapses != 1 {
		t.Errorf("collapse events: got %d, want 1", collapses)
	}
	mustValidate(t, s)
}

func TestCollapseBranch_LeftEmptyPromotesRight(t *testing.T) {
	s := New()
	orig := s.Root()
	mustAdd(t, orig, newWindow("A"))
	inner := orig.SplitLeft(0)

	if !s.CollapseBranch(inner) {
		t.Fatal("CollapseBranch returned false")
	}
	if s.Root() != orig {
		t.Error("right child should survive when the left is empty")
	}
}

func TestCollapseBranch_BothEmptyKeepsLeft(t *testing.T) {
	s := New()
	orig := s.Root()
	inner := orig.SplitRight(0)

	if !s.CollapseBranch(inner) {
		t.Fatal("CollapseBranch returned false")
	}
	if s.Root() != orig {
		t.Error("left child should survive when both are empty")
	}
	mustValidate(t, s)
}

func TestCollapseBranch_Refusals(t *testing.T) {
	s := New()
	orig := s.Root()
	mustAdd(t, orig, newWindow("A"))

	if s.CollapseBranch(orig) {
		t.Error("collapsing a leaf should fail")
	}

	inner := orig.SplitRight(0)
	inner.Right().SetLocked(true)
	locked := s.DebugString()
	if s.CollapseBranch(inner) {
		t.Error("locked empty child must not be collapsed")
	}
	if got := s.DebugString(); got != locked {
		t.Errorf("tree changed after refusal:\n%s", got)
	}

	inner.Right().SetLocked(false)
	mustAdd(t, inner.Right(), newWindow("B"))
	before := s.DebugString()
	if s.CollapseBranch(inner) {
		t.Error("branch without an empty child must not be collapsed")
	}
	if got := s.DebugString(); got != before {
		t.Errorf("tree changed after refusal:\nbefore:\n%s\nafter:\n%s", before, got)
	}
	if s.Len() != 3 {
		t.Errorf("Len: got %d, want 3 after refusals", s.Len())
	}
	mustValidate(t, s)
}

func TestCollapseBranch_EmptyNamedRootIsReplaced(t *testing.T) {
	s := New(WithRootIdentifier("root"))
	a := s.Root()
	inner := a.SplitRight(0)
	b := inner.Right()
	if err := b.SetIdentifier("Inspector"); err != nil {
		t.Fatal(err)
	}
	mustAdd(t, b, newWindow("Props"))

	if !s.CollapseBranch(inner) {
		t.Fatal("CollapseBranch returned false")
	}
	if s.Root() != b {
		t.Errorf("root should be the Inspector leaf, got\n%s", s.DebugString())
	}
	if s.FindNode("root") != nil {
		t.Error("collapsed leaf should no longer be found by identifier")
	}
	if s.FindNode("Inspector") != b {
		t.Error("promoted leaf should keep its identifier")
	}
	mustValidate(t, s)
}

func TestNodeID_StaleAfterReuse(t *testing.T) {
	s := New()
	inner := s.Root().SplitRight(0)
	stale := inner.ID()
	s.CollapseBranch(inner)

	again := s.Root().SplitRight(0)
	if s.Node(stale) != nil {
		t.Error("released ID resolved after its slot was reused")
	}
	if again.ID() == stale {
		t.Error("reused slot should carry a new generation")
	}
	if (NodeID{}).Valid() {
		t.Error("zero NodeID should be invalid")
	}
}

func TestSlotOf_PanicsWhenUnreachable(t *testing.T) {
	s := New()
	defer func() {
		if recover() == nil {
			t.Error("slotOf should panic for a node outside the tree")
		}
	}()
	s.slotOf(&Node{id: NodeID{index: 7, gen: 3}})
}

func TestFindNode_DepthFirst(t *testing.T) {
	s := New(WithRootIdentifier("a"))
	a := s.Root()
	top := a.SplitRight(0)
	if err := top.SetIdentifier("top"); err != nil {
		t.Fatal(err)
	}
	if err := top.Right().SetIdentifier("b"); err != nil {
		t.Fatal(err)
	}
	c := a.SplitBottom(0).Right()
	if err := c.SetIdentifier("c"); err != nil {
		t.Fatal(err)
	}

	for id, want := range map[string]*Node{"a": a, "top": top, "b": top.Right(), "c": c} {
		if got := s.FindNode(id); got != want {
			t.Errorf("FindNode(%q): got %v, want %v", id, got, want)
		}
	}
	if s.FindNode("missing") != nil {
		t.Error("FindNode of unknown identifier should be nil")
	}
	if s.FindNode("") != nil {
		t.Error("FindNode of empty identifier should be nil")
	}

	if err := c.SetIdentifier("a"); !errors.Is(err, ErrDuplicateIdentifier) {
		t.Errorf("duplicate identifier: got %v, want ErrDuplicateIdentifier", err)
	}
	if err := c.SetIdentifier("c"); err != nil {
		t.Errorf("renaming to own identifier: %v", err)
	}
	mustValidate(t, s)
}

func TestWindows_ActiveRules(t *testing.T) {
	s := New()
	n := s.Root()
	a, b, c := newWindow("A"), newWindow("B"), newWindow("C")

	mustAdd(t, n, a)
	mustAdd(t, n, b)
	mustAdd(t, n, c)
	if n.ActiveWindow() != c {
		t.Fatal("last added window should be active")
	}

	steps := []struct {
		name   string
		do     func() error
		active Window
		tabs   []string
	}{
		{"remove active last", func() error { return n.RemoveWindow(c) }, b, []string{"A", "B"}},
		{"select first", func() error { return n.SetActiveWindow(a) }, a, []string{"A", "B"}},
		{"remove inactive", func() error { return n.RemoveWindow(b) }, a, []string{"A"}},
		{"add", func() error { return n.AddWindow(c) }, c, []string{"A", "C"}},
		{"select first again", func() error { return n.SetActiveWindow(a) }, a, []string{"A", "C"}},
		{"remove active first", func() error { return n.RemoveWindow(a) }, c, []string{"C"}},
		{"remove last", func() error { return n.RemoveWindow(c) }, nil, []string{}},
	}
	for _, st := range steps {
		if err := st.do(); err != nil {
			t.Fatalf("%s: %v", st.name, err)
		}
		if n.ActiveWindow() != st.active {
			t.Errorf("%s: active window %v, want %v", st.name, n.ActiveWindow(), st.active)
		}
		if got := titles(n); !reflect.DeepEqual(got, st.tabs) {
			t.Errorf("%s: tabs %v, want %v", st.name, got, st.tabs)
		}
	}
	if !n.IsEmpty() {
		t.Error("leaf should be empty")
	}
}

func TestWindows_RemoveMiddleKeepsActive(t *testing.T) {
	n := New().Root()
	a, b, c := newWindow("A"), newWindow("B"), newWindow("C")
	mustAdd(t, n, a)
	mustAdd(t, n, b)
	mustAdd(t, n, c)

	if err := n.RemoveWindow(a); err != nil {
		t.Fatal(err)
	}
	if n.ActiveWindow() != c {
		t.Errorf("active: got %v, want C", n.ActiveWindow())
	}
	if n.Tabs().Current() != 1 {
		t.Errorf("current tab: got %d, want 1", n.Tabs().Current())
	}
}

func TestWindows_Errors(t *testing.T) {
	s := New()
	leaf := s.Root()
	a := newWindow("A")
	mustAdd(t, leaf, a)
	inner := leaf.SplitRight(0)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"add to internal", inner.AddWindow(newWindow("X")), ErrNotLeaf},
		{"remove from internal", inner.RemoveWindow(a), ErrNotLeaf},
		{"add nil", leaf.AddWindow(nil), ErrNilWindow},
		{"add twice", leaf.AddWindow(a), ErrWindowHosted},
		{"add to sibling leaf", inner.Right().AddWindow(a), ErrWindowHosted},
		{"remove absent", leaf.RemoveWindow(newWindow("Y")), ErrWindowNotHosted},
		{"select absent", leaf.SetActiveWindow(newWindow("Z")), ErrWindowNotHosted},
	}
	for _, tt := range tests {
		if !errors.Is(tt.err, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, tt.err, tt.want)
		}
	}
	if len(leaf.Windows()) != 1 {
		t.Errorf("failed operations changed windows: %v", titles(leaf))
	}
}

func TestCycleTab_Wraps(t *testing.T) {
	n := New().Root()
	a, b, c := newWindow("A"), newWindow("B"), newWindow("C")
	mustAdd(t, n, a)
	mustAdd(t, n, b)
	mustAdd(t, n, c)

	if got := n.CycleTab(1); got != a {
		t.Errorf("next from last: got %v, want A", got)
	}
	if got := n.CycleTab(-1); got != c {
		t.Errorf("prev from first: got %v, want C", got)
	}
	if got := New().Root().CycleTab(1); got != nil {
		t.Errorf("cycle on empty leaf: got %v, want nil", got)
	}
}

func TestSetRatio_Clamped(t *testing.T) {
	inner := New().Root().SplitRight(0)
	for _, tt := range []struct{ in, want float64 }{
		{-0.5, 0}, {0.3, 0.3}, {1.7, 1}, {math.NaN(), 0},
	} {
		inner.SetRatio(tt.in)
		if inner.Ratio() != tt.want {
			t.Errorf("SetRatio(%v): got %v, want %v", tt.in, inner.Ratio(), tt.want)
		}
	}
}

func TestCloseWindow(t *testing.T) {
	f := twoPane(t)
	if !f.space.CloseWindow(f.c) {
		t.Fatal("CloseWindow returned false")
	}
	if f.space.Root() != f.left {
		t.Error("emptied right leaf should collapse into the left")
	}
	if f.space.CloseWindow(f.c) {
		t.Error("closing an unhosted window should report false")
	}
	mustValidate(t, f.space)

	g := twoPane(t)
	g.right.SetLocked(true)
	g.space.CloseWindow(g.c)
	if g.space.Len() != 3 || !g.right.IsEmpty() {
		t.Error("locked leaf should stay in place when emptied")
	}
}

func TestPrune(t *testing.T) {
	s := New()
	orig := s.Root()
	mustAdd(t, orig, newWindow("A"))
	orig.SplitRight(0)
	orig.SplitBottom(0)
	if s.Len() != 5 {
		t.Fatalf("setup: Len %d, want 5", s.Len())
	}

	if got := s.Prune(); got != 2 {
		t.Errorf("Prune: got %d, want 2", got)
	}
	if s.Root() != orig || s.Len() != 1 {
		t.Errorf("after prune:\n%s", s.DebugString())
	}
	if got := s.Prune(); got != 0 {
		t.Errorf("second Prune: got %d, want 0", got)
	}
}

func TestLeafForWindowAndLeaves(t *testing.T) {
	f := twoPane(t)
	if f.space.LeafForWindow(f.b) != f.left || f.space.LeafForWindow(f.c) != f.right {
		t.Error("LeafForWindow returned the wrong leaf")
	}
	if f.space.LeafForWindow(newWindow("X")) != nil {
		t.Error("LeafForWindow of unknown window should be nil")
	}
	leaves := f.space.Leaves()
	if len(leaves) != 2 || leaves[0] != f.left || leaves[1] != f.right {
		t.Errorf("Leaves: got %v", leaves)
	}
}

func TestDockGroup_PropagatesToOverlays(t *testing.T) {
	f := twoPane(t)
	g := NewGroup("shared")
	f.space.SetDockGroup(g)

	if f.space.DockGroup() != g {
		t.Error("DockGroup not updated")
	}
	f.space.Walk(func(n *Node) bool {
		if n.Overlay().Group() != g {
			t.Errorf("%v: overlay group not updated", n)
		}
		return true
	})
	if NewGroup("shared") == g {
		t.Error("groups with the same name must differ")
	}
}

func TestValidate_DetectsBrokenParentLink(t *testing.T) {
	f := twoPane(t)
	f.right.parent = NodeID{}
	err := f.space.Validate()
	if err == nil || !strings.Contains(err.Error(), "parent") {
		t.Errorf("Validate: got %v, want parent link error", err)
	}
}

func TestDebugString(t *testing.T) {
	s := New(WithRootIdentifier("main"))
	mustAdd(t, s.Root(), newWindow("A"))
	s.Root().SplitRight(0)
	s.Root().Right().SetLocked(true)

	want := "vertical 0.50\n  leaf \"main\" [A*]\n  leaf locked []\n"
	if got := s.DebugString(); got != want {
		t.Errorf("DebugString:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
