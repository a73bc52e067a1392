// Package dock manages a dock space: a binary tree of docking regions laid out
// over a terminal rectangle.
//
// Leaves host windows behind a tab strip; internal nodes split their rectangle
// between exactly two children along an axis at a ratio. The tree is reshaped at
// runtime by splitting leaves, collapsing branches that lost all their windows,
// resizing splits with the mouse and dragging tabs onto the five-target drop
// overlay of any node in a compatible space.
//
// Nodes live in an arena owned by their Space and are addressed by NodeID
// handles. Children are owned through NodeID slots in the parent; replacing a
// slot is how the tree changes shape. Released IDs are tombstoned by a
// generation counter and resolve to nil afterwards.
//
// All state is single-threaded and frame driven. A Context carries per-frame UI
// state (pointer, pressed element, drag payload, focused window):
//
//	ctx := dock.NewContext(tui.DefaultTheme, dock.DefaultMetrics())
//	space := dock.New(dock.WithRootIdentifier("main"))
//	for {
//	    ctx.BeginFrame()
//	    for _, ev := range pending {
//	        space.HandleEvent(ctx, ev)
//	    }
//	    space.Layout(ctx, root.Rect(), 0)
//	    space.Draw(ctx, root)
//	    ctx.EndFrame()
//	}
package dock
