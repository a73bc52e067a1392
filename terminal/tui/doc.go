// Package tui provides immediate-mode TUI primitives for the terminal package.
//
// Core abstraction is Region, representing a rectangular area within a cell buffer.
// All drawing operations are relative to region bounds with automatic clipping.
// Rect and Point carry absolute geometry for layout and hit testing; a Region
// is cut from a Rect with Region.Clip.
//
// Design principles:
//   - Immediate mode: no retained widget state, app owns render loop
//   - Zero allocation in hot paths: Region and Rect are small value types
//   - Composable: regions nest via Sub(), layout helpers split rects
//   - Display-width aware: text helpers measure with go-runewidth
//
// Usage pattern:
//
//	cells := make([]terminal.Cell, w*h)
//	root := tui.NewRegion(cells, w, 0, 0, w, h)
//	root.Fill(bgColor)
//
//	left, right := tui.SplitRect(root.Rect(), tui.SplitColumns, 0.5, 1)
//	root.Clip(left).Text(0, 0, "Hello", fg, bg, 0)
//	root.Clip(right).TabBar(0, titles, 0, tui.DefaultTabBarOpts())
//
//	term.Flush(cells, w, h)
package tui
