package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/lixenwraith/dockspace/audio"
	"github.com/lixenwraith/dockspace/config"
	"github.com/lixenwraith/dockspace/dock"
	"github.com/lixenwraith/dockspace/terminal"
	"github.com/lixenwraith/dockspace/terminal/tui"
)

const consoleLimit = 200

// helpOrder lists actions in the order the help panel shows them
var helpOrder = []config.Action{
	config.ActionNextTab,
	config.ActionPrevTab,
	config.ActionFocusNext,
	config.ActionCloseTab,
	config.ActionSplitRight,
	config.ActionSplitDown,
	config.ActionToggleLock,
	config.ActionPrune,
	config.ActionQuit,
}

// app wires two dock spaces, the sample panels and the terminal together
type app struct {
	term terminal.Terminal
	cfg  *config.Config
	ctx  *dock.Context
	cues *audio.CueManager // nil without sound
	bell bool              // Ring the terminal bell on failed drops when cues are unavailable

	main, side *dock.Space
	console    *panel

	status  string
	spawned int
	cells   []terminal.Cell
	mainR   tui.Rect
	sideR   tui.Rect
}

// newApp builds the initial layout; shareGroup lets tabs move between the two spaces
func newApp(term terminal.Terminal, cfg *config.Config, cues *audio.CueManager, shareGroup bool) (*app, error) {
	a := &app{
		term:    term,
		cfg:     cfg,
		ctx:     dock.NewContext(cfg.Palette(), cfg.Metrics()),
		cues:    cues,
		console: newLogPanel("Console", consoleLimit),
	}

	a.main = dock.New(a.spaceOptions("main", "scene")...)
	a.side = dock.New(a.spaceOptions("side", "sidebar")...)
	if shareGroup {
		a.side.SetDockGroup(a.main.DockGroup())
	}
	a.ctx.Attach(a.main, a.side)

	if err := a.buildMain(); err != nil {
		return nil, err
	}
	if err := a.buildSide(); err != nil {
		return nil, err
	}
	a.status = "drag tabs to dock them"
	return a, nil
}

func (a *app) spaceOptions(group, rootID string) []dock.Option {
	opts := []dock.Option{
		dock.WithGroup(dock.NewGroup(group)),
		dock.WithRootIdentifier(rootID),
		dock.WithOwner(a),
		dock.WithListener(a.onEvent),
	}
	if a.cues != nil {
		opts = append(opts, dock.WithListener(a.cues.Listener()))
	}
	return opts
}

// host adds windows to leaf in order
func host(leaf *dock.Node, windows ...dock.Window) error {
	for _, w := range windows {
		if err := leaf.AddWindow(w); err != nil {
			return fmt.Errorf("host %q in %s: %w", w.Title(), leaf.ID(), err)
		}
	}
	return nil
}

func (a *app) buildMain() error {
	scene := a.main.Root()
	err := host(scene, newLivePanel("Scene", a.sceneLines), newPanel("Assets",
		"textures/",
		"  ground.png",
		"  sky.png",
		"meshes/",
		"  crate.obj",
		"  tower.obj",
		"audio/",
		"  wind.ogg",
	))
	if err != nil {
		return err
	}

	// Console along the bottom, locked so it survives pruning
	rows := a.main.SplitRight(scene, dock.Horizontal, 0)
	rows.SetRatio(0.7)
	bottom := rows.Right()
	if err := bottom.SetIdentifier("console"); err != nil {
		return err
	}
	bottom.SetLocked(true)
	if err := host(bottom, a.console); err != nil {
		return err
	}

	cols := a.main.SplitRight(scene, dock.Vertical, 0)
	cols.SetRatio(0.65)
	inspector := cols.Right()
	if err := inspector.SetIdentifier("inspector"); err != nil {
		return err
	}
	if err := host(inspector, newLivePanel("Inspector", a.inspectorLines)); err != nil {
		return err
	}

	if err := scene.SetActiveWindow(scene.Windows()[0]); err != nil {
		return err
	}
	a.ctx.SetActiveWindow(scene.ActiveWindow())
	return nil
}

func (a *app) buildSide() error {
	root := a.side.Root()
	outline := newLivePanel("Outline", a.outlineLines)
	if err := host(root, outline, newPanel("Help", a.helpLines()...)); err != nil {
		return err
	}
	return root.SetActiveWindow(outline)
}

// Notify receives upcalls from the spaces
func (a *app) Notify(ctx *dock.Context, s *dock.Space, msg dock.Message) {
	if msg.Kind == dock.MsgTabDragBegin && msg.Window != nil {
		a.status = fmt.Sprintf("dragging %q from %s", msg.Window.Title(), a.spaceName(s))
	}
}

func (a *app) onEvent(e dock.Event) {
	line := fmt.Sprintf("%05d %-4s %s", a.ctx.Frame(), a.spaceName(e.Space), e)
	a.console.Append(line)
	log.Printf("[demo] %s", line)

	switch e.Kind {
	case dock.EventDropSucceeded:
		if e.Window != nil {
			a.status = fmt.Sprintf("docked %q (%s)", e.Window.Title(), e.Target)
		}
	case dock.EventDropFailed:
		a.status = "drop cancelled"
		if a.cues == nil && a.bell {
			a.term.Beep()
		}
	}
}

func (a *app) spaceName(s *dock.Space) string {
	switch s {
	case a.main:
		return "main"
	case a.side:
		return "side"
	}
	return "?"
}

// handle processes one input event, reporting false when the app should exit
func (a *app) handle(ev terminal.Event) bool {
	switch ev.Type {
	case terminal.EventClosed, terminal.EventError:
		return false
	case terminal.EventResize:
		a.term.Sync()
	case terminal.EventKey:
		if !a.ctx.Dragging() {
			if action, ok := a.cfg.ActionFor(ev); ok {
				return a.run(action)
			}
		}
		a.ctx.Dispatch(ev)
	case terminal.EventMouse:
		a.ctx.Dispatch(ev)
	}
	return true
}

// focused returns the leaf hosting the focused window, or the first leaf of the main space
func (a *app) focused() (*dock.Space, *dock.Node) {
	if w := a.ctx.ActiveWindow(); w != nil {
		for _, s := range []*dock.Space{a.main, a.side} {
			if leaf := s.LeafForWindow(w); leaf != nil {
				return s, leaf
			}
		}
	}
	return a.main, a.main.Leaves()[0]
}

// focusable lists the active window of every non-empty leaf, main space first
func (a *app) focusable() []dock.Window {
	var out []dock.Window
	for _, s := range []*dock.Space{a.main, a.side} {
		for _, leaf := range s.Leaves() {
			if w := leaf.ActiveWindow(); w != nil {
				out = append(out, w)
			}
		}
	}
	return out
}

func (a *app) focusNext() {
	ws := a.focusable()
	if len(ws) == 0 {
		a.ctx.SetActiveWindow(nil)
		return
	}
	next := 0
	for i, w := range ws {
		if w == a.ctx.ActiveWindow() {
			next = (i + 1) % len(ws)
			break
		}
	}
	a.ctx.SetActiveWindow(ws[next])
}

// run executes a bound action, reporting false on quit
func (a *app) run(action config.Action) bool {
	s, leaf := a.focused()
	switch action {
	case config.ActionQuit:
		return false

	case config.ActionNextTab, config.ActionPrevTab:
		delta := 1
		if action == config.ActionPrevTab {
			delta = -1
		}
		if w := leaf.CycleTab(delta); w != nil {
			a.ctx.SetActiveWindow(w)
		}

	case config.ActionFocusNext:
		a.focusNext()

	case config.ActionCloseTab:
		w := a.ctx.ActiveWindow()
		if w == nil || !s.CloseWindow(w) {
			a.status = "nothing to close"
			break
		}
		a.status = fmt.Sprintf("closed %q", w.Title())
		a.ctx.SetActiveWindow(nil)
		a.focusNext()

	case config.ActionSplitRight, config.ActionSplitDown:
		axis := dock.Vertical
		if action == config.ActionSplitDown {
			axis = dock.Horizontal
		}
		inner := s.SplitRight(leaf, axis, 0)
		if inner == nil {
			break
		}
		a.spawned++
		p := newPanel(fmt.Sprintf("Scratch %d", a.spawned), "scratch panel", "drop tabs here or close it")
		if err := host(inner.Right(), p); err != nil {
			a.status = err.Error()
			break
		}
		a.ctx.SetActiveWindow(p)

	case config.ActionToggleLock:
		leaf.SetLocked(!leaf.Locked())
		state := "unlocked"
		if leaf.Locked() {
			state = "locked"
		}
		a.status = fmt.Sprintf("%s %s", leaf.ID(), state)

	case config.ActionPrune:
		n := a.main.Prune() + a.side.Prune()
		a.status = fmt.Sprintf("pruned %d branches", n)
	}
	return true
}

// render lays out and draws the whole screen into the cell buffer
func (a *app) render(w, h int) []terminal.Cell {
	if len(a.cells) != w*h {
		a.cells = make([]terminal.Cell, w*h)
	}
	th := a.ctx.Theme
	root := tui.NewRegion(a.cells, w, 0, 0, w, h)
	root.Fill(th.Bg)

	body := tui.NewRect(0, 0, w, max(h-1, 0))
	a.mainR, a.sideR = tui.SplitRect(body, tui.SplitColumns, 0.78, 1)
	a.main.Layout(a.ctx, a.mainR, 0)
	a.side.Layout(a.ctx, a.sideR, 0)

	if a.sideR.X > 0 {
		root.Clip(tui.NewRect(a.sideR.X-1, 0, 1, body.H)).VLine(0, tui.LineDouble, th.Border, th.Bg)
	}
	a.main.Draw(a.ctx, root)
	a.side.Draw(a.ctx, root)

	if h > 0 {
		a.drawStatus(root.Sub(0, h-1, w, 1))
	}
	return a.cells
}

func (a *app) drawStatus(r tui.Region) {
	th := a.ctx.Theme
	r.Fill(th.TabInactiveBg)
	r.Text(1, 0, tui.Truncate(a.status, r.W/2), th.StatusFg, th.TabInactiveBg, terminal.AttrNone)

	focus := "-"
	if w := a.ctx.ActiveWindow(); w != nil {
		focus = w.Title()
	}
	right := fmt.Sprintf("%s | focus %s | frame %d ", a.ctx.DragState(), focus, a.ctx.Frame())
	x := max(r.W-tui.RuneLen(right), r.W/2)
	r.Text(x, 0, tui.Truncate(right, r.W-x), th.HintFg, th.TabInactiveBg, terminal.AttrNone)
}

// frame runs one full cycle over the events collected since the last frame
func (a *app) frame(events []terminal.Event) bool {
	a.ctx.BeginFrame()
	for _, ev := range events {
		if !a.handle(ev) {
			return false
		}
	}
	w, h := a.term.Size()
	a.term.Flush(a.render(w, h), w, h)
	a.ctx.EndFrame()
	return true
}

func (a *app) sceneLines() []string {
	lines := []string{
		"      /\\        .",
		"     /  \\   .      *",
		"    /    \\______",
		"   /  []  \\     \\",
		"  /________\\_____\\",
		"",
		fmt.Sprintf("pointer %d,%d", a.ctx.Pointer().X, a.ctx.Pointer().Y),
	}
	return lines
}

func (a *app) inspectorLines() []string {
	s, leaf := a.focused()
	lines := []string{
		"space  " + a.spaceName(s),
		"group  " + s.DockGroup().String(),
		"node   " + leaf.ID().String(),
		"name   " + leaf.Identifier(),
		fmt.Sprintf("locked %t", leaf.Locked()),
		fmt.Sprintf("tabs   %d", leaf.Tabs().Len()),
		fmt.Sprintf("rect   %dx%d", leaf.Rect().W, leaf.Rect().H),
	}
	if p := leaf.Parent(); p != nil {
		lines = append(lines, fmt.Sprintf("split  %s %.2f", p.Axis(), p.Ratio()))
	}
	status := "ok"
	if err := s.Validate(); err != nil {
		status = err.Error()
	}
	return append(lines, "valid  "+status)
}

func (a *app) outlineLines() []string {
	var lines []string
	for _, s := range []*dock.Space{a.main, a.side} {
		lines = append(lines, a.spaceName(s)+":")
		for _, l := range strings.Split(strings.TrimRight(s.DebugString(), "\n"), "\n") {
			lines = append(lines, "  "+l)
		}
	}
	return lines
}

func (a *app) helpLines() []string {
	lines := []string{"drag tabs onto the drop targets", "drag gutters to resize", ""}
	for _, action := range helpOrder {
		var keys []string
		for _, b := range a.cfg.Bindings(action) {
			keys = append(keys, b.String())
		}
		lines = append(lines, fmt.Sprintf("%-12s %s", action, strings.Join(keys, " ")))
	}
	return lines
}
