package main

import (
	"fmt"

	"github.com/lixenwraith/dockspace/dock"
	"github.com/lixenwraith/dockspace/terminal"
	"github.com/lixenwraith/dockspace/terminal/tui"
)

// panel is the demo's dockable window: a scrolling list of lines
// Lines come from a static list, an appended log, or a source called per draw
type panel struct {
	title  string
	lines  []string
	source func() []string
	limit  int  // Appended lines kept, 0 for unbounded
	follow bool // Stick to the newest line
	scroll int
	rect   tui.Rect
	clicks int
}

func newPanel(title string, lines ...string) *panel {
	return &panel{title: title, lines: lines}
}

func newLogPanel(title string, limit int) *panel {
	return &panel{title: title, limit: limit, follow: true}
}

func newLivePanel(title string, source func() []string) *panel {
	return &panel{title: title, source: source}
}

func (p *panel) Title() string { return p.title }

// Append adds a line, dropping the oldest past the limit
func (p *panel) Append(line string) {
	p.lines = append(p.lines, line)
	if p.limit > 0 && len(p.lines) > p.limit {
		p.lines = append(p.lines[:0], p.lines[len(p.lines)-p.limit:]...)
	}
}

func (p *panel) content() []string {
	if p.source != nil {
		return p.source()
	}
	return p.lines
}

func (p *panel) maxScroll() int {
	return max(0, len(p.content())-p.rect.H)
}

func (p *panel) scrollBy(delta int) {
	p.follow = false
	p.scroll = min(max(p.scroll+delta, 0), p.maxScroll())
}

func (p *panel) HitTest(ctx *dock.Context, pt tui.Point) dock.HitResult {
	if p.rect.Contains(pt) {
		return dock.HitResult{Kind: dock.HitWindow, Part: pt.Y - p.rect.Y + p.scroll}
	}
	return dock.HitResult{}
}

func (p *panel) Layout(ctx *dock.Context, rect tui.Rect, flags dock.LayoutFlags) {
	p.rect = rect
	if !flags.Has(dock.LayoutNoBorder) {
		p.rect = rect.Inset(1)
	}
	if p.follow {
		p.scroll = p.maxScroll()
	} else {
		p.scroll = min(p.scroll, p.maxScroll())
	}
}

func (p *panel) Draw(ctx *dock.Context, r tui.Region) {
	th := ctx.Theme
	bg := th.Bg
	if ctx.ActiveWindow() == dock.Window(p) {
		bg = th.FocusBg
	}
	lines := p.content()
	for y := 0; y < r.H; y++ {
		i := p.scroll + y
		if i >= len(lines) {
			break
		}
		r.Text(1, y, tui.Truncate(lines[i], r.W-2), th.Fg, bg, terminal.AttrNone)
	}
	if p.scroll > 0 && r.W > 0 {
		r.Cell(r.W-1, 0, '▲', th.HintFg, bg, terminal.AttrNone)
	}
	if p.scroll < p.maxScroll() && r.W > 0 && r.H > 0 {
		r.Cell(r.W-1, r.H-1, '▼', th.HintFg, bg, terminal.AttrNone)
	}
}

func (p *panel) HandleMessage(ctx *dock.Context, msg dock.Message) bool {
	switch msg.Kind {
	case dock.MsgKey:
		switch {
		case msg.Event.Key == terminal.KeyDown, msg.Event.Key == terminal.KeyRune && msg.Event.Rune == 'j':
			p.scrollBy(1)
		case msg.Event.Key == terminal.KeyUp, msg.Event.Key == terminal.KeyRune && msg.Event.Rune == 'k':
			p.scrollBy(-1)
		case msg.Event.Key == terminal.KeyEnd:
			p.follow = true
			p.scroll = p.maxScroll()
		default:
			return false
		}
		return true
	case dock.MsgMouse:
		switch msg.Event.MouseBtn {
		case terminal.MouseBtnWheelUp:
			p.scrollBy(-1)
		case terminal.MouseBtnWheelDown:
			p.scrollBy(1)
		default:
			if msg.Event.MouseAction == terminal.MouseActionPress {
				p.clicks++
			}
		}
		return true
	}
	return false
}

func (p *panel) String() string {
	return fmt.Sprintf("panel %q", p.title)
}
