package terminal

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimTerminal(t *testing.T, w, h int) (*tcellTerminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTcell(screen).(*tcellTerminal)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(term.Fini)
	return term, screen
}

func TestFlush_WritesCells(t *testing.T) {
	term, screen := newSimTerminal(t, 4, 2)

	cells := make([]Cell, 8)
	cells[0] = Cell{Rune: 'A', Fg: RGB{R: 255}}
	cells[5] = Cell{Rune: 'z', Attrs: AttrBold}
	term.Flush(cells, 4, 2)

	mainc, _, style, _ := screen.GetContent(0, 0)
	if mainc != 'A' {
		t.Errorf("cell (0,0): got %q, want 'A'", mainc)
	}
	fg, _, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("cell (0,0) fg: got %v", fg)
	}

	mainc, _, style, _ = screen.GetContent(1, 1)
	if mainc != 'z' {
		t.Errorf("cell (1,1): got %q, want 'z'", mainc)
	}
	_, _, attr := style.Decompose()
	if attr&tcell.AttrBold == 0 {
		t.Error("cell (1,1) should be bold")
	}

	// Zero rune renders as blank
	mainc, _, _, _ = screen.GetContent(2, 0)
	if mainc != ' ' {
		t.Errorf("cell (2,0): got %q, want blank", mainc)
	}
}

func TestFlush_DiffSkipsUnchanged(t *testing.T) {
	term, screen := newSimTerminal(t, 3, 1)

	cells := []Cell{{Rune: 'a'}, {Rune: 'b'}, {Rune: 'c'}}
	term.Flush(cells, 3, 1)

	// Out-of-band write; an unchanged frame must not overwrite it
	screen.SetContent(1, 0, 'X', nil, tcell.StyleDefault)
	term.Flush(cells, 3, 1)

	mainc, _, _, _ := screen.GetContent(1, 0)
	if mainc != 'X' {
		t.Errorf("unchanged cell was rewritten: got %q", mainc)
	}

	cells[1].Rune = 'B'
	term.Flush(cells, 3, 1)
	mainc, _, _, _ = screen.GetContent(1, 0)
	if mainc != 'B' {
		t.Errorf("changed cell not written: got %q", mainc)
	}
}

func TestFlush_ShortBufferIgnored(t *testing.T) {
	term, screen := newSimTerminal(t, 2, 2)
	screen.SetContent(0, 0, 'Q', nil, tcell.StyleDefault)

	term.Flush(make([]Cell, 1), 2, 2)

	mainc, _, _, _ := screen.GetContent(0, 0)
	if mainc != 'Q' {
		t.Errorf("short buffer should be ignored, got %q", mainc)
	}
}

func TestTranslate_Keys(t *testing.T) {
	term, _ := newSimTerminal(t, 10, 10)

	tests := []struct {
		name string
		ev   *tcell.EventKey
		key  Key
		r    rune
		mod  Modifier
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), KeyRune, 'q', ModNone},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), KeySpace, ' ', ModNone},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), KeyEnter, 0, ModNone},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), KeyTab, 0, ModNone},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), KeyLeft, 0, ModShift},
		{"ctrl_w", tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl), KeyCtrlW, 0, ModCtrl},
		{"f5", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), KeyF5, 0, ModNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := term.translate(tt.ev)
			if !ok {
				t.Fatal("key event not translated")
			}
			if ev.Type != EventKey || ev.Key != tt.key || ev.Rune != tt.r {
				t.Errorf("got type=%d key=%d rune=%q, want key=%d rune=%q", ev.Type, ev.Key, ev.Rune, tt.key, tt.r)
			}
			if ev.Modifiers&tt.mod != tt.mod {
				t.Errorf("modifiers: got %b, want %b set", ev.Modifiers, tt.mod)
			}
		})
	}
}

func TestTranslate_MouseSequence(t *testing.T) {
	term, _ := newSimTerminal(t, 20, 10)

	steps := []struct {
		x, y   int
		mask   tcell.ButtonMask
		btn    MouseButton
		action MouseAction
	}{
		{2, 3, tcell.Button1, MouseBtnLeft, MouseActionPress},
		{4, 3, tcell.Button1, MouseBtnLeft, MouseActionDrag},
		{4, 3, tcell.ButtonNone, MouseBtnLeft, MouseActionRelease},
		{6, 5, tcell.ButtonNone, MouseBtnNone, MouseActionMove},
	}

	for i, st := range steps {
		ev, ok := term.translate(tcell.NewEventMouse(st.x, st.y, st.mask, tcell.ModNone))
		if !ok {
			t.Fatalf("step %d: mouse event not translated", i)
		}
		if ev.MouseX != st.x || ev.MouseY != st.y {
			t.Errorf("step %d: position got (%d,%d)", i, ev.MouseX, ev.MouseY)
		}
		if ev.MouseBtn != st.btn || ev.MouseAction != st.action {
			t.Errorf("step %d: got %s/%s, want %s/%s", i, ev.MouseBtn, ev.MouseAction, st.btn, st.action)
		}
	}

	// Repeated motion at the same cell is dropped
	if _, ok := term.translate(tcell.NewEventMouse(6, 5, tcell.ButtonNone, tcell.ModNone)); ok {
		t.Error("duplicate motion should be suppressed")
	}
}

func TestTranslate_Resize(t *testing.T) {
	term, _ := newSimTerminal(t, 10, 10)

	ev, ok := term.translate(tcell.NewEventResize(120, 40))
	if !ok || ev.Type != EventResize {
		t.Fatal("resize not translated")
	}
	if ev.Width != 120 || ev.Height != 40 {
		t.Errorf("size: got %dx%d", ev.Width, ev.Height)
	}
}

func TestFini_Idempotent(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTcell(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	term.Fini()
	term.Fini()
}

func TestEmergencyReset_WritesSequences(t *testing.T) {
	var b strings.Builder
	EmergencyReset(&b)
	out := b.String()
	for _, seq := range []string{"\x1b[?25h", "\x1b[?1049l", "\x1b[0m"} {
		if !strings.Contains(out, seq) {
			t.Errorf("missing sequence %q", seq)
		}
	}
}
