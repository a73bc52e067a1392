package terminal

import (
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// tcellTerminal implements Terminal on top of a tcell.Screen
type tcellTerminal struct {
	screen tcell.Screen

	mu          sync.Mutex
	initialized bool
	finalized   bool

	// prev holds the last flushed frame for cell-level diffing
	prev       []Cell
	prevW      int
	prevH      int
	forceFull  bool
	mouse      mouseTracker
	lastMouseX int
	lastMouseY int
}

// New creates a Terminal on the process tty through tcell
func New() (Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTcell(screen), nil
}

// NewTcell wraps an existing screen, such as tcell.NewSimulationScreen
func NewTcell(screen tcell.Screen) Terminal {
	return &tcellTerminal{screen: screen, forceFull: true}
}

// Init enters raw mode and sets up mouse reporting
func (t *tcellTerminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if t.screen == nil {
		return errors.New("terminal: nil screen")
	}
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents | tcell.MouseMotionEvents)
	t.screen.HideCursor()
	t.screen.Clear()
	t.initialized = true
	return nil
}

// Fini restores terminal state
func (t *tcellTerminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.finalized = true
	t.screen.DisableMouse()
	t.screen.Fini()
}

func (t *tcellTerminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *tcellTerminal) Sync() {
	t.mu.Lock()
	t.forceFull = true
	t.mu.Unlock()
	t.screen.Sync()
}

func (t *tcellTerminal) Beep() error {
	return t.screen.Beep()
}

// Flush writes only cells that changed since the previous frame
func (t *tcellTerminal) Flush(cells []Cell, width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(cells) < width*height {
		return
	}

	full := t.forceFull || width != t.prevW || height != t.prevH || len(t.prev) != width*height
	if full {
		t.prev = make([]Cell, width*height)
		t.prevW, t.prevH = width, height
	}

	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			c := cells[row+x]
			if !full && t.prev[row+x] == c {
				continue
			}
			t.prev[row+x] = c
			ch := c.Rune
			if ch == 0 {
				ch = ' '
			}
			t.screen.SetContent(x, y, ch, nil, styleFor(c))
		}
	}
	t.forceFull = false
	t.screen.Show()
}

// PollEvent blocks until the next translatable event
func (t *tcellTerminal) PollEvent() Event {
	for {
		tev := t.screen.PollEvent()
		if tev == nil {
			return Event{Type: EventClosed}
		}
		if ev, ok := t.translate(tev); ok {
			return ev
		}
	}
}

// translate converts a tcell event, returning false for events with no mapping
func (t *tcellTerminal) translate(tev tcell.Event) (Event, bool) {
	switch ev := tev.(type) {
	case *tcell.EventKey:
		return translateKey(ev), true
	case *tcell.EventResize:
		w, h := ev.Size()
		t.mu.Lock()
		t.forceFull = true
		t.mu.Unlock()
		return Event{Type: EventResize, Width: w, Height: h}, true
	case *tcell.EventMouse:
		x, y := ev.Position()
		btn, action := t.mouse.update(translateButtons(ev.Buttons()))
		if action == MouseActionMove && x == t.lastMouseX && y == t.lastMouseY {
			return Event{}, false
		}
		t.lastMouseX, t.lastMouseY = x, y
		return Event{
			Type:        EventMouse,
			MouseX:      x,
			MouseY:      y,
			MouseBtn:    btn,
			MouseAction: action,
			Modifiers:   translateMods(ev.Modifiers()),
		}, true
	case *tcell.EventError:
		return Event{Type: EventError, Err: ev}, true
	}
	return Event{}, false
}

func translateButtons(mask tcell.ButtonMask) MouseButton {
	switch {
	case mask&tcell.WheelUp != 0:
		return MouseBtnWheelUp
	case mask&tcell.WheelDown != 0:
		return MouseBtnWheelDown
	case mask&tcell.Button1 != 0:
		return MouseBtnLeft
	case mask&tcell.Button3 != 0:
		return MouseBtnMiddle
	case mask&tcell.Button2 != 0:
		return MouseBtnRight
	}
	return MouseBtnNone
}

func translateMods(m tcell.ModMask) Modifier {
	var mod Modifier
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	return mod
}

// tcellKeys maps tcell special keys to terminal keys
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
}

func translateKey(ev *tcell.EventKey) Event {
	out := Event{Type: EventKey, Modifiers: translateMods(ev.Modifiers())}

	if ev.Key() == tcell.KeyRune {
		if ev.Rune() == ' ' {
			out.Key = KeySpace
			out.Rune = ' '
			return out
		}
		out.Key = KeyRune
		out.Rune = ev.Rune()
		return out
	}

	if k, ok := tcellKeys[ev.Key()]; ok {
		out.Key = k
		return out
	}

	// tcell reports Ctrl+letter as KeyCtrlA..KeyCtrlZ, contiguous with ASCII 1-26
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		out.Key = KeyCtrlA + Key(ev.Key()-tcell.KeyCtrlA)
		out.Modifiers |= ModCtrl
		return out
	}

	out.Key = KeyNone
	return out
}

func styleFor(c Cell) tcell.Style {
	st := tcell.StyleDefault
	if !c.Fg.IsZero() {
		st = st.Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B)))
	}
	if !c.Bg.IsZero() {
		st = st.Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
	}
	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&AttrItalic != 0 {
		st = st.Italic(true)
	}
	if c.Attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if c.Attrs&AttrBlink != 0 {
		st = st.Blink(true)
	}
	if c.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}
