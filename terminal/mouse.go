package terminal

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
)

// MouseAction represents the type of mouse event
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
	MouseActionDrag
)

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "Left"
	case MouseBtnMiddle:
		return "Middle"
	case MouseBtnRight:
		return "Right"
	case MouseBtnWheelUp:
		return "WheelUp"
	case MouseBtnWheelDown:
		return "WheelDown"
	default:
		return "None"
	}
}

// String returns human-readable action name
func (a MouseAction) String() string {
	switch a {
	case MouseActionPress:
		return "Press"
	case MouseActionRelease:
		return "Release"
	case MouseActionMove:
		return "Move"
	case MouseActionDrag:
		return "Drag"
	default:
		return "None"
	}
}

// mouseTracker derives press/drag/release actions from successive button states
// Terminals report button masks, not transitions
type mouseTracker struct {
	held MouseButton
}

// update returns the action for a new button observation and records it
func (m *mouseTracker) update(btn MouseButton) (MouseButton, MouseAction) {
	prev := m.held
	switch {
	case btn == MouseBtnWheelUp || btn == MouseBtnWheelDown:
		return btn, MouseActionPress
	case btn != MouseBtnNone && prev == MouseBtnNone:
		m.held = btn
		return btn, MouseActionPress
	case btn != MouseBtnNone:
		m.held = btn
		return btn, MouseActionDrag
	case prev != MouseBtnNone:
		m.held = MouseBtnNone
		return prev, MouseActionRelease
	default:
		return MouseBtnNone, MouseActionMove
	}
}
