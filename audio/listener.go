package audio

import "github.com/lixenwraith/dockspace/dock"

// CueFor maps a dock event to its cue
func CueFor(kind dock.EventKind) (Cue, bool) {
	switch kind {
	case dock.EventDropSucceeded:
		return CueDrop, true
	case dock.EventDropFailed:
		return CueDropFail, true
	case dock.EventSplit:
		return CueSplit, true
	case dock.EventCollapse:
		return CueCollapse, true
	}
	return 0, false
}

// Listener returns a dock listener that plays the cue of each event
func (m *CueManager) Listener() dock.Listener {
	return func(e dock.Event) {
		if cue, ok := CueFor(e.Kind); ok {
			m.Play(cue)
		}
	}
}
