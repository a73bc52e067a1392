package terminal

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// keyToName maps Key constants to canonical config string names
var keyToName = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeySpace:     "space",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
	KeyInsert:   "insert",

	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",
	KeyF11: "f11",
	KeyF12: "f12",
}

// nameToKey is the reverse lookup, built from keyToName plus ctrl_<letter>
var nameToKey map[string]Key

func init() {
	nameToKey = make(map[string]Key, len(keyToName)+26)
	for k, v := range keyToName {
		nameToKey[v] = k
	}
	for i := 0; i < 26; i++ {
		k := KeyCtrlA + Key(i)
		name := "ctrl_" + string(rune('a'+i))
		keyToName[k] = name
		nameToKey[name] = k
	}
	// Aliases
	nameToKey["shift_tab"] = KeyBacktab
	nameToKey["esc"] = KeyEscape
	nameToKey["return"] = KeyEnter
}

// KeyName returns the canonical string name for a Key constant
// Returns empty string for KeyNone and KeyRune
func KeyName(k Key) string {
	return keyToName[k]
}

// KeyByName resolves a canonical name to a Key constant
// Returns KeyNone and false if name is unknown
func KeyByName(name string) (Key, bool) {
	k, ok := nameToKey[name]
	return k, ok
}

// Binding is a single key trigger: either a named key or a printable rune
type Binding struct {
	Key  Key
	Rune rune
}

// ParseBinding resolves a config string to a Binding
// Single characters bind runes, anything else must be a known key name
func ParseBinding(s string) (Binding, error) {
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return Binding{Key: KeyRune, Rune: r}, nil
	}
	k, ok := KeyByName(strings.ToLower(strings.TrimSpace(s)))
	if !ok {
		return Binding{}, fmt.Errorf("unknown key name: %q", s)
	}
	return Binding{Key: k}, nil
}

// Matches reports whether a key event triggers the binding
func (b Binding) Matches(ev Event) bool {
	if ev.Type != EventKey || ev.Key != b.Key {
		return false
	}
	return b.Key != KeyRune || ev.Rune == b.Rune
}

// String returns the config form of the binding
func (b Binding) String() string {
	if b.Key == KeyRune {
		return string(b.Rune)
	}
	return KeyName(b.Key)
}
