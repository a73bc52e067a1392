package config

// Action is a demo command reachable from a key binding
type Action string

const (
	ActionQuit       Action = "quit"
	ActionNextTab    Action = "next_tab"
	ActionPrevTab    Action = "prev_tab"
	ActionCloseTab   Action = "close_tab"
	ActionSplitRight Action = "split_right"
	ActionSplitDown  Action = "split_down"
	ActionPrune      Action = "prune"
	ActionToggleLock Action = "toggle_lock"
	ActionFocusNext  Action = "focus_next"
)

var defaultKeys = map[Action][]string{
	ActionQuit:       {"q", "ctrl_c"},
	ActionNextTab:    {"tab"},
	ActionPrevTab:    {"backtab"},
	ActionCloseTab:   {"x"},
	ActionSplitRight: {"v"},
	ActionSplitDown:  {"s"},
	ActionPrune:      {"p"},
	ActionToggleLock: {"l"},
	ActionFocusNext:  {"n"},
}

func (a Action) valid() bool {
	_, ok := defaultKeys[a]
	return ok
}
