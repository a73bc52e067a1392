package config

import (
	"github.com/lixenwraith/dockspace/terminal"
	"github.com/lixenwraith/dockspace/terminal/tui"
)

type themeEntry struct {
	name  string
	field func(*tui.Theme) *terminal.RGB
}

// themeFields maps [theme] keys to palette fields
var themeFields = []themeEntry{
	{"bg", func(t *tui.Theme) *terminal.RGB { return &t.Bg }},
	{"fg", func(t *tui.Theme) *terminal.RGB { return &t.Fg }},
	{"focus_bg", func(t *tui.Theme) *terminal.RGB { return &t.FocusBg }},
	{"border", func(t *tui.Theme) *terminal.RGB { return &t.Border }},
	{"hint_fg", func(t *tui.Theme) *terminal.RGB { return &t.HintFg }},
	{"status_fg", func(t *tui.Theme) *terminal.RGB { return &t.StatusFg }},
	{"tab_active_fg", func(t *tui.Theme) *terminal.RGB { return &t.TabActiveFg }},
	{"tab_active_bg", func(t *tui.Theme) *terminal.RGB { return &t.TabActiveBg }},
	{"tab_inactive_fg", func(t *tui.Theme) *terminal.RGB { return &t.TabInactiveFg }},
	{"tab_inactive_bg", func(t *tui.Theme) *terminal.RGB { return &t.TabInactiveBg }},
	{"tab_dragged_fg", func(t *tui.Theme) *terminal.RGB { return &t.TabDraggedFg }},
	{"gutter", func(t *tui.Theme) *terminal.RGB { return &t.Gutter }},
	{"gutter_active", func(t *tui.Theme) *terminal.RGB { return &t.GutterActive }},
	{"drop_target", func(t *tui.Theme) *terminal.RGB { return &t.DropTarget }},
	{"drop_target_hover", func(t *tui.Theme) *terminal.RGB { return &t.DropTargetHover }},
	{"drop_preview", func(t *tui.Theme) *terminal.RGB { return &t.DropPreview }},
}

func themeField(name string) (themeEntry, bool) {
	for _, f := range themeFields {
		if f.name == name {
			return f, true
		}
	}
	return themeEntry{}, false
}
