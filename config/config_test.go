package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/dockspace/dock"
	"github.com/lixenwraith/dockspace/terminal"
	"github.com/lixenwraith/dockspace/terminal/tui"
)

func TestDefault_MatchesLibraryDefaults(t *testing.T) {
	c := Default()
	if c.Metrics() != dock.DefaultMetrics() {
		t.Errorf("metrics: got %+v, want %+v", c.Metrics(), dock.DefaultMetrics())
	}
	if c.Palette() != tui.DefaultTheme {
		t.Error("palette should equal the default theme")
	}
	if len(c.Theme) != len(themeFields) {
		t.Errorf("theme entries: got %d, want %d", len(c.Theme), len(themeFields))
	}
	if c.Audio.Enabled {
		t.Error("audio should be off by default")
	}
}

func TestParse_OverridesSparse(t *testing.T) {
	data := []byte(`
[dock]
gutter = 0
overlay_target_w = 7

[theme]
drop_target = "#ff0000"

[keys]
quit = ["ctrl_q"]

[audio]
enabled = true
volume = 0.25
`)
	c, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	m := c.Metrics()
	if m.Gutter != 0 || m.TargetW != 7 {
		t.Errorf("overridden metrics: %+v", m)
	}
	if m.TabHeight != 1 || m.TargetH != 3 {
		t.Errorf("untouched metrics should keep defaults: %+v", m)
	}
	if got := c.Palette().DropTarget; got != (terminal.RGB{R: 255}) {
		t.Errorf("drop_target: got %+v", got)
	}
	if c.Palette().Bg != tui.DefaultTheme.Bg {
		t.Error("untouched colours should keep defaults")
	}
	if !c.Audio.Enabled || c.Audio.Volume != 0.25 {
		t.Errorf("audio: %+v", c.Audio)
	}

	quit := c.Bindings(ActionQuit)
	if len(quit) != 1 || quit[0].Key != terminal.KeyCtrlQ {
		t.Errorf("quit bindings: %v", quit)
	}
	if len(c.Bindings(ActionNextTab)) == 0 {
		t.Error("unlisted actions should keep default bindings")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"syntax":         "[dock\n",
		"unknown key":    "[dock]\ngutterr = 1\n",
		"unknown table":  "[windows]\na = 1\n",
		"type mismatch":  "[dock]\ngutter = \"wide\"\n",
		"range":          "[dock]\ntab_height = 0\n",
		"bad colour":     "[theme]\nbg = \"#zz0000\"\n",
		"unknown colour": "[theme]\nsky = \"#000000\"\n",
		"unknown action": "[keys]\nfly = [\"f\"]\n",
		"bad key":        "[keys]\nquit = [\"hyper_q\"]\n",
		"volume":         "[audio]\nvolume = 2.0\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(data)); err == nil {
				t.Errorf("Parse(%q) should fail", data)
			}
		})
	}
}

func TestParse_ErrorNamesSection(t *testing.T) {
	_, err := Parse([]byte("[keys]\nquit = [\"hyper_q\"]\n"))
	if err == nil || !strings.Contains(err.Error(), "[keys] quit") {
		t.Errorf("error should name section and action, got %v", err)
	}
}

func TestMerge_LeavesBaseOnError(t *testing.T) {
	c := Default()
	if err := Merge(c, []byte("[dock]\ngutter = 2\n")); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if c.Dock.Gutter != 2 {
		t.Fatalf("gutter: got %d, want 2", c.Dock.Gutter)
	}

	if err := Merge(c, []byte("[dock]\ngutter = 5\ntab_height = -1\n")); err == nil {
		t.Fatal("Merge should reject tab_height -1")
	}
	if c.Dock.Gutter != 2 || c.Dock.TabHeight != 1 {
		t.Errorf("failed merge changed base: %+v", c.Dock)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dock.toml")
	if err := os.WriteFile(path, []byte("[dock]\ndrag_threshold = 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Metrics().DragThreshold != 2 {
		t.Errorf("drag_threshold: got %d", c.Metrics().DragThreshold)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestActionFor(t *testing.T) {
	c := Default()
	tests := []struct {
		ev   terminal.Event
		want Action
		ok   bool
	}{
		{terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'q'}, ActionQuit, true},
		{terminal.Event{Type: terminal.EventKey, Key: terminal.KeyCtrlC}, ActionQuit, true},
		{terminal.Event{Type: terminal.EventKey, Key: terminal.KeyTab}, ActionNextTab, true},
		{terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'v'}, ActionSplitRight, true},
		{terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'Z'}, "", false},
		{terminal.Event{Type: terminal.EventMouse}, "", false},
	}
	for _, tt := range tests {
		got, ok := c.ActionFor(tt.ev)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ActionFor(%+v): got (%q, %v), want (%q, %v)", tt.ev, got, ok, tt.want, tt.ok)
		}
	}
}
