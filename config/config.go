// Package config loads dock metrics, theme colours, key bindings and audio
// settings from TOML, layered over built-in defaults
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/lixenwraith/dockspace/dock"
	"github.com/lixenwraith/dockspace/terminal"
	"github.com/lixenwraith/dockspace/terminal/tui"
	"github.com/lixenwraith/dockspace/toml"
)

// DockConfig is the [dock] section
type DockConfig struct {
	Gutter        int `toml:"gutter"`
	TabHeight     int `toml:"tab_height"`
	TargetW       int `toml:"overlay_target_w"`
	TargetH       int `toml:"overlay_target_h"`
	MinExtent     int `toml:"min_extent"`
	DragThreshold int `toml:"drag_threshold"`
}

// AudioConfig is the [audio] section
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Config is the resolved configuration
// Theme maps colour names to "#rrggbb"; Keys maps action names to key names
type Config struct {
	Dock  DockConfig          `toml:"dock"`
	Theme map[string]string   `toml:"theme"`
	Keys  map[string][]string `toml:"keys"`
	Audio AudioConfig         `toml:"audio"`

	palette  tui.Theme
	bindings map[Action][]terminal.Binding
}

// Default returns the built-in configuration
func Default() *Config {
	m := dock.DefaultMetrics()
	c := &Config{
		Dock: DockConfig{
			Gutter:        m.Gutter,
			TabHeight:     m.TabHeight,
			TargetW:       m.TargetW,
			TargetH:       m.TargetH,
			MinExtent:     m.MinExtent,
			DragThreshold: m.DragThreshold,
		},
		Theme: make(map[string]string, len(themeFields)),
		Keys:  make(map[string][]string, len(defaultKeys)),
		Audio: AudioConfig{Enabled: false, Volume: 0.5},
	}
	for _, f := range themeFields {
		c.Theme[f.name] = tui.Hex(*f.field(&tui.DefaultTheme))
	}
	for action, keys := range defaultKeys {
		c.Keys[string(action)] = append([]string(nil), keys...)
	}
	if err := c.resolve(); err != nil {
		panic("config: invalid defaults: " + err.Error())
	}
	return c
}

// Parse decodes TOML data over the defaults
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := Merge(c, data); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads and parses a config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Merge applies the keys present in TOML data onto base
// Unknown sections or keys are rejected; base is unchanged on error
func Merge(base *Config, data []byte) error {
	tree, err := toml.Parse(data)
	if err != nil {
		return fmt.Errorf("config parse: %w", err)
	}

	next := base.clone()
	unknown, err := toml.DecodeStrict(tree, next)
	if err != nil {
		return fmt.Errorf("config decode: %w", err)
	}
	if len(unknown) > 0 {
		return fmt.Errorf("config: unknown keys: %s", strings.Join(unknown, ", "))
	}
	if err := next.resolve(); err != nil {
		return err
	}
	*base = *next
	return nil
}

func (c *Config) clone() *Config {
	out := *c
	out.Theme = make(map[string]string, len(c.Theme))
	for k, v := range c.Theme {
		out.Theme[k] = v
	}
	out.Keys = make(map[string][]string, len(c.Keys))
	for k, v := range c.Keys {
		out.Keys[k] = append([]string(nil), v...)
	}
	return &out
}

// resolve validates raw values and derives the palette and bindings
func (c *Config) resolve() error {
	d := c.Dock
	for _, chk := range []struct {
		key      string
		val, min int
	}{
		{"gutter", d.Gutter, 0},
		{"tab_height", d.TabHeight, 1},
		{"overlay_target_w", d.TargetW, 1},
		{"overlay_target_h", d.TargetH, 1},
		{"min_extent", d.MinExtent, 1},
		{"drag_threshold", d.DragThreshold, 0},
	} {
		if chk.val < chk.min {
			return fmt.Errorf("[dock] %s = %d: must be at least %d", chk.key, chk.val, chk.min)
		}
	}

	if v := c.Audio.Volume; v < 0 || v > 1 {
		return fmt.Errorf("[audio] volume = %v: must be within [0,1]", v)
	}

	palette := tui.DefaultTheme
	for name, hex := range c.Theme {
		f, ok := themeField(name)
		if !ok {
			return fmt.Errorf("[theme] unknown colour %q", name)
		}
		rgb, err := tui.ParseHex(hex)
		if err != nil {
			return fmt.Errorf("[theme] %s = %q: %w", name, hex, err)
		}
		*f.field(&palette) = rgb
	}

	bindings := make(map[Action][]terminal.Binding, len(c.Keys))
	for name, keys := range c.Keys {
		action := Action(name)
		if !action.valid() {
			return fmt.Errorf("[keys] unknown action %q", name)
		}
		for _, k := range keys {
			b, err := terminal.ParseBinding(k)
			if err != nil {
				return fmt.Errorf("[keys] %s key %q: %w", name, k, err)
			}
			bindings[action] = append(bindings[action], b)
		}
	}

	c.palette = palette
	c.bindings = bindings
	return nil
}

// Metrics returns the dock metrics
func (c *Config) Metrics() dock.Metrics {
	return dock.Metrics{
		Gutter:        c.Dock.Gutter,
		TabHeight:     c.Dock.TabHeight,
		TargetW:       c.Dock.TargetW,
		TargetH:       c.Dock.TargetH,
		MinExtent:     c.Dock.MinExtent,
		DragThreshold: c.Dock.DragThreshold,
	}
}

// Palette returns the resolved colour theme
func (c *Config) Palette() tui.Theme {
	return c.palette
}

// Bindings returns the keys bound to action
func (c *Config) Bindings(action Action) []terminal.Binding {
	return c.bindings[action]
}

// ActionFor returns the action bound to a key event
// When several actions share a key the first in name order wins
func (c *Config) ActionFor(ev terminal.Event) (Action, bool) {
	if ev.Type != terminal.EventKey {
		return "", false
	}
	actions := make([]string, 0, len(c.bindings))
	for a := range c.bindings {
		actions = append(actions, string(a))
	}
	sort.Strings(actions)
	for _, a := range actions {
		for _, b := range c.bindings[Action(a)] {
			if b.Matches(ev) {
				return Action(a), true
			}
		}
	}
	return "", false
}
