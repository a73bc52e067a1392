package toml

import (
	"reflect"
	"strings"
	"testing"
)

func TestParse_Scalars(t *testing.T) {
	input := []byte(`
# dock settings
name = "dock"
literal = 'C:\path'
gutter = 1
hex = 0x1F
big = 1_000
ratio = 0.35
tiny = 1e-3
neg = -2
enabled = true
`)
	tree, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := map[string]any{
		"name":    "dock",
		"literal": `C:\path`,
		"gutter":  1,
		"hex":     31,
		"big":     1000,
		"ratio":   0.35,
		"tiny":    0.001,
		"neg":     -2,
		"enabled": true,
	}
	if !reflect.DeepEqual(tree, want) {
		t.Errorf("tree mismatch:\ngot  %#v\nwant %#v", tree, want)
	}
}

func TestParse_TablesAndDottedKeys(t *testing.T) {
	input := []byte(`
[theme]
bg = "#14141e"
tab.active = "#283c5a"

[keys.global]
quit = ["q", "ctrl_c"]
point = { x = 1, y = 2 }
`)
	tree, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	theme := tree["theme"].(map[string]any)
	if theme["bg"] != "#14141e" {
		t.Errorf("theme.bg: got %v", theme["bg"])
	}
	if theme["tab"].(map[string]any)["active"] != "#283c5a" {
		t.Errorf("theme.tab.active: got %v", theme["tab"])
	}

	global := tree["keys"].(map[string]any)["global"].(map[string]any)
	if !reflect.DeepEqual(global["quit"], []any{"q", "ctrl_c"}) {
		t.Errorf("quit: got %#v", global["quit"])
	}
	if !reflect.DeepEqual(global["point"], map[string]any{"x": 1, "y": 2}) {
		t.Errorf("point: got %#v", global["point"])
	}
}

func TestParse_MultilineArray(t *testing.T) {
	tree, err := Parse([]byte("ids = [\n  \"a\",\n  \"b\", # trailing comment\n]\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !reflect.DeepEqual(tree["ids"], []any{"a", "b"}) {
		t.Errorf("ids: got %#v", tree["ids"])
	}
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"duplicate key":    "a = 1\na = 2\n",
		"duplicate table":  "[a]\n[a]\n",
		"missing equals":   "a 1\n",
		"unterminated":     "a = \"open\n",
		"array of tables":  "[[servers]]\n",
		"bad value":        "a = nope\n",
		"trailing garbage": "a = 1 2\n",
		"key not table":    "a = 1\n[a.b]\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(input)); err == nil {
				t.Errorf("expected error for %q", input)
			}
		})
	}
}

func TestParse_ErrorHasLine(t *testing.T) {
	_, err := Parse([]byte("a = 1\n\nb = \n"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error should name line 3: %v", err)
	}
}

func TestUnmarshal_Struct(t *testing.T) {
	type Dock struct {
		Gutter int     `toml:"gutter"`
		Ratio  float64 `toml:"ratio"`
		Locked []string
	}
	type Config struct {
		Title string            `toml:"title"`
		Dock  Dock              `toml:"dock"`
		Keys  map[string]string `toml:"keys"`
		Skip  string            `toml:"-"`
		Extra *Dock             `toml:"extra"`
	}

	input := []byte(`
title = "demo"
Skip = "ignored"

[dock]
gutter = 2
ratio = 1
Locked = ["scene"]

[keys]
quit = "q"

[extra]
gutter = 5
`)
	var cfg Config
	if err := Unmarshal(input, &cfg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if cfg.Title != "demo" {
		t.Errorf("Title: got %q", cfg.Title)
	}
	if cfg.Dock.Gutter != 2 || cfg.Dock.Ratio != 1.0 {
		t.Errorf("Dock: got %+v", cfg.Dock)
	}
	if len(cfg.Dock.Locked) != 1 || cfg.Dock.Locked[0] != "scene" {
		t.Errorf("Dock.Locked: got %v", cfg.Dock.Locked)
	}
	if cfg.Keys["quit"] != "q" {
		t.Errorf("Keys: got %v", cfg.Keys)
	}
	if cfg.Skip != "" {
		t.Errorf("Skip should be ignored, got %q", cfg.Skip)
	}
	if cfg.Extra == nil || cfg.Extra.Gutter != 5 {
		t.Errorf("Extra: got %+v", cfg.Extra)
	}
}

func TestDecode_TypeMismatch(t *testing.T) {
	var cfg struct {
		Gutter int `toml:"gutter"`
	}
	err := Unmarshal([]byte(`gutter = "wide"`), &cfg)
	if err == nil {
		t.Fatal("expected type error")
	}
	if !strings.Contains(err.Error(), "gutter") {
		t.Errorf("error should name the key: %v", err)
	}
}

func TestDecode_Overflow(t *testing.T) {
	var cfg struct {
		Small int8 `toml:"small"`
	}
	if err := Unmarshal([]byte(`small = 300`), &cfg); err == nil {
		t.Error("expected overflow error")
	}
}

func TestDecodeStrict_ReportsUnknown(t *testing.T) {
	var cfg struct {
		Dock struct {
			Gutter int `toml:"gutter"`
		} `toml:"dock"`
	}
	tree, err := Parse([]byte("typo = 1\n[dock]\ngutter = 1\ngutterr = 2\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	unknown, err := DecodeStrict(tree, &cfg)
	if err != nil {
		t.Fatalf("DecodeStrict failed: %v", err)
	}
	want := []string{"dock.gutterr", "typo"}
	if !reflect.DeepEqual(unknown, want) {
		t.Errorf("unknown: got %v, want %v", unknown, want)
	}
}

func TestDecode_RequiresPointer(t *testing.T) {
	var cfg struct{}
	if err := Decode(map[string]any{}, cfg); err == nil {
		t.Error("expected error for non-pointer target")
	}
}
