package tui

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/dockspace/terminal"
)

// Style bundles foreground, background, and attributes for text rendering
type Style struct {
	Fg   terminal.RGB
	Bg   terminal.RGB
	Attr terminal.Attr
}

// DefaultStyle returns style with zero values (transparent bg)
func DefaultStyle(fg terminal.RGB) Style {
	return Style{Fg: fg}
}

// IsZero returns true if style has no colors or attributes set
func (s Style) IsZero() bool {
	return s.Fg == (terminal.RGB{}) && s.Bg == (terminal.RGB{}) && s.Attr == terminal.AttrNone
}

// Blend mixes a toward b by t (0..1) in Lab space
func Blend(a, b terminal.RGB, t float64) terminal.RGB {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return terminal.RGB{R: r, G: g, B: bl}
}

// ParseHex parses "#rrggbb" into an RGB
func ParseHex(s string) (terminal.RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return terminal.RGB{}, err
	}
	r, g, b := c.RGB255()
	return terminal.RGB{R: r, G: g, B: b}, nil
}

// Hex formats an RGB as "#rrggbb"
func Hex(c terminal.RGB) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}
