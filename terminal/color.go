package terminal

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// IsZero reports whether the color is the zero value, treated as "inherit" by renderers
func (c RGB) IsZero() bool {
	return c == RGB{}
}

// Scale multiplies each channel by f, clamped to 0-255
func (c RGB) Scale(f float64) RGB {
	return RGB{R: scaleChannel(c.R, f), G: scaleChannel(c.G, f), B: scaleChannel(c.B, f)}
}

func scaleChannel(v uint8, f float64) uint8 {
	x := float64(v) * f
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x + 0.5)
}
