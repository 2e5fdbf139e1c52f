package geom

// Color is a working RGBA color with float64 channels in [0,255].
// Interpolation happens in float space; Clamped converts back to bytes.
type Color struct {
	R, G, B, A float64
}

// Add returns c + other, channel-wise.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B, c.A + other.A}
}

// Scale returns c * s, channel-wise.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Clamped returns the color with each channel clamped to [0,255].
func (c Color) Clamped() Color {
	return Color{
		Clamp(c.R, 0, 255),
		Clamp(c.G, 0, 255),
		Clamp(c.B, 0, 255),
		Clamp(c.A, 0, 255),
	}
}

// Bytes truncates the clamped channels to 8-bit values.
func (c Color) Bytes() (r, g, b, a uint8) {
	k := c.Clamped()
	return uint8(k.R), uint8(k.G), uint8(k.B), uint8(k.A)
}
