package surface

// Color is an RGBA color on the 0-1 scale. The zero value is fully
// transparent black, which renders as "paint nothing".
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque color from 0-1 channel values.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a color from 0-1 channel values.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB8 returns an opaque color from 8-bit channel values.
func RGB8(r, g, b uint8) Color {
	return Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
		A: 1,
	}
}

// WithAlpha returns the color with its alpha channel replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Transparent reports whether the color paints nothing at all.
func (c Color) Transparent() bool {
	return c.A == 0
}

// Common colors used across the display.
var (
	White = RGB(1, 1, 1)
	Black = RGB(0, 0, 0)
)
