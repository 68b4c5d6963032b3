package theme

import "fmt"

// Color is an 8-bit RGBA color in the layout engine's color space.
type Color struct {
	R, G, B, A uint8
}

var (
	White       = Color{255, 255, 255, 255}
	Black       = Color{0, 0, 0, 255}
	Transparent = Color{}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Hex renders the color as a #rrggbb string for backends that speak
// CSS-style colors. Alpha is dropped.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lighten interpolates c toward white. amount 0 returns c unchanged,
// 1 returns white. Alpha is preserved.
func Lighten(c Color, amount float32) Color {
	return Color{
		R: lerpChannel(c.R, 255, amount),
		G: lerpChannel(c.G, 255, amount),
		B: lerpChannel(c.B, 255, amount),
		A: c.A,
	}
}

// Darken interpolates c toward black. amount 0 returns c unchanged,
// 1 returns black. Alpha is preserved.
func Darken(c Color, amount float32) Color {
	return Color{
		R: lerpChannel(c.R, 0, amount),
		G: lerpChannel(c.G, 0, amount),
		B: lerpChannel(c.B, 0, amount),
		A: c.A,
	}
}

func lerpChannel(from, to uint8, t float32) uint8 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return uint8(float32(from) + (float32(to)-float32(from))*t)
}
