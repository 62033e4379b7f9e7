package core

import "fmt"

// Color is an 8-bit RGBA colour. A is opacity: 255 is solid, 0 is invisible.
type Color struct {
	R, G, B, A uint8
}

// RGB returns a solid colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// WithAlpha returns c with its opacity replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Hex formats the colour as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Over composites c on top of dst using c's alpha. The result is solid.
func (c Color) Over(dst Color) Color {
	a := int(c.A)
	mix := func(src, d uint8) uint8 {
		return uint8((int(src)*a + int(d)*(255-a)) / 255)
	}
	return Color{R: mix(c.R, dst.R), G: mix(c.G, dst.G), B: mix(c.B, dst.B), A: 255}
}

// Scale multiplies the colour channels by k in [0, 1].
func (c Color) Scale(k float64) Color {
	k = ClampF(k, 0, 1)
	return Color{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

// Palette used across screens.
var (
	ColorBlack     = RGB(0, 0, 0)
	ColorWhite     = RGB(255, 255, 255)
	ColorText      = RGB(220, 220, 255)
	ColorDim       = RGB(120, 120, 140)
	ColorGold      = RGB(255, 215, 0)
	ColorRed       = RGB(220, 50, 50)
	ColorGreen     = RGB(50, 200, 80)
	ColorBlue      = RGB(60, 120, 230)
	ColorCyan      = RGB(0, 200, 200)
	ColorPurple    = RGB(150, 60, 220)
	ColorOrange    = RGB(255, 140, 0)
	ColorIce       = RGB(150, 220, 255)
	ColorShadow    = RGB(90, 40, 120)
	ColorPanel     = RGB(20, 20, 40)
	ColorPanelEdge = RGB(100, 100, 180)
	ColorHealth    = RGB(200, 40, 40)
	ColorMana      = RGB(40, 100, 220)
	ColorExp       = RGB(220, 200, 40)
	ColorNight     = RGB(10, 10, 30)
)
