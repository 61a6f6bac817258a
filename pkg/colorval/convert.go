package colorval

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

func (e Entry) toColorful() colorful.Color {
	return colorful.Color{R: e.R, G: e.G, B: e.B}
}

// Hex returns every entry as a lowercase "#rrggbb" string. Alpha is dropped.
func (c *Color) Hex() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.toColorful().Hex()
	}
	return out
}

// HSV returns hue in degrees [0, 360), saturation and value in [0, 1].
func (c *Color) HSV() [][3]float64 {
	out := make([][3]float64, len(c.entries))
	for i, e := range c.entries {
		h, s, v := e.toColorful().Hsv()
		out[i] = [3]float64{h, s, v}
	}
	return out
}

// Lab returns CIE L*a*b* coordinates under the D65 white point, with L
// scaled to [0, 1].
func (c *Color) Lab() [][3]float64 {
	out := make([][3]float64, len(c.entries))
	for i, e := range c.entries {
		l, a, b := e.toColorful().Lab()
		out[i] = [3]float64{l, a, b}
	}
	return out
}

// Value returns the HSV value channel of every entry.
func (c *Color) Value() []float64 {
	out := make([]float64, len(c.entries))
	for i, e := range c.entries {
		_, _, v := e.toColorful().Hsv()
		out[i] = v
	}
	return out
}

// SetValue sets the HSV value of every entry, clipped to [0, 1].
// Hue, saturation and alpha are kept.
func (c *Color) SetValue(v float64) {
	for i := range c.entries {
		c.entries[i] = c.entries[i].withValue(func(float64) float64 { return v })
	}
}

// Darker returns a copy with the HSV value of every entry lowered by dv.
func (c *Color) Darker(dv float64) *Color {
	out := c.Copy()
	for i := range out.entries {
		out.entries[i] = out.entries[i].withValue(func(v float64) float64 { return v - dv })
	}
	return out
}

// Lighter returns a copy with the HSV value of every entry raised by dv.
func (c *Color) Lighter(dv float64) *Color {
	return c.Darker(-dv)
}

func (e Entry) withValue(fn func(float64) float64) Entry {
	h, s, v := e.toColorful().Hsv()
	rgb := colorful.Hsv(h, s, clamp01(fn(v))).Clamped()
	return Entry{R: rgb.R, G: rgb.G, B: rgb.B, A: e.A}
}
