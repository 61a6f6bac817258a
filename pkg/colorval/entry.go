package colorval

import (
	"fmt"
	"math"
)

// Entry is a single normalized RGBA color. Channels are in [0, 1].
type Entry struct {
	R, G, B, A float64
}

// Black is the default color used when no input is given.
var Black = Entry{A: 1}

// entryFrom8 converts 0-255 channels to a normalized entry.
func entryFrom8(r, g, b, a uint8) Entry {
	return Entry{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// RGBA implements image/color.Color. The returned values are
// alpha-premultiplied 16-bit channels.
func (e Entry) RGBA() (r, g, b, a uint32) {
	a = uint32(math.Round(e.A * 0xffff))
	r = uint32(math.Round(e.R * e.A * 0xffff))
	g = uint32(math.Round(e.G * e.A * 0xffff))
	b = uint32(math.Round(e.B * e.A * 0xffff))
	return r, g, b, a
}

// RGBA8 returns the channels scaled to 0-255 and rounded.
func (e Entry) RGBA8() [4]uint8 {
	return [4]uint8{to8(e.R), to8(e.G), to8(e.B), to8(e.A)}
}

func (e Entry) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f, %.3f)", e.R, e.G, e.B, e.A)
}

// clamp forces every channel into [0, 1] and reports whether anything changed.
func (e Entry) clamp() (Entry, bool) {
	out := Entry{R: clamp01(e.R), G: clamp01(e.G), B: clamp01(e.B), A: clamp01(e.A)}
	return out, out != e
}

func (e Entry) equal(o Entry, tol float64) bool {
	return math.Abs(e.R-o.R) <= tol &&
		math.Abs(e.G-o.G) <= tol &&
		math.Abs(e.B-o.B) <= tol &&
		math.Abs(e.A-o.A) <= tol
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
