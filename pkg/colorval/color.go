package colorval

import (
	"fmt"
	"slices"
	"strings"
)

// equalTolerance is the per-channel tolerance used by Equal.
const equalTolerance = 1e-6

// Color is an ordered list of one or more normalized RGBA entries.
// A Color is not safe for concurrent mutation. Build one with New; the zero
// value holds no entries until Extend adds some, and logs through
// slog.Default.
type Color struct {
	entries []Entry
	logger  Logger
}

// New resolves in into a Color. A nil input yields opaque black.
func New(in Input, opts ...Option) (*Color, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if in == nil {
		in = (*Color)(nil)
	}
	entries, err := in.resolve(&o)
	if err != nil {
		return nil, err
	}
	if o.alpha != nil {
		for i := range entries {
			entries[i].A = *o.alpha
		}
	}

	c := &Color{entries: entries, logger: o.logger}
	c.clampAll()
	return c, nil
}

// MustNew is like New but panics on error.
// Use this only for known-good color values in initialization code.
func MustNew(in Input, opts ...Option) *Color {
	c, err := New(in, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// clampAll clamps every entry, emitting one warning per entry that was
// out of range.
func (c *Color) clampAll() {
	for i, e := range c.entries {
		clamped, changed := e.clamp()
		if !changed {
			continue
		}
		c.log().Warn("color value outside range, clamping",
			"index", i,
			"rgba", [4]float64{e.R, e.G, e.B, e.A},
		)
		c.entries[i] = clamped
	}
}

func (c *Color) log() Logger {
	if c.logger == nil {
		return NewSlogAdapter(nil)
	}
	return c.logger
}

// Len returns the number of entries.
func (c *Color) Len() int {
	return len(c.entries)
}

// At returns entry i. It panics if i is out of range.
func (c *Color) At(i int) Entry {
	return c.entries[i]
}

// Entries returns a copy of all entries.
func (c *Color) Entries() []Entry {
	return slices.Clone(c.entries)
}

// Copy returns an independent copy sharing the same logger.
func (c *Color) Copy() *Color {
	return &Color{entries: c.Entries(), logger: c.logger}
}

// Slice returns a new Color holding entries [i, j). It panics unless
// 0 <= i < j <= Len(), since a Color always holds at least one entry.
func (c *Color) Slice(i, j int) *Color {
	if i < 0 || j > len(c.entries) || i >= j {
		panic(fmt.Sprintf("colorval: Slice(%d, %d) out of range for %d colors", i, j, len(c.entries)))
	}
	return &Color{entries: slices.Clone(c.entries[i:j]), logger: c.logger}
}

// Extend appends the entries of others in order. A nil Color counts as
// opaque black, as it does in a Collection.
func (c *Color) Extend(others ...*Color) {
	for _, o := range others {
		if o == nil {
			c.entries = append(c.entries, Black)
			continue
		}
		c.entries = append(c.entries, o.entries...)
	}
}

// Equal reports whether both colors hold the same number of entries and
// every channel matches within a small tolerance.
func (c *Color) Equal(other *Color) bool {
	if c == nil || other == nil {
		return c == other
	}
	if len(c.entries) != len(other.entries) {
		return false
	}
	for i := range c.entries {
		if !c.entries[i].equal(other.entries[i], equalTolerance) {
			return false
		}
	}
	return true
}

// IsBlank reports whether every entry is fully transparent.
func (c *Color) IsBlank() bool {
	for _, e := range c.entries {
		if e.A != 0 {
			return false
		}
	}
	return true
}

func (c *Color) String() string {
	if len(c.entries) == 1 {
		return fmt.Sprintf("<Color: %s>", c.entries[0])
	}
	parts := make([]string, len(c.entries))
	for i, e := range c.entries {
		parts[i] = e.String()
	}
	return fmt.Sprintf("<Color: %d colors (%s)>", len(c.entries), strings.Join(parts, ", "))
}
