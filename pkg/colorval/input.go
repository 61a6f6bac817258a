package colorval

import (
	"fmt"
	"math"
	"strings"
)

// Input is a color source accepted by New. The variants are Name, Hex,
// Channels, Collection and *Color; nil means opaque black.
type Input interface {
	resolve(o *options) ([]Entry, error)
}

// Name is a color name looked up case-insensitively, ignoring spaces and hyphens.
type Name string

// Hex is a "#RRGGBB" or "#RRGGBBAA" string.
type Hex string

// Channels is an (r, g, b) or (r, g, b, a) tuple of normalized values.
// Values outside [0, 1] are clamped with a warning.
type Channels []float64

// Collection stacks independently resolved colors. Elements may not be
// collections or multi-entry colors.
type Collection []Input

// Str classifies a string: '#'-prefixed strings are Hex, anything else is a Name.
func Str(s string) Input {
	if strings.HasPrefix(s, "#") {
		return Hex(s)
	}
	return Name(s)
}

// Strs builds a Collection from strings using Str.
func Strs(ss ...string) Collection {
	out := make(Collection, len(ss))
	for i, s := range ss {
		out[i] = Str(s)
	}
	return out
}

// Rows builds a Collection of Channels, one per row.
func Rows(rows ...[]float64) Collection {
	out := make(Collection, len(rows))
	for i, row := range rows {
		out[i] = Channels(row)
	}
	return out
}

func (n Name) resolve(o *options) ([]Entry, error) {
	key := NormalizeName(string(n))
	if o.names != nil {
		if e, ok := o.names.ResolveName(key); ok {
			return []Entry{e}, nil
		}
	}
	e, ok := nameTable[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, string(n))
	}
	return []Entry{e}, nil
}

func (h Hex) resolve(*options) ([]Entry, error) {
	e, err := parseHex(string(h))
	if err != nil {
		return nil, err
	}
	return []Entry{e}, nil
}

func (c Channels) resolve(*options) ([]Entry, error) {
	if len(c) != 3 && len(c) != 4 {
		return nil, fmt.Errorf("%w: got %d", ErrChannelCount, len(c))
	}
	for i, v := range c {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("%w: %s channel is NaN", ErrValue, channelNames[i])
		}
	}
	e := Entry{R: c[0], G: c[1], B: c[2], A: 1}
	if len(c) == 4 {
		e.A = c[3]
	}
	return []Entry{e}, nil
}

func (c Collection) resolve(o *options) ([]Entry, error) {
	if len(c) == 0 {
		return nil, ErrEmpty
	}
	out := make([]Entry, 0, len(c))
	for i, in := range c {
		switch v := in.(type) {
		case nil:
			out = append(out, Black)
			continue
		case Collection:
			return nil, fmt.Errorf("%w: element %d is a collection", ErrNested, i)
		case *Color:
			if v != nil && v.Len() > 1 {
				return nil, fmt.Errorf("%w: element %d holds %d colors", ErrNested, i, v.Len())
			}
		}
		entries, err := in.resolve(o)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, entries...)
	}
	return out, nil
}

func (c *Color) resolve(*options) ([]Entry, error) {
	if c == nil {
		return []Entry{Black}, nil
	}
	return c.Entries(), nil
}
