// Package palette holds user-defined color names loaded from TOML files.
// A Palette plugs into colorval.New through colorval.WithNames.
package palette

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/opd-ai/go-colorval/pkg/colorval"
)

// Palette is a concurrency-safe table of custom color names.
type Palette struct {
	mu      sync.RWMutex
	entries map[string]colorval.Entry
	logger  colorval.Logger
}

// Option configures a Palette.
type Option func(*Palette)

// WithLogger receives the clamping warnings raised while parsing palette
// values, including on Reload. Without it colorval's default sink is used.
func WithLogger(l colorval.Logger) Option {
	return func(p *Palette) {
		p.logger = l
	}
}

// New creates an empty Palette.
func New(opts ...Option) *Palette {
	p := &Palette{entries: make(map[string]colorval.Entry)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Palette) colorOptions() []colorval.Option {
	if p.logger == nil {
		return nil
	}
	return []colorval.Option{colorval.WithLogger(p.logger)}
}

// file is the on-disk layout:
//
//	[colors]
//	brand = "#3366ff"
//	accent = "orange"
//	shade = [0.1, 0.1, 0.1, 0.5]
type file struct {
	Colors map[string]any `toml:"colors"`
}

// Load reads a palette from a TOML file.
func Load(path string, opts ...Option) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette file: %w", err)
	}
	p, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("palette %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a palette from TOML content. Every value must resolve to a
// single color; values may reference built-in names but not other palette
// entries.
func Parse(data []byte, opts ...Option) (*Palette, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse palette: %w", err)
	}

	p := New(opts...)
	copts := p.colorOptions()
	for name, raw := range f.Colors {
		in, err := toInput(raw)
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", name, err)
		}
		c, err := colorval.New(in, copts...)
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", name, err)
		}
		if c.Len() != 1 {
			return nil, fmt.Errorf("color %q: %w", name, colorval.ErrNested)
		}
		if err := p.Set(name, c.At(0)); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// toInput maps a decoded TOML value to a colorval input.
func toInput(raw any) (colorval.Input, error) {
	switch v := raw.(type) {
	case string:
		return colorval.Str(v), nil
	case []any:
		ch := make(colorval.Channels, len(v))
		for i, item := range v {
			switch n := item.(type) {
			case int64:
				ch[i] = float64(n)
			case float64:
				ch[i] = n
			default:
				return nil, fmt.Errorf("%w: channel %d has type %T", colorval.ErrValue, i, item)
			}
		}
		return ch, nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", colorval.ErrValue, raw)
	}
}

// Set adds or replaces a named color.
func (p *Palette) Set(name string, e colorval.Entry) error {
	key := colorval.NormalizeName(name)
	if key == "" {
		return fmt.Errorf("%w: empty palette name", colorval.ErrValue)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries[key] = e
	return nil
}

// ResolveName implements colorval.NameResolver.
func (p *Palette) ResolveName(name string) (colorval.Entry, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	e, ok := p.entries[name]
	return e, ok
}

// Names returns the palette's normalized names in sorted order.
func (p *Palette) Names() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Sorted(maps.Keys(p.entries))
}

// Len returns the number of named colors.
func (p *Palette) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.entries)
}

// Replace swaps in the contents of other. Readers see either the old or
// the new table, never a mix.
func (p *Palette) Replace(other *Palette) {
	other.mu.RLock()
	entries := maps.Clone(other.entries)
	other.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = entries
}

// Reload re-reads path and replaces the palette contents. On error the
// current contents are kept.
func (p *Palette) Reload(path string) error {
	fresh, err := Load(path, WithLogger(p.logger))
	if err != nil {
		return err
	}
	p.Replace(fresh)
	return nil
}
