package colorval

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/image/colornames"
)

// shortNames are single-letter aliases and overrides layered on top of the
// SVG 1.1 table. "green" is full-intensity green here, matching "g".
var shortNames = map[string]string{
	"r":           "#ff0000",
	"g":           "#00ff00",
	"b":           "#0000ff",
	"c":           "#00ffff",
	"m":           "#ff00ff",
	"y":           "#ffff00",
	"k":           "#000000",
	"w":           "#ffffff",
	"green":       "#00ff00",
	"transparent": "#00000000",
}

var (
	nameTable   = buildNameTable()
	sortedNames = slices.Sorted(maps.Keys(nameTable))
)

func buildNameTable() map[string]Entry {
	table := make(map[string]Entry, len(colornames.Map)+len(shortNames))
	for name, c := range colornames.Map {
		table[NormalizeName(name)] = entryFrom8(c.R, c.G, c.B, c.A)
	}
	for name, hex := range shortNames {
		e, err := parseHex(hex)
		if err != nil {
			panic(fmt.Sprintf("colorval: bad built-in color %s=%s: %v", name, hex, err))
		}
		table[name] = e
	}
	return table
}

// NormalizeName lowercases a color name and strips whitespace and hyphens,
// so "Dark Red", "dark\tred" and "dark-red" all become "darkred".
func NormalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, name)
}

// LookupName resolves a name against the built-in table.
func LookupName(name string) (Entry, bool) {
	e, ok := nameTable[NormalizeName(name)]
	return e, ok
}

// Names returns every recognized normalized color name in sorted order.
// The sequence can be ranged over any number of times.
func Names() iter.Seq[string] {
	return slices.Values(sortedNames)
}

// NameResolver resolves names outside the built-in table, such as a user
// palette. Implementations receive names already normalized.
type NameResolver interface {
	ResolveName(name string) (Entry, bool)
}
