// Package palette holds the named color palette used for generated pages.
package palette

import (
	"math"

	"github.com/chrisuehlinger/avita/css"
)

// Entry is a named palette color.
type Entry struct {
	Name  string
	Value string
}

// Color parses the entry value.
func (e Entry) Color() css.Color {
	c, _ := css.ParseColor(e.Value)
	return c
}

// Palette is ordered; RandomColor indexes into it.
var Palette = []Entry{
	{"slate", "#64748b"},
	{"gray", "#6b7280"},
	{"zinc", "#71717a"},
	{"red", "#ef4444"},
	{"orange", "#f97316"},
	{"amber", "#f59e0b"},
	{"yellow", "#eab308"},
	{"lime", "#84cc16"},
	{"green", "#22c55e"},
	{"emerald", "#10b981"},
	{"teal", "#14b8a6"},
	{"cyan", "#06b6d4"},
	{"sky", "#0ea5e9"},
	{"blue", "#3b82f6"},
	{"indigo", "#6366f1"},
	{"violet", "#8b5cf6"},
	{"purple", "#a855f7"},
	{"fuchsia", "#d946ef"},
	{"pink", "#ec4899"},
	{"rose", "#f43f5e"},
}

// Lookup returns the palette entry called name.
func Lookup(name string) (Entry, bool) {
	for _, e := range Palette {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Source yields floats in [0, 1); *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// RandomColor picks floor(r*len(Palette) - 2). Small draws give a negative
// index and report false; the last two entries are never picked.
func RandomColor(r Source) (Entry, bool) {
	i := int(math.Floor(r.Float64()*float64(len(Palette)) - 2))
	if i < 0 || i >= len(Palette) {
		return Entry{}, false
	}
	return Palette[i], true
}
