package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func resolverWith(t *testing.T, vp Viewport, sheets ...string) *Resolver {
	t.Helper()
	r := NewResolver(vp)
	for _, s := range sheets {
		sheet, err := ParseStylesheet(s)
		require.NoError(t, err)
		r.AddStylesheet(sheet)
	}
	return r
}

func TestResolveCascadeOrder(t *testing.T) {
	doc := parseDoc(t, `<div id="a" class="x" style="color: green"><span id="s"></span></div>`)
	r := resolverWith(t, Viewport{Width: 1024, Height: 768},
		`.x { color: red; display: flex; } #a { color: blue; } div { display: grid; }`)

	div := r.Resolve(byID(doc, "a"))
	color, _ := div.Get("color")
	assert.Equal(t, "green", color, "inline beats author rules")
	display, _ := div.Get("display")
	assert.Equal(t, "flex", display, "class selector beats type selector")

	span := r.Resolve(byID(doc, "s"))
	color, _ = span.Get("color")
	assert.Equal(t, "green", color, "color inherits")
	display, _ = span.Get("display")
	assert.Equal(t, "inline", display, "display does not inherit")
}

func TestResolveImportant(t *testing.T) {
	doc := parseDoc(t, `<div id="a" class="x" style="color: green"></div>`)
	r := resolverWith(t, Viewport{Width: 1024, Height: 768}, `.x { color: red !important; }`)
	color, _ := r.Resolve(byID(doc, "a")).Get("color")
	assert.Equal(t, "red", color)
}

func TestResolveSourceOrder(t *testing.T) {
	doc := parseDoc(t, `<div id="a" class="x y"></div>`)
	r := resolverWith(t, Viewport{Width: 1024, Height: 768}, `.x { opacity: 0.5; }`, `.y { opacity: 0.25; }`)
	assert.Equal(t, "0.25", r.Resolve(byID(doc, "a")).GetPropertyValue("opacity"))
}

func TestResolveMedia(t *testing.T) {
	doc := parseDoc(t, `<div id="a" class="x"></div>`)
	sheet := `@media (min-width: 640px) { .x { display: grid; } }`

	wide := resolverWith(t, Viewport{Width: 800, Height: 600}, sheet)
	assert.Equal(t, "grid", wide.Resolve(byID(doc, "a")).GetPropertyValue("display"))

	narrow := resolverWith(t, Viewport{Width: 500, Height: 600}, sheet)
	assert.Equal(t, "block", narrow.Resolve(byID(doc, "a")).GetPropertyValue("display"))
}

func TestResolveDynamicState(t *testing.T) {
	doc := parseDoc(t, `<button id="b" class="btn">go</button>`)
	btn := byID(doc, "b")
	r := resolverWith(t, Viewport{Width: 1024, Height: 768}, `.btn:hover { background-color: purple !important; }`)

	assert.Equal(t, "transparent", r.Resolve(btn).GetPropertyValue("backgroundColor"))
	r.States = map[*html.Node][]string{btn: {StateHover}}
	assert.Equal(t, "purple", r.Resolve(btn).GetPropertyValue("background-color"))
}

func TestResolveShorthandAndKeywords(t *testing.T) {
	doc := parseDoc(t, `<div id="p" style="color: teal"><div id="c" style="margin: 1px 2px; color: initial; padding: 4px"></div></div>`)
	r := NewResolver(Viewport{Width: 1024, Height: 768})
	cs := r.Resolve(byID(doc, "c"))
	assert.Equal(t, "1px", cs.GetPropertyValue("margin-top"))
	assert.Equal(t, "2px", cs.GetPropertyValue("margin-right"))
	assert.Equal(t, "1px", cs.GetPropertyValue("margin-bottom"))
	assert.Equal(t, "4px", cs.GetPropertyValue("padding-left"))
	assert.Equal(t, "black", cs.GetPropertyValue("color"))

	_, ok := cs.Get("notAProperty")
	assert.False(t, ok)
	all := cs.All()
	assert.Equal(t, "block", all["display"])
}
