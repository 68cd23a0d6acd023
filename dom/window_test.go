package dom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResizeAndMatchMedia(t *testing.T) {
	w := NewWindow(500, 400)
	resized := 0
	w.AddEventListener("resize", NewListener(func(*Event) { resized++ }))

	assert.False(t, w.MatchMedia("(min-width: 640px)").Matches)
	w.Resize(800, 400)
	assert.True(t, w.MatchMedia("(min-width: 640px)").Matches)
	w.Resize(800, 400)
	assert.Equal(t, 1, resized)
}

func TestWindowScroll(t *testing.T) {
	w := NewWindow(500, 400)
	var events int
	w.AddEventListener("scroll", NewListener(func(*Event) { events++ }))

	w.ScrollTo(ScrollOptions{Top: 120, Behavior: ScrollSmooth})
	assert.Equal(t, 120.0, w.ScrollY())
	assert.Equal(t, ScrollSmooth, w.ScrollBehavior())

	w.ScrollBy(ScrollOptions{Left: -10, Top: -500})
	assert.Equal(t, 0.0, w.ScrollX())
	assert.Equal(t, 0.0, w.ScrollY())
	assert.Equal(t, ScrollAuto, w.ScrollBehavior())
	assert.Equal(t, 2, events)
}

func TestGetComputedStyle(t *testing.T) {
	w := NewWindow(1024, 768)
	doc := w.Document()
	require.NoError(t, doc.Body().SetInnerHTML(
		`<style>.box { color: red; } @media (min-width: 2000px) { .box { color: blue; } }</style>`+
			`<div class="box" style="margin: 4px"><span>x</span></div>`))

	box, err := doc.QuerySelector(".box")
	require.NoError(t, err)
	cs := w.GetComputedStyle(box)
	assert.Equal(t, "red", cs.GetPropertyValue("color"))
	assert.Equal(t, "4px", cs.GetPropertyValue("margin-top"))
	assert.Equal(t, "block", cs.GetPropertyValue("display"))

	span, _ := doc.QuerySelector("span")
	assert.Equal(t, "red", w.GetComputedStyle(span).GetPropertyValue("color"))
}

func TestGeneratedStyles(t *testing.T) {
	doc := newDoc(t)
	buf := doc.GeneratedStyles()
	buf.Append(".a:hover { color: red; }")
	buf.Append(".a:hover { color: red; }")

	assert.Equal(t, 2, buf.Len())
	styles := doc.Head().Children()
	require.Len(t, styles, 2)
	assert.Equal(t, ".a:hover { color: red; }", styles[0].TextContent())
}

func TestHistory(t *testing.T) {
	w := NewWindow(100, 100)
	h := w.History()
	assert.Equal(t, 1, h.Length())

	require.NoError(t, h.PushState("one", "", "/one"))
	require.NoError(t, h.PushState(map[string]int{"n": 2}, "", "two"))
	assert.Equal(t, "/two", w.Location().Path)
	assert.Equal(t, 3, h.Length())

	var popped []any
	w.AddEventListener("popstate", NewListener(func(ev *Event) { popped = append(popped, ev.State) }))

	h.Back()
	assert.Equal(t, "/one", w.Location().Path)
	h.Back()
	assert.Equal(t, "/", w.Location().Path)
	h.Back()
	h.Forward()
	assert.Equal(t, []any{"one", nil, "one"}, popped)

	require.NoError(t, h.PushState(nil, "", "/three"))
	assert.Equal(t, 3, h.Length())

	require.NoError(t, h.ReplaceState("r", "", ""))
	assert.Equal(t, "r", h.State())
	assert.Equal(t, "/three", w.Location().Path)

	err := h.PushState(nil, "", "https://example.com/")
	assert.True(t, errors.Is(err, SecurityError))
}
