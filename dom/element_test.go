package dom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoc(t *testing.T) *Document {
	t.Helper()
	return NewWindow(1024, 768).Document()
}

func TestDocumentStructure(t *testing.T) {
	doc := newDoc(t)
	require.NotNil(t, doc.DocumentElement())
	assert.Equal(t, "HTML", doc.DocumentElement().TagName())
	assert.Equal(t, "head", doc.Head().LocalName())
	assert.Equal(t, "body", doc.Body().LocalName())
	assert.Same(t, doc.Body(), doc.ActiveElement())

	doc.SetTitle("Hello")
	assert.Equal(t, "Hello", doc.Title())
	doc.SetTitle("Again")
	assert.Equal(t, "Again", doc.Title())
}

func TestWrapperIdentity(t *testing.T) {
	doc := newDoc(t)
	div := doc.CreateElement("DIV")
	assert.Equal(t, "div", div.LocalName())
	_, err := doc.Body().AppendChild(div)
	require.NoError(t, err)

	assert.Same(t, div, doc.Body().Children()[0])
	assert.Same(t, doc.Body(), div.ParentElement())
	assert.True(t, div.IsConnected())
}

func TestAttributes(t *testing.T) {
	doc := newDoc(t)
	el := doc.CreateElement("a")

	_, ok := el.Attribute("href")
	assert.False(t, ok)
	el.SetAttribute("HREF", "/x")
	v, ok := el.Attribute("href")
	assert.True(t, ok)
	assert.Equal(t, "/x", v)

	err := el.SetAttributeWithError("bad name", "x")
	assert.True(t, errors.Is(err, InvalidCharacterError))

	assert.True(t, el.ToggleAttribute("hidden"))
	assert.True(t, el.HasAttribute("hidden"))
	assert.False(t, el.ToggleAttribute("hidden"))
	assert.True(t, el.ToggleAttribute("hidden", true))
	assert.True(t, el.ToggleAttribute("hidden", true))

	el.RemoveAttribute("href")
	assert.Equal(t, map[string]string{"hidden": ""}, el.Attributes())
}

func TestHierarchyErrors(t *testing.T) {
	doc := newDoc(t)
	outer := doc.CreateElement("div")
	inner := doc.CreateElement("span")
	_, err := outer.AppendChild(inner)
	require.NoError(t, err)

	_, err = inner.AppendChild(outer)
	assert.True(t, errors.Is(err, HierarchyRequestError))
	_, err = outer.AppendChild(outer)
	assert.True(t, errors.Is(err, HierarchyRequestError))

	_, err = outer.RemoveChild(doc.CreateElement("p"))
	assert.True(t, errors.Is(err, NotFoundError))
}

func TestInsertAndMove(t *testing.T) {
	doc := newDoc(t)
	list := doc.CreateElement("ul")
	a, b, c := doc.CreateElement("li"), doc.CreateElement("li"), doc.CreateElement("li")
	a.SetTextContent("a")
	b.SetTextContent("b")
	c.SetTextContent("c")

	require.NoError(t, list.Append(a, c))
	_, err := list.InsertBefore(b, c)
	require.NoError(t, err)
	assert.Equal(t, "abc", list.TextContent())

	require.NoError(t, list.Prepend(c))
	assert.Equal(t, "cab", list.TextContent())

	require.NoError(t, list.ReplaceChildren(b))
	assert.Equal(t, "b", list.TextContent())
	assert.Nil(t, a.ParentElement())
}

func TestCloneDropsListeners(t *testing.T) {
	doc := newDoc(t)
	el := doc.CreateElement("div")
	el.SetAttribute("class", "x")
	el.SetTextContent("hi")
	el.AddEventListener("click", NewListener(func(*Event) {}))

	clone := el.Clone(true)
	assert.NotSame(t, el, clone)
	assert.Equal(t, "x", clone.ClassName())
	assert.Equal(t, "hi", clone.TextContent())
	assert.False(t, clone.HasEventListeners("click"))

	shallow := el.Clone(false)
	assert.Equal(t, "", shallow.TextContent())
}

func TestInnerHTML(t *testing.T) {
	doc := newDoc(t)
	el := doc.CreateElement("div")
	require.NoError(t, el.SetInnerHTML(`<p class="a">one</p><p>two</p>`))
	assert.Len(t, el.Children(), 2)
	assert.Equal(t, `<p class="a">one</p><p>two</p>`, el.InnerHTML())
	assert.Equal(t, `<div><p class="a">one</p><p>two</p></div>`, el.OuterHTML())
}

func TestQuerySelectors(t *testing.T) {
	doc := newDoc(t)
	require.NoError(t, doc.Body().SetInnerHTML(
		`<section id="s"><p class="x">1</p><div><p class="x y">2</p></div></section><p>3</p>`))

	all, err := doc.QuerySelectorAll("p.x")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "1", all[0].TextContent())

	s := doc.GetElementByID("s")
	require.NotNil(t, s)
	inner, err := s.QuerySelectorAll("p")
	require.NoError(t, err)
	assert.Len(t, inner, 2)

	ok, err := all[1].Matches(".y")
	require.NoError(t, err)
	assert.True(t, ok)

	closest, err := all[1].Closest("section")
	require.NoError(t, err)
	assert.Same(t, s, closest)

	_, err = doc.QuerySelector("p[")
	assert.True(t, errors.Is(err, SyntaxError))

	none, err := doc.QuerySelector("article")
	assert.NoError(t, err)
	assert.Nil(t, none)
}

func TestHoverStateMatching(t *testing.T) {
	doc := newDoc(t)
	require.NoError(t, doc.Body().SetInnerHTML(`<div id="outer"><a id="link">x</a></div>`))
	link := doc.GetElementByID("link")

	ok, _ := link.Matches(":hover")
	assert.False(t, ok)

	doc.SetHover(link)
	ok, _ = link.Matches(":hover")
	assert.True(t, ok)
	ok, _ = doc.GetElementByID("outer").Matches(":hover")
	assert.True(t, ok)
	assert.False(t, link.HasAttribute("data-avita-state"))
}

func TestFocusEvents(t *testing.T) {
	doc := newDoc(t)
	a, b := doc.CreateElement("input"), doc.CreateElement("input")
	require.NoError(t, doc.Body().Append(a, b))

	var log []string
	a.AddEventListener("focus", NewListener(func(*Event) { log = append(log, "a:focus") }))
	a.AddEventListener("blur", NewListener(func(*Event) { log = append(log, "a:blur") }))
	b.AddEventListener("focus", NewListener(func(*Event) { log = append(log, "b:focus") }))

	a.Focus()
	b.Focus()
	assert.Equal(t, []string{"a:focus", "a:blur", "b:focus"}, log)
	assert.Same(t, b, doc.ActiveElement())

	ok, _ := b.Matches(":focus")
	assert.True(t, ok)
	b.Blur()
	assert.Same(t, doc.Body(), doc.ActiveElement())
}

func TestValue(t *testing.T) {
	doc := newDoc(t)
	input := doc.CreateElement("input")
	input.SetValue("abc")
	assert.Equal(t, "abc", input.Value())

	area := doc.CreateElement("textarea")
	area.SetValue("text")
	assert.Equal(t, "text", area.Value())

	sel := doc.CreateElement("select")
	require.NoError(t, sel.SetInnerHTML(`<option value="1">one</option><option>two</option>`))
	assert.Equal(t, "1", sel.Value())
	sel.SetValue("two")
	assert.Equal(t, "two", sel.Value())
}

func TestGeometryAndScroll(t *testing.T) {
	w := NewWindow(800, 600)
	doc := w.Document()
	box := doc.CreateElement("div")
	require.NoError(t, doc.Body().Append(box))
	box.SetGeometry(ElementGeometry{X: 10, Y: 500, Width: 100, Height: 50, ScrollHeight: 200})

	assert.Equal(t, 50.0, box.ClientHeight())
	assert.Equal(t, 200.0, box.ScrollHeight())

	w.ScrollTo(ScrollOptions{Top: 100})
	r := box.GetBoundingClientRect()
	assert.Equal(t, 400.0, r.Top())
	assert.Equal(t, 110.0, r.Right())

	scrolled := 0
	box.AddEventListener("scroll", NewListener(func(*Event) { scrolled++ }))
	box.ScrollTo(ScrollOptions{Top: 1000, Behavior: ScrollSmooth})
	assert.Equal(t, 150.0, box.ScrollTop())
	assert.Equal(t, ScrollSmooth, box.ScrollBehavior())
	box.SetScrollTop(-5)
	assert.Equal(t, 0.0, box.ScrollTop())
	assert.Equal(t, 2, scrolled)
}
