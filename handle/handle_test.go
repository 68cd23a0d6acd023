package handle

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/chrisuehlinger/avita/dom"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoc(t *testing.T) *dom.Document {
	t.Helper()
	doc := dom.NewWindow(1024, 768).Document()
	require.NoError(t, doc.Body().SetInnerHTML(`<div id="root"></div>`))
	return doc
}

func tagsOf(el *dom.Element) []string {
	var out []string
	for _, n := range el.ChildNodes() {
		switch n := n.(type) {
		case *dom.Element:
			out = append(out, n.LocalName())
		case *dom.Text:
			out = append(out, "#"+n.Data())
		}
	}
	return out
}

func TestWrapAll(t *testing.T) {
	doc := newDoc(t)
	els := []*dom.Element{doc.CreateElement("li"), doc.CreateElement("li"), doc.CreateElement("li")}

	h, err := WrapAll(els)
	require.NoError(t, err)
	assert.Same(t, els[0], h.Primary())
	require.Len(t, h.Collection(), 3)
	for i := range els {
		assert.Same(t, els[i], h.Collection()[i])
	}

	_, err = WrapAll(nil)
	assert.True(t, errors.Is(err, ErrEmptySelection))
	assert.Panics(t, func() { MustWrapAll([]*dom.Element{}) })
}

func TestWrapDoesNotCopy(t *testing.T) {
	doc := newDoc(t)
	el := doc.CreateElement("section")
	h := Wrap(el)
	assert.Same(t, el, h.Element())
	assert.Equal(t, 1, h.Len())
	assert.Nil(t, h.Collection())
}

func TestChildrenProjection(t *testing.T) {
	doc := newDoc(t)
	a, b := Span(doc), Button(doc)
	h := Div(doc, a, Text("text"), b)

	assert.Equal(t, []string{"span", "#text", "button"}, tagsOf(h.Element()))
	assert.Same(t, a.Element(), h.Element().Children()[0])
	children, ok := h.Children()
	assert.True(t, ok)
	assert.Len(t, children, 3)

	h.SetChildren(Text("only"))
	assert.Equal(t, []string{"#only"}, tagsOf(h.Element()))
	h.SetChildren(Text("only"))
	assert.Equal(t, []string{"#only"}, tagsOf(h.Element()))

	h.Empty()
	_, ok = h.Children()
	assert.False(t, ok)
	assert.False(t, h.Element().HasChildNodes())
}

func TestHeadIsNeverCleared(t *testing.T) {
	doc := newDoc(t)
	doc.GeneratedStyles().Append("p { color: red; }")
	head := Wrap(doc.Head())
	head.SetChildren(New(doc, "meta"))

	assert.Equal(t, []string{"style", "meta"}, tagsOf(doc.Head()))
}

func TestAppendFansOutClones(t *testing.T) {
	doc := newDoc(t)
	els := []*dom.Element{doc.CreateElement("ul"), doc.CreateElement("ul"), doc.CreateElement("ul")}
	h := MustWrapAll(els)

	item := Li(doc, Text("x"))
	h.Append(item)

	assert.Same(t, els[0], item.Element().ParentElement())
	for _, el := range els[1:] {
		require.Len(t, el.Children(), 1)
		clone := el.Children()[0]
		assert.NotSame(t, item.Element(), clone)
		assert.Equal(t, "x", clone.TextContent())
	}
	assert.NotSame(t, els[1].Children()[0], els[2].Children()[0])

	first := Li(doc, Text("first"))
	h.Prepend(first)
	assert.Equal(t, "firstx", els[0].TextContent())
	assert.Equal(t, "firstx", els[2].TextContent())
	assert.Same(t, els[0], first.Element().ParentElement())
}

func TestCyclicChildrenAreSkippedAndLogged(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()
	level := logrus.GetLevel()
	logrus.SetLevel(logrus.DebugLevel)
	defer logrus.SetLevel(level)

	doc := newDoc(t)
	outer := Div(doc)
	inner := Span(doc)
	outer.Append(inner)

	inner.Append(outer)
	assert.Equal(t, 0, inner.Element().ChildElementCount())
	outer.SetChildren(outer)
	assert.Equal(t, 0, outer.Element().ChildElementCount())

	var skipped int
	for _, e := range hook.AllEntries() {
		if e.Message == "child not inserted" {
			skipped++
		}
	}
	assert.Equal(t, 2, skipped)
}

func TestAttrAccessor(t *testing.T) {
	doc := newDoc(t)
	h := Div(doc)

	h.Attr().Set("foo", "bar")
	v, ok := h.Attr().Get("foo")
	assert.True(t, ok)
	assert.Equal(t, "bar", v)
	assert.Equal(t, "bar", h.Attr().All()["foo"])

	_, ok = h.Attr().Get("missing")
	assert.False(t, ok)

	res := h.Attr().Do(SetAll(Props{"title": "t", "role": "note"}))
	assert.Same(t, h, res.Handle)
	res = h.Attr().Do(GetOne("role"))
	assert.True(t, res.Found)
	assert.Equal(t, "note", res.Value)
	res = h.Attr().Do(GetAll())
	assert.Equal(t, map[string]string{"foo": "bar", "title": "t", "role": "note"}, res.Values)
}

func TestDataAccessor(t *testing.T) {
	doc := newDoc(t)
	els := []*dom.Element{doc.CreateElement("p"), doc.CreateElement("p")}
	h := MustWrapAll(els)

	h.Data().Set("userId", "42")
	assert.Equal(t, "42", els[1].GetAttribute("data-user-id"))
	v, ok := h.Data().Get("userId")
	assert.True(t, ok)
	assert.Equal(t, "42", v)
	assert.Equal(t, map[string]string{"userId": "42"}, h.Data().All())
}

func TestCSSAccessor(t *testing.T) {
	doc := newDoc(t)
	h := Div(doc)
	require.NoError(t, Render(h, "#root", false))

	h.CSS().Set("display", "flex")
	v, ok := h.CSS().Get("display")
	assert.True(t, ok)
	assert.Equal(t, "flex", v)

	before := h.Element().GetAttribute("style")
	assert.NotPanics(t, func() { h.CSS().Set("dispaly", "grid") })
	assert.Equal(t, before, h.Element().GetAttribute("style"))

	h.CSS().SetMany(Props{"backgroundColor": "red", "marginTop": "2px"})
	assert.Equal(t, "red", h.CSS().All()["background-color"])
	assert.Equal(t, "2px", h.Element().Style().GetPropertyValue("margin-top"))
}

func TestClasses(t *testing.T) {
	doc := newDoc(t)
	els := []*dom.Element{doc.CreateElement("p"), doc.CreateElement("p")}
	h := MustWrapAll(els)

	h.AddClass("x")
	assert.True(t, h.HasClass("x"))
	h.AddClass("x")
	assert.Equal(t, "x", h.Class())

	h.AddClass("a b")
	assert.Equal(t, "x a b", els[1].ClassName())

	h.RemoveClass("x")
	assert.False(t, h.HasClass("x"))

	h.ToggleClass("on")
	assert.True(t, els[1].ClassList().Contains("on"))
	h.ToggleClass("on", true)
	assert.True(t, h.HasClass("on"))
	h.ToggleClass("on")
	assert.False(t, h.HasClass("on"))
}

var hoverRule = regexp.MustCompile(`^\.(class-[0-9a-f-]{36}):hover \{ background-color: red !important; \}$`)

func TestScopedPseudoRules(t *testing.T) {
	doc := newDoc(t)
	h := Button(doc)

	h.Hover("backgroundColor", "red")
	h.Hover("backgroundColor", "red")

	rules := doc.GeneratedStyles().Rules()
	require.Len(t, rules, 2)
	var classes []string
	for _, r := range rules {
		m := hoverRule.FindStringSubmatch(r)
		require.NotNil(t, m, r)
		classes = append(classes, m[1])
		assert.True(t, h.HasClass(m[1]))
	}
	assert.NotEqual(t, classes[0], classes[1])

	styles := doc.Head().Children()
	require.Len(t, styles, 2)
	assert.Equal(t, rules[1], styles[1].TextContent())

	h.Active("color", "blue")
	h.Focus("outline", "none")
	rules = doc.GeneratedStyles().Rules()
	assert.Contains(t, rules[2], ":active { color: blue !important; }")
	assert.Contains(t, rules[3], ":focus { outline: none !important; }")
}

func TestScopedRulesSortProps(t *testing.T) {
	doc := newDoc(t)
	Div(doc).HoverAll(Props{"color": "red", "backgroundColor": "blue"})
	rule := doc.GeneratedStyles().Rules()[0]
	assert.True(t, strings.HasSuffix(rule, "{ background-color: blue !important; color: red !important; }"), rule)
}

func TestBreakpoints(t *testing.T) {
	doc := newDoc(t)
	h := Div(doc)
	h.SM("color", "red").MD("color", "red").LG("color", "red").XL("color", "red").XXL("color", "red")

	rules := doc.GeneratedStyles().Rules()
	require.Len(t, rules, 5)
	for i, px := range []string{"640", "768", "1024", "1280", "1536"} {
		assert.True(t, strings.HasPrefix(rules[i], "@media (min-width: "+px+"px) { .class-"), rules[i])
		assert.True(t, strings.HasSuffix(rules[i], " { color: red !important; } }"), rules[i])
	}

	h.Media("(max-width: 500px)", "display", "none")
	assert.True(t, strings.HasPrefix(doc.GeneratedStyles().Rules()[5], "@media (max-width: 500px) { .class-"))
}

func TestMediaQueryForms(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"min-width: 900px", "@media (min-width: 900px) { .class-"},
		{"(max-width: 500px)", "@media (max-width: 500px) { .class-"},
		{"screen and (min-width: 600px)", "@media screen and (min-width: 600px) { .class-"},
		{"(min-width: 1px) and (max-width: 2px)", "@media (min-width: 1px) and (max-width: 2px) { .class-"},
		{"print", "@media print { .class-"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			doc := newDoc(t)
			Div(doc).Media(tt.query, "color", "red")
			rule := doc.GeneratedStyles().Rules()[0]
			assert.True(t, strings.HasPrefix(rule, tt.want), rule)
		})
	}
}

func TestScopedRuleApplies(t *testing.T) {
	win := dom.NewWindow(1024, 768)
	doc := win.Document()
	require.NoError(t, doc.Body().SetInnerHTML(`<div id="root"></div>`))
	h := Button(doc)
	require.NoError(t, Render(h, "#root", false))

	h.Hover("color", "red").LG("display", "flex").XL("display", "grid")

	assert.Equal(t, "flex", win.GetComputedStyle(h.Element()).GetPropertyValue("display"))
	assert.NotEqual(t, "red", win.GetComputedStyle(h.Element()).GetPropertyValue("color"))
	doc.SetHover(h.Element())
	assert.Equal(t, "red", win.GetComputedStyle(h.Element()).GetPropertyValue("color"))
}

func TestEvents(t *testing.T) {
	doc := newDoc(t)
	els := []*dom.Element{doc.CreateElement("button"), doc.CreateElement("button")}
	h := MustWrapAll(els)

	var hits []*dom.Element
	l := dom.NewListener(func(ev *dom.Event) { hits = append(hits, ev.Target.(*dom.Element)) })
	h.On("onclick", l)
	h.Trigger("click")
	assert.Equal(t, els, hits)

	h.Off("click", l)
	h.Trigger("click")
	assert.Len(t, hits, 2)
}

func TestWindowDelegation(t *testing.T) {
	win := dom.NewWindow(800, 600)
	doc := win.Document()
	h := Div(doc)

	calls := 0
	l := dom.NewListener(func(*dom.Event) { calls++ })
	h.OnWindow("onscroll", l)
	assert.True(t, win.HasEventListeners("scroll"))
	assert.False(t, h.Element().HasEventListeners("scroll"))

	ScrollWindow(win, 0, 50, true)
	assert.Equal(t, 1, calls)
	assert.Equal(t, dom.ScrollSmooth, win.ScrollBehavior())

	h.OffWindow("scroll", l)
	assert.False(t, win.HasEventListeners("scroll"))

	h.OnWindow("click", l)
	assert.True(t, h.Element().HasEventListeners("click"))
}

func TestFind(t *testing.T) {
	doc := newDoc(t)
	require.NoError(t, doc.Body().SetInnerHTML(`<ul><li class="a">1</li><li>2</li></ul><p id="one">x</p>`))

	none, err := Find(doc, "article")
	require.NoError(t, err)
	assert.Nil(t, none)

	one, err := Find(doc, "#one")
	require.NoError(t, err)
	assert.Nil(t, one.Collection())
	assert.Equal(t, "x", one.Text())

	many, err := Find(doc, "li")
	require.NoError(t, err)
	assert.Equal(t, 2, many.Len())

	list, _ := Find(doc, "ul")
	inner, err := list.Find(".a")
	require.NoError(t, err)
	assert.Equal(t, "1", inner.Text())

	raw, err := FindElements(doc, "li")
	require.NoError(t, err)
	assert.Len(t, raw, 2)

	_, err = Find(doc, "li[")
	assert.True(t, errors.Is(err, dom.SyntaxError))
}

func TestRender(t *testing.T) {
	doc := newDoc(t)
	app := Div(doc, H1(doc, Text("Welcome")), Button(doc, Text("Go")))
	require.NoError(t, RenderRoot(app))

	root := doc.GetElementByID("root")
	require.Len(t, root.Children(), 1)
	child := root.Children()[0]
	assert.Equal(t, "div", child.LocalName())
	assert.Equal(t, []string{"h1", "button"}, tagsOf(child))

	found := false
	for _, s := range doc.Head().Children() {
		if strings.HasPrefix(s.TextContent(), "* { box-sizing: border-box;") {
			found = true
		}
	}
	assert.True(t, found)

	again := Div(doc, Text("second"))
	require.NoError(t, Render(again, "#root", false))
	assert.Equal(t, "second", root.TextContent())
}

func TestRenderMissingRoot(t *testing.T) {
	doc := dom.NewWindow(800, 600).Document()
	err := RenderRoot(Div(doc))
	assert.True(t, errors.Is(err, ErrRootNotFound))
}

func TestRemove(t *testing.T) {
	doc := newDoc(t)
	root := doc.GetElementByID("root")
	a, b := doc.CreateElement("p"), doc.CreateElement("p")
	require.NoError(t, root.Append(a, b))

	h := MustWrapAll([]*dom.Element{a, b})
	h.Remove()
	assert.False(t, root.HasChildNodes())
	assert.NotPanics(t, func() { h.AddClass("still-usable") })
	assert.True(t, h.HasClass("still-usable"))
}

func TestShowHideToggle(t *testing.T) {
	doc := newDoc(t)
	h := Div(doc).Display("flex")
	require.NoError(t, Render(h, "#root", false))

	h.Hide()
	assert.True(t, h.Hidden())
	h.Show()
	assert.Equal(t, "flex", h.Element().Style().GetPropertyValue("display"))
	h.Toggle()
	assert.True(t, h.Hidden())
	h.Toggle()
	assert.False(t, h.Hidden())
}

func TestTraversal(t *testing.T) {
	doc := newDoc(t)
	require.NoError(t, doc.Body().SetInnerHTML(`<nav class="menu"><a>1</a><a>2</a><a>3</a></nav>`))
	links, err := Find(doc, "a")
	require.NoError(t, err)

	assert.Equal(t, "3", links.Eq(-1).Text())
	assert.Nil(t, links.Eq(5))
	assert.True(t, links.Parent().Is(".menu"))

	nav, err := links.Eq(1).Closest("nav")
	require.NoError(t, err)
	assert.True(t, nav.HasClass("menu"))

	var texts []string
	links.Each(func(i int, el *Handle) { texts = append(texts, el.Text()) })
	assert.Equal(t, []string{"1", "2", "3"}, texts)

	clone := links.Eq(0).Clone()
	assert.NotSame(t, links.Element(), clone.Element())
	assert.Nil(t, clone.Element().ParentElement())
}

func TestContentHelpers(t *testing.T) {
	doc := newDoc(t)
	h := Div(doc, Text("a"))
	h.SetText("b")
	assert.Equal(t, "b", h.Text())
	_, ok := h.Children()
	assert.False(t, ok)

	require.NoError(t, h.SetHTML(`<em>c</em>`))
	assert.Equal(t, `<em>c</em>`, h.HTML())

	in := Input(doc).SetValue("v")
	assert.Equal(t, "v", in.Value())
}

func TestInteraction(t *testing.T) {
	doc := newDoc(t)
	btn := Button(doc)
	require.NoError(t, Render(btn, "#root", false))

	clicks := 0
	btn.OnClick(func(*dom.Event) { clicks++ })
	btn.Click()
	assert.Equal(t, 1, clicks)

	btn.SetFocus()
	assert.Same(t, btn.Element(), doc.ActiveElement())
	btn.Blur()
	assert.Same(t, doc.Body(), doc.ActiveElement())
}

func TestScrollHelpers(t *testing.T) {
	win := dom.NewWindow(800, 600)
	doc := win.Document()
	box := Div(doc)
	box.Element().SetGeometry(dom.ElementGeometry{X: 0, Y: 300, Width: 200, Height: 100, ScrollWidth: 400, ScrollHeight: 500})

	box.ScrollToBottom(false)
	assert.Equal(t, 400.0, box.Element().ScrollTop())
	assert.Equal(t, dom.ScrollInstant, box.Element().ScrollBehavior())
	box.ScrollToRight(true)
	assert.Equal(t, 200.0, box.Element().ScrollLeft())
	box.ScrollToTop(false).ScrollToLeft(false)
	assert.Equal(t, 0.0, box.Element().ScrollTop())
	assert.Equal(t, 0.0, box.Element().ScrollLeft())

	box.ScrollIntoView(true)
	assert.Equal(t, 300.0, win.ScrollY())
	assert.Equal(t, 0.0, box.Rect().Y)

	doc.Body().SetGeometry(dom.ElementGeometry{Width: 800, Height: 2000})
	ScrollWindowToBottom(win, false)
	assert.Equal(t, 1400.0, win.ScrollY())
	ScrollWindowToTop(win, false)
	assert.Equal(t, 0.0, win.ScrollY())
	assert.Equal(t, 800.0, WindowWidth(win))
	assert.Equal(t, 600.0, WindowHeight(win))
}

func TestTypedStyleSetters(t *testing.T) {
	doc := newDoc(t)
	h := Div(doc).Color("red").Padding("4px").FontSize("12px").BorderRadius("2px")
	style := h.Element().Style()
	assert.Equal(t, "red", style.GetPropertyValue("color"))
	assert.Equal(t, "4px", style.GetPropertyValue("padding"))
	assert.Equal(t, "12px", style.GetPropertyValue("font-size"))
	assert.Equal(t, "2px", style.GetPropertyValue("border-radius"))
}
