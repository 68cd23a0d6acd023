package create

import (
	"errors"
	"testing"

	"github.com/chrisuehlinger/avita/dom"
	"github.com/chrisuehlinger/avita/handle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoc() *dom.Document { return dom.NewWindow(800, 600).Document() }

func TestElementProps(t *testing.T) {
	doc := newDoc()
	clicks := 0
	el, err := Div(doc, Props{
		"class":      "card wide",
		"id":         "main",
		"style":      map[string]string{"marginTop": "4px", "color": "red"},
		"data":       map[string]string{"userId": "7"},
		"onClick":    func(*dom.Event) { clicks++ },
		"aria-label": "Main card",
		"tabindex":   0,
	}, "hello", handle.Span(doc, handle.Text("!")))
	require.NoError(t, err)

	assert.Equal(t, "card wide", el.ClassName())
	assert.Equal(t, "main", el.Id())
	assert.Equal(t, "4px", el.Style().GetPropertyValue("margin-top"))
	assert.Equal(t, "7", el.GetAttribute("data-user-id"))
	assert.Equal(t, "Main card", el.GetAttribute("aria-label"))
	assert.Equal(t, "0", el.GetAttribute("tabindex"))
	assert.Equal(t, "hello!", el.TextContent())

	el.Click()
	assert.Equal(t, 1, clicks)
}

func TestTextAndHTML(t *testing.T) {
	doc := newDoc()
	el, err := Element(doc, "p", Props{"text": "a < b"})
	require.NoError(t, err)
	assert.Equal(t, "a < b", el.TextContent())

	el, err = Element(doc, "div", Props{"html": "<b>x</b>", "className": []string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, "<b>x</b>", el.InnerHTML())
	assert.Equal(t, "a b", el.ClassName())
}

func TestUnknownEventHandler(t *testing.T) {
	doc := newDoc()
	_, err := Button(doc, Props{"onFrobnicate": func(*dom.Event) {}})
	assert.True(t, errors.Is(err, ErrUnknownEventHandler))

	_, err = Button(doc, Props{"onclick": "alert(1)"})
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnknownEventHandler))
}

func TestBadValues(t *testing.T) {
	doc := newDoc()
	_, err := Div(doc, Props{"style": 3})
	assert.Error(t, err)
	_, err = Div(doc, Props{"data": "x"})
	assert.Error(t, err)
	_, err = Div(doc, nil, 42)
	assert.Error(t, err)
	assert.Panics(t, func() { MustElement(doc, "div", Props{"class": 1}) })
}

func TestInputAndNodes(t *testing.T) {
	doc := newDoc()
	in, err := Input(doc, Props{"type": "text", "value": "v"})
	require.NoError(t, err)
	assert.Equal(t, "v", in.Value())

	label, err := Element(doc, "label", nil, doc.CreateTextNode("Name"), in)
	require.NoError(t, err)
	assert.Len(t, label.ChildNodes(), 2)
	assert.Same(t, label, in.ParentElement())
}
