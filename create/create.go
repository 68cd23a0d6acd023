// Package create builds elements from option maps. It is the low-level
// counterpart of the handle package.
package create

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chrisuehlinger/avita/dom"
	"github.com/pkg/errors"
)

// ErrUnknownEventHandler is returned for on* keys that do not name an event
// handler.
var ErrUnknownEventHandler = errors.New("create: unknown event handler")

// Props are the options of an element.
//
//	class, className  string or []string
//	id, text, html    string
//	style             string or map[string]string
//	data              map[string]string
//	on<event>         func(*dom.Event)
//
// Any other key is set as an attribute with its value formatted by fmt.
type Props map[string]any

// elementer is satisfied by *handle.Handle.
type elementer interface {
	Element() *dom.Element
}

// Element creates tag in doc, applies props and appends children. A child
// is a string, a dom.Node or anything with an Element() *dom.Element
// method.
func Element(doc *dom.Document, tag string, props Props, children ...any) (*dom.Element, error) {
	el := doc.CreateElement(tag)
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := apply(el, k, props[k]); err != nil {
			return nil, errors.Wrapf(err, "create <%s>", tag)
		}
	}
	for _, c := range children {
		if err := appendChild(doc, el, c); err != nil {
			return nil, errors.Wrapf(err, "create <%s>", tag)
		}
	}
	return el, nil
}

// MustElement is Element that panics on error.
func MustElement(doc *dom.Document, tag string, props Props, children ...any) *dom.Element {
	el, err := Element(doc, tag, props, children...)
	if err != nil {
		panic(err)
	}
	return el
}

func apply(el *dom.Element, key string, value any) error {
	switch {
	case key == "class" || key == "className":
		switch v := value.(type) {
		case string:
			return el.ClassList().Add(strings.Fields(v)...)
		case []string:
			return el.ClassList().Add(v...)
		}
		return errors.Errorf("%s must be a string or []string, got %T", key, value)
	case key == "id":
		el.SetId(fmt.Sprint(value))
	case key == "text":
		el.SetTextContent(fmt.Sprint(value))
	case key == "html":
		return el.SetInnerHTML(fmt.Sprint(value))
	case key == "style":
		switch v := value.(type) {
		case string:
			el.Style().SetCSSText(v)
		case map[string]string:
			names := make([]string, 0, len(v))
			for n := range v {
				names = append(names, n)
			}
			sort.Strings(names)
			for _, n := range names {
				el.Style().SetProperty(n, v[n])
			}
		default:
			return errors.Errorf("style must be a string or map[string]string, got %T", value)
		}
	case key == "data":
		v, ok := value.(map[string]string)
		if !ok {
			return errors.Errorf("data must be a map[string]string, got %T", value)
		}
		for k, val := range v {
			if err := el.Dataset().Set(k, val); err != nil {
				return err
			}
		}
	case strings.HasPrefix(strings.ToLower(key), "on"):
		if !dom.IsEventHandlerName(key) {
			return errors.Wrap(ErrUnknownEventHandler, key)
		}
		fn, ok := value.(func(*dom.Event))
		if !ok {
			return errors.Errorf("%s must be a func(*dom.Event), got %T", key, value)
		}
		el.AddEventListener(dom.NormalizeEventType(key), dom.NewListener(fn))
	default:
		return el.SetAttributeWithError(key, fmt.Sprint(value))
	}
	return nil
}

func appendChild(doc *dom.Document, el *dom.Element, c any) error {
	var n dom.Node
	switch c := c.(type) {
	case nil:
		return nil
	case string:
		n = doc.CreateTextNode(c)
	case dom.Node:
		n = c
	case elementer:
		n = c.Element()
	default:
		return errors.Errorf("unsupported child %T", c)
	}
	_, err := el.AppendChild(n)
	return err
}

// Div creates a <div>.
func Div(doc *dom.Document, props Props, children ...any) (*dom.Element, error) {
	return Element(doc, "div", props, children...)
}

// Span creates a <span>.
func Span(doc *dom.Document, props Props, children ...any) (*dom.Element, error) {
	return Element(doc, "span", props, children...)
}

// Button creates a <button>.
func Button(doc *dom.Document, props Props, children ...any) (*dom.Element, error) {
	return Element(doc, "button", props, children...)
}

// Input creates an <input>.
func Input(doc *dom.Document, props Props) (*dom.Element, error) {
	return Element(doc, "input", props)
}
