// Package handle wraps one element or a collection of elements of a
// dom.Document behind a chainable API: declared children, attribute, data
// and style accessors, classes, events, scoped pseudo-class and media
// rules, scrolling and rendering.
package handle

import (
	"github.com/chrisuehlinger/avita/dom"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html/atom"
)

// ErrEmptySelection is returned when a handle is built from no elements.
var ErrEmptySelection = errors.New("handle: cannot wrap an empty element list")

// Child is a declared child of a handle: a Text or another *Handle.
type Child interface {
	isChild()
}

// Text is literal text content, projected as a text node.
type Text string

func (Text) isChild() {}

func (*Handle) isChild() {}

// Handle wraps a primary element and, when built from a query with several
// matches, the whole collection. Writes fan out to every element; reads
// look at the primary element only.
type Handle struct {
	primary    *dom.Element
	collection []*dom.Element
	declared   []Child

	// display remembers the inline display value Hide replaced.
	display *string
}

// New creates an element of tag in doc and wraps it. The tag is not checked
// against any vocabulary.
func New(doc *dom.Document, tag string, children ...Child) *Handle {
	return Wrap(doc.CreateElement(tag), children...)
}

// Wrap wraps an existing element without copying it.
func Wrap(el *dom.Element, children ...Child) *Handle {
	h := &Handle{primary: el}
	if len(children) > 0 {
		h.SetChildren(children...)
	}
	return h
}

// WrapAll wraps a non-empty list of elements. The first element becomes the
// primary one.
func WrapAll(els []*dom.Element, children ...Child) (*Handle, error) {
	if len(els) == 0 {
		return nil, ErrEmptySelection
	}
	h := &Handle{primary: els[0], collection: append([]*dom.Element(nil), els...)}
	if len(children) > 0 {
		h.SetChildren(children...)
	}
	return h, nil
}

// MustWrapAll is WrapAll that panics on an empty list.
func MustWrapAll(els []*dom.Element, children ...Child) *Handle {
	h, err := WrapAll(els, children...)
	if err != nil {
		panic(err)
	}
	return h
}

// Element returns the primary element.
func (h *Handle) Element() *dom.Element { return h.primary }

// Primary is an alias of Element.
func (h *Handle) Primary() *dom.Element { return h.primary }

// Collection returns the wrapped collection, or nil for a single-element
// handle.
func (h *Handle) Collection() []*dom.Element { return h.collection }

// Elements returns every selected element: the collection, or just the
// primary element.
func (h *Handle) Elements() []*dom.Element {
	if len(h.collection) > 0 {
		return h.collection
	}
	return []*dom.Element{h.primary}
}

// Len returns the number of selected elements.
func (h *Handle) Len() int { return len(h.Elements()) }

// Document returns the document of the primary element.
func (h *Handle) Document() *dom.Document { return h.primary.OwnerDocument() }

func (h *Handle) each(fn func(*dom.Element)) *Handle {
	for _, el := range h.Elements() {
		fn(el)
	}
	return h
}

// secondary returns the collection without the primary element.
func (h *Handle) secondary() []*dom.Element {
	if len(h.collection) < 2 {
		return nil
	}
	return h.collection[1:]
}

// SetChildren replaces the declared children and projects them into the
// primary element.
func (h *Handle) SetChildren(children ...Child) *Handle {
	h.declared = append([]Child(nil), children...)
	h.project()
	return h
}

// Empty clears the declared children and the element content.
func (h *Handle) Empty() *Handle { return h.SetChildren() }

// Children returns the declared children; false when there are none.
func (h *Handle) Children() ([]Child, bool) {
	if len(h.declared) == 0 {
		return nil, false
	}
	return h.declared, true
}

// project replaces the content of the primary element with the declared
// children. The content of <head> is never cleared.
func (h *Handle) project() {
	el := h.primary
	if el.Node().DataAtom != atom.Head {
		el.RemoveAllChildren()
	}
	for _, n := range h.nodes(h.declared) {
		insert(el, n, nil)
	}
}

// insert places n before ref, or last when ref is nil. A child that cannot
// go there, such as an ancestor of el, is skipped and logged.
func insert(el *dom.Element, n, ref dom.Node) {
	var err error
	if ref == nil {
		_, err = el.AppendChild(n)
	} else {
		_, err = el.InsertBefore(n, ref)
	}
	if err != nil {
		logrus.WithField("parent", el.LocalName()).WithError(err).Debug("child not inserted")
	}
}

func (h *Handle) nodes(children []Child) []dom.Node {
	doc := h.Document()
	out := make([]dom.Node, 0, len(children))
	for _, c := range children {
		switch c := c.(type) {
		case Text:
			out = append(out, doc.CreateTextNode(string(c)))
		case *Handle:
			if c != nil {
				out = append(out, c.primary)
			}
		}
	}
	return out
}

// Append appends children to the live content of the primary element.
// Every other element of the collection gets its own deep copy.
func (h *Handle) Append(children ...Child) *Handle {
	for _, n := range h.nodes(children) {
		for _, el := range h.secondary() {
			insert(el, n.CloneNode(true), nil)
		}
		insert(h.primary, n, nil)
	}
	return h
}

// Prepend inserts children, in order, before the current first child of
// the primary element. Every other element of the collection gets its own
// deep copy.
func (h *Handle) Prepend(children ...Child) *Handle {
	nodes := h.nodes(children)
	for _, el := range h.secondary() {
		first := el.FirstChild()
		for _, n := range nodes {
			insert(el, n.CloneNode(true), first)
		}
	}
	first := h.primary.FirstChild()
	for _, n := range nodes {
		insert(h.primary, n, first)
	}
	return h
}

// Remove detaches the primary element and the whole collection. The handle
// stays usable.
func (h *Handle) Remove() *Handle {
	h.primary.Remove()
	for _, el := range h.collection {
		el.Remove()
	}
	return h
}
