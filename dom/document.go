package dom

import (
	"strings"

	"github.com/chrisuehlinger/avita/css"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blankPage is the markup of a freshly opened window.
const blankPage = "<!DOCTYPE html><html><head></head><body></body></html>"

// Document is the root of a page. It owns the node wrappers, the dynamic
// element states used by :hover/:active/:focus and the buffer of generated
// style rules.
type Document struct {
	EventTarget

	root   *html.Node
	window *Window
	nodes  map[*html.Node]Node

	focused *Element
	hovered *Element
	active  *Element

	generated *StyleBuffer
	sheets    map[string]*css.Stylesheet
}

func newDocument(root *html.Node, w *Window) *Document {
	d := &Document{
		root:   root,
		window: w,
		nodes:  make(map[*html.Node]Node),
		sheets: make(map[string]*css.Stylesheet),
	}
	d.generated = &StyleBuffer{doc: d}
	d.ensureStructure()
	return d
}

// ensureStructure makes sure <html>, <head> and <body> exist so generated
// styles and rendered content always have a home.
func (d *Document) ensureStructure() {
	htmlEl := firstChildElement(d.root, atom.Html)
	if htmlEl == nil {
		htmlEl = &html.Node{Type: html.ElementNode, Data: "html", DataAtom: atom.Html}
		d.root.AppendChild(htmlEl)
	}
	head := firstChildElement(htmlEl, atom.Head)
	if head == nil {
		head = &html.Node{Type: html.ElementNode, Data: "head", DataAtom: atom.Head}
		htmlEl.InsertBefore(head, htmlEl.FirstChild)
	}
	if firstChildElement(htmlEl, atom.Body) == nil {
		htmlEl.AppendChild(&html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body})
	}
}

func firstChildElement(n *html.Node, a atom.Atom) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			return c
		}
	}
	return nil
}

// Node returns the underlying html tree of the document.
func (d *Document) Node() *html.Node { return d.root }

// DefaultView returns the window showing the document.
func (d *Document) DefaultView() *Window { return d.window }

// wrap returns the cached wrapper for n, creating it on first use.
func (d *Document) wrap(n *html.Node) Node {
	if n == nil {
		return nil
	}
	if w, ok := d.nodes[n]; ok {
		return w
	}
	var w Node
	switch n.Type {
	case html.ElementNode:
		w = &Element{node: n, doc: d}
	case html.TextNode:
		w = &Text{node: n, doc: d}
	case html.CommentNode:
		w = &Comment{node: n, doc: d}
	default:
		return nil
	}
	d.nodes[n] = w
	return w
}

// element wraps an element node; it returns nil for other node kinds.
func (d *Document) element(n *html.Node) *Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	return d.wrap(n).(*Element)
}

// ElementFor returns the element wrapping an element node of this document's
// tree, or nil.
func (d *Document) ElementFor(n *html.Node) *Element { return d.element(n) }

func (d *Document) parentElement(n *html.Node) *Element {
	return d.element(n.Parent)
}

func (d *Document) contains(n *html.Node) bool {
	return isInclusiveAncestor(d.root, n)
}

// adopt moves the wrappers of a subtree that belonged to another document
// into this one.
func (d *Document) adopt(from *Document, n *html.Node) {
	if from == nil || from == d {
		return
	}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if w, ok := from.nodes[n]; ok {
			delete(from.nodes, n)
			switch w := w.(type) {
			case *Element:
				w.doc = d
			case *Text:
				w.doc = d
			case *Comment:
				w.doc = d
			}
			d.nodes[n] = w
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
}

// DocumentElement returns the <html> element.
func (d *Document) DocumentElement() *Element {
	return d.element(firstChildElement(d.root, atom.Html))
}

// Head returns the <head> element.
func (d *Document) Head() *Element {
	return d.element(firstChildElement(d.DocumentElement().node, atom.Head))
}

// Body returns the <body> element.
func (d *Document) Body() *Element {
	return d.element(firstChildElement(d.DocumentElement().node, atom.Body))
}

// Title returns the text of the first <title> in <head>.
func (d *Document) Title() string {
	if t := firstChildElement(d.Head().node, atom.Title); t != nil {
		return strings.TrimSpace(textContent(t))
	}
	return ""
}

// SetTitle sets the document title, creating <title> when needed.
func (d *Document) SetTitle(title string) {
	head := d.Head()
	if t := firstChildElement(head.node, atom.Title); t != nil {
		d.element(t).SetTextContent(title)
		return
	}
	t := d.CreateElement("title")
	t.SetTextContent(title)
	head.AppendChild(t)
}

// CreateElement creates a detached element. The tag name is lower-cased but
// otherwise not checked against any element vocabulary.
func (d *Document) CreateElement(tagName string) *Element {
	tag := strings.ToLower(strings.TrimSpace(tagName))
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	return d.element(n)
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(data string) *Text {
	return d.wrap(&html.Node{Type: html.TextNode, Data: data}).(*Text)
}

// CreateComment creates a detached comment node.
func (d *Document) CreateComment(data string) *Comment {
	return d.wrap(&html.Node{Type: html.CommentNode, Data: data}).(*Comment)
}

// GetElementByID returns the first element with the given id, or nil.
func (d *Document) GetElementByID(id string) *Element {
	var found *html.Node
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && getAttr(c, "id") == id {
				found = c
				return true
			}
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(d.root)
	return d.element(found)
}

// QuerySelector returns the first element in the document matching the
// selector, or nil.
func (d *Document) QuerySelector(selector string) (*Element, error) {
	all, err := d.querySelectorAll(d.root, selector)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

// QuerySelectorAll returns every element matching the selector in document
// order.
func (d *Document) QuerySelectorAll(selector string) ([]*Element, error) {
	return d.querySelectorAll(d.root, selector)
}

func (d *Document) querySelectorAll(root *html.Node, selector string) ([]*Element, error) {
	group, err := css.CompileSelectorGroup(selector)
	if err != nil {
		return nil, ErrSyntax("'" + selector + "' is not a valid selector")
	}
	unmark := css.MarkStates(d.States())
	defer unmark()

	nodes := css.QueryAll(root, group)
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, d.element(n))
	}
	return out, nil
}

// ActiveElement returns the focused element, or <body> when nothing has focus.
func (d *Document) ActiveElement() *Element {
	if d.focused != nil && d.focused.IsConnected() {
		return d.focused
	}
	return d.Body()
}

// SetHover marks el (and, for matching purposes, its ancestors) as hovered.
// A nil element clears the hover state.
func (d *Document) SetHover(el *Element) { d.hovered = el }

// SetActive marks el as being activated (mouse down). Nil clears the state.
func (d *Document) SetActive(el *Element) { d.active = el }

// Hovered returns the hovered element, if any.
func (d *Document) Hovered() *Element { return d.hovered }

// focus moves focus to el, firing blur on the previous element and focus on
// the new one. Neither event bubbles.
func (d *Document) focus(el *Element) {
	if d.focused == el {
		return
	}
	prev := d.focused
	d.focused = el
	if prev != nil {
		prev.DispatchEvent(NewEvent("blur"))
	}
	if el != nil {
		el.DispatchEvent(NewEvent("focus"))
	}
}

// States returns the dynamic pseudo-class states of every affected node, in
// the shape css.MarkStates expects. Hover and active apply to the element
// and its ancestors; focus applies to the element, focus-within to it and
// its ancestors.
func (d *Document) States() map[*html.Node][]string {
	states := make(map[*html.Node][]string)
	addChain := func(el *Element, state string) {
		if el == nil {
			return
		}
		for n := el.node; n != nil && n.Type == html.ElementNode; n = n.Parent {
			states[n] = append(states[n], state)
		}
	}
	addChain(d.hovered, css.StateHover)
	addChain(d.active, css.StateActive)
	if d.focused != nil {
		states[d.focused.node] = append(states[d.focused.node], css.StateFocus, css.StateFocusVisible)
		addChain(d.focused, css.StateFocusWithin)
	}
	return states
}

// StyleElements returns the <style> elements of the document in tree order.
func (d *Document) StyleElements() []*Element {
	var out []*Element
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == atom.Style {
				out = append(out, d.element(c))
			}
			walk(c)
		}
	}
	walk(d.root)
	return out
}

// stylesheet parses the text of a <style> element, caching by content.
func (d *Document) stylesheet(text string) *css.Stylesheet {
	if s, ok := d.sheets[text]; ok {
		return s
	}
	s, err := css.ParseStylesheet(text)
	if err != nil {
		s = &css.Stylesheet{}
	}
	d.sheets[text] = s
	return s
}

// GeneratedStyles returns the append-only buffer of generated rules.
func (d *Document) GeneratedStyles() *StyleBuffer { return d.generated }

// Focus moves focus to el; nil clears it.
func (d *Document) Focus(el *Element) { d.focus(el) }

// Blur clears focus.
func (d *Document) Blur() { d.focus(nil) }
