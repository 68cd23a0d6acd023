package dom

import (
	"regexp"
	"sort"
	"strings"

	"github.com/chrisuehlinger/avita/css"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is an element node of a Document.
type Element struct {
	EventTarget

	node *html.Node
	doc  *Document

	// Layout geometry, supplied by whoever lays the page out.
	geometry *ElementGeometry
	scroll   scrollState
}

func (e *Element) raw() *html.Node { return e.node }

// Node returns the underlying html node.
func (e *Element) Node() *html.Node { return e.node }

// NodeType returns ElementNode.
func (e *Element) NodeType() NodeType { return ElementNode }

// NodeName returns the upper-cased tag name.
func (e *Element) NodeName() string { return e.TagName() }

// TagName returns the upper-cased tag name, as HTML documents report it.
func (e *Element) TagName() string { return strings.ToUpper(e.node.Data) }

// LocalName returns the lower-case tag name.
func (e *Element) LocalName() string { return e.node.Data }

// Is reports whether the element has the given tag name (case-insensitive).
func (e *Element) Is(tag string) bool { return strings.EqualFold(e.node.Data, tag) }

// OwnerDocument returns the document the element belongs to.
func (e *Element) OwnerDocument() *Document { return e.doc }

// ParentElement returns the parent element, or nil when detached or when
// the parent is the document itself.
func (e *Element) ParentElement() *Element { return e.doc.parentElement(e.node) }

// IsConnected reports whether the element is inside its document.
func (e *Element) IsConnected() bool { return e.doc.contains(e.node) }

// Id returns the id attribute.
func (e *Element) Id() string { return e.GetAttribute("id") }

// SetId sets the id attribute.
func (e *Element) SetId(id string) { e.SetAttribute("id", id) }

// ClassName returns the class attribute.
func (e *Element) ClassName() string { return e.GetAttribute("class") }

// SetClassName sets the class attribute.
func (e *Element) SetClassName(className string) { e.SetAttribute("class", className) }

// ClassList returns the live token list over the class attribute.
func (e *Element) ClassList() *DOMTokenList { return &DOMTokenList{element: e, attrName: "class"} }

// Dataset returns the live data-* attribute map.
func (e *Element) Dataset() *DOMStringMap { return &DOMStringMap{element: e} }

// Style returns the inline style declaration.
func (e *Element) Style() *CSSStyleDeclaration { return &CSSStyleDeclaration{element: e} }

// Attributes

func getAttr(n *html.Node, name string) string {
	v, _ := lookupAttr(n, name)
	return v
}

func lookupAttr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

var attrNamePattern = regexp.MustCompile(`^[^\s"'>/=\x00-\x1f]+$`)

// GetAttribute returns the attribute value, or "" when it is absent.
func (e *Element) GetAttribute(name string) string {
	return getAttr(e.node, strings.ToLower(name))
}

// Attribute returns the attribute value and whether it is present.
func (e *Element) Attribute(name string) (string, bool) {
	return lookupAttr(e.node, strings.ToLower(name))
}

// HasAttribute reports whether the attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.Attribute(name)
	return ok
}

// SetAttribute sets an attribute, ignoring invalid names. Use
// SetAttributeWithError to learn about them.
func (e *Element) SetAttribute(name, value string) {
	_ = e.SetAttributeWithError(name, value)
}

// SetAttributeWithError sets an attribute. An invalid attribute name yields
// an InvalidCharacterError.
func (e *Element) SetAttributeWithError(name, value string) error {
	if !attrNamePattern.MatchString(name) {
		return ErrInvalidCharacter("'" + name + "' is not a valid attribute name")
	}
	name = strings.ToLower(name)
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			e.node.Attr[i].Val = value
			return nil
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
	return nil
}

// RemoveAttribute removes an attribute if present.
func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			e.node.Attr = append(e.node.Attr[:i], e.node.Attr[i+1:]...)
			return
		}
	}
}

// ToggleAttribute adds a boolean attribute when absent and removes it when
// present. With force the result is fixed. It reports presence afterwards.
func (e *Element) ToggleAttribute(name string, force ...bool) bool {
	has := e.HasAttribute(name)
	want := !has
	if len(force) > 0 {
		want = force[0]
	}
	switch {
	case want && !has:
		e.SetAttribute(name, "")
	case !want && has:
		e.RemoveAttribute(name)
	}
	return want
}

// Attributes returns a snapshot of all attributes.
func (e *Element) Attributes() map[string]string {
	out := make(map[string]string, len(e.node.Attr))
	for _, a := range e.node.Attr {
		out[a.Key] = a.Val
	}
	return out
}

// AttributeNames returns the attribute names in source order.
func (e *Element) AttributeNames() []string {
	out := make([]string, 0, len(e.node.Attr))
	for _, a := range e.node.Attr {
		out = append(out, a.Key)
	}
	return out
}

// Children

// ChildNodes returns every child node.
func (e *Element) ChildNodes() []Node {
	var out []Node
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if w := e.doc.wrap(c); w != nil {
			out = append(out, w)
		}
	}
	return out
}

// Children returns the element children.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, e.doc.element(c))
		}
	}
	return out
}

// ChildElementCount returns the number of element children.
func (e *Element) ChildElementCount() int { return len(e.Children()) }

// FirstChild returns the first child node or nil.
func (e *Element) FirstChild() Node { return e.doc.wrap(e.node.FirstChild) }

// LastChild returns the last child node or nil.
func (e *Element) LastChild() Node { return e.doc.wrap(e.node.LastChild) }

// HasChildNodes reports whether the element has any children.
func (e *Element) HasChildNodes() bool { return e.node.FirstChild != nil }

// NextElementSibling returns the next sibling element or nil.
func (e *Element) NextElementSibling() *Element {
	for s := e.node.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return e.doc.element(s)
		}
	}
	return nil
}

// PreviousElementSibling returns the previous sibling element or nil.
func (e *Element) PreviousElementSibling() *Element {
	for s := e.node.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return e.doc.element(s)
		}
	}
	return nil
}

func (e *Element) validateInsertion(child Node) error {
	if child == nil {
		return ErrHierarchyRequest("cannot insert a nil node")
	}
	if isInclusiveAncestor(child.raw(), e.node) {
		return ErrHierarchyRequest("the new child is an ancestor of the parent")
	}
	return nil
}

// AppendChild appends child, moving it from its current position.
func (e *Element) AppendChild(child Node) (Node, error) {
	return e.InsertBefore(child, nil)
}

// InsertBefore inserts child before ref; a nil ref appends.
func (e *Element) InsertBefore(child, ref Node) (Node, error) {
	if err := e.validateInsertion(child); err != nil {
		return nil, err
	}
	var refNode *html.Node
	if ref != nil {
		refNode = ref.raw()
		if refNode.Parent != e.node {
			return nil, ErrNotFound("the reference node is not a child of this element")
		}
		if refNode == child.raw() {
			return child, nil
		}
	}
	n := child.raw()
	detach(n)
	e.doc.adopt(child.OwnerDocument(), n)
	e.node.InsertBefore(n, refNode)
	return child, nil
}

// RemoveChild removes child from this element.
func (e *Element) RemoveChild(child Node) (Node, error) {
	if child == nil || child.raw().Parent != e.node {
		return nil, ErrNotFound("the node to be removed is not a child of this element")
	}
	e.node.RemoveChild(child.raw())
	return child, nil
}

// Append appends nodes in order.
func (e *Element) Append(nodes ...Node) error {
	for _, n := range nodes {
		if _, err := e.AppendChild(n); err != nil {
			return err
		}
	}
	return nil
}

// Prepend inserts nodes, in order, before the first child.
func (e *Element) Prepend(nodes ...Node) error {
	first := e.FirstChild()
	for _, n := range nodes {
		if _, err := e.InsertBefore(n, first); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceChildren removes every child and appends nodes.
func (e *Element) ReplaceChildren(nodes ...Node) error {
	for _, n := range nodes {
		if err := e.validateInsertion(n); err != nil {
			return err
		}
	}
	e.RemoveAllChildren()
	return e.Append(nodes...)
}

// RemoveAllChildren detaches every child node.
func (e *Element) RemoveAllChildren() {
	for c := e.node.FirstChild; c != nil; c = e.node.FirstChild {
		e.node.RemoveChild(c)
	}
}

// Remove detaches the element from its parent.
func (e *Element) Remove() {
	if e.doc.focused == e {
		e.doc.focused = nil
	}
	detach(e.node)
}

// CloneNode returns a copy of the element. Listeners and geometry are not
// copied.
func (e *Element) CloneNode(deep bool) Node { return e.Clone(deep) }

// Clone is CloneNode with a typed result.
func (e *Element) Clone(deep bool) *Element {
	return e.doc.element(cloneTree(e.node, deep))
}

// Contains reports whether other is this element or a descendant.
func (e *Element) Contains(other Node) bool {
	return other != nil && isInclusiveAncestor(e.node, other.raw())
}

// Text and markup

// TextContent returns the concatenated text of all descendants.
func (e *Element) TextContent() string { return textContent(e.node) }

// SetTextContent replaces all children with a single text node.
func (e *Element) SetTextContent(text string) {
	e.RemoveAllChildren()
	if text != "" {
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// InnerHTML serializes the children of the element.
func (e *Element) InnerHTML() string {
	var sb strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&sb, c)
	}
	return sb.String()
}

// OuterHTML serializes the element itself.
func (e *Element) OuterHTML() string {
	var sb strings.Builder
	_ = html.Render(&sb, e.node)
	return sb.String()
}

// SetInnerHTML parses markup in the context of this element and replaces
// the children with the result.
func (e *Element) SetInnerHTML(markup string) error {
	ctx := &html.Node{Type: html.ElementNode, Data: e.node.Data, DataAtom: e.node.DataAtom}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return ErrSyntax(err.Error())
	}
	e.RemoveAllChildren()
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
	return nil
}

// Value returns the current value of a form control: the text of a
// <textarea>, the selected option of a <select>, or the value attribute.
func (e *Element) Value() string {
	switch e.node.DataAtom {
	case atom.Textarea:
		return e.TextContent()
	case atom.Select:
		for _, opt := range e.queryTag(atom.Option) {
			if opt.HasAttribute("selected") {
				return opt.optionValue()
			}
		}
		if opts := e.queryTag(atom.Option); len(opts) > 0 {
			return opts[0].optionValue()
		}
		return ""
	}
	return e.GetAttribute("value")
}

// SetValue sets the value of a form control.
func (e *Element) SetValue(v string) {
	switch e.node.DataAtom {
	case atom.Textarea:
		e.SetTextContent(v)
	case atom.Select:
		for _, opt := range e.queryTag(atom.Option) {
			opt.ToggleAttribute("selected", opt.optionValue() == v)
		}
	default:
		e.SetAttribute("value", v)
	}
}

func (e *Element) optionValue() string {
	if v, ok := e.Attribute("value"); ok {
		return v
	}
	return strings.TrimSpace(e.TextContent())
}

func (e *Element) queryTag(a atom.Atom) []*Element {
	var out []*Element
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == a {
				out = append(out, e.doc.element(c))
			}
			walk(c)
		}
	}
	walk(e.node)
	return out
}

// Selectors

// QuerySelector returns the first descendant matching selector, or nil.
func (e *Element) QuerySelector(selector string) (*Element, error) {
	all, err := e.doc.querySelectorAll(e.node, selector)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

// QuerySelectorAll returns all descendants matching selector.
func (e *Element) QuerySelectorAll(selector string) ([]*Element, error) {
	return e.doc.querySelectorAll(e.node, selector)
}

// Matches reports whether the element matches selector.
func (e *Element) Matches(selector string) (bool, error) {
	group, err := css.CompileSelectorGroup(selector)
	if err != nil {
		return false, ErrSyntax("'" + selector + "' is not a valid selector")
	}
	unmark := css.MarkStates(e.doc.States())
	defer unmark()
	return css.MatchAny(group, e.node), nil
}

// Closest returns the nearest inclusive ancestor matching selector.
func (e *Element) Closest(selector string) (*Element, error) {
	group, err := css.CompileSelectorGroup(selector)
	if err != nil {
		return nil, ErrSyntax("'" + selector + "' is not a valid selector")
	}
	unmark := css.MarkStates(e.doc.States())
	defer unmark()
	for n := e.node; n != nil && n.Type == html.ElementNode; n = n.Parent {
		if css.MatchAny(group, n) {
			return e.doc.element(n), nil
		}
	}
	return nil, nil
}

// Interaction

// Focus gives the element focus.
func (e *Element) Focus() { e.doc.focus(e) }

// Blur removes focus from the element if it has it.
func (e *Element) Blur() {
	if e.doc.focused == e {
		e.doc.focus(nil)
	}
}

// Click dispatches a bubbling, cancelable click event.
func (e *Element) Click() bool {
	ev := NewEvent("click")
	ev.Bubbles = true
	ev.Cancelable = true
	return e.DispatchEvent(ev)
}

// DispatchEvent dispatches ev at the element. Bubbling events then travel
// through the ancestors, the document and the window. It returns false
// when a listener cancelled the event.
func (e *Element) DispatchEvent(ev *Event) bool {
	path := []Target{e}
	if ev.Bubbles {
		for p := e.ParentElement(); p != nil; p = p.ParentElement() {
			path = append(path, p)
		}
		if e.IsConnected() {
			path = append(path, e.doc)
			if e.doc.window != nil {
				path = append(path, e.doc.window)
			}
		}
	}
	return dispatch(ev, e, path)
}

// SortedAttributeNames returns the attribute names sorted, which is handy
// for stable output.
func (e *Element) SortedAttributeNames() []string {
	names := e.AttributeNames()
	sort.Strings(names)
	return names
}
