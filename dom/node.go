package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Node is implemented by every node kind the page model exposes: *Element,
// *Text and *Comment. The same underlying node always yields the same Node
// value, so wrappers can be compared with ==.
type Node interface {
	NodeType() NodeType
	NodeName() string
	TextContent() string
	ParentElement() *Element
	OwnerDocument() *Document
	IsConnected() bool
	CloneNode(deep bool) Node

	raw() *html.Node
}

// Text is a text node.
type Text struct {
	node *html.Node
	doc  *Document
}

func (t *Text) raw() *html.Node { return t.node }

// NodeType returns TextNode.
func (t *Text) NodeType() NodeType { return TextNode }

// NodeName returns "#text".
func (t *Text) NodeName() string { return "#text" }

// Data returns the character data.
func (t *Text) Data() string { return t.node.Data }

// SetData replaces the character data.
func (t *Text) SetData(data string) { t.node.Data = data }

// TextContent returns the character data.
func (t *Text) TextContent() string { return t.node.Data }

// ParentElement returns the parent element or nil.
func (t *Text) ParentElement() *Element { return t.doc.parentElement(t.node) }

// OwnerDocument returns the document the node belongs to.
func (t *Text) OwnerDocument() *Document { return t.doc }

// IsConnected reports whether the node is inside its document.
func (t *Text) IsConnected() bool { return t.doc.contains(t.node) }

// CloneNode returns a copy of the text node.
func (t *Text) CloneNode(bool) Node { return t.doc.wrap(cloneTree(t.node, false)) }

// Remove detaches the text node from its parent.
func (t *Text) Remove() { detach(t.node) }

// Comment is a comment node.
type Comment struct {
	node *html.Node
	doc  *Document
}

func (c *Comment) raw() *html.Node { return c.node }

// NodeType returns CommentNode.
func (c *Comment) NodeType() NodeType { return CommentNode }

// NodeName returns "#comment".
func (c *Comment) NodeName() string { return "#comment" }

// Data returns the comment text.
func (c *Comment) Data() string { return c.node.Data }

// TextContent returns the comment text.
func (c *Comment) TextContent() string { return c.node.Data }

// ParentElement returns the parent element or nil.
func (c *Comment) ParentElement() *Element { return c.doc.parentElement(c.node) }

// OwnerDocument returns the document the node belongs to.
func (c *Comment) OwnerDocument() *Document { return c.doc }

// IsConnected reports whether the node is inside its document.
func (c *Comment) IsConnected() bool { return c.doc.contains(c.node) }

// CloneNode returns a copy of the comment.
func (c *Comment) CloneNode(bool) Node { return c.doc.wrap(cloneTree(c.node, false)) }

// detach removes n from its parent, if any.
func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// isInclusiveAncestor reports whether a is n or one of n's ancestors.
func isInclusiveAncestor(a, n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == a {
			return true
		}
	}
	return false
}

// cloneTree copies n, and its descendants when deep is set. Attributes are
// copied; nothing else (listeners, geometry) is.
func cloneTree(n *html.Node, deep bool) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		c.Attr = make([]html.Attribute, len(n.Attr))
		copy(c.Attr, n.Attr)
	}
	if deep {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			c.AppendChild(cloneTree(child, true))
		}
	}
	return c
}

// textContent concatenates the text descendants of n.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				sb.WriteString(c.Data)
			case html.ElementNode:
				walk(c)
			}
		}
	}
	walk(n)
	return sb.String()
}
