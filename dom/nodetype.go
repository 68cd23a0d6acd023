// Package dom is a headless model of the browser page: documents, elements,
// text nodes, styles, events, the window and its history. Nodes are stored
// as golang.org/x/net/html trees so that pages can be parsed, queried with
// CSS selectors and serialized without a browser.
package dom

import "golang.org/x/net/html"

// NodeType represents the type of a Node as defined by the DOM standard.
type NodeType uint16

const (
	ElementNode  NodeType = 1
	TextNode     NodeType = 3
	CommentNode  NodeType = 8
	DocumentNode NodeType = 9
)

// String returns the string representation of the NodeType.
func (nt NodeType) String() string {
	switch nt {
	case ElementNode:
		return "ELEMENT_NODE"
	case TextNode:
		return "TEXT_NODE"
	case CommentNode:
		return "COMMENT_NODE"
	case DocumentNode:
		return "DOCUMENT_NODE"
	default:
		return "UNKNOWN_NODE"
	}
}

func nodeTypeOf(n *html.Node) NodeType {
	switch n.Type {
	case html.ElementNode:
		return ElementNode
	case html.TextNode:
		return TextNode
	case html.CommentNode:
		return CommentNode
	case html.DocumentNode:
		return DocumentNode
	}
	return 0
}
