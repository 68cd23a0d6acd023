package css

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// StateAttr is the transient attribute carrying dynamic element states
// (hover, active, focus) while selectors are matched. Selectors using
// :hover, :active and the :focus family are rewritten to test it.
const StateAttr = "data-avita-state"

// Dynamic states understood by the selector rewriter.
const (
	StateHover        = "hover"
	StateActive       = "active"
	StateFocus        = "focus"
	StateFocusVisible = "focus-visible"
	StateFocusWithin  = "focus-within"
)

var dynamicPseudoClasses = map[string]bool{
	StateHover:        true,
	StateActive:       true,
	StateFocus:        true,
	StateFocusVisible: true,
	StateFocusWithin:  true,
}

// Selector is a single compiled complex selector.
type Selector struct {
	text string
	sel  cascadia.Sel
}

// CompileSelector compiles one complex selector (no commas).
func CompileSelector(text string) (*Selector, error) {
	sel, err := cascadia.ParseWithPseudoElement(rewriteDynamicPseudoClasses(text))
	if err != nil {
		return nil, err
	}
	return &Selector{text: text, sel: sel}, nil
}

// CompileSelectorGroup compiles a comma separated selector list.
func CompileSelectorGroup(text string) ([]*Selector, error) {
	group, err := cascadia.ParseGroupWithPseudoElements(rewriteDynamicPseudoClasses(text))
	if err != nil {
		return nil, err
	}
	out := make([]*Selector, 0, len(group))
	for _, sel := range group {
		out = append(out, &Selector{text: sel.String(), sel: sel})
	}
	return out, nil
}

// String returns the selector as written.
func (s *Selector) String() string { return s.text }

// Specificity returns the selector's (id, class, type) specificity.
func (s *Selector) Specificity() cascadia.Specificity { return s.sel.Specificity() }

// Match reports whether the element node matches. Selectors targeting a
// pseudo-element never match an element.
func (s *Selector) Match(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode || s.sel.PseudoElement() != "" {
		return false
	}
	return s.sel.Match(n)
}

// MatchAny reports whether any selector of the group matches n.
func MatchAny(group []*Selector, n *html.Node) bool {
	for _, s := range group {
		if s.Match(n) {
			return true
		}
	}
	return false
}

// QueryAll returns the descendants of root matching any selector of the
// group, in document order.
func QueryAll(root *html.Node, group []*Selector) []*html.Node {
	var out []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && MatchAny(group, c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(root)
	return out
}

// MarkStates stamps dynamic states onto nodes so rewritten selectors can see
// them. The returned function restores the previous attributes.
func MarkStates(states map[*html.Node][]string) (unmark func()) {
	marked := make([]*html.Node, 0, len(states))
	for n, st := range states {
		if n == nil || len(st) == 0 {
			continue
		}
		n.Attr = append(n.Attr, html.Attribute{Key: StateAttr, Val: strings.Join(st, " ")})
		marked = append(marked, n)
	}
	return func() {
		for _, n := range marked {
			for i := len(n.Attr) - 1; i >= 0; i-- {
				if n.Attr[i].Key == StateAttr {
					n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
					break
				}
			}
		}
	}
}

// rewriteDynamicPseudoClasses turns ":hover" into `[data-avita-state~="hover"]`
// and likewise for the other dynamic states. Pseudo-elements, quoted strings
// and the arguments of functional pseudo-classes are left alone.
func rewriteDynamicPseudoClasses(sel string) string {
	if !strings.Contains(sel, ":") {
		return sel
	}
	var sb strings.Builder
	var quote byte
	for i := 0; i < len(sel); i++ {
		c := sel[i]
		if quote != 0 {
			sb.WriteByte(c)
			if c == '\\' && i+1 < len(sel) {
				i++
				sb.WriteByte(sel[i])
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
			sb.WriteByte(c)
			continue
		case ':':
			if i+1 < len(sel) && sel[i+1] == ':' {
				// pseudo-element: copy both colons verbatim
				sb.WriteString("::")
				i++
				continue
			}
			j := i + 1
			for j < len(sel) && isIdentByte(sel[j]) {
				j++
			}
			name := strings.ToLower(sel[i+1 : j])
			if dynamicPseudoClasses[name] && (j == len(sel) || sel[j] != '(') {
				sb.WriteString(`[` + StateAttr + `~="` + name + `"]`)
				i = j - 1
				continue
			}
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

func isIdentByte(c byte) bool {
	return c == '-' || c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
