package css

import (
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// CascadeOrigin identifies where a declaration came from.
type CascadeOrigin int

const (
	OriginUserAgent CascadeOrigin = iota
	OriginAuthor
	OriginInline
)

// MatchedDeclaration is a declaration that applies to an element together
// with what it needs to be ordered in the cascade.
type MatchedDeclaration struct {
	Declaration
	Origin      CascadeOrigin
	Specificity cascadia.Specificity
	order       int
}

// cascadeLayer orders origins and importance: user agent, author, inline,
// then important author and important inline declarations.
func cascadeLayer(origin CascadeOrigin, important bool) int {
	switch {
	case !important:
		return int(origin)
	case origin == OriginAuthor:
		return 3
	case origin == OriginInline:
		return 4
	default:
		return 5
	}
}

// Resolver computes styles for nodes of one document.
type Resolver struct {
	Viewport Viewport

	// States maps element nodes to their dynamic states (hover, focus, ...).
	States map[*html.Node][]string

	userAgent *Stylesheet
	author    []*Stylesheet
}

// NewResolver returns a resolver using the default user agent stylesheet.
func NewResolver(vp Viewport) *Resolver {
	return &Resolver{Viewport: vp, userAgent: UserAgentStylesheet()}
}

// AddStylesheet appends an author stylesheet; later sheets win ties.
func (r *Resolver) AddStylesheet(s *Stylesheet) {
	if s != nil {
		r.author = append(r.author, s)
	}
}

// Resolve computes the style of an element node. Ancestors are resolved
// first so inherited properties can flow down.
func (r *Resolver) Resolve(n *html.Node) *ComputedStyle {
	unmark := MarkStates(r.States)
	defer unmark()

	var chain []*html.Node
	for p := n; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			chain = append(chain, p)
		}
	}
	var cs *ComputedStyle
	for i := len(chain) - 1; i >= 0; i-- {
		cs = r.resolveOne(chain[i], cs)
	}
	if cs == nil {
		cs = newComputedStyle(nil)
	}
	return cs
}

// MatchedDeclarations lists the declarations applying to n in cascade order
// (lowest precedence first).
func (r *Resolver) MatchedDeclarations(n *html.Node) []MatchedDeclaration {
	var matched []MatchedDeclaration
	order := 0
	collect := func(sheet *Stylesheet, origin CascadeOrigin) {
		for _, rule := range sheet.Rules {
			if rule.invalid || !EvaluateMedia(rule.Media, r.Viewport) {
				continue
			}
			spec, ok := bestMatch(rule, n)
			if !ok {
				continue
			}
			for _, d := range rule.Declarations {
				matched = append(matched, MatchedDeclaration{Declaration: d, Origin: origin, Specificity: spec, order: order})
				order++
			}
		}
	}
	if r.userAgent != nil {
		collect(r.userAgent, OriginUserAgent)
	}
	for _, sheet := range r.author {
		collect(sheet, OriginAuthor)
	}
	if inline, ok := attr(n, "style"); ok {
		decls, err := ParseDeclarations(inline)
		if err == nil {
			for _, d := range decls {
				matched = append(matched, MatchedDeclaration{Declaration: d, Origin: OriginInline, order: order})
				order++
			}
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		la, lb := cascadeLayer(a.Origin, a.Important), cascadeLayer(b.Origin, b.Important)
		if la != lb {
			return la < lb
		}
		// inline declarations have no selector and outrank any specificity
		if a.Origin != b.Origin {
			return a.Origin < b.Origin
		}
		if a.Specificity != b.Specificity {
			return a.Specificity.Less(b.Specificity)
		}
		return a.order < b.order
	})
	return matched
}

func bestMatch(rule *Rule, n *html.Node) (cascadia.Specificity, bool) {
	var best cascadia.Specificity
	found := false
	for _, sel := range rule.compiled {
		if !sel.Match(n) {
			continue
		}
		if s := sel.Specificity(); !found || best.Less(s) {
			best = s
		}
		found = true
	}
	return best, found
}

func (r *Resolver) resolveOne(n *html.Node, parent *ComputedStyle) *ComputedStyle {
	cs := newComputedStyle(parent)
	for _, m := range r.MatchedDeclarations(n) {
		for _, d := range expandShorthand(m.Declaration) {
			cs.apply(d.Property, d.Value, parent)
		}
	}
	return cs
}

// ComputedStyle is the resolved value of every known property of one element.
type ComputedStyle struct {
	values map[string]string
}

func newComputedStyle(parent *ComputedStyle) *ComputedStyle {
	cs := &ComputedStyle{values: make(map[string]string, len(PropertyDefaults))}
	for prop, def := range PropertyDefaults {
		if def.Inherited && parent != nil {
			cs.values[prop] = parent.values[prop]
			continue
		}
		cs.values[prop] = def.InitialValue
	}
	if parent != nil {
		for prop, v := range parent.values {
			if IsCustomProperty(prop) {
				cs.values[prop] = v
			}
		}
	}
	return cs
}

func (cs *ComputedStyle) apply(prop, value string, parent *ComputedStyle) {
	if !IsCustomProperty(prop) && !IsKnownProperty(prop) {
		return
	}
	switch strings.ToLower(value) {
	case "inherit":
		cs.values[prop] = inheritedValue(prop, parent)
		return
	case "initial":
		cs.values[prop] = PropertyDefaults[prop].InitialValue
		return
	case "unset":
		if IsInherited(prop) {
			cs.values[prop] = inheritedValue(prop, parent)
		} else {
			cs.values[prop] = PropertyDefaults[prop].InitialValue
		}
		return
	}
	cs.values[prop] = value
}

func inheritedValue(prop string, parent *ComputedStyle) string {
	if parent != nil {
		if v, ok := parent.values[prop]; ok {
			return v
		}
	}
	return PropertyDefaults[prop].InitialValue
}

// Get returns the computed value of a property given in camelCase or
// kebab-case. The boolean is false for properties the style interface
// does not know.
func (cs *ComputedStyle) Get(prop string) (string, bool) {
	v, ok := cs.values[Kebab(prop)]
	return v, ok
}

// GetPropertyValue returns the computed value or "" if unknown.
func (cs *ComputedStyle) GetPropertyValue(prop string) string {
	v, _ := cs.Get(prop)
	return v
}

// All returns a snapshot of every computed property.
func (cs *ComputedStyle) All() map[string]string {
	out := make(map[string]string, len(cs.values))
	for k, v := range cs.values {
		out[k] = v
	}
	return out
}

// expandShorthand splits box shorthands into their longhands, keeping the
// shorthand itself so it stays readable.
func expandShorthand(d Declaration) []Declaration {
	var sides []string
	switch d.Property {
	case "margin", "padding":
		sides = []string{d.Property + "-top", d.Property + "-right", d.Property + "-bottom", d.Property + "-left"}
	case "inset":
		sides = []string{"top", "right", "bottom", "left"}
	case "gap":
		vals := strings.Fields(d.Value)
		if len(vals) == 0 {
			return []Declaration{d}
		}
		col := vals[0]
		if len(vals) > 1 {
			col = vals[1]
		}
		return []Declaration{d, {Property: "row-gap", Value: vals[0]}, {Property: "column-gap", Value: col}}
	default:
		return []Declaration{d}
	}

	vals := strings.Fields(d.Value)
	var top, right, bottom, left string
	switch len(vals) {
	case 1:
		top, right, bottom, left = vals[0], vals[0], vals[0], vals[0]
	case 2:
		top, right, bottom, left = vals[0], vals[1], vals[0], vals[1]
	case 3:
		top, right, bottom, left = vals[0], vals[1], vals[2], vals[1]
	case 4:
		top, right, bottom, left = vals[0], vals[1], vals[2], vals[3]
	default:
		return []Declaration{d}
	}
	out := []Declaration{d}
	for i, v := range []string{top, right, bottom, left} {
		out = append(out, Declaration{Property: sides[i], Value: v, Important: d.Important})
	}
	return out
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
