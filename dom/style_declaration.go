package dom

import (
	"strings"

	"github.com/chrisuehlinger/avita/css"
)

// CSSStyleDeclaration is a live view of an element's style attribute.
// Property names may be given in camelCase or kebab-case.
type CSSStyleDeclaration struct {
	element *Element
}

func (s *CSSStyleDeclaration) declarations() []css.Declaration {
	text := s.element.GetAttribute("style")
	decls, err := css.ParseDeclarations(text)
	if err != nil {
		return splitDeclarations(text)
	}
	return decls
}

// splitDeclarations is the lenient fallback for style attributes the
// declaration parser rejects.
func splitDeclarations(text string) []css.Declaration {
	var out []css.Declaration
	for _, part := range strings.Split(text, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		if !css.IsCustomProperty(prop) {
			prop = strings.ToLower(prop)
		}
		value = strings.TrimSpace(value)
		important := false
		if v, found := strings.CutSuffix(value, "!important"); found {
			value = strings.TrimSpace(v)
			important = true
		}
		if prop != "" && value != "" {
			out = append(out, css.Declaration{Property: prop, Value: value, Important: important})
		}
	}
	return out
}

func (s *CSSStyleDeclaration) write(decls []css.Declaration) {
	if len(decls) == 0 {
		if s.element.HasAttribute("style") {
			s.element.SetAttribute("style", "")
		}
		return
	}
	s.element.SetAttribute("style", css.SerializeDeclarations(decls))
}

func normalizeProperty(name string) string {
	name = strings.TrimSpace(name)
	if css.IsCustomProperty(name) {
		return name
	}
	return css.Kebab(name)
}

func indexOf(decls []css.Declaration, prop string) int {
	for i, d := range decls {
		if d.Property == prop {
			return i
		}
	}
	return -1
}

// GetPropertyValue returns the value of a property, or "".
func (s *CSSStyleDeclaration) GetPropertyValue(name string) string {
	decls := s.declarations()
	if i := indexOf(decls, normalizeProperty(name)); i >= 0 {
		return decls[i].Value
	}
	return ""
}

// GetPropertyPriority returns "important" for !important properties.
func (s *CSSStyleDeclaration) GetPropertyPriority(name string) string {
	decls := s.declarations()
	if i := indexOf(decls, normalizeProperty(name)); i >= 0 && decls[i].Important {
		return "important"
	}
	return ""
}

// SetProperty sets a property. Unknown property names are ignored and an
// empty value removes the property.
func (s *CSSStyleDeclaration) SetProperty(name, value string, priority ...string) {
	prop := normalizeProperty(name)
	if !css.IsCustomProperty(prop) && !css.IsKnownProperty(prop) {
		return
	}
	value = strings.TrimSpace(value)
	if value == "" {
		s.RemoveProperty(prop)
		return
	}
	important := len(priority) > 0 && strings.EqualFold(priority[0], "important")
	decls := s.declarations()
	d := css.Declaration{Property: prop, Value: value, Important: important}
	if i := indexOf(decls, prop); i >= 0 {
		decls[i] = d
	} else {
		decls = append(decls, d)
	}
	s.write(decls)
}

// RemoveProperty removes a property and returns its previous value.
func (s *CSSStyleDeclaration) RemoveProperty(name string) string {
	prop := normalizeProperty(name)
	decls := s.declarations()
	i := indexOf(decls, prop)
	if i < 0 {
		return ""
	}
	old := decls[i].Value
	s.write(append(decls[:i], decls[i+1:]...))
	return old
}

// CSSText returns the serialized declarations.
func (s *CSSStyleDeclaration) CSSText() string {
	return css.SerializeDeclarations(s.declarations())
}

// SetCSSText replaces every declaration.
func (s *CSSStyleDeclaration) SetCSSText(text string) {
	decls, err := css.ParseDeclarations(text)
	if err != nil {
		decls = splitDeclarations(text)
	}
	s.write(decls)
}

// Length returns the number of declarations.
func (s *CSSStyleDeclaration) Length() int { return len(s.declarations()) }

// PropertyNames returns the declared property names in order.
func (s *CSSStyleDeclaration) PropertyNames() []string {
	decls := s.declarations()
	out := make([]string, len(decls))
	for i, d := range decls {
		out[i] = d.Property
	}
	return out
}

// All returns every declared property and its value.
func (s *CSSStyleDeclaration) All() map[string]string {
	decls := s.declarations()
	out := make(map[string]string, len(decls))
	for _, d := range decls {
		out[d.Property] = d.Value
	}
	return out
}
