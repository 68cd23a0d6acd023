package dom

import (
	"strings"
)

// DOMStringMap maps camelCase keys to data-* attributes.
type DOMStringMap struct {
	element *Element
}

// dataAttrName converts a dataset key to its attribute name. A '-' followed
// by a lower-case ASCII letter is not allowed.
func dataAttrName(key string) (string, error) {
	for i := 0; i+1 < len(key); i++ {
		if key[i] == '-' && key[i+1] >= 'a' && key[i+1] <= 'z' {
			return "", ErrSyntax("'" + key + "' is not a valid dataset key")
		}
	}
	var sb strings.Builder
	sb.WriteString("data-")
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			sb.WriteByte('-')
			sb.WriteRune(r + ('a' - 'A'))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

// datasetKey converts a data-* attribute name to its camelCase key.
func datasetKey(attr string) (string, bool) {
	rest, ok := strings.CutPrefix(attr, "data-")
	if !ok {
		return "", false
	}
	var sb strings.Builder
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if c == '-' && i+1 < len(rest) && rest[i+1] >= 'a' && rest[i+1] <= 'z' {
			sb.WriteByte(rest[i+1] - ('a' - 'A'))
			i++
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String(), true
}

// Get returns the value for key and whether it is present.
func (m *DOMStringMap) Get(key string) (string, bool) {
	name, err := dataAttrName(key)
	if err != nil {
		return "", false
	}
	return m.element.Attribute(name)
}

// Set stores value under key.
func (m *DOMStringMap) Set(key, value string) error {
	name, err := dataAttrName(key)
	if err != nil {
		return err
	}
	return m.element.SetAttributeWithError(name, value)
}

// Delete removes key.
func (m *DOMStringMap) Delete(key string) {
	if name, err := dataAttrName(key); err == nil {
		m.element.RemoveAttribute(name)
	}
}

// All returns every data-* entry keyed by camelCase name.
func (m *DOMStringMap) All() map[string]string {
	out := make(map[string]string)
	for _, a := range m.element.node.Attr {
		if key, ok := datasetKey(a.Key); ok && a.Namespace == "" {
			out[key] = a.Val
		}
	}
	return out
}
