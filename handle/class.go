package handle

import (
	"strings"

	"github.com/chrisuehlinger/avita/dom"
)

// Class returns the class attribute of the primary element.
func (h *Handle) Class() string { return h.primary.ClassName() }

// splitClasses flattens arguments such as "a b" into single tokens.
func splitClasses(classes []string) []string {
	var out []string
	for _, c := range classes {
		out = append(out, strings.Fields(c)...)
	}
	return out
}

// AddClass adds classes to every selected element. Arguments containing
// spaces are split into separate classes.
func (h *Handle) AddClass(classes ...string) *Handle {
	tokens := splitClasses(classes)
	return h.each(func(el *dom.Element) { _ = el.ClassList().Add(tokens...) })
}

// RemoveClass removes classes from every selected element.
func (h *Handle) RemoveClass(classes ...string) *Handle {
	tokens := splitClasses(classes)
	return h.each(func(el *dom.Element) { _ = el.ClassList().Remove(tokens...) })
}

// ToggleClass toggles class on every selected element, or forces it on or
// off.
func (h *Handle) ToggleClass(class string, force ...bool) *Handle {
	return h.each(func(el *dom.Element) { _, _ = el.ClassList().Toggle(class, force...) })
}

// HasClass reports whether the primary element has class.
func (h *Handle) HasClass(class string) bool { return h.primary.ClassList().Contains(class) }
