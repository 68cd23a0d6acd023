package handle

import (
	"github.com/chrisuehlinger/avita/dom"
	"github.com/pkg/errors"
)

// Text returns the text content of the primary element.
func (h *Handle) Text() string { return h.primary.TextContent() }

// SetText replaces the content of every selected element with text. The
// declared children are cleared.
func (h *Handle) SetText(text string) *Handle {
	h.declared = nil
	return h.each(func(el *dom.Element) { el.SetTextContent(text) })
}

// HTML returns the inner markup of the primary element.
func (h *Handle) HTML() string { return h.primary.InnerHTML() }

// SetHTML parses markup into every selected element.
func (h *Handle) SetHTML(markup string) error {
	h.declared = nil
	for _, el := range h.Elements() {
		if err := el.SetInnerHTML(markup); err != nil {
			return errors.Wrap(err, "set html")
		}
	}
	return nil
}

// Value returns the form value of the primary element.
func (h *Handle) Value() string { return h.primary.Value() }

// SetValue sets the form value of every selected element.
func (h *Handle) SetValue(v string) *Handle {
	return h.each(func(el *dom.Element) { el.SetValue(v) })
}

// Hide sets display: none, remembering the inline display of the primary
// element so Show can restore it.
func (h *Handle) Hide() *Handle {
	style := h.primary.Style()
	if style.GetPropertyValue("display") != "none" {
		prev := style.GetPropertyValue("display")
		h.display = &prev
	}
	return h.each(func(el *dom.Element) { el.Style().SetProperty("display", "none") })
}

// Show restores the display Hide replaced, or removes display: none.
func (h *Handle) Show() *Handle {
	prev := ""
	if h.display != nil {
		prev = *h.display
		h.display = nil
	}
	return h.each(func(el *dom.Element) {
		if prev == "" {
			el.Style().RemoveProperty("display")
			return
		}
		el.Style().SetProperty("display", prev)
	})
}

// Hidden reports whether the primary element is hidden with display: none.
func (h *Handle) Hidden() bool {
	v, _ := h.CSS().Get("display")
	return v == "none"
}

// Toggle shows a hidden handle and hides a visible one.
func (h *Handle) Toggle() *Handle {
	if h.Hidden() {
		return h.Show()
	}
	return h.Hide()
}

// Parent wraps the parent of the primary element; nil at the top.
func (h *Handle) Parent() *Handle {
	if p := h.primary.ParentElement(); p != nil {
		return Wrap(p)
	}
	return nil
}

// Closest wraps the nearest inclusive ancestor matching selector.
func (h *Handle) Closest(selector string) (*Handle, error) {
	el, err := h.primary.Closest(selector)
	if err != nil || el == nil {
		return nil, err
	}
	return Wrap(el), nil
}

// Is reports whether the primary element matches selector.
func (h *Handle) Is(selector string) bool {
	ok, err := h.primary.Matches(selector)
	return err == nil && ok
}

// Eq wraps the i-th selected element; nil when out of range.
func (h *Handle) Eq(i int) *Handle {
	els := h.Elements()
	if i < 0 {
		i += len(els)
	}
	if i < 0 || i >= len(els) {
		return nil
	}
	return Wrap(els[i])
}

// Each calls fn with a single-element handle for every selected element.
func (h *Handle) Each(fn func(i int, el *Handle)) *Handle {
	for i, el := range h.Elements() {
		fn(i, Wrap(el))
	}
	return h
}

// Clone returns a handle over a deep copy of the primary element. Listeners
// are not copied.
func (h *Handle) Clone() *Handle {
	c := Wrap(h.primary.Clone(true))
	c.declared = append([]Child(nil), h.declared...)
	return c
}

// Click dispatches a click on every selected element.
func (h *Handle) Click() *Handle {
	return h.each(func(el *dom.Element) { el.Click() })
}

// SetFocus gives the primary element focus.
func (h *Handle) SetFocus() *Handle {
	h.primary.Focus()
	return h
}

// Blur removes focus from the primary element.
func (h *Handle) Blur() *Handle {
	h.primary.Blur()
	return h
}
