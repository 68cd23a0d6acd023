package handle

import (
	"github.com/chrisuehlinger/avita/dom"
	"github.com/sirupsen/logrus"
)

// On registers l for event on every selected element. Handler-style names
// such as "onclick" are accepted.
func (h *Handle) On(event string, l *dom.Listener) *Handle {
	event = dom.NormalizeEventType(event)
	return h.each(func(el *dom.Element) { el.AddEventListener(event, l) })
}

// Off removes l from every selected element.
func (h *Handle) Off(event string, l *dom.Listener) *Handle {
	event = dom.NormalizeEventType(event)
	return h.each(func(el *dom.Element) { el.RemoveEventListener(event, l) })
}

// windowEvent reports whether event belongs on the window rather than on
// elements.
func windowEvent(event string) bool {
	switch dom.NormalizeEventType(event) {
	case "scroll", "resize":
		return true
	}
	return false
}

// OnWindow registers l on the window for scroll and resize; other events
// are registered like On.
func (h *Handle) OnWindow(event string, l *dom.Listener) *Handle {
	win := h.Document().DefaultView()
	if !windowEvent(event) || win == nil {
		return h.On(event, l)
	}
	event = dom.NormalizeEventType(event)
	logrus.WithField("event", event).Debug("listener delegated to window")
	win.AddEventListener(event, l)
	return h
}

// OffWindow mirrors OnWindow.
func (h *Handle) OffWindow(event string, l *dom.Listener) *Handle {
	win := h.Document().DefaultView()
	if !windowEvent(event) || win == nil {
		return h.Off(event, l)
	}
	win.RemoveEventListener(dom.NormalizeEventType(event), l)
	return h
}

// Trigger dispatches a plain event named event on every selected element.
func (h *Handle) Trigger(event string) *Handle {
	event = dom.NormalizeEventType(event)
	return h.each(func(el *dom.Element) { el.DispatchEvent(dom.NewEvent(event)) })
}

func (h *Handle) onFunc(event string, fn func(*dom.Event)) *Handle {
	return h.On(event, dom.NewListener(fn))
}

// OnClick registers fn for click.
func (h *Handle) OnClick(fn func(*dom.Event)) *Handle { return h.onFunc("click", fn) }

// OnInput registers fn for input.
func (h *Handle) OnInput(fn func(*dom.Event)) *Handle { return h.onFunc("input", fn) }

// OnChange registers fn for change.
func (h *Handle) OnChange(fn func(*dom.Event)) *Handle { return h.onFunc("change", fn) }

// OnSubmit registers fn for submit.
func (h *Handle) OnSubmit(fn func(*dom.Event)) *Handle { return h.onFunc("submit", fn) }

// OnKeyDown registers fn for keydown.
func (h *Handle) OnKeyDown(fn func(*dom.Event)) *Handle { return h.onFunc("keydown", fn) }

// OnKeyUp registers fn for keyup.
func (h *Handle) OnKeyUp(fn func(*dom.Event)) *Handle { return h.onFunc("keyup", fn) }

// OnMouseEnter registers fn for mouseenter.
func (h *Handle) OnMouseEnter(fn func(*dom.Event)) *Handle { return h.onFunc("mouseenter", fn) }

// OnMouseLeave registers fn for mouseleave.
func (h *Handle) OnMouseLeave(fn func(*dom.Event)) *Handle { return h.onFunc("mouseleave", fn) }

// OnFocus registers fn for focus.
func (h *Handle) OnFocus(fn func(*dom.Event)) *Handle { return h.onFunc("focus", fn) }

// OnBlur registers fn for blur.
func (h *Handle) OnBlur(fn func(*dom.Event)) *Handle { return h.onFunc("blur", fn) }
