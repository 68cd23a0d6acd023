package dom

import (
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// EventPhase is the dispatch phase an event is in.
type EventPhase int

const (
	EventPhaseNone     EventPhase = 0
	EventPhaseAtTarget EventPhase = 2
	EventPhaseBubbling EventPhase = 3
)

// Event is a dispatched event.
type Event struct {
	Type          string
	Target        Target
	CurrentTarget Target
	Phase         EventPhase
	Bubbles       bool
	Cancelable    bool
	TimeStamp     time.Time

	// Detail carries custom event data; State carries the history state of
	// popstate events.
	Detail any
	State  any

	defaultPrevented bool
	stopped          bool
	stoppedNow       bool
}

// NewEvent returns a non-bubbling, non-cancelable event of the given type.
func NewEvent(eventType string) *Event {
	return &Event{Type: eventType, TimeStamp: time.Now()}
}

// NewCustomEvent returns a bubbling event carrying detail.
func NewCustomEvent(eventType string, detail any) *Event {
	ev := NewEvent(eventType)
	ev.Bubbles = true
	ev.Detail = detail
	return ev
}

// PreventDefault cancels the event if it is cancelable.
func (ev *Event) PreventDefault() {
	if ev.Cancelable {
		ev.defaultPrevented = true
	}
}

// DefaultPrevented reports whether PreventDefault took effect.
func (ev *Event) DefaultPrevented() bool { return ev.defaultPrevented }

// StopPropagation stops the event after the current target.
func (ev *Event) StopPropagation() { ev.stopped = true }

// StopImmediatePropagation also skips the remaining listeners of the
// current target.
func (ev *Event) StopImmediatePropagation() {
	ev.stopped = true
	ev.stoppedNow = true
}

// Listener wraps an event callback. Listeners are identified by pointer, so
// keep the value returned by NewListener to remove it later.
type Listener struct {
	fn   func(*Event)
	once bool
}

// NewListener wraps fn.
func NewListener(fn func(*Event)) *Listener { return &Listener{fn: fn} }

// Once wraps fn so it is removed after its first call.
func Once(fn func(*Event)) *Listener { return &Listener{fn: fn, once: true} }

// Target is anything events can be dispatched through.
type Target interface {
	eventTarget() *EventTarget
}

// EventTarget holds the listeners of one target. The zero value is ready to
// use.
type EventTarget struct {
	mu        sync.RWMutex
	listeners map[string][]*Listener
}

func (t *EventTarget) eventTarget() *EventTarget { return t }

// AddEventListener registers l for eventType. Registering the same listener
// twice has no effect.
func (t *EventTarget) AddEventListener(eventType string, l *Listener) {
	if l == nil || l.fn == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.listeners == nil {
		t.listeners = make(map[string][]*Listener)
	}
	for _, existing := range t.listeners[eventType] {
		if existing == l {
			return
		}
	}
	t.listeners[eventType] = append(t.listeners[eventType], l)
}

// RemoveEventListener unregisters l.
func (t *EventTarget) RemoveEventListener(eventType string, l *Listener) {
	t.mu.Lock()
	defer t.mu.Unlock()
	list := t.listeners[eventType]
	for i, existing := range list {
		if existing == l {
			t.listeners[eventType] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// HasEventListeners reports whether any listener is registered for
// eventType.
func (t *EventTarget) HasEventListeners(eventType string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.listeners[eventType]) > 0
}

// ListenerCount returns the number of listeners for eventType.
func (t *EventTarget) ListenerCount(eventType string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.listeners[eventType])
}

func (t *EventTarget) invoke(ev *Event) {
	t.mu.RLock()
	list := append([]*Listener(nil), t.listeners[ev.Type]...)
	t.mu.RUnlock()

	for _, l := range list {
		if l.once {
			t.RemoveEventListener(ev.Type, l)
		}
		callListener(l, ev)
		if ev.stoppedNow {
			return
		}
	}
}

func callListener(l *Listener, ev *Event) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"event": ev.Type,
				"panic": r,
			}).Error("event listener panicked")
		}
	}()
	l.fn(ev)
}

// dispatch runs ev through path. path[0] is the target.
func dispatch(ev *Event, target Target, path []Target) bool {
	ev.Target = target
	for i, t := range path {
		ev.CurrentTarget = t
		ev.Phase = EventPhaseBubbling
		if i == 0 {
			ev.Phase = EventPhaseAtTarget
		}
		t.eventTarget().invoke(ev)
		if ev.stopped {
			break
		}
	}
	ev.CurrentTarget = nil
	ev.Phase = EventPhaseNone
	return !ev.defaultPrevented
}

// DispatchEvent dispatches ev at the document; bubbling events continue to
// the window.
func (d *Document) DispatchEvent(ev *Event) bool {
	path := []Target{d}
	if ev.Bubbles && d.window != nil {
		path = append(path, d.window)
	}
	return dispatch(ev, d, path)
}

// eventTypes are the event names that have an on* handler slot.
var eventTypes = map[string]bool{}

func init() {
	for _, t := range strings.Fields(`
		abort animationend animationiteration animationstart auxclick beforeinput
		blur cancel canplay canplaythrough change click close contextmenu copy cut
		dblclick drag dragend dragenter dragleave dragover dragstart drop
		durationchange emptied ended error focus focusin focusout formdata
		hashchange input invalid keydown keypress keyup load loadeddata
		loadedmetadata loadstart message mousedown mouseenter mouseleave
		mousemove mouseout mouseover mouseup paste pause play playing
		pointercancel pointerdown pointerenter pointerleave pointermove
		pointerout pointerover pointerup popstate progress ratechange reset
		resize scroll scrollend seeked seeking select selectionchange stalled
		submit suspend timeupdate toggle touchcancel touchend touchmove
		touchstart transitionend unload volumechange waiting wheel`) {
		eventTypes[t] = true
	}
}

// NormalizeEventType lower-cases an event name and strips an "on" prefix
// from handler names, so "onClick" and "click" both give "click".
func NormalizeEventType(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if rest, ok := strings.CutPrefix(name, "on"); ok && eventTypes[rest] {
		return rest
	}
	return name
}

// IsEventHandlerName reports whether name is "on" followed by a known event
// name, in any case.
func IsEventHandlerName(name string) bool {
	lower := strings.ToLower(name)
	rest, ok := strings.CutPrefix(lower, "on")
	return ok && eventTypes[rest]
}

// IsKnownEventType reports whether eventType is a standard event name.
func IsKnownEventType(eventType string) bool { return eventTypes[eventType] }
