package dom

import (
	"net/url"
	"sync"
)

// HistoryEntry is one entry of the session history.
type HistoryEntry struct {
	URL   string
	Title string
	State any
}

// History is the session history of a window. Pushing and replacing
// entries updates the window location without firing events; traversal
// fires popstate on the window.
type History struct {
	mu      sync.RWMutex
	window  *Window
	entries []HistoryEntry
	index   int
}

func newHistory(w *Window) *History {
	return &History{
		window:  w,
		entries: []HistoryEntry{{URL: w.location.String()}},
	}
}

// Length returns the number of entries.
func (h *History) Length() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// State returns the state of the current entry.
func (h *History) State() any {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.entries[h.index].State
}

// Current returns the current entry.
func (h *History) Current() HistoryEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.entries[h.index]
}

func (h *History) resolve(method, ref string) (*url.URL, error) {
	cur := h.window.location
	if ref == "" {
		u := *cur
		return &u, nil
	}
	u, err := cur.Parse(ref)
	if err != nil {
		return nil, ErrSyntax("failed to execute '" + method + "': invalid URL '" + ref + "'")
	}
	if u.Scheme != cur.Scheme || u.Host != cur.Host {
		return nil, ErrSecurity("failed to execute '" + method + "': '" + u.String() +
			"' cannot be used in a document with origin '" + cur.Scheme + "://" + cur.Host + "'")
	}
	return u, nil
}

// PushState adds an entry after the current one, dropping any forward
// entries. An empty ref keeps the current URL.
func (h *History) PushState(state any, title, ref string) error {
	u, err := h.resolve("pushState", ref)
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.entries = append(h.entries[:h.index+1], HistoryEntry{URL: u.String(), Title: title, State: state})
	h.index = len(h.entries) - 1
	h.mu.Unlock()
	h.window.location = u
	return nil
}

// ReplaceState replaces the current entry.
func (h *History) ReplaceState(state any, title, ref string) error {
	u, err := h.resolve("replaceState", ref)
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.entries[h.index] = HistoryEntry{URL: u.String(), Title: title, State: state}
	h.mu.Unlock()
	h.window.location = u
	return nil
}

// Go moves delta entries through the history. Out-of-range deltas and zero
// do nothing. A move fires popstate with the new entry's state.
func (h *History) Go(delta int) {
	if delta == 0 {
		return
	}
	h.mu.Lock()
	next := h.index + delta
	if next < 0 || next >= len(h.entries) {
		h.mu.Unlock()
		return
	}
	h.index = next
	entry := h.entries[next]
	h.mu.Unlock()

	if u, err := url.Parse(entry.URL); err == nil {
		h.window.location = u
	}
	ev := NewEvent("popstate")
	ev.State = entry.State
	h.window.DispatchEvent(ev)
}

// Back moves one entry back.
func (h *History) Back() { h.Go(-1) }

// Forward moves one entry forward.
func (h *History) Forward() { h.Go(1) }
