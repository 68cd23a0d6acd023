// Package router maps URL paths to handles and renders the matching one into
// a root element, keeping the window history in step.
package router

import (
	"github.com/chrisuehlinger/avita/dom"
	"github.com/chrisuehlinger/avita/handle"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrRootNotFound is returned by New when the root selector matches nothing.
var ErrRootNotFound = errors.New("router: root element not found")

// Router renders the handle registered for the current path.
type Router struct {
	win      *dom.Window
	root     *dom.Element
	routes   map[string]*handle.Handle
	notFound *handle.Handle
	current  string
	popstate *dom.Listener
}

// New returns a router rendering into the element matching rootSelector in
// the window's document.
func New(win *dom.Window, rootSelector string) (*Router, error) {
	if rootSelector == "" {
		rootSelector = handle.DefaultRoot
	}
	root, err := win.Document().QuerySelector(rootSelector)
	if err != nil {
		return nil, errors.Wrap(err, "router")
	}
	if root == nil {
		return nil, errors.Wrapf(ErrRootNotFound, "router %q", rootSelector)
	}
	return &Router{win: win, root: root, routes: make(map[string]*handle.Handle)}, nil
}

// Handle registers h for path.
func (r *Router) Handle(path string, h *handle.Handle) *Router {
	r.routes[path] = h
	return r
}

// NotFound sets the handle rendered when no route matches.
func (r *Router) NotFound(h *handle.Handle) *Router {
	r.notFound = h
	return r
}

// Routes returns the registered paths and their handles.
func (r *Router) Routes() map[string]*handle.Handle {
	out := make(map[string]*handle.Handle, len(r.routes))
	for k, v := range r.routes {
		out[k] = v
	}
	return out
}

// Current returns the path rendered last.
func (r *Router) Current() string { return r.current }

// Navigate pushes path onto the history and renders its handle. A missing
// route renders the not-found handle, or an inline message when none is
// set; neither is an error.
func (r *Router) Navigate(path string) error {
	if err := r.win.History().PushState(path, "", path); err != nil {
		return errors.Wrapf(err, "navigate %s", path)
	}
	r.render(r.win.Location().Path)
	return nil
}

// Listen re-renders on popstate without rendering now.
func (r *Router) Listen() {
	if r.popstate == nil {
		r.popstate = dom.NewListener(func(*dom.Event) { r.render(r.win.Location().Path) })
		r.win.AddEventListener("popstate", r.popstate)
	}
}

// Start renders the current location and re-renders on popstate.
func (r *Router) Start() {
	r.Listen()
	r.render(r.win.Location().Path)
}

// Stop removes the popstate listener.
func (r *Router) Stop() {
	if r.popstate != nil {
		r.win.RemoveEventListener("popstate", r.popstate)
		r.popstate = nil
	}
}

func (r *Router) render(path string) {
	r.current = path
	r.root.RemoveAllChildren()

	if h, ok := r.routes[path]; ok {
		logrus.WithField("path", path).Info("route rendered")
		r.root.AppendChild(h.Element())
		return
	}
	logrus.WithField("path", path).Warn("no route matches")
	if r.notFound != nil {
		r.root.AppendChild(r.notFound.Element())
		return
	}
	msg := r.root.OwnerDocument().CreateElement("p")
	msg.SetTextContent("No route matches " + path)
	r.root.AppendChild(msg)
}
