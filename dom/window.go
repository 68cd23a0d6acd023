package dom

import (
	"net/url"
	"strings"

	"github.com/chrisuehlinger/avita/css"
	"golang.org/x/net/html"
)

// DefaultLocation is the address of a window that was not given one.
const DefaultLocation = "http://localhost/"

// ScrollBehavior is the behavior requested for a scroll.
type ScrollBehavior string

const (
	ScrollAuto    ScrollBehavior = "auto"
	ScrollSmooth  ScrollBehavior = "smooth"
	ScrollInstant ScrollBehavior = "instant"
)

// ScrollOptions describes a scroll request.
type ScrollOptions struct {
	Left     float64
	Top      float64
	Behavior ScrollBehavior
}

// MediaQueryList is the result of MatchMedia.
type MediaQueryList struct {
	Media   string
	Matches bool
}

// Window is a headless browsing context: a viewport, a scroll position, a
// location with session history and the document on display.
type Window struct {
	EventTarget

	width, height    float64
	scrollX, scrollY float64
	behavior         ScrollBehavior

	location *url.URL
	history  *History
	document *Document
}

// NewWindow returns a window of the given viewport size showing a blank
// document at DefaultLocation.
func NewWindow(width, height float64) *Window {
	loc, _ := url.Parse(DefaultLocation)
	w := &Window{width: width, height: height, behavior: ScrollAuto, location: loc}
	w.history = newHistory(w)
	root, _ := html.Parse(strings.NewReader(blankPage))
	w.document = newDocument(root, w)
	return w
}

// LoadDocument replaces the displayed document with the parsed tree root.
// Missing <html>, <head> or <body> elements are created.
func (w *Window) LoadDocument(root *html.Node) *Document {
	if root == nil || root.Type != html.DocumentNode {
		doc := &html.Node{Type: html.DocumentNode}
		if root != nil {
			doc.AppendChild(root)
		}
		root = doc
	}
	w.document = newDocument(root, w)
	w.scrollX, w.scrollY = 0, 0
	return w.document
}

// Document returns the displayed document.
func (w *Window) Document() *Document { return w.document }

// InnerWidth returns the viewport width.
func (w *Window) InnerWidth() float64 { return w.width }

// InnerHeight returns the viewport height.
func (w *Window) InnerHeight() float64 { return w.height }

// Viewport returns the viewport as seen by media queries.
func (w *Window) Viewport() css.Viewport { return css.Viewport{Width: w.width, Height: w.height} }

// Resize changes the viewport size and fires resize on the window.
func (w *Window) Resize(width, height float64) {
	if width == w.width && height == w.height {
		return
	}
	w.width, w.height = width, height
	w.DispatchEvent(NewEvent("resize"))
}

// ScrollX returns the horizontal page scroll offset.
func (w *Window) ScrollX() float64 { return w.scrollX }

// ScrollY returns the vertical page scroll offset.
func (w *Window) ScrollY() float64 { return w.scrollY }

// ScrollBehavior returns the behavior of the most recent scroll request.
func (w *Window) ScrollBehavior() ScrollBehavior { return w.behavior }

// ScrollTo scrolls the page. Negative offsets clamp to zero. A scroll event
// fires on the window when the position changed.
func (w *Window) ScrollTo(opts ScrollOptions) {
	if opts.Behavior == "" {
		opts.Behavior = ScrollAuto
	}
	w.behavior = opts.Behavior
	x, y := max(opts.Left, 0), max(opts.Top, 0)
	if x == w.scrollX && y == w.scrollY {
		return
	}
	w.scrollX, w.scrollY = x, y
	w.DispatchEvent(NewEvent("scroll"))
}

// ScrollBy scrolls the page relative to its current position.
func (w *Window) ScrollBy(opts ScrollOptions) {
	opts.Left += w.scrollX
	opts.Top += w.scrollY
	w.ScrollTo(opts)
}

// MatchMedia evaluates a media query against the viewport.
func (w *Window) MatchMedia(query string) MediaQueryList {
	return MediaQueryList{Media: query, Matches: css.EvaluateMedia(query, w.Viewport())}
}

// GetComputedStyle resolves the style of el from the user agent sheet, every
// <style> element of its document and its inline style.
func (w *Window) GetComputedStyle(el *Element) *css.ComputedStyle {
	doc := el.doc
	r := css.NewResolver(w.Viewport())
	r.States = doc.States()
	for _, s := range doc.StyleElements() {
		r.AddStylesheet(doc.stylesheet(s.TextContent()))
	}
	return r.Resolve(el.node)
}

// Location returns a copy of the current address.
func (w *Window) Location() *url.URL {
	u := *w.location
	return &u
}

// SetLocation navigates to a new address. Relative references resolve
// against the current location. The session history is reset.
func (w *Window) SetLocation(ref string) error {
	u, err := w.location.Parse(ref)
	if err != nil {
		return ErrSyntax("'" + ref + "' is not a valid URL")
	}
	w.location = u
	w.history = newHistory(w)
	return nil
}

// History returns the session history.
func (w *Window) History() *History { return w.history }

// DispatchEvent dispatches ev at the window.
func (w *Window) DispatchEvent(ev *Event) bool {
	return dispatch(ev, w, []Target{w})
}
