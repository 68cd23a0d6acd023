package handle

import "github.com/chrisuehlinger/avita/dom"

func behavior(smooth bool) dom.ScrollBehavior {
	if smooth {
		return dom.ScrollSmooth
	}
	return dom.ScrollInstant
}

// Rect returns the viewport-relative box of the primary element.
func (h *Handle) Rect() dom.DOMRect { return h.primary.GetBoundingClientRect() }

// ScrollTo scrolls the content of every selected element.
func (h *Handle) ScrollTo(x, y float64, smooth bool) *Handle {
	opts := dom.ScrollOptions{Left: x, Top: y, Behavior: behavior(smooth)}
	return h.each(func(el *dom.Element) { el.ScrollTo(opts) })
}

// ScrollToTop scrolls to the top edge, keeping the horizontal offset.
func (h *Handle) ScrollToTop(smooth bool) *Handle {
	return h.each(func(el *dom.Element) {
		el.ScrollTo(dom.ScrollOptions{Left: el.ScrollLeft(), Top: 0, Behavior: behavior(smooth)})
	})
}

// ScrollToBottom scrolls to the bottom edge.
func (h *Handle) ScrollToBottom(smooth bool) *Handle {
	return h.each(func(el *dom.Element) {
		el.ScrollTo(dom.ScrollOptions{Left: el.ScrollLeft(), Top: el.ScrollHeight(), Behavior: behavior(smooth)})
	})
}

// ScrollToLeft scrolls to the left edge.
func (h *Handle) ScrollToLeft(smooth bool) *Handle {
	return h.each(func(el *dom.Element) {
		el.ScrollTo(dom.ScrollOptions{Left: 0, Top: el.ScrollTop(), Behavior: behavior(smooth)})
	})
}

// ScrollToRight scrolls to the right edge.
func (h *Handle) ScrollToRight(smooth bool) *Handle {
	return h.each(func(el *dom.Element) {
		el.ScrollTo(dom.ScrollOptions{Left: el.ScrollWidth(), Top: el.ScrollTop(), Behavior: behavior(smooth)})
	})
}

// ScrollIntoView scrolls the window so the primary element's top edge is at
// the top of the viewport.
func (h *Handle) ScrollIntoView(smooth bool) *Handle {
	if win := h.Document().DefaultView(); win != nil {
		g := h.primary.Geometry()
		win.ScrollTo(dom.ScrollOptions{Left: win.ScrollX(), Top: g.Y, Behavior: behavior(smooth)})
	}
	return h
}

// WindowWidth returns the viewport width.
func WindowWidth(win *dom.Window) float64 { return win.InnerWidth() }

// WindowHeight returns the viewport height.
func WindowHeight(win *dom.Window) float64 { return win.InnerHeight() }

// ScrollWindow scrolls the page to x, y.
func ScrollWindow(win *dom.Window, x, y float64, smooth bool) {
	win.ScrollTo(dom.ScrollOptions{Left: x, Top: y, Behavior: behavior(smooth)})
}

// ScrollWindowToTop scrolls the page to the top.
func ScrollWindowToTop(win *dom.Window, smooth bool) { ScrollWindow(win, win.ScrollX(), 0, smooth) }

// ScrollWindowToLeft scrolls the page to the left edge.
func ScrollWindowToLeft(win *dom.Window, smooth bool) { ScrollWindow(win, 0, win.ScrollY(), smooth) }

// ScrollWindowToBottom scrolls the page to the bottom of the body box.
func ScrollWindowToBottom(win *dom.Window, smooth bool) {
	ScrollWindow(win, win.ScrollX(), pageExtent(win).Height, smooth)
}

// ScrollWindowToRight scrolls the page to the right edge of the body box.
func ScrollWindowToRight(win *dom.Window, smooth bool) {
	ScrollWindow(win, pageExtent(win).Width, win.ScrollY(), smooth)
}

// pageExtent is the scrollable range of the page: the body box minus the
// viewport, never negative.
func pageExtent(win *dom.Window) dom.DOMRect {
	g := win.Document().Body().Geometry()
	return dom.DOMRect{
		Width:  max(g.X+g.Width-win.InnerWidth(), 0),
		Height: max(g.Y+g.Height-win.InnerHeight(), 0),
	}
}
