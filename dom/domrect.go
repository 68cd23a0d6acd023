package dom

// DOMRect is a rectangle in CSS pixels.
type DOMRect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Top returns the top edge, accounting for negative heights.
func (r DOMRect) Top() float64 {
	if r.Height < 0 {
		return r.Y + r.Height
	}
	return r.Y
}

// Right returns the right edge.
func (r DOMRect) Right() float64 {
	if r.Width < 0 {
		return r.X
	}
	return r.X + r.Width
}

// Bottom returns the bottom edge.
func (r DOMRect) Bottom() float64 {
	if r.Height < 0 {
		return r.Y
	}
	return r.Y + r.Height
}

// Left returns the left edge.
func (r DOMRect) Left() float64 {
	if r.Width < 0 {
		return r.X + r.Width
	}
	return r.X
}

// ElementGeometry is the laid-out box of an element. X and Y are page
// coordinates of the border box. Scroll sizes default to the client size.
type ElementGeometry struct {
	X, Y          float64
	Width, Height float64

	ClientWidth, ClientHeight float64
	ScrollWidth, ScrollHeight float64
}

type scrollState struct {
	left, top float64
	behavior  ScrollBehavior
}

// SetGeometry records the layout box of the element. Nothing in this package
// lays out pages; hosts and tests supply boxes.
func (e *Element) SetGeometry(g ElementGeometry) {
	if g.ClientWidth == 0 {
		g.ClientWidth = g.Width
	}
	if g.ClientHeight == 0 {
		g.ClientHeight = g.Height
	}
	if g.ScrollWidth < g.ClientWidth {
		g.ScrollWidth = g.ClientWidth
	}
	if g.ScrollHeight < g.ClientHeight {
		g.ScrollHeight = g.ClientHeight
	}
	e.geometry = &g
	e.scroll.left = clamp(e.scroll.left, 0, g.ScrollWidth-g.ClientWidth)
	e.scroll.top = clamp(e.scroll.top, 0, g.ScrollHeight-g.ClientHeight)
}

// Geometry returns the recorded layout box; the zero box when none was set.
func (e *Element) Geometry() ElementGeometry {
	if e.geometry == nil {
		return ElementGeometry{}
	}
	return *e.geometry
}

// GetBoundingClientRect returns the border box relative to the viewport.
func (e *Element) GetBoundingClientRect() DOMRect {
	g := e.Geometry()
	r := DOMRect{X: g.X, Y: g.Y, Width: g.Width, Height: g.Height}
	if w := e.doc.window; w != nil {
		r.X -= w.ScrollX()
		r.Y -= w.ScrollY()
	}
	return r
}

// OffsetTop returns the page y coordinate of the element.
func (e *Element) OffsetTop() float64 { return e.Geometry().Y }

// OffsetLeft returns the page x coordinate of the element.
func (e *Element) OffsetLeft() float64 { return e.Geometry().X }

// OffsetWidth returns the border box width.
func (e *Element) OffsetWidth() float64 { return e.Geometry().Width }

// OffsetHeight returns the border box height.
func (e *Element) OffsetHeight() float64 { return e.Geometry().Height }

// ClientWidth returns the inner width.
func (e *Element) ClientWidth() float64 { return e.Geometry().ClientWidth }

// ClientHeight returns the inner height.
func (e *Element) ClientHeight() float64 { return e.Geometry().ClientHeight }

// ScrollWidth returns the width of the scrollable content.
func (e *Element) ScrollWidth() float64 { return e.Geometry().ScrollWidth }

// ScrollHeight returns the height of the scrollable content.
func (e *Element) ScrollHeight() float64 { return e.Geometry().ScrollHeight }

// ScrollTop returns the vertical scroll offset of the element's content.
func (e *Element) ScrollTop() float64 { return e.scroll.top }

// ScrollLeft returns the horizontal scroll offset of the element's content.
func (e *Element) ScrollLeft() float64 { return e.scroll.left }

// SetScrollTop scrolls the content vertically.
func (e *Element) SetScrollTop(v float64) {
	e.ScrollTo(ScrollOptions{Left: e.scroll.left, Top: v})
}

// SetScrollLeft scrolls the content horizontally.
func (e *Element) SetScrollLeft(v float64) {
	e.ScrollTo(ScrollOptions{Left: v, Top: e.scroll.top})
}

// ScrollTo scrolls the element's content, clamped to the scrollable range,
// and fires a non-bubbling scroll event when the offset changed.
func (e *Element) ScrollTo(opts ScrollOptions) {
	g := e.Geometry()
	left := clamp(opts.Left, 0, g.ScrollWidth-g.ClientWidth)
	top := clamp(opts.Top, 0, g.ScrollHeight-g.ClientHeight)
	e.scroll.behavior = opts.Behavior
	if left == e.scroll.left && top == e.scroll.top {
		return
	}
	e.scroll.left, e.scroll.top = left, top
	e.DispatchEvent(NewEvent("scroll"))
}

// ScrollBehavior returns the behavior of the last ScrollTo on the element.
func (e *Element) ScrollBehavior() ScrollBehavior { return e.scroll.behavior }

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
