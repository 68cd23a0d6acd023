package handle

// Typed setters for frequently used properties. Each writes an inline style
// on every selected element.

// Color sets color.
func (h *Handle) Color(v string) *Handle { return h.CSS().Set("color", v) }

// Background sets background.
func (h *Handle) Background(v string) *Handle { return h.CSS().Set("background", v) }

// Display sets display.
func (h *Handle) Display(v string) *Handle { return h.CSS().Set("display", v) }

// Width sets width.
func (h *Handle) Width(v string) *Handle { return h.CSS().Set("width", v) }

// Height sets height.
func (h *Handle) Height(v string) *Handle { return h.CSS().Set("height", v) }

// Margin sets margin.
func (h *Handle) Margin(v string) *Handle { return h.CSS().Set("margin", v) }

// Padding sets padding.
func (h *Handle) Padding(v string) *Handle { return h.CSS().Set("padding", v) }

// FontSize sets font-size.
func (h *Handle) FontSize(v string) *Handle { return h.CSS().Set("font-size", v) }

// FontWeight sets font-weight.
func (h *Handle) FontWeight(v string) *Handle { return h.CSS().Set("font-weight", v) }

// Gap sets gap.
func (h *Handle) Gap(v string) *Handle { return h.CSS().Set("gap", v) }

// Border sets border.
func (h *Handle) Border(v string) *Handle { return h.CSS().Set("border", v) }

// BorderRadius sets border-radius.
func (h *Handle) BorderRadius(v string) *Handle { return h.CSS().Set("border-radius", v) }

// Opacity sets opacity.
func (h *Handle) Opacity(v string) *Handle { return h.CSS().Set("opacity", v) }

// Cursor sets cursor.
func (h *Handle) Cursor(v string) *Handle { return h.CSS().Set("cursor", v) }
