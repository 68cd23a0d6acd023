package handle

import (
	"github.com/chrisuehlinger/avita/dom"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrRootNotFound is returned when the render root selector matches nothing.
var ErrRootNotFound = errors.New("handle: render root not found")

// DefaultRoot is the selector Render uses by default.
const DefaultRoot = "#root"

// BaseStyles is the reset stylesheet injected by Render.
const BaseStyles = `* { box-sizing: border-box; margin: 0; padding: 0; } ` +
	`body { font-family: system-ui, -apple-system, "Segoe UI", Roboto, sans-serif; line-height: 1.5; }`

// Render replaces the content of the element matching selector with the
// handle's primary element. With baseStyles the reset stylesheet is
// appended to <head>.
func Render(h *Handle, selector string, baseStyles bool) error {
	if selector == "" {
		selector = DefaultRoot
	}
	doc := h.Document()
	root, err := doc.QuerySelector(selector)
	if err != nil {
		return errors.Wrap(err, "render")
	}
	if root == nil {
		return errors.Wrapf(ErrRootNotFound, "render %q", selector)
	}
	if err := root.ReplaceChildren(h.primary); err != nil {
		return errors.Wrap(err, "render")
	}
	if baseStyles {
		doc.GeneratedStyles().Append(BaseStyles)
	}
	logrus.WithField("root", selector).Debug("rendered")
	return nil
}

// RenderRoot renders into #root with the base styles.
func RenderRoot(h *Handle) error { return Render(h, DefaultRoot, true) }

// MountIn replaces the content of el with the handle.
func (h *Handle) MountIn(el *dom.Element) error {
	return el.ReplaceChildren(h.primary)
}
