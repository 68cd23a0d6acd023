package handle

import (
	"github.com/chrisuehlinger/avita/dom"
	"github.com/pkg/errors"
)

// Root is where a query starts: a *dom.Document or a *dom.Element.
type Root interface {
	QuerySelectorAll(selector string) ([]*dom.Element, error)
}

// FindElements returns the raw elements matching selector under root.
func FindElements(root Root, selector string) ([]*dom.Element, error) {
	els, err := root.QuerySelectorAll(selector)
	if err != nil {
		return nil, errors.Wrapf(err, "find %q", selector)
	}
	return els, nil
}

// Find wraps the elements matching selector under root: nil when nothing
// matches, a single-element handle for one match, a collection handle
// otherwise.
func Find(root Root, selector string) (*Handle, error) {
	els, err := FindElements(root, selector)
	if err != nil {
		return nil, err
	}
	switch len(els) {
	case 0:
		return nil, nil
	case 1:
		return Wrap(els[0]), nil
	default:
		return WrapAll(els)
	}
}

// Find queries the subtree of the primary element.
func (h *Handle) Find(selector string) (*Handle, error) { return Find(h.primary, selector) }
