// Package html loads page markup into a window and serializes documents
// back to markup.
package html

import (
	"io"
	"os"
	"strings"

	"github.com/chrisuehlinger/avita/dom"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// DefaultTemplate is the page used when no template is configured.
const DefaultTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body><div id="root"></div></body>
</html>`

// Load parses markup and shows the resulting document in win.
func Load(win *dom.Window, r io.Reader) (*dom.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse page")
	}
	return win.LoadDocument(root), nil
}

// LoadString is Load over a string.
func LoadString(win *dom.Window, markup string) (*dom.Document, error) {
	return Load(win, strings.NewReader(markup))
}

// LoadFile loads the page template at path. An empty path loads
// DefaultTemplate.
func LoadFile(win *dom.Window, path string) (*dom.Document, error) {
	if path == "" {
		return LoadString(win, DefaultTemplate)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open template %s", path)
	}
	defer f.Close()
	return Load(win, f)
}
