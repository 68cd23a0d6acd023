package html

import (
	"bytes"
	"io"
	"strings"

	"github.com/chrisuehlinger/avita/dom"
	"github.com/pkg/errors"
	"github.com/yosssi/gohtml"
	"golang.org/x/net/html"
)

// Options controls serialization.
type Options struct {
	// Pretty indents the markup one element per line. Short runs of inline
	// content such as <p>a<b>b</b>c</p> stay on one line.
	Pretty bool
}

// Render writes the document as markup.
func Render(w io.Writer, doc *dom.Document, opts Options) error {
	if !opts.Pretty {
		return html.Render(w, doc.Node())
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, doc.Node()); err != nil {
		return errors.Wrap(err, "render document")
	}
	_, err := io.WriteString(w, gohtml.Format(buf.String()))
	return err
}

// String serializes the document compactly.
func String(doc *dom.Document) string {
	var sb strings.Builder
	_ = Render(&sb, doc, Options{})
	return sb.String()
}

// Pretty serializes the document indented.
func Pretty(doc *dom.Document) string {
	var sb strings.Builder
	_ = Render(&sb, doc, Options{Pretty: true})
	return sb.String()
}
