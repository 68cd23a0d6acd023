package html

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chrisuehlinger/avita/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultTemplate(t *testing.T) {
	win := dom.NewWindow(800, 600)
	doc, err := LoadFile(win, "")
	require.NoError(t, err)
	assert.Same(t, doc, win.Document())

	root := doc.GetElementByID("root")
	require.NotNil(t, root)
	assert.Same(t, doc.Body(), root.ParentElement())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(`<title>T</title><main id="app"></main>`), 0o644))

	doc, err := LoadFile(dom.NewWindow(800, 600), path)
	require.NoError(t, err)
	assert.Equal(t, "T", doc.Title())
	assert.NotNil(t, doc.GetElementByID("app"))

	_, err = LoadFile(dom.NewWindow(800, 600), filepath.Join(t.TempDir(), "missing.html"))
	assert.Error(t, err)
}

func TestMalformedMarkupIsRepaired(t *testing.T) {
	doc, err := LoadString(dom.NewWindow(800, 600), `<p>unclosed<div>nested</p></div>`)
	require.NoError(t, err)
	assert.NotNil(t, doc.Head())
	ps, err := doc.QuerySelectorAll("p")
	require.NoError(t, err)
	assert.NotEmpty(t, ps)
}

func TestString(t *testing.T) {
	doc, err := LoadString(dom.NewWindow(800, 600), `<!DOCTYPE html><html><head></head><body><p class="a">x &amp; y</p></body></html>`)
	require.NoError(t, err)
	assert.Equal(t,
		`<!DOCTYPE html><html><head></head><body><p class="a">x &amp; y</p></body></html>`,
		String(doc))
}

func TestPretty(t *testing.T) {
	doc, err := LoadString(dom.NewWindow(800, 600),
		`<html><head></head><body><div id="root"><h1>Hi</h1><button>Go</button></div></body></html>`)
	require.NoError(t, err)

	out := Pretty(doc)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Greater(t, len(lines), 5)
	assert.Equal(t, "<html>", strings.TrimSpace(lines[0]))
	assert.Contains(t, out, "Hi")
	assert.Contains(t, out, "</html>")
}

func TestPrettyKeepsInlineContent(t *testing.T) {
	doc, err := LoadString(dom.NewWindow(800, 600), `<body><p>foo<b>bar</b>baz</p></body>`)
	require.NoError(t, err)

	assert.Contains(t, String(doc), `<p>foo<b>bar</b>baz</p>`)
	assert.Contains(t, Pretty(doc), `foo<b>bar</b>baz`)
}
