package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/chrisuehlinger/avita/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath, logLevel = "", ""
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "avita")
}

func TestRenderScript(t *testing.T) {
	dir := t.TempDir()
	script := writeFile(t, dir, "page.js", `render(div({id: "app"}, "hello"))`)

	out, err := run(t, "render", script)
	require.NoError(t, err)
	assert.Contains(t, out, `<div id="root"><div id="app">hello</div></div>`)
	assert.Contains(t, out, "box-sizing: border-box")
}

func TestRenderFlags(t *testing.T) {
	dir := t.TempDir()
	tmpl := writeFile(t, dir, "index.html", `<html><head></head><body><main id="app"></main></body></html>`)
	script := writeFile(t, dir, "page.js", `render(span("x"), "#app")`)
	outFile := filepath.Join(dir, "out.html")

	_, err := run(t, "render", script, "--template", tmpl, "--no-base-styles", "--out", outFile)
	require.NoError(t, err)
	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<main id="app"><span>x</span></main>`)
	assert.NotContains(t, string(data), "box-sizing")
}

func TestRenderConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "avita.yaml", "base_styles: false\npretty: true\n")
	script := writeFile(t, dir, "page.js", `render(p("hi"))`)

	out, err := run(t, "render", script, "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, `<div id="root">`)
	assert.NotContains(t, out, `<div id="root"><p>`)
	assert.NotContains(t, out, "box-sizing")
}

func TestRenderScriptError(t *testing.T) {
	script := writeFile(t, t.TempDir(), "bad.js", `throw new Error("boom")`)
	_, err := run(t, "render", script)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestRenderMissingScript(t *testing.T) {
	_, err := run(t, "render", filepath.Join(t.TempDir(), "none.js"))
	assert.Error(t, err)
}

func TestRenderInvalidViewport(t *testing.T) {
	script := writeFile(t, t.TempDir(), "page.js", ``)
	_, err := run(t, "render", script, "--width=-1")
	assert.Error(t, err)
}

func TestRenderPageRunsTimers(t *testing.T) {
	var out bytes.Buffer
	code := `
render(div({id: "status"}, "loading"))
setTimeout(() => find("#status").text("ready"), 50)
`
	require.NoError(t, renderPage(context.Background(), &out, config.Default(), nil, code, "timers.js"))
	assert.Contains(t, out.String(), `<div id="status">ready</div>`)
}

func TestRenderPageCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := renderPage(ctx, &out, config.Default(), nil, `1`, "noop.js")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderRemoteTemplate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head></head><body><section id="root"></section></body></html>`))
	}))
	defer srv.Close()
	script := writeFile(t, t.TempDir(), "page.js", `render(span("remote"))`)

	out, err := run(t, "render", script, "--template", srv.URL, "--no-base-styles")
	require.NoError(t, err)
	assert.Contains(t, out, `<section id="root"><span>remote</span></section>`)
}
