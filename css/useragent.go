package css

import "sync"

// userAgentCSS holds the default element styles, trimmed to what affects
// computed values in a page without a layout engine.
const userAgentCSS = `
html, body, div, article, aside, footer, header, nav, section, main,
figure, figcaption, blockquote, pre, address, form, fieldset, legend,
details, summary, dialog, hgroup, dl, dt, dd, p, ul, ol {
	display: block;
}

body {
	margin: 8px;
}

h1, h2, h3, h4, h5, h6 {
	display: block;
	font-weight: bold;
}

h1 { font-size: 2em; margin-top: 0.67em; margin-bottom: 0.67em; }
h2 { font-size: 1.5em; margin-top: 0.83em; margin-bottom: 0.83em; }
h3 { font-size: 1.17em; margin-top: 1em; margin-bottom: 1em; }
h4 { margin-top: 1.33em; margin-bottom: 1.33em; }
h5 { font-size: 0.83em; margin-top: 1.67em; margin-bottom: 1.67em; }
h6 { font-size: 0.67em; margin-top: 2.33em; margin-bottom: 2.33em; }

p, ul, ol, dl { margin-top: 1em; margin-bottom: 1em; }
ul, ol { padding-left: 40px; }
ol { list-style-type: decimal; }
li { display: list-item; }

pre, code, kbd, samp { font-family: monospace; }
pre { white-space: pre; }

a[href] { color: blue; text-decoration: underline; cursor: pointer; }
strong, b, th { font-weight: bold; }
em, i, cite, var, dfn, address { font-style: italic; }

table { display: table; border-collapse: separate; border-spacing: 2px; }
thead { display: table-header-group; }
tbody { display: table-row-group; }
tfoot { display: table-footer-group; }
tr { display: table-row; }
td, th { display: table-cell; padding: 1px; }

input, button, select, textarea { display: inline-block; }
button { text-align: center; cursor: pointer; }

head, meta, link, style, script, title, noscript, template { display: none; }
[hidden] { display: none; }
`

var (
	uaOnce  sync.Once
	uaSheet *Stylesheet
)

// UserAgentStylesheet returns the parsed default stylesheet. It is parsed
// once and shared; callers must not modify it.
func UserAgentStylesheet() *Stylesheet {
	uaOnce.Do(func() {
		uaSheet = MustParseStylesheet(userAgentCSS)
	})
	return uaSheet
}
