package handle

import "github.com/chrisuehlinger/avita/dom"

// Tag returns a constructor for elements of tag.
func Tag(tag string) func(doc *dom.Document, children ...Child) *Handle {
	return func(doc *dom.Document, children ...Child) *Handle {
		return New(doc, tag, children...)
	}
}

// Constructors for common elements.
var (
	Div      = Tag("div")
	Span     = Tag("span")
	P        = Tag("p")
	A        = Tag("a")
	H1       = Tag("h1")
	H2       = Tag("h2")
	H3       = Tag("h3")
	H4       = Tag("h4")
	H5       = Tag("h5")
	H6       = Tag("h6")
	Button   = Tag("button")
	Img      = Tag("img")
	Input    = Tag("input")
	Label    = Tag("label")
	Form     = Tag("form")
	Ul       = Tag("ul")
	Ol       = Tag("ol")
	Li       = Tag("li")
	Section  = Tag("section")
	Header   = Tag("header")
	Footer   = Tag("footer")
	Nav      = Tag("nav")
	Main     = Tag("main")
	Article  = Tag("article")
	Aside    = Tag("aside")
	Textarea = Tag("textarea")
	Select   = Tag("select")
	Option   = Tag("option")
	Table    = Tag("table")
	Tr       = Tag("tr")
	Td       = Tag("td")
	Th       = Tag("th")
	Pre      = Tag("pre")
	Code     = Tag("code")
)

// TagNames lists the tags with a constructor.
var TagNames = []string{
	"div", "span", "p", "a", "h1", "h2", "h3", "h4", "h5", "h6", "button",
	"img", "input", "label", "form", "ul", "ol", "li", "section", "header",
	"footer", "nav", "main", "article", "aside", "textarea", "select",
	"option", "table", "tr", "td", "th", "pre", "code",
}
