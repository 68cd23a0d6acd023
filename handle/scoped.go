package handle

import (
	"fmt"
	"strings"

	"github.com/chrisuehlinger/avita/css"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Breakpoint min-widths in px.
const (
	BreakpointSM  = 640
	BreakpointMD  = 768
	BreakpointLG  = 1024
	BreakpointXL  = 1280
	BreakpointXXL = 1536
)

// newScopedClass returns a fresh class name.
func newScopedClass() string { return "class-" + uuid.New().String() }

// ruleBody renders declarations, every one forced !important, in sorted
// property order.
func ruleBody(props Props) string {
	var sb strings.Builder
	for _, k := range props.sortedKeys() {
		fmt.Fprintf(&sb, "%s: %s !important; ", css.Kebab(k), props[k])
	}
	return strings.TrimSpace(sb.String())
}

// scoped adds a new class to every selected element and appends the rule
// built by wrap around its body.
func (h *Handle) scoped(props Props, wrap func(class, body string) string) *Handle {
	class := newScopedClass()
	h.AddClass(class)
	rule := wrap(class, ruleBody(props))
	h.Document().GeneratedStyles().Append(rule)
	logrus.WithField("rule", rule).Debug("scoped rule generated")
	return h
}

func (h *Handle) pseudo(state string, props Props) *Handle {
	return h.scoped(props, func(class, body string) string {
		return fmt.Sprintf(".%s:%s { %s }", class, state, body)
	})
}

// Hover styles the handle while hovered.
func (h *Handle) Hover(prop, value string) *Handle { return h.pseudo("hover", Props{prop: value}) }

// HoverAll is Hover for several properties.
func (h *Handle) HoverAll(props Props) *Handle { return h.pseudo("hover", props) }

// Active styles the handle while activated.
func (h *Handle) Active(prop, value string) *Handle { return h.pseudo("active", Props{prop: value}) }

// ActiveAll is Active for several properties.
func (h *Handle) ActiveAll(props Props) *Handle { return h.pseudo("active", props) }

// Focus styles the handle while focused.
func (h *Handle) Focus(prop, value string) *Handle { return h.pseudo("focus", Props{prop: value}) }

// FocusAll is Focus for several properties.
func (h *Handle) FocusAll(props Props) *Handle { return h.pseudo("focus", props) }

// MediaAll styles the handle when query matches. A bare feature such as
// "min-width: 900px" is parenthesized; full queries like
// "screen and (min-width: 600px)" are used as given.
func (h *Handle) MediaAll(query string, props Props) *Handle {
	cond := mediaCondition(query)
	return h.scoped(props, func(class, body string) string {
		return fmt.Sprintf("@media %s { .%s { %s } }", cond, class, body)
	})
}

func mediaCondition(query string) string {
	query = strings.TrimSpace(query)
	if !strings.ContainsAny(query, "()") && strings.Contains(query, ":") {
		return "(" + query + ")"
	}
	return query
}

// Media is MediaAll for one property.
func (h *Handle) Media(query, prop, value string) *Handle {
	return h.MediaAll(query, Props{prop: value})
}

func minWidth(px int) string { return fmt.Sprintf("min-width: %dpx", px) }

// SM styles the handle from 640px up.
func (h *Handle) SM(prop, value string) *Handle { return h.Media(minWidth(BreakpointSM), prop, value) }

// MD styles the handle from 768px up.
func (h *Handle) MD(prop, value string) *Handle { return h.Media(minWidth(BreakpointMD), prop, value) }

// LG styles the handle from 1024px up.
func (h *Handle) LG(prop, value string) *Handle { return h.Media(minWidth(BreakpointLG), prop, value) }

// XL styles the handle from 1280px up.
func (h *Handle) XL(prop, value string) *Handle { return h.Media(minWidth(BreakpointXL), prop, value) }

// XXL styles the handle from 1536px up.
func (h *Handle) XXL(prop, value string) *Handle {
	return h.Media(minWidth(BreakpointXXL), prop, value)
}

// SMAll is SM for several properties.
func (h *Handle) SMAll(props Props) *Handle { return h.MediaAll(minWidth(BreakpointSM), props) }

// MDAll is MD for several properties.
func (h *Handle) MDAll(props Props) *Handle { return h.MediaAll(minWidth(BreakpointMD), props) }

// LGAll is LG for several properties.
func (h *Handle) LGAll(props Props) *Handle { return h.MediaAll(minWidth(BreakpointLG), props) }

// XLAll is XL for several properties.
func (h *Handle) XLAll(props Props) *Handle { return h.MediaAll(minWidth(BreakpointXL), props) }

// XXLAll is XXL for several properties.
func (h *Handle) XXLAll(props Props) *Handle { return h.MediaAll(minWidth(BreakpointXXL), props) }
