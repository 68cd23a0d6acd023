package css

import (
	"strings"

	dcss "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/pkg/errors"
)

// Declaration is a single property: value pair of a rule or inline style.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// Rule is a style rule flattened out of any enclosing at-rules.
type Rule struct {
	Selectors    []string
	Declarations []Declaration

	// Media is the condition of the enclosing @media blocks, joined with
	// "and" when nested. Empty for top-level rules.
	Media string

	compiled []*Selector
	invalid  bool
}

// Stylesheet is a parsed, flattened list of style rules in source order.
type Stylesheet struct {
	Rules []*Rule
}

// ParseStylesheet parses stylesheet text. Rules inside @media and @supports
// blocks are flattened with their media condition preserved; other at-rules
// (@keyframes, @font-face, @import) carry no element styles and are skipped.
func ParseStylesheet(text string) (*Stylesheet, error) {
	parsed, err := parser.Parse(text)
	if err != nil {
		return nil, errors.Wrap(err, "parse stylesheet")
	}
	sheet := &Stylesheet{}
	for _, r := range parsed.Rules {
		sheet.collect(r, "")
	}
	return sheet, nil
}

// MustParseStylesheet is like ParseStylesheet but panics on error. It is meant
// for stylesheets compiled into the program.
func MustParseStylesheet(text string) *Stylesheet {
	sheet, err := ParseStylesheet(text)
	if err != nil {
		panic(err)
	}
	return sheet
}

func (s *Stylesheet) collect(r *dcss.Rule, media string) {
	if r.Kind == dcss.AtRule {
		switch strings.ToLower(r.Name) {
		case "@media":
			cond := strings.TrimSpace(r.Prelude)
			if media != "" {
				cond = media + " and " + cond
			}
			for _, inner := range r.Rules {
				s.collect(inner, cond)
			}
		case "@supports":
			for _, inner := range r.Rules {
				s.collect(inner, media)
			}
		}
		return
	}

	rule := &Rule{Media: media}
	for _, sel := range r.Selectors {
		if sel = strings.TrimSpace(sel); sel != "" {
			rule.Selectors = append(rule.Selectors, sel)
		}
	}
	rule.Declarations = convertDeclarations(r.Declarations)

	// A selector list with any invalid member drops the whole rule.
	for _, sel := range rule.Selectors {
		compiled, err := CompileSelector(sel)
		if err != nil {
			rule.invalid = true
			rule.compiled = nil
			break
		}
		rule.compiled = append(rule.compiled, compiled)
	}
	s.Rules = append(s.Rules, rule)
}

// ParseDeclarations parses a declaration block such as the content of a
// style attribute ("color: red; margin: 0 !important").
func ParseDeclarations(text string) ([]Declaration, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, errors.Wrap(err, "parse declarations")
	}
	return convertDeclarations(decls), nil
}

func convertDeclarations(decls []*dcss.Declaration) []Declaration {
	out := make([]Declaration, 0, len(decls))
	for _, d := range decls {
		prop := strings.TrimSpace(d.Property)
		if !IsCustomProperty(prop) {
			prop = strings.ToLower(prop)
		}
		value := strings.TrimSpace(d.Value)
		if prop == "" || value == "" {
			continue
		}
		out = append(out, Declaration{Property: prop, Value: value, Important: d.Important})
	}
	return out
}

// SerializeDeclarations writes declarations back into style attribute form.
func SerializeDeclarations(decls []Declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		part := d.Property + ": " + d.Value
		if d.Important {
			part += " !important"
		}
		parts = append(parts, part+";")
	}
	return strings.Join(parts, " ")
}
