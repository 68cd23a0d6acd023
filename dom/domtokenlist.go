package dom

import "strings"

// DOMTokenList is a live view of a whitespace-separated attribute, usually
// class. Every call reads and writes the attribute directly.
type DOMTokenList struct {
	element  *Element
	attrName string
}

func validateToken(token string) error {
	if token == "" {
		return ErrSyntax("the token must not be empty")
	}
	if strings.ContainsAny(token, " \t\n\f\r") {
		return ErrInvalidCharacter("the token '" + token + "' contains whitespace")
	}
	return nil
}

func validateTokens(tokens []string) error {
	for _, t := range tokens {
		if err := validateToken(t); err != nil {
			return err
		}
	}
	return nil
}

func (l *DOMTokenList) tokens() []string {
	fields := strings.Fields(l.element.GetAttribute(l.attrName))
	seen := make(map[string]bool, len(fields))
	out := fields[:0]
	for _, f := range fields {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

func (l *DOMTokenList) setTokens(tokens []string) {
	if len(tokens) == 0 && !l.element.HasAttribute(l.attrName) {
		return
	}
	l.element.SetAttribute(l.attrName, strings.Join(tokens, " "))
}

// Length returns the number of distinct tokens.
func (l *DOMTokenList) Length() int { return len(l.tokens()) }

// Item returns the token at index, or "" when out of range.
func (l *DOMTokenList) Item(index int) string {
	toks := l.tokens()
	if index < 0 || index >= len(toks) {
		return ""
	}
	return toks[index]
}

// Contains reports whether token is present.
func (l *DOMTokenList) Contains(token string) bool {
	for _, t := range l.tokens() {
		if t == token {
			return true
		}
	}
	return false
}

// Add adds tokens that are not yet present, keeping order.
func (l *DOMTokenList) Add(tokens ...string) error {
	if err := validateTokens(tokens); err != nil {
		return err
	}
	toks := l.tokens()
	for _, t := range tokens {
		if !containsString(toks, t) {
			toks = append(toks, t)
		}
	}
	l.setTokens(toks)
	return nil
}

// Remove removes tokens that are present.
func (l *DOMTokenList) Remove(tokens ...string) error {
	if err := validateTokens(tokens); err != nil {
		return err
	}
	var out []string
	for _, t := range l.tokens() {
		if !containsString(tokens, t) {
			out = append(out, t)
		}
	}
	l.setTokens(out)
	return nil
}

// Toggle removes token when present and adds it otherwise. With force the
// token is added (true) or removed (false). It reports whether the token is
// present afterwards.
func (l *DOMTokenList) Toggle(token string, force ...bool) (bool, error) {
	if err := validateToken(token); err != nil {
		return false, err
	}
	want := !l.Contains(token)
	if len(force) > 0 {
		want = force[0]
	}
	if want {
		return true, l.Add(token)
	}
	return false, l.Remove(token)
}

// Replace swaps oldToken for newToken in place. It reports whether oldToken
// was present.
func (l *DOMTokenList) Replace(oldToken, newToken string) (bool, error) {
	if err := validateTokens([]string{oldToken, newToken}); err != nil {
		return false, err
	}
	toks := l.tokens()
	idx := -1
	for i, t := range toks {
		if t == oldToken {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}
	var out []string
	for i, t := range toks {
		switch {
		case i == idx:
			if !containsString(out, newToken) {
				out = append(out, newToken)
			}
		case t == newToken:
			if !containsString(out, newToken) {
				out = append(out, t)
			}
		default:
			out = append(out, t)
		}
	}
	l.setTokens(out)
	return true, nil
}

// Values returns the tokens in order.
func (l *DOMTokenList) Values() []string { return l.tokens() }

// Value returns the raw attribute value.
func (l *DOMTokenList) Value() string { return l.element.GetAttribute(l.attrName) }

// SetValue replaces the raw attribute value.
func (l *DOMTokenList) SetValue(v string) { l.element.SetAttribute(l.attrName, v) }

func (l *DOMTokenList) String() string { return l.Value() }

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
