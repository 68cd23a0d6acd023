package css

import (
	"strconv"
	"strings"
)

// Viewport is the part of the window that media queries look at.
type Viewport struct {
	Width  float64
	Height float64
}

// rootFontSize resolves em and rem lengths in media features.
const rootFontSize = 16

// EvaluateMedia reports whether a media query list matches the viewport.
// It understands media types (all, screen, print), "not" and "only",
// "and"-joined features and comma separated lists. Supported features are
// width/height with min-/max- prefixes and orientation. An empty query
// matches.
func EvaluateMedia(query string, vp Viewport) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}
	for _, q := range strings.Split(query, ",") {
		if evaluateMediaQuery(strings.TrimSpace(q), vp) {
			return true
		}
	}
	return false
}

func evaluateMediaQuery(q string, vp Viewport) bool {
	if q == "" {
		return false
	}
	negate := false
	switch {
	case strings.HasPrefix(q, "not "):
		negate = true
		q = strings.TrimSpace(q[4:])
	case strings.HasPrefix(q, "only "):
		q = strings.TrimSpace(q[5:])
	}

	result := true
	for _, part := range splitAnd(q) {
		if !evaluateMediaPart(part, vp) {
			result = false
			break
		}
	}
	if negate {
		return !result
	}
	return result
}

// splitAnd splits on the "and" keyword outside parentheses.
func splitAnd(q string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(q); i++ {
		switch q[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ' ':
			if depth == 0 && strings.HasPrefix(q[i:], " and ") {
				parts = append(parts, strings.TrimSpace(q[start:i]))
				start = i + len(" and ")
				i = start - 1
			}
		}
	}
	return append(parts, strings.TrimSpace(q[start:]))
}

func evaluateMediaPart(part string, vp Viewport) bool {
	switch part {
	case "all", "screen":
		return true
	case "print", "speech":
		return false
	}
	if !strings.HasPrefix(part, "(") || !strings.HasSuffix(part, ")") {
		return false
	}
	inner := strings.TrimSpace(part[1 : len(part)-1])
	if strings.HasPrefix(inner, "(") {
		// nested condition such as ((min-width: 10px))
		return evaluateMediaQuery(inner, vp)
	}
	name, value, hasValue := strings.Cut(inner, ":")
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)

	switch name {
	case "orientation":
		if !hasValue {
			return true
		}
		if vp.Height >= vp.Width {
			return value == "portrait"
		}
		return value == "landscape"
	case "width", "min-width", "max-width":
		return compareFeature(name, value, hasValue, vp.Width)
	case "height", "min-height", "max-height":
		return compareFeature(name, value, hasValue, vp.Height)
	}
	return false
}

func compareFeature(name, value string, hasValue bool, actual float64) bool {
	if !hasValue {
		// boolean context: (width) is true for any non-zero width
		return actual > 0
	}
	limit, ok := parseMediaLength(value)
	if !ok {
		return false
	}
	switch {
	case strings.HasPrefix(name, "min-"):
		return actual >= limit
	case strings.HasPrefix(name, "max-"):
		return actual <= limit
	default:
		return actual == limit
	}
}

func parseMediaLength(v string) (float64, bool) {
	scale := 1.0
	switch {
	case strings.HasSuffix(v, "rem"):
		v, scale = strings.TrimSuffix(v, "rem"), rootFontSize
	case strings.HasSuffix(v, "em"):
		v, scale = strings.TrimSuffix(v, "em"), rootFontSize
	case strings.HasSuffix(v, "px"):
		v = strings.TrimSuffix(v, "px")
	case v != "0":
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return f * scale, true
}
