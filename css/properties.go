// Package css implements the styling half of the headless page model: the
// property table, stylesheet parsing, media queries, selector matching and
// the cascade that produces computed styles.
package css

import "strings"

// PropertyDefault defines the initial value and inheritance of a CSS property.
type PropertyDefault struct {
	InitialValue string
	Inherited    bool
}

// PropertyDefaults lists every property the style interface knows about.
// Setting a property outside this table through an element's style is ignored.
var PropertyDefaults = map[string]PropertyDefault{
	// Box model
	"display":    {InitialValue: "inline"},
	"position":   {InitialValue: "static"},
	"float":      {InitialValue: "none"},
	"clear":      {InitialValue: "none"},
	"overflow":   {InitialValue: "visible"},
	"overflow-x": {InitialValue: "visible"},
	"overflow-y": {InitialValue: "visible"},
	"visibility": {InitialValue: "visible", Inherited: true},
	"z-index":    {InitialValue: "auto"},
	"box-sizing": {InitialValue: "content-box"},
	"box-shadow": {InitialValue: "none"},

	// Sizing
	"width":        {InitialValue: "auto"},
	"height":       {InitialValue: "auto"},
	"min-width":    {InitialValue: "0"},
	"min-height":   {InitialValue: "0"},
	"max-width":    {InitialValue: "none"},
	"max-height":   {InitialValue: "none"},
	"aspect-ratio": {InitialValue: "auto"},

	// Margins and padding
	"margin":         {InitialValue: "0"},
	"margin-top":     {InitialValue: "0"},
	"margin-right":   {InitialValue: "0"},
	"margin-bottom":  {InitialValue: "0"},
	"margin-left":    {InitialValue: "0"},
	"padding":        {InitialValue: "0"},
	"padding-top":    {InitialValue: "0"},
	"padding-right":  {InitialValue: "0"},
	"padding-bottom": {InitialValue: "0"},
	"padding-left":   {InitialValue: "0"},

	// Borders and outline
	"border":          {InitialValue: "none"},
	"border-top":      {InitialValue: "none"},
	"border-right":    {InitialValue: "none"},
	"border-bottom":   {InitialValue: "none"},
	"border-left":     {InitialValue: "none"},
	"border-width":    {InitialValue: "medium"},
	"border-style":    {InitialValue: "none"},
	"border-color":    {InitialValue: "currentcolor"},
	"border-radius":   {InitialValue: "0"},
	"border-collapse": {InitialValue: "separate", Inherited: true},
	"border-spacing":  {InitialValue: "0", Inherited: true},
	"outline":         {InitialValue: "none"},
	"outline-color":   {InitialValue: "currentcolor"},
	"outline-style":   {InitialValue: "none"},
	"outline-width":   {InitialValue: "medium"},
	"outline-offset":  {InitialValue: "0"},

	// Positioning
	"top":    {InitialValue: "auto"},
	"right":  {InitialValue: "auto"},
	"bottom": {InitialValue: "auto"},
	"left":   {InitialValue: "auto"},
	"inset":  {InitialValue: "auto"},

	// Text and fonts
	"color":           {InitialValue: "black", Inherited: true},
	"font":            {InitialValue: "normal", Inherited: true},
	"font-family":     {InitialValue: "serif", Inherited: true},
	"font-size":       {InitialValue: "medium", Inherited: true},
	"font-style":      {InitialValue: "normal", Inherited: true},
	"font-weight":     {InitialValue: "normal", Inherited: true},
	"font-variant":    {InitialValue: "normal", Inherited: true},
	"line-height":     {InitialValue: "normal", Inherited: true},
	"letter-spacing":  {InitialValue: "normal", Inherited: true},
	"word-spacing":    {InitialValue: "normal", Inherited: true},
	"text-align":      {InitialValue: "start", Inherited: true},
	"text-decoration": {InitialValue: "none"},
	"text-transform":  {InitialValue: "none", Inherited: true},
	"text-indent":     {InitialValue: "0", Inherited: true},
	"text-shadow":     {InitialValue: "none", Inherited: true},
	"text-overflow":   {InitialValue: "clip"},
	"white-space":     {InitialValue: "normal", Inherited: true},
	"word-break":      {InitialValue: "normal", Inherited: true},
	"vertical-align":  {InitialValue: "baseline"},
	"direction":       {InitialValue: "ltr", Inherited: true},
	"unicode-bidi":    {InitialValue: "normal"},

	// Background
	"background":            {InitialValue: "transparent"},
	"background-color":      {InitialValue: "transparent"},
	"background-image":      {InitialValue: "none"},
	"background-repeat":     {InitialValue: "repeat"},
	"background-position":   {InitialValue: "0% 0%"},
	"background-attachment": {InitialValue: "scroll"},
	"background-size":       {InitialValue: "auto"},
	"background-clip":       {InitialValue: "border-box"},

	// Lists and tables
	"list-style":          {InitialValue: "disc", Inherited: true},
	"list-style-type":     {InitialValue: "disc", Inherited: true},
	"list-style-position": {InitialValue: "outside", Inherited: true},
	"list-style-image":    {InitialValue: "none", Inherited: true},
	"table-layout":        {InitialValue: "auto"},
	"empty-cells":         {InitialValue: "show", Inherited: true},
	"caption-side":        {InitialValue: "top", Inherited: true},

	// Flexbox
	"flex":            {InitialValue: "0 1 auto"},
	"flex-flow":       {InitialValue: "row nowrap"},
	"flex-direction":  {InitialValue: "row"},
	"flex-wrap":       {InitialValue: "nowrap"},
	"flex-grow":       {InitialValue: "0"},
	"flex-shrink":     {InitialValue: "1"},
	"flex-basis":      {InitialValue: "auto"},
	"justify-content": {InitialValue: "normal"},
	"justify-items":   {InitialValue: "legacy"},
	"align-items":     {InitialValue: "normal"},
	"align-content":   {InitialValue: "normal"},
	"align-self":      {InitialValue: "auto"},
	"place-items":     {InitialValue: "normal"},
	"place-content":   {InitialValue: "normal"},
	"order":           {InitialValue: "0"},

	// Grid
	"grid-template-columns": {InitialValue: "none"},
	"grid-template-rows":    {InitialValue: "none"},
	"grid-template-areas":   {InitialValue: "none"},
	"grid-column":           {InitialValue: "auto"},
	"grid-row":              {InitialValue: "auto"},
	"grid-area":             {InitialValue: "auto"},
	"gap":                   {InitialValue: "normal"},
	"row-gap":               {InitialValue: "normal"},
	"column-gap":            {InitialValue: "normal"},

	// Effects and interaction
	"opacity":         {InitialValue: "1"},
	"transform":       {InitialValue: "none"},
	"transition":      {InitialValue: "all 0s ease 0s"},
	"animation":       {InitialValue: "none"},
	"filter":          {InitialValue: "none"},
	"cursor":          {InitialValue: "auto", Inherited: true},
	"pointer-events":  {InitialValue: "auto", Inherited: true},
	"user-select":     {InitialValue: "auto"},
	"object-fit":      {InitialValue: "fill"},
	"scroll-behavior": {InitialValue: "auto"},

	// Generated content
	"content":       {InitialValue: "normal"},
	"quotes":        {InitialValue: "auto", Inherited: true},
	"counter-reset": {InitialValue: "none"},
}

// IsKnownProperty reports whether name (camelCase or kebab-case) is in the
// property table.
func IsKnownProperty(name string) bool {
	_, ok := PropertyDefaults[Kebab(name)]
	return ok
}

// IsCustomProperty reports whether name is a custom property ("--accent").
func IsCustomProperty(name string) bool {
	return strings.HasPrefix(name, "--") && len(name) > 2
}

// IsInherited reports whether the property inherits by default. Custom
// properties always inherit.
func IsInherited(name string) bool {
	if IsCustomProperty(name) {
		return true
	}
	return PropertyDefaults[name].Inherited
}

// Kebab converts a camelCase property name into its kebab-case form.
// "backgroundColor" becomes "background-color", "WebkitTransform" becomes
// "-webkit-transform". Names already containing a dash are only lower-cased;
// custom properties are returned untouched.
func Kebab(name string) string {
	if name == "" || IsCustomProperty(name) {
		return name
	}
	if strings.Contains(name, "-") {
		return strings.ToLower(name)
	}
	var sb strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 || isVendorPrefix(name) {
				sb.WriteByte('-')
			}
			sb.WriteByte(byte(r - 'A' + 'a'))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Camel converts a kebab-case property name into camelCase.
func Camel(name string) string {
	if name == "" || IsCustomProperty(name) {
		return name
	}
	vendor := strings.HasPrefix(name, "-")
	parts := strings.Split(strings.TrimPrefix(name, "-"), "-")
	var sb strings.Builder
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 0 && !vendor {
			sb.WriteString(part)
			continue
		}
		sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return sb.String()
}

func isVendorPrefix(name string) bool {
	for _, p := range []string{"Webkit", "Moz", "Ms", "O"} {
		if strings.HasPrefix(name, p) && len(name) > len(p) && name[len(p)] >= 'A' && name[len(p)] <= 'Z' {
			return true
		}
	}
	return false
}
