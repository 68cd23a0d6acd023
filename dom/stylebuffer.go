package dom

// StyleBuffer is the append-only record of generated style rules of a
// document. Every appended rule gets its own <style> element in <head>.
type StyleBuffer struct {
	doc   *Document
	rules []string
}

// Append adds rule to the document in a new <style> element and returns
// that element.
func (b *StyleBuffer) Append(rule string) *Element {
	style := b.doc.CreateElement("style")
	style.SetTextContent(rule)
	b.doc.Head().AppendChild(style)
	b.rules = append(b.rules, rule)
	return style
}

// Rules returns every appended rule in order.
func (b *StyleBuffer) Rules() []string { return append([]string(nil), b.rules...) }

// Len returns the number of appended rules.
func (b *StyleBuffer) Len() int { return len(b.rules) }
