package render

import (
	"fmt"
	"regexp"
)

var tokenPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// ResolveText substitutes {{field}} tokens with stringified entity fields.
// An absent or nil field resolves to the empty string, never the literal
// token. A single pass only: substituted values are not re-scanned.
func ResolveText(content string, fields map[string]any) string {
	return tokenPattern.ReplaceAllStringFunc(content, func(token string) string {
		name := tokenPattern.FindStringSubmatch(token)[1]
		value, ok := fields[name]
		if !ok || value == nil {
			return ""
		}
		return fmt.Sprintf("%v", value)
	})
}

// ResolveElements returns a per-entity copy of the template elements with
// text content resolved. The input slice is never mutated; the template
// stays shareable across the batch.
func ResolveElements(elements []Element, fields map[string]any) []Element {
	resolved := make([]Element, len(elements))
	for i, el := range elements {
		resolved[i] = el
		if el.Kind == KindText && el.Text != nil {
			text := *el.Text
			text.Content = ResolveText(text.Content, fields)
			resolved[i].Text = &text
		}
	}
	return resolved
}
