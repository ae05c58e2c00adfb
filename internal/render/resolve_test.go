package render_test

import (
	"testing"

	"github.com/eventflow-app/eventflow-api/internal/render"
	"github.com/stretchr/testify/assert"
)

func TestResolveText(t *testing.T) {
	fields := map[string]any{
		"name":    "Alice",
		"company": "Initech",
		"age":     42,
		"blank":   nil,
		"tricky":  "{{name}}",
	}

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain text untouched", "Hello World", "Hello World"},
		{"single token", "Hello {{name}}", "Hello Alice"},
		{"multiple tokens", "{{name}} - {{company}}", "Alice - Initech"},
		{"whitespace inside braces", "{{ name }}", "Alice"},
		{"absent field resolves empty", "Hi {{missing}}!", "Hi !"},
		{"nil field resolves empty", "[{{blank}}]", "[]"},
		{"non-string field stringified", "Age: {{age}}", "Age: 42"},
		{"single pass only", "{{tricky}}", "{{name}}"},
		{"invalid identifier left alone", "{{9lives}}", "{{9lives}}"},
		{"unclosed braces left alone", "{{name", "{{name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render.ResolveText(tt.content, fields))
		})
	}
}

func TestResolveElementsDoesNotMutateTemplate(t *testing.T) {
	elements := []render.Element{
		{
			Kind: render.KindText,
			Text: &render.TextAttrs{Content: "Hello {{name}}"},
		},
		{
			Kind:  render.KindShape,
			Shape: &render.ShapeAttrs{Fill: "#ff0000"},
		},
	}

	resolved := render.ResolveElements(elements, map[string]any{"name": "Alice"})

	assert.Equal(t, "Hello Alice", resolved[0].Text.Content)
	assert.Equal(t, "Hello {{name}}", elements[0].Text.Content, "template element must stay pristine")
	assert.NotSame(t, elements[0].Text, resolved[0].Text)

	// Resolving for a second entity starts from the template again.
	second := render.ResolveElements(elements, map[string]any{"name": "Bob"})
	assert.Equal(t, "Hello Bob", second[0].Text.Content)
}
