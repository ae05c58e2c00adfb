package render_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/eventflow-app/eventflow-api/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementUnmarshalDispatch(t *testing.T) {
	raw := `[
		{"type":"text","x":10,"y":20,"content":"Hi {{name}}","fontSize":24,"fill":"#333333"},
		{"type":"image","x":0,"y":0,"width":100,"height":50,"src":"https://example.com/logo.png","borderRadius":8},
		{"type":"shape","x":5,"y":5,"width":40,"height":40,"fill":"#ff0000","stroke":"#000000","strokeWidth":2,"rotation":45},
		{"type":"hologram","x":1,"y":2}
	]`

	var elements []render.Element
	require.NoError(t, json.Unmarshal([]byte(raw), &elements))
	require.Len(t, elements, 4)

	text := elements[0]
	assert.Equal(t, render.KindText, text.Kind)
	require.NotNil(t, text.Text)
	assert.Equal(t, "Hi {{name}}", text.Text.Content)
	assert.Equal(t, 24.0, text.Text.FontSize)
	assert.Nil(t, text.Image)
	assert.Nil(t, text.Shape)

	img := elements[1]
	assert.Equal(t, render.KindImage, img.Kind)
	require.NotNil(t, img.Image)
	assert.Equal(t, "https://example.com/logo.png", img.Image.Source)
	assert.Equal(t, 8.0, img.BorderRadius)

	shape := elements[2]
	assert.Equal(t, render.KindShape, shape.Kind)
	require.NotNil(t, shape.Shape)
	assert.Equal(t, "#ff0000", shape.Shape.Fill)
	assert.Equal(t, 2.0, shape.Shape.StrokeWidth)
	assert.Equal(t, 45.0, shape.Rotation)

	// Editor versions from the future decode to a skippable variant instead
	// of failing the whole template.
	assert.Equal(t, render.KindUnknown, elements[3].Kind)
}

func TestElementMarshalRoundTrip(t *testing.T) {
	el := render.Element{
		Kind:  render.KindShape,
		X:     1, Y: 2, Width: 3, Height: 4,
		Shape: &render.ShapeAttrs{Fill: "#00ff00"},
	}

	data, err := json.Marshal(el)
	require.NoError(t, err)

	var back render.Element
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, render.KindShape, back.Kind)
	assert.Equal(t, "#00ff00", back.Shape.Fill)
	assert.Equal(t, el.Width, back.Width)
}

func TestParseTemplate(t *testing.T) {
	tpl, err := render.ParseTemplate([]byte(`{
		"name":"Badge",
		"width":600,
		"height":400,
		"backgroundColor":"#fafafa",
		"elements":[{"type":"text","content":"{{name}}"}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, "Badge", tpl.Name)
	assert.Equal(t, 600, tpl.Width)
	assert.Len(t, tpl.Elements, 1)
}

func TestParseTemplateRejectsBadDimensions(t *testing.T) {
	for _, design := range []string{
		`{"name":"zero","width":0,"height":400}`,
		`{"name":"negative","width":600,"height":-1}`,
		`{"name":"absent"}`,
	} {
		_, err := render.ParseTemplate([]byte(design))
		assert.True(t, errors.Is(err, render.ErrInvalidDimension), "design %s", design)
	}
}

func TestParseTemplateRejectsMalformedJSON(t *testing.T) {
	_, err := render.ParseTemplate([]byte(`{"width":`))
	assert.Error(t, err)
}
