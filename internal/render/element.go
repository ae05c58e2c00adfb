package render

import (
	"encoding/json"
	"fmt"
)

// ElementKind tags the closed set of visual element variants. Unrecognized
// kinds decode to KindUnknown and are skipped at draw time, so templates
// saved by a newer editor fail closed instead of breaking a batch.
type ElementKind string

const (
	KindText    ElementKind = "text"
	KindImage   ElementKind = "image"
	KindShape   ElementKind = "shape"
	KindUnknown ElementKind = "unknown"
)

// TextAttrs carries the text-specific element fields. Content may embed
// {{field}} placeholder tokens resolved per entity.
type TextAttrs struct {
	Content    string  `json:"content"`
	FontFamily string  `json:"fontFamily"`
	FontSize   float64 `json:"fontSize"`
	FontWeight string  `json:"fontWeight"`
	FontStyle  string  `json:"fontStyle"`
	Fill       string  `json:"fill"`
}

// ImageAttrs carries the image-specific element fields.
type ImageAttrs struct {
	Source string `json:"src"`
}

// ShapeAttrs carries the shape-specific element fields.
type ShapeAttrs struct {
	Fill        string  `json:"fill"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"strokeWidth"`
}

// Element is one positioned visual primitive. Exactly one of Text, Image or
// Shape is set, matching Kind.
type Element struct {
	Kind         ElementKind
	X            float64
	Y            float64
	Width        float64
	Height       float64
	Rotation     float64
	BorderRadius float64

	Text  *TextAttrs
	Image *ImageAttrs
	Shape *ShapeAttrs
}

type elementJSON struct {
	Type         string  `json:"type"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	Rotation     float64 `json:"rotation"`
	BorderRadius float64 `json:"borderRadius"`

	Content    string  `json:"content"`
	FontFamily string  `json:"fontFamily"`
	FontSize   float64 `json:"fontSize"`
	FontWeight string  `json:"fontWeight"`
	FontStyle  string  `json:"fontStyle"`
	Fill       string  `json:"fill"`

	Source string `json:"src"`

	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"strokeWidth"`
}

// UnmarshalJSON dispatches on the "type" tag into the closed variant set.
func (e *Element) UnmarshalJSON(data []byte) error {
	var raw elementJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = Element{
		X:            raw.X,
		Y:            raw.Y,
		Width:        raw.Width,
		Height:       raw.Height,
		Rotation:     raw.Rotation,
		BorderRadius: raw.BorderRadius,
	}

	switch ElementKind(raw.Type) {
	case KindText:
		e.Kind = KindText
		e.Text = &TextAttrs{
			Content:    raw.Content,
			FontFamily: raw.FontFamily,
			FontSize:   raw.FontSize,
			FontWeight: raw.FontWeight,
			FontStyle:  raw.FontStyle,
			Fill:       raw.Fill,
		}
	case KindImage:
		e.Kind = KindImage
		e.Image = &ImageAttrs{Source: raw.Source}
	case KindShape:
		e.Kind = KindShape
		e.Shape = &ShapeAttrs{
			Fill:        raw.Fill,
			Stroke:      raw.Stroke,
			StrokeWidth: raw.StrokeWidth,
		}
	default:
		e.Kind = KindUnknown
	}

	return nil
}

// MarshalJSON round-trips an element back into editor form.
func (e Element) MarshalJSON() ([]byte, error) {
	raw := elementJSON{
		Type:         string(e.Kind),
		X:            e.X,
		Y:            e.Y,
		Width:        e.Width,
		Height:       e.Height,
		Rotation:     e.Rotation,
		BorderRadius: e.BorderRadius,
	}

	switch e.Kind {
	case KindText:
		if e.Text != nil {
			raw.Content = e.Text.Content
			raw.FontFamily = e.Text.FontFamily
			raw.FontSize = e.Text.FontSize
			raw.FontWeight = e.Text.FontWeight
			raw.FontStyle = e.Text.FontStyle
			raw.Fill = e.Text.Fill
		}
	case KindImage:
		if e.Image != nil {
			raw.Source = e.Image.Source
		}
	case KindShape:
		if e.Shape != nil {
			raw.Fill = e.Shape.Fill
			raw.Stroke = e.Shape.Stroke
			raw.StrokeWidth = e.Shape.StrokeWidth
		}
	}

	return json.Marshal(raw)
}

// Template is a saved canvas layout. It is read-only at render time; the
// elements slice order is the paint order.
type Template struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Width           int       `json:"width"`
	Height          int       `json:"height"`
	BackgroundColor string    `json:"backgroundColor"`
	BackgroundImage string    `json:"backgroundImage"`
	Elements        []Element `json:"elements"`
}

// ParseTemplate decodes a stored design document and validates the canvas
// dimensions.
func ParseTemplate(design []byte) (*Template, error) {
	var tpl Template
	if err := json.Unmarshal(design, &tpl); err != nil {
		return nil, fmt.Errorf("failed to parse template design: %w", err)
	}

	if tpl.Width <= 0 || tpl.Height <= 0 {
		return nil, fmt.Errorf("%w: template %q is %dx%d", ErrInvalidDimension, tpl.Name, tpl.Width, tpl.Height)
	}

	return &tpl, nil
}
