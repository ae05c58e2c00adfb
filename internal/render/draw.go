package render

import (
	"context"
	"image"
	"log/slog"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

// Renderer draws template elements onto a surface. Fonts and Load are shared
// across a batch; surfaces are not.
type Renderer struct {
	Fonts *FontRegistry
	Load  ImageLoader
}

// NewRenderer wires a renderer with the default HTTP/data-URL image loader.
func NewRenderer(fonts *FontRegistry) *Renderer {
	return &Renderer{Fonts: fonts, Load: LoadImage}
}

// DrawElements paints elements in slice order; later elements occlude
// earlier ones. An image element whose source fails to load is skipped and
// logged, degrading that element without failing the entity.
func (r *Renderer) DrawElements(ctx context.Context, dc *gg.Context, elements []Element, entityID string) {
	for _, el := range elements {
		switch el.Kind {
		case KindText:
			r.drawText(dc, el)
		case KindImage:
			r.drawImage(ctx, dc, el, entityID)
		case KindShape:
			r.drawShape(dc, el)
		default:
			slog.Debug("Skipping unknown element kind", "entity_id", entityID)
		}
	}
}

// drawText rotates about the element's own (x,y) anchor, not the glyph box
// center. This matches the editor's WYSIWYG convention for text.
func (r *Renderer) drawText(dc *gg.Context, el Element) {
	if el.Text == nil || el.Text.Content == "" {
		return
	}

	dc.Push()
	if el.Rotation != 0 {
		dc.RotateAbout(gg.Radians(el.Rotation), el.X, el.Y)
	}

	face := r.Fonts.Face(el.Text.FontFamily, el.Text.FontWeight, el.Text.FontStyle, el.Text.FontSize)
	dc.SetFontFace(face)

	fill := el.Text.Fill
	if fill == "" {
		fill = "#000000"
	}
	dc.SetHexColor(fill)

	// ay=1 shifts the baseline down by the font height so (x,y) is the top
	// left of the glyph box.
	dc.DrawStringAnchored(el.Text.Content, el.X, el.Y, 0, 1)
	dc.Pop()
}

// drawImage rotates about the box center and applies a rounded-rectangle
// clip when borderRadius is set. gg's Pop does not restore the clip mask, so
// it is reset explicitly before leaving the element.
func (r *Renderer) drawImage(ctx context.Context, dc *gg.Context, el Element, entityID string) {
	if el.Image == nil || el.Width <= 0 || el.Height <= 0 {
		return
	}

	img, err := r.Load(ctx, el.Image.Source)
	if err != nil {
		slog.Warn("Skipping image element with unloadable source",
			"entity_id", entityID,
			"source", truncateSource(el.Image.Source),
			"error", err)
		return
	}

	cx := el.X + el.Width/2
	cy := el.Y + el.Height/2

	dc.Push()
	if el.Rotation != 0 {
		dc.RotateAbout(gg.Radians(el.Rotation), cx, cy)
	}

	clipped := el.BorderRadius > 0
	if clipped {
		dc.DrawRoundedRectangle(el.X, el.Y, el.Width, el.Height, clampRadius(el.BorderRadius, el.Width, el.Height))
		dc.Clip()
	}

	dc.DrawImage(scaleImage(img, int(el.Width), int(el.Height)), int(el.X), int(el.Y))

	if clipped {
		dc.ResetClip()
	}
	dc.Pop()
}

// drawShape fills and optionally strokes a rectangle, rotating about the box
// center like images.
func (r *Renderer) drawShape(dc *gg.Context, el Element) {
	if el.Shape == nil || el.Width <= 0 || el.Height <= 0 {
		return
	}

	cx := el.X + el.Width/2
	cy := el.Y + el.Height/2

	dc.Push()
	if el.Rotation != 0 {
		dc.RotateAbout(gg.Radians(el.Rotation), cx, cy)
	}

	if el.BorderRadius > 0 {
		dc.DrawRoundedRectangle(el.X, el.Y, el.Width, el.Height, clampRadius(el.BorderRadius, el.Width, el.Height))
	} else {
		dc.DrawRectangle(el.X, el.Y, el.Width, el.Height)
	}

	hasStroke := el.Shape.Stroke != "" && el.Shape.StrokeWidth > 0

	if el.Shape.Fill != "" {
		dc.SetHexColor(el.Shape.Fill)
		if hasStroke {
			dc.FillPreserve()
		} else {
			dc.Fill()
		}
	}

	if hasStroke {
		dc.SetHexColor(el.Shape.Stroke)
		dc.SetLineWidth(el.Shape.StrokeWidth)
		dc.Stroke()
	} else if el.Shape.Fill == "" {
		dc.ClearPath()
	}

	dc.Pop()
}

func clampRadius(r float64, w float64, h float64) float64 {
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	return r
}

func scaleImage(img image.Image, w int, h int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() == w && bounds.Dy() == h {
		return img
	}
	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.BiLinear.Scale(scaled, scaled.Bounds(), img, bounds, xdraw.Over, nil)
	return scaled
}
