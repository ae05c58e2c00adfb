package render_test

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/eventflow-app/eventflow-api/internal/render"
	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer() *render.Renderer {
	return render.NewRenderer(render.NewFontRegistry(""))
}

func whiteSurface(t *testing.T, w, h int) *gg.Context {
	t.Helper()
	dc, err := render.NewSurface(w, h)
	require.NoError(t, err)
	dc.SetHexColor("#ffffff")
	dc.Clear()
	return dc
}

func channelAt(img image.Image, x, y int) (r, g, b uint32) {
	r, g, b, _ = img.At(x, y).RGBA()
	return r >> 8, g >> 8, b >> 8
}

func TestDrawShapeFill(t *testing.T) {
	dc := whiteSurface(t, 40, 40)
	renderer := newTestRenderer()

	renderer.DrawElements(context.Background(), dc, []render.Element{{
		Kind: render.KindShape,
		X:    10, Y: 10, Width: 20, Height: 20,
		Shape: &render.ShapeAttrs{Fill: "#ff0000"},
	}}, "test")

	r, g, b := channelAt(dc.Image(), 20, 20)
	assert.Greater(t, r, uint32(200))
	assert.Less(t, g, uint32(50))
	assert.Less(t, b, uint32(50))

	// Outside the rectangle stays background white.
	r, g, b = channelAt(dc.Image(), 2, 2)
	assert.Greater(t, r, uint32(200))
	assert.Greater(t, g, uint32(200))
	assert.Greater(t, b, uint32(200))
}

func TestDrawShapeBorderRadiusCutsCorners(t *testing.T) {
	dc := whiteSurface(t, 40, 40)
	renderer := newTestRenderer()

	renderer.DrawElements(context.Background(), dc, []render.Element{{
		Kind: render.KindShape,
		X:    10, Y: 10, Width: 20, Height: 20,
		BorderRadius: 10,
		Shape:        &render.ShapeAttrs{Fill: "#0000ff"},
	}}, "test")

	// Center is filled.
	_, _, b := channelAt(dc.Image(), 20, 20)
	assert.Greater(t, b, uint32(200))

	// The square corner sits outside the fully rounded rectangle.
	r, g, b := channelAt(dc.Image(), 11, 11)
	assert.Greater(t, r, uint32(200))
	assert.Greater(t, g, uint32(200))
	assert.Greater(t, b, uint32(200))
}

func TestDrawShapeRotation(t *testing.T) {
	dc := whiteSurface(t, 40, 40)
	renderer := newTestRenderer()

	// A 45-degree rotation about the box center pulls the axis-aligned
	// corners out of the painted area while keeping the center covered.
	renderer.DrawElements(context.Background(), dc, []render.Element{{
		Kind: render.KindShape,
		X:    10, Y: 10, Width: 20, Height: 20,
		Rotation: 45,
		Shape:    &render.ShapeAttrs{Fill: "#000000"},
	}}, "test")

	r, g, b := channelAt(dc.Image(), 20, 20)
	assert.Less(t, r+g+b, uint32(150))

	r, g, b = channelAt(dc.Image(), 11, 11)
	assert.Greater(t, r, uint32(200))
	assert.Greater(t, g, uint32(200))
	assert.Greater(t, b, uint32(200))
}

func TestDrawElementsPaintOrder(t *testing.T) {
	renderer := newTestRenderer()
	red := render.Element{
		Kind: render.KindShape,
		X:    5, Y: 5, Width: 20, Height: 20,
		Shape: &render.ShapeAttrs{Fill: "#ff0000"},
	}
	blue := render.Element{
		Kind: render.KindShape,
		X:    15, Y: 15, Width: 20, Height: 20,
		Shape: &render.ShapeAttrs{Fill: "#0000ff"},
	}

	// Both rectangles cover (20,20); the later element must win there.
	dc := whiteSurface(t, 40, 40)
	renderer.DrawElements(context.Background(), dc, []render.Element{red, blue}, "test")
	r, _, b := channelAt(dc.Image(), 20, 20)
	assert.Greater(t, b, uint32(200))
	assert.Less(t, r, uint32(50))

	dc = whiteSurface(t, 40, 40)
	renderer.DrawElements(context.Background(), dc, []render.Element{blue, red}, "test")
	r, _, b = channelAt(dc.Image(), 20, 20)
	assert.Greater(t, r, uint32(200))
	assert.Less(t, b, uint32(50))
}

func countDark(img image.Image, x0, y0, x1, y1 int) int {
	dark := 0
	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			r, g, b := channelAt(img, x, y)
			if r+g+b < 300 {
				dark++
			}
		}
	}
	return dark
}

func TestDrawTextRotatesAboutAnchor(t *testing.T) {
	dc := whiteSurface(t, 60, 40)
	renderer := newTestRenderer()

	// Unrotated, glyphs hang below and right of the (x,y) anchor. A half
	// turn about the anchor itself flips them above and left of it.
	renderer.DrawElements(context.Background(), dc, []render.Element{{
		Kind: render.KindText,
		X:    30, Y: 20,
		Rotation: 180,
		Text:     &render.TextAttrs{Content: "X", FontSize: 16, Fill: "#000000"},
	}}, "test")

	img := dc.Image()
	assert.Greater(t, countDark(img, 0, 0, 30, 20), 0, "glyphs must land above-left of the anchor")
	assert.Zero(t, countDark(img, 32, 22, 60, 40), "nothing may remain below-right of the anchor")
}

func TestDrawImageRotatesAboutBoxCenter(t *testing.T) {
	solid := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			solid.Set(x, y, color.RGBA{B: 255, A: 255})
		}
	}
	renderer := &render.Renderer{
		Fonts: render.NewFontRegistry(""),
		Load: func(ctx context.Context, source string) (image.Image, error) {
			return solid, nil
		},
	}

	// A half turn about the box center maps the box onto itself, so the
	// coverage must not move the way an anchor rotation would.
	dc := whiteSurface(t, 40, 40)
	renderer.DrawElements(context.Background(), dc, []render.Element{{
		Kind: render.KindImage,
		X:    10, Y: 10, Width: 16, Height: 16,
		Rotation: 180,
		Image:    &render.ImageAttrs{Source: "data:unused"},
	}}, "test")

	for _, p := range [][2]int{{12, 12}, {18, 18}, {24, 24}} {
		_, _, b := channelAt(dc.Image(), p[0], p[1])
		assert.Greater(t, b, uint32(200), "pixel (%d,%d) must stay covered", p[0], p[1])
	}
	r, g, b := channelAt(dc.Image(), 4, 4)
	assert.Greater(t, r+g+b, uint32(700), "outside the box stays white")
}

func TestDrawTextPaintsGlyphs(t *testing.T) {
	dc := whiteSurface(t, 60, 40)
	renderer := newTestRenderer()

	renderer.DrawElements(context.Background(), dc, []render.Element{{
		Kind: render.KindText,
		X:    5, Y: 5,
		Text: &render.TextAttrs{Content: "XX", FontSize: 20, Fill: "#000000"},
	}}, "test")

	// At least one pixel inside the glyph box must be dark.
	dark := 0
	for x := 0; x < 60; x++ {
		for y := 0; y < 40; y++ {
			r, g, b := channelAt(dc.Image(), x, y)
			if r+g+b < 300 {
				dark++
			}
		}
	}
	assert.Greater(t, dark, 5, "expected glyph pixels on the surface")
}

func TestDrawSkipsDegenerateElements(t *testing.T) {
	dc := whiteSurface(t, 20, 20)
	renderer := newTestRenderer()

	// None of these may panic or paint: missing attrs, empty content,
	// non-positive boxes, unknown kind.
	renderer.DrawElements(context.Background(), dc, []render.Element{
		{Kind: render.KindText},
		{Kind: render.KindText, Text: &render.TextAttrs{Content: ""}},
		{Kind: render.KindShape, Width: 0, Height: 10, Shape: &render.ShapeAttrs{Fill: "#ff0000"}},
		{Kind: render.KindImage, Width: 10, Height: 10},
		{Kind: render.KindUnknown, Width: 10, Height: 10},
	}, "test")

	r, g, b := channelAt(dc.Image(), 10, 10)
	assert.Greater(t, r+g+b, uint32(700), "surface must stay white")
}

func TestDrawImageUnloadableSourceIsSkipped(t *testing.T) {
	dc := whiteSurface(t, 20, 20)
	renderer := newTestRenderer()

	renderer.DrawElements(context.Background(), dc, []render.Element{{
		Kind: render.KindImage,
		X:    0, Y: 0, Width: 20, Height: 20,
		Image: &render.ImageAttrs{Source: "bogus://nowhere"},
	}}, "test")

	r, g, b := channelAt(dc.Image(), 10, 10)
	assert.Greater(t, r+g+b, uint32(700), "element must degrade to nothing")
}
