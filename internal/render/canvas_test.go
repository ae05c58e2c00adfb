package render_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/eventflow-app/eventflow-api/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tinyPNG returns the PNG encoding of a solid-color 2x2 image.
func tinyPNG(t *testing.T, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNewSurface(t *testing.T) {
	dc, err := render.NewSurface(10, 20)
	require.NoError(t, err)
	assert.Equal(t, 10, dc.Width())
	assert.Equal(t, 20, dc.Height())

	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-5, 10}} {
		_, err := render.NewSurface(dims[0], dims[1])
		assert.True(t, errors.Is(err, render.ErrInvalidDimension), "dims %v", dims)
	}
}

func TestLoadImageDataURL(t *testing.T) {
	data := tinyPNG(t, color.RGBA{R: 255, A: 255})
	source := "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)

	img, err := render.LoadImage(context.Background(), source)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())
}

func TestLoadImageBadSources(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"unsupported scheme", "ftp://example.com/logo.png"},
		{"relative path", "logo.png"},
		{"malformed data URL", "data:image/png;base64"},
		{"garbage base64", "data:image/png;base64,!!!"},
		{"empty source", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := render.LoadImage(context.Background(), tt.source)
			assert.Error(t, err)
		})
	}
}

func TestDecodeImageBytes(t *testing.T) {
	img, err := render.DecodeImageBytes(tinyPNG(t, color.Black))
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dy())

	_, err = render.DecodeImageBytes([]byte("not an image"))
	assert.Error(t, err)
	var loadErr *render.LoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestEncodePNGRoundTrip(t *testing.T) {
	dc, err := render.NewSurface(4, 4)
	require.NoError(t, err)
	dc.SetHexColor("#00ff00")
	dc.Clear()

	data, err := render.EncodePNG(dc)
	require.NoError(t, err)

	img, err := render.DecodeImageBytes(data)
	require.NoError(t, err)
	r, g, b, _ := img.At(2, 2).RGBA()
	assert.Zero(t, r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Zero(t, b)
}

func TestEncodeJPEGRoundTrip(t *testing.T) {
	dc, err := render.NewSurface(4, 4)
	require.NoError(t, err)
	dc.SetHexColor("#00ff00")
	dc.Clear()

	data, err := render.EncodeJPEG(dc, 90)
	require.NoError(t, err)

	// JPEG is lossy; the solid green must survive approximately.
	img, err := render.DecodeImageBytes(data)
	require.NoError(t, err)
	r, g, b, _ := img.At(2, 2).RGBA()
	assert.Less(t, r>>8, uint32(50))
	assert.Greater(t, g>>8, uint32(200))
	assert.Less(t, b>>8, uint32(50))

	// Out-of-range quality falls back to the default instead of failing.
	data, err = render.EncodeJPEG(dc, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestFontRegistryFallback(t *testing.T) {
	// No font directory at all: every family resolves to the embedded
	// default instead of failing.
	registry := render.NewFontRegistry("")
	face := registry.Face("Comic Sans MS", "bold", "italic", 18)
	require.NotNil(t, face)

	// Unreadable directory degrades the same way.
	registry = render.NewFontRegistry("/nonexistent/fonts")
	face = registry.Face("", "", "", 0)
	require.NotNil(t, face)
}
