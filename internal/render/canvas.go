package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	_ "golang.org/x/image/webp"
)

// ErrInvalidDimension is returned when a surface is requested with a
// non-positive width or height.
var ErrInvalidDimension = fmt.Errorf("surface dimensions must be positive")

// LoadError marks an image source that could not be fetched or decoded.
// Callers decide per call site whether to propagate or degrade.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load image %q: %v", truncateSource(e.Source), e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func truncateSource(source string) string {
	if len(source) > 64 {
		return source[:64] + "..."
	}
	return source
}

// NewSurface creates a fixed-size drawing surface.
func NewSurface(width int, height int) (*gg.Context, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	return gg.NewContext(width, height), nil
}

// ImageLoader resolves an element image source into a decoded image.
type ImageLoader func(ctx context.Context, source string) (image.Image, error)

var httpClient = &http.Client{
	Timeout: 30 * time.Second,
}

// LoadImage fetches and decodes an image from an http(s) URL or a base64
// data URL. All failures come back as *LoadError so callers can treat them
// as recoverable.
func LoadImage(ctx context.Context, source string) (image.Image, error) {
	if source == "" {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("empty source")}
	}

	if strings.HasPrefix(source, "data:") {
		img, err := decodeDataURL(source)
		if err != nil {
			return nil, &LoadError{Source: source, Err: err}
		}
		return img, nil
	}

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, &LoadError{Source: source, Err: err}
		}

		resp, err := httpClient.Do(req)
		if err != nil {
			return nil, &LoadError{Source: source, Err: err}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, &LoadError{Source: source, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
		}

		img, _, err := image.Decode(resp.Body)
		if err != nil {
			return nil, &LoadError{Source: source, Err: err}
		}
		return img, nil
	}

	return nil, &LoadError{Source: source, Err: fmt.Errorf("unsupported source scheme")}
}

// DecodeImageBytes decodes an already-fetched image buffer.
func DecodeImageBytes(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Source: "buffer", Err: err}
	}
	return img, nil
}

func decodeDataURL(source string) (image.Image, error) {
	comma := strings.Index(source, ",")
	if comma < 0 {
		return nil, fmt.Errorf("malformed data URL")
	}

	meta := source[len("data:"):comma]
	if !strings.Contains(meta, "base64") {
		return nil, fmt.Errorf("unsupported data URL encoding %q", meta)
	}

	raw, err := base64.StdEncoding.DecodeString(source[comma+1:])
	if err != nil {
		return nil, fmt.Errorf("invalid base64 payload: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	return img, nil
}

// EncodePNG exports a surface to PNG bytes.
func EncodePNG(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeJPEG exports a surface to JPEG bytes at the given quality (1-100).
func EncodeJPEG(dc *gg.Context, quality int) ([]byte, error) {
	if quality <= 0 || quality > 100 {
		quality = 90
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dc.Image(), &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// FontRegistry holds parsed fonts keyed by family/weight/style. Registration
// is lazy, idempotent and best effort: a missing or unparsable font file
// never fails, the affected family just falls back to the embedded default.
type FontRegistry struct {
	dir      string
	once     sync.Once
	mu       sync.RWMutex
	fonts    map[string]*truetype.Font
	fallback *truetype.Font
}

// NewFontRegistry creates a registry that scans dir for .ttf files on first
// use. An empty dir means fallback-only.
func NewFontRegistry(dir string) *FontRegistry {
	return &FontRegistry{dir: dir, fonts: map[string]*truetype.Font{}}
}

// Register performs the one-time font directory scan. Safe to call
// redundantly from any goroutine.
func (r *FontRegistry) Register() {
	r.once.Do(func() {
		fallback, err := truetype.Parse(goregular.TTF)
		if err != nil {
			// goregular is embedded and known good; this cannot happen
			// outside of a corrupted build.
			slog.Error("Failed to parse embedded fallback font", "error", err)
		}
		r.fallback = fallback

		if r.dir == "" {
			return
		}

		entries, err := os.ReadDir(r.dir)
		if err != nil {
			slog.Warn("Font directory not readable, using fallback only", "dir", r.dir, "error", err)
			return
		}

		loaded := 0
		for _, entry := range entries {
			if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".ttf") {
				continue
			}

			data, err := os.ReadFile(filepath.Join(r.dir, entry.Name()))
			if err != nil {
				slog.Warn("Failed to read font file", "file", entry.Name(), "error", err)
				continue
			}

			parsed, err := truetype.Parse(data)
			if err != nil {
				slog.Warn("Failed to parse font file", "file", entry.Name(), "error", err)
				continue
			}

			key := fontKeyFromFile(entry.Name())
			r.mu.Lock()
			r.fonts[key] = parsed
			r.mu.Unlock()
			loaded++
		}

		slog.Info("Font registry initialized", "dir", r.dir, "loaded", loaded)
	})
}

// Face returns a font face for the requested family, weight and style at the
// given size, falling back through family-only to the embedded default.
func (r *FontRegistry) Face(family string, weight string, style string, size float64) font.Face {
	r.Register()

	if size <= 0 {
		size = 16
	}

	selected := r.fallback
	for _, key := range fontKeyCandidates(family, weight, style) {
		r.mu.RLock()
		f, ok := r.fonts[key]
		r.mu.RUnlock()
		if ok {
			selected = f
			break
		}
	}

	return truetype.NewFace(selected, &truetype.Options{Size: size})
}

func fontKeyFromFile(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return normalizeFontKey(stem)
}

func fontKeyCandidates(family string, weight string, style string) []string {
	base := normalizeFontKey(family)
	bold := strings.EqualFold(weight, "bold") || weight == "700" || weight == "800" || weight == "900"
	italic := strings.EqualFold(style, "italic") || strings.EqualFold(style, "oblique")

	var keys []string
	switch {
	case bold && italic:
		keys = append(keys, base+"-bolditalic", base+"-bold", base+"-italic")
	case bold:
		keys = append(keys, base+"-bold")
	case italic:
		keys = append(keys, base+"-italic")
	}
	return append(keys, base)
}

func normalizeFontKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "_", "").Replace(s)
}
