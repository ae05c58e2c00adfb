package render

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fogleman/gg"
)

// Entity is a participant or partner record reduced to what rendering
// needs: a stable ID, a display name for filenames and error reporting, and
// an opaque field map feeding variable substitution.
type Entity struct {
	ID     string
	Name   string
	Fields map[string]any
}

// Result is the per-entity outcome. Exactly one of Buffer or Error is
// populated depending on Success.
type Result struct {
	ParticipantID   string `json:"participantId"`
	ParticipantName string `json:"participantName"`
	Success         bool   `json:"success"`
	Buffer          []byte `json:"-"`
	FileName        string `json:"fileName,omitempty"`
	Error           string `json:"error,omitempty"`
}

// Generator stamps out personalized images for batches of entities.
type Generator struct {
	renderer *Renderer
}

// NewGenerator builds a generator on top of a shared renderer.
func NewGenerator(renderer *Renderer) *Generator {
	return &Generator{renderer: renderer}
}

// GenerateImages renders one PNG per entity. Entities are processed
// sequentially and independently: any failure is folded into that entity's
// Result and never aborts the rest of the batch. The returned slice always
// has exactly one entry per entity.
func (g *Generator) GenerateImages(ctx context.Context, entities []Entity, tpl *Template) []Result {
	results := make([]Result, 0, len(entities))

	for _, entity := range entities {
		buffer, err := g.renderOne(ctx, entity, tpl)
		if err != nil {
			slog.Warn("Image generation failed for entity",
				"entity_id", entity.ID,
				"entity_name", entity.Name,
				"template_id", tpl.ID,
				"error", err)
			results = append(results, Result{
				ParticipantID:   entity.ID,
				ParticipantName: entity.Name,
				Success:         false,
				Error:           err.Error(),
			})
			continue
		}

		results = append(results, Result{
			ParticipantID:   entity.ID,
			ParticipantName: entity.Name,
			Success:         true,
			Buffer:          buffer,
			FileName:        ImageFilename(entity.Name, entity.ID, tpl.Name),
		})
	}

	return results
}

// renderOne runs the whole per-entity pipeline on a fresh surface. The
// surface is discarded after encoding so state can never bleed between
// entities. Panics from the rasterization path are converted into errors.
func (g *Generator) renderOne(ctx context.Context, entity Entity, tpl *Template) (buffer []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render panicked: %v", r)
		}
	}()

	dc, err := NewSurface(tpl.Width, tpl.Height)
	if err != nil {
		return nil, err
	}

	g.fillBackground(ctx, dc, tpl, entity.ID)

	elements := ResolveElements(tpl.Elements, entity.Fields)
	g.renderer.DrawElements(ctx, dc, elements, entity.ID)

	return EncodePNG(dc)
}

// fillBackground paints the background image when present, else the
// background color, else white. A background image that fails to load
// degrades to the color fill.
func (g *Generator) fillBackground(ctx context.Context, dc *gg.Context, tpl *Template, entityID string) {
	color := tpl.BackgroundColor
	if color == "" {
		color = "#ffffff"
	}
	dc.SetHexColor(color)
	dc.Clear()

	if tpl.BackgroundImage == "" {
		return
	}

	img, err := g.renderer.Load(ctx, tpl.BackgroundImage)
	if err != nil {
		slog.Warn("Background image failed to load, using color fill",
			"entity_id", entityID,
			"template_id", tpl.ID,
			"error", err)
		return
	}

	dc.DrawImage(scaleImage(img, tpl.Width, tpl.Height), 0, 0)
}
