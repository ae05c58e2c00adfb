package generation_controller

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/eventflow-app/eventflow-api/api/middleware"
	"github.com/eventflow-app/eventflow-api/internal/render"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// ExportPDF renders one participant's badge and returns it wrapped in a
// single-page PDF sized to the canvas. templateId is passed as a query
// parameter so the route stays a plain GET for download links.
func (ctrl *GenerationController) ExportPDF(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	participantId := c.Params("participantId")
	if participantId == "" {
		return response.SendFailed(c, "Participant ID is required")
	}

	templateId := c.Query("templateId")
	if templateId == "" {
		return response.SendFailed(c, "templateId query parameter is required")
	}

	participant, queryErr := ctrl.participantRepo.GetById(participantId)
	if queryErr != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to query participant")
	}
	if participant == nil {
		return response.SendNotFound(c, "Participant not found")
	}

	template, tpl, sent := ctrl.loadTemplate(c, userId, templateId)
	if sent != nil {
		return sent
	}

	if sent := ctrl.checkEventScope(c, []string{participant.EventID}, template.OrgID); sent != nil {
		return sent
	}

	entity := render.Entity{
		ID:     participant.ID,
		Name:   participant.DisplayName(),
		Fields: participant.DynamicData,
	}
	results := ctrl.generator.GenerateImages(c.UserContext(), []render.Entity{entity}, tpl)
	if len(results) == 0 || !results[0].Success {
		reason := "unknown"
		if len(results) > 0 {
			reason = results[0].Error
		}
		slog.Error("PDF export rendering failed", "participant_id", participantId, "error", reason)
		return response.SendErrorWithCode(c, response.CodeGenerationFailed, "Failed to render badge image")
	}

	pdf, pdfErr := render.ImageToPDF(results[0].Buffer, tpl.Width, tpl.Height)
	if pdfErr != nil {
		slog.Error("PDF export wrapping failed", "error", pdfErr, "participant_id", participantId)
		return response.SendErrorWithCode(c, response.CodeGenerationFailed, "Failed to build PDF")
	}

	pdfName := strings.TrimSuffix(results[0].FileName, ".png") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", pdfName))
	return c.Send(pdf)
}
