package template_controller

import (
	"fmt"
	"log/slog"

	"github.com/eventflow-app/eventflow-api/api/middleware"
	"github.com/eventflow-app/eventflow-api/internal/render"
	"github.com/eventflow-app/eventflow-api/type/payload"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// Preview renders the template once with caller-supplied sample data and
// returns the PNG inline. Unresolved variables render as empty strings, the
// same way they would in a real batch.
func (ctrl *TemplateController) Preview(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	templateId := c.Params("templateId")
	if templateId == "" {
		return response.SendFailed(c, "Template ID is required")
	}

	body := new(payload.PreviewTemplatePayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse body")
	}

	template, err := ctrl.templateRepo.GetById(templateId)
	if err != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to query template")
	}
	if template == nil {
		return response.SendNotFound(c, "Template not found")
	}

	isMember, memberErr := ctrl.orgRepo.IsMember(userId, template.OrgID)
	if memberErr != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to verify organization membership")
	}
	if !isMember {
		return response.SendForbidden(c, "You are not a member of this organization")
	}

	tpl, parseErr := render.ParseTemplate(template.Design)
	if parseErr != nil {
		slog.Error("Template Preview design parsing failed", "error", parseErr, "template_id", templateId)
		return response.SendErrorWithCode(c, response.CodeGenerationFailed, "Stored design is not renderable")
	}
	tpl.ID = template.ID
	tpl.Name = template.Name

	entity := render.Entity{
		ID:     "preview",
		Name:   "preview",
		Fields: body.Data,
	}

	results := ctrl.generator.GenerateImages(c.UserContext(), []render.Entity{entity}, tpl)
	if len(results) == 0 || !results[0].Success {
		reason := "unknown"
		if len(results) > 0 {
			reason = results[0].Error
		}
		slog.Error("Template Preview rendering failed", "template_id", templateId, "error", reason)
		return response.SendErrorWithCode(c, response.CodeGenerationFailed, "Failed to render preview")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", results[0].FileName))
	return c.Send(results[0].Buffer)
}
