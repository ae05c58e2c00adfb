package template_controller

import (
	"log/slog"

	"github.com/eventflow-app/eventflow-api/api/middleware"
	"github.com/eventflow-app/eventflow-api/internal/render"
	"github.com/eventflow-app/eventflow-api/type/payload"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

func (ctrl *TemplateController) Update(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	templateId := c.Params("templateId")
	if templateId == "" {
		return response.SendFailed(c, "Template ID is required")
	}

	body := new(payload.UpdateTemplatePayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse body")
	}

	if len(body.Design) > 0 {
		if _, parseErr := render.ParseTemplate(body.Design); parseErr != nil {
			slog.Warn("Template Update rejected invalid design", "error", parseErr, "template_id", templateId)
			return response.SendFailed(c, "Invalid template design: "+parseErr.Error())
		}
	}

	existing, err := ctrl.templateRepo.GetById(templateId)
	if err != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to query template")
	}
	if existing == nil {
		return response.SendNotFound(c, "Template not found")
	}

	isMember, memberErr := ctrl.orgRepo.IsMember(userId, existing.OrgID)
	if memberErr != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to verify organization membership")
	}
	if !isMember {
		return response.SendForbidden(c, "You are not a member of this organization")
	}

	updated, updateErr := ctrl.templateRepo.Update(templateId, *body)
	if updateErr != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to update template")
	}

	slog.Info("Template Update successful", "template_id", templateId, "user_id", userId)
	return response.SendSuccess(c, "Template updated", updated)
}
