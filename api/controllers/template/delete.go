package template_controller

import (
	"log/slog"

	"github.com/eventflow-app/eventflow-api/api/middleware"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

func (ctrl *TemplateController) Delete(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	templateId := c.Params("templateId")
	if templateId == "" {
		return response.SendFailed(c, "Template ID is required")
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

	deleted, deleteErr := ctrl.templateRepo.Delete(templateId)
	if deleteErr != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to delete template")
	}

	slog.Info("Template Delete successful", "template_id", templateId, "user_id", userId)
	return response.SendSuccess(c, "Template deleted", deleted)
}
