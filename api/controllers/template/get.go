package template_controller

import (
	"log/slog"

	"github.com/eventflow-app/eventflow-api/api/middleware"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// GetByOrg lists template metadata for one organization. Design documents
// are not included; fetch a single template for the full design.
func (ctrl *TemplateController) GetByOrg(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	orgId := c.Params("orgId")
	if orgId == "" {
		return response.SendFailed(c, "Organization ID is required")
	}

	isMember, memberErr := ctrl.orgRepo.IsMember(userId, orgId)
	if memberErr != nil {
		slog.Error("Template GetByOrg membership check failed", "error", memberErr, "user_id", userId, "org_id", orgId)
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to verify organization membership")
	}
	if !isMember {
		return response.SendForbidden(c, "You are not a member of this organization")
	}

	templates, err := ctrl.templateRepo.GetByOrg(orgId)
	if err != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to query templates")
	}

	return response.SendSuccess(c, "Templates retrieved", templates)
}

func (ctrl *TemplateController) GetById(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	templateId := c.Params("templateId")
	if templateId == "" {
		return response.SendFailed(c, "Template ID is required")
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

	return response.SendSuccess(c, "Template retrieved", template)
}
