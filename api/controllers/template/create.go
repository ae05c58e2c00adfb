package template_controller

import (
	"log/slog"

	"github.com/eventflow-app/eventflow-api/api/middleware"
	"github.com/eventflow-app/eventflow-api/common/util"
	"github.com/eventflow-app/eventflow-api/internal/render"
	"github.com/eventflow-app/eventflow-api/type/payload"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

func (ctrl *TemplateController) Create(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	body := new(payload.CreateTemplatePayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	// Reject designs the renderer could never draw before storing them.
	if _, parseErr := render.ParseTemplate(body.Design); parseErr != nil {
		slog.Warn("Template Create rejected invalid design", "error", parseErr, "org_id", body.OrgID)
		return response.SendFailed(c, "Invalid template design: "+parseErr.Error())
	}

	isMember, memberErr := ctrl.orgRepo.IsMember(userId, body.OrgID)
	if memberErr != nil {
		slog.Error("Template Create membership check failed", "error", memberErr, "user_id", userId, "org_id", body.OrgID)
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to verify organization membership")
	}
	if !isMember {
		slog.Warn("Template Create attempt by non-member", "user_id", userId, "org_id", body.OrgID)
		return response.SendForbidden(c, "You are not a member of this organization")
	}

	template, err := ctrl.templateRepo.Create(*body)
	if err != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to create template")
	}

	slog.Info("Template Create successful", "template_id", template.ID, "org_id", body.OrgID, "user_id", userId)
	return response.SendSuccess(c, "Template created", template)
}
