package org_controller

import (
	"log/slog"

	"github.com/eventflow-app/eventflow-api/api/middleware"
	"github.com/eventflow-app/eventflow-api/common/util"
	"github.com/eventflow-app/eventflow-api/type/payload"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

func (ctrl *OrgController) Create(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	body := new(payload.CreateOrgPayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	org, err := ctrl.orgRepo.Create(body.Name, userId)
	if err != nil {
		slog.Error("Org Create failed", "error", err, "user_id", userId)
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to create organization")
	}

	slog.Info("Org Create successful", "org_id", org.ID, "user_id", userId)
	return response.SendSuccess(c, "Organization created", org)
}
