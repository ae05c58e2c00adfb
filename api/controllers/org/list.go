package org_controller

import (
	"log/slog"

	"github.com/eventflow-app/eventflow-api/api/middleware"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// GetMine lists the IDs of every organization the caller belongs to.
func (ctrl *OrgController) GetMine(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	orgIds, err := ctrl.orgRepo.GetOrgIdsByUser(userId)
	if err != nil {
		slog.Error("Org GetMine failed", "error", err, "user_id", userId)
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to query organizations")
	}

	return response.SendSuccess(c, "Organizations retrieved", fiber.Map{"org_ids": orgIds})
}
