package event_controller

import (
	"log/slog"

	"github.com/eventflow-app/eventflow-api/api/middleware"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// GetByOrg lists an organization's events, newest first.
func (ctrl *EventController) GetByOrg(c *fiber.Ctx) error {
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
		slog.Error("Event GetByOrg membership check failed", "error", memberErr, "user_id", userId, "org_id", orgId)
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to verify organization membership")
	}
	if !isMember {
		return response.SendForbidden(c, "You are not a member of this organization")
	}

	events, err := ctrl.eventRepo.GetByOrg(orgId)
	if err != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to query events")
	}

	return response.SendSuccess(c, "Events retrieved", events)
}

func (ctrl *EventController) GetById(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	eventId := c.Params("eventId")
	if eventId == "" {
		return response.SendFailed(c, "Event ID is required")
	}

	event, err := ctrl.eventRepo.GetById(eventId)
	if err != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to query event")
	}
	if event == nil {
		return response.SendNotFound(c, "Event not found")
	}

	isMember, memberErr := ctrl.orgRepo.IsMember(userId, event.OrgID)
	if memberErr != nil {
		slog.Error("Event GetById membership check failed", "error", memberErr, "user_id", userId, "org_id", event.OrgID)
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to verify organization membership")
	}
	if !isMember {
		return response.SendForbidden(c, "You are not a member of this organization")
	}

	return response.SendSuccess(c, "Event retrieved", event)
}
