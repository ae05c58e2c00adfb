package event_controller

import (
	"log/slog"

	"github.com/eventflow-app/eventflow-api/api/middleware"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

func (ctrl *EventController) Delete(c *fiber.Ctx) error {
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
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to verify organization membership")
	}
	if !isMember {
		return response.SendForbidden(c, "You are not a member of this organization")
	}

	deleted, deleteErr := ctrl.eventRepo.Delete(eventId)
	if deleteErr != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to delete event")
	}

	slog.Info("Event Delete successful", "event_id", eventId, "user_id", userId)
	return response.SendSuccess(c, "Event deleted", deleted)
}
