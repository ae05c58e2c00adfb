package event_controller

import (
	"log/slog"

	"github.com/eventflow-app/eventflow-api/api/middleware"
	"github.com/eventflow-app/eventflow-api/type/payload"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

func (ctrl *EventController) Update(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	eventId := c.Params("eventId")
	if eventId == "" {
		return response.SendFailed(c, "Event ID is required")
	}

	body := new(payload.UpdateEventPayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse body")
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

	updated, updateErr := ctrl.eventRepo.Update(eventId, *body)
	if updateErr != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to update event")
	}

	slog.Info("Event Update successful", "event_id", eventId, "user_id", userId)
	return response.SendSuccess(c, "Event updated", updated)
}
