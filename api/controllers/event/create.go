package event_controller

import (
	"log/slog"

	"github.com/eventflow-app/eventflow-api/api/middleware"
	"github.com/eventflow-app/eventflow-api/common/util"
	"github.com/eventflow-app/eventflow-api/type/payload"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

func (ctrl *EventController) Create(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	body := new(payload.CreateEventPayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	isMember, memberErr := ctrl.orgRepo.IsMember(userId, body.OrgID)
	if memberErr != nil {
		slog.Error("Event Create membership check failed", "error", memberErr, "user_id", userId, "org_id", body.OrgID)
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to verify organization membership")
	}
	if !isMember {
		slog.Warn("Event Create attempt by non-member", "user_id", userId, "org_id", body.OrgID)
		return response.SendForbidden(c, "You are not a member of this organization")
	}

	event, err := ctrl.eventRepo.Create(*body)
	if err != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to create event")
	}

	slog.Info("Event Create successful", "event_id", event.ID, "org_id", body.OrgID, "user_id", userId)
	return response.SendSuccess(c, "Event created", event)
}
