package participant_controller

import (
	"log/slog"

	"github.com/eventflow-app/eventflow-api/api/middleware"
	"github.com/eventflow-app/eventflow-api/common/util"
	"github.com/eventflow-app/eventflow-api/type/payload"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

func (ctrl *ParticipantController) Add(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	eventId := c.Params("eventId")
	if eventId == "" {
		return response.SendFailed(c, "Event ID is required")
	}

	body := new(payload.AddParticipantsPayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	if _, sent := ctrl.authorizeEvent(c, userId, eventId); sent != nil {
		return sent
	}

	participants, addErr := ctrl.participantRepo.Add(eventId, body.Participants)
	if addErr != nil {
		slog.Error("Participant Add failed", "error", addErr, "event_id", eventId)
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to add participants")
	}

	slog.Info("Participant Add successful", "event_id", eventId, "added", len(body.Participants), "total", len(participants))
	return response.SendSuccess(c, "Participants added", fiber.Map{
		"event_id":     eventId,
		"added_count":  len(body.Participants),
		"participants": participants,
	})
}
