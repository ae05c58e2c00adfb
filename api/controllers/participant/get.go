package participant_controller

import (
	"github.com/eventflow-app/eventflow-api/api/middleware"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// GetByEvent lists an event's participants with their dynamic data merged in.
func (ctrl *ParticipantController) GetByEvent(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	eventId := c.Params("eventId")
	if eventId == "" {
		return response.SendFailed(c, "Event ID is required")
	}

	if _, sent := ctrl.authorizeEvent(c, userId, eventId); sent != nil {
		return sent
	}

	participants, err := ctrl.participantRepo.GetByEvent(eventId)
	if err != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to query participants")
	}

	return response.SendSuccess(c, "Participants retrieved", participants)
}

func (ctrl *ParticipantController) GetById(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	participantId := c.Params("participantId")
	if participantId == "" {
		return response.SendFailed(c, "Participant ID is required")
	}

	participant, err := ctrl.participantRepo.GetById(participantId)
	if err != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to query participant")
	}
	if participant == nil {
		return response.SendNotFound(c, "Participant not found")
	}

	if _, sent := ctrl.authorizeEvent(c, userId, participant.EventID); sent != nil {
		return sent
	}

	return response.SendSuccess(c, "Participant retrieved", participant)
}
