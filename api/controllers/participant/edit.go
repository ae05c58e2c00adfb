package participant_controller

import (
	"log/slog"

	"github.com/eventflow-app/eventflow-api/api/middleware"
	"github.com/eventflow-app/eventflow-api/common/util"
	"github.com/eventflow-app/eventflow-api/type/payload"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

func (ctrl *ParticipantController) Edit(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	participantId := c.Params("participantId")
	if participantId == "" {
		return response.SendFailed(c, "Participant ID is required")
	}

	body := new(payload.EditParticipantPayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	existing, err := ctrl.participantRepo.GetById(participantId)
	if err != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to query participant")
	}
	if existing == nil {
		return response.SendNotFound(c, "Participant not found")
	}

	if _, sent := ctrl.authorizeEvent(c, userId, existing.EventID); sent != nil {
		return sent
	}

	updated, editErr := ctrl.participantRepo.Edit(participantId, body.Data)
	if editErr != nil {
		slog.Error("Participant Edit failed", "error", editErr, "participant_id", participantId)
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to edit participant")
	}

	slog.Info("Participant Edit successful", "participant_id", participantId, "user_id", userId)
	return response.SendSuccess(c, "Participant updated", updated)
}
