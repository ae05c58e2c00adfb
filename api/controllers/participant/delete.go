package participant_controller

import (
	"log/slog"

	"github.com/eventflow-app/eventflow-api/api/middleware"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

func (ctrl *ParticipantController) Delete(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	participantId := c.Params("participantId")
	if participantId == "" {
		return response.SendFailed(c, "Participant ID is required")
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

	deleted, deleteErr := ctrl.participantRepo.Delete(participantId)
	if deleteErr != nil {
		slog.Error("Participant Delete failed", "error", deleteErr, "participant_id", participantId)
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to delete participant")
	}

	slog.Info("Participant Delete successful", "participant_id", participantId, "user_id", userId)
	return response.SendSuccess(c, "Participant deleted", deleted)
}
