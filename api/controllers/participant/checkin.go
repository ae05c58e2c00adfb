package participant_controller

import (
	"log/slog"

	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// Checkin marks a participant as checked in. The route is public: check-in
// stations scan the badge QR code without an operator session. Knowing a
// valid participant UUID is the capability.
func (ctrl *ParticipantController) Checkin(c *fiber.Ctx) error {
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

	if participant.CheckedIn {
		return response.SendSuccess(c, "Participant already checked in", participant)
	}

	if err := ctrl.participantRepo.MarkCheckedIn(participantId); err != nil {
		slog.Error("Participant Checkin failed", "error", err, "participant_id", participantId)
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to record check-in")
	}

	participant.CheckedIn = true
	slog.Info("Participant Checkin successful", "participant_id", participantId, "event_id", participant.EventID)
	return response.SendSuccess(c, "Participant checked in", participant)
}
