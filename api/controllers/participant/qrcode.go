package participant_controller

import (
	"fmt"
	"log/slog"

	"github.com/eventflow-app/eventflow-api/api/middleware"
	"github.com/eventflow-app/eventflow-api/common"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
	"github.com/skip2/go-qrcode"
)

// CheckinQR returns a PNG QR code pointing at the public check-in URL for
// one participant, suitable for printing on the badge itself.
func (ctrl *ParticipantController) CheckinQR(c *fiber.Ctx) error {
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

	checkinURL := fmt.Sprintf("%s/checkin/%s", *common.Config.CheckinHost, participantId)
	png, encodeErr := qrcode.Encode(checkinURL, qrcode.Medium, 256)
	if encodeErr != nil {
		slog.Error("Participant CheckinQR encoding failed", "error", encodeErr, "participant_id", participantId)
		return response.SendError(c, "Failed to generate QR code")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
