package generation_controller

import (
	"log/slog"

	"github.com/eventflow-app/eventflow-api/api/middleware"
	"github.com/eventflow-app/eventflow-api/common/util"
	"github.com/eventflow-app/eventflow-api/internal/render"
	"github.com/eventflow-app/eventflow-api/type/payload"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// MailBadge renders one participant's badge and emails it to them as a PNG
// attachment. The participant's email status is updated either way.
func (ctrl *GenerationController) MailBadge(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	participantId := c.Params("participantId")
	if participantId == "" {
		return response.SendFailed(c, "Participant ID is required")
	}

	body := new(payload.MailBadgePayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	participant, queryErr := ctrl.participantRepo.GetById(participantId)
	if queryErr != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to query participant")
	}
	if participant == nil {
		return response.SendNotFound(c, "Participant not found")
	}

	email := participant.Email()
	if email == "" {
		return response.SendFailed(c, "Participant has no email address")
	}

	template, tpl, sent := ctrl.loadTemplate(c, userId, body.TemplateId)
	if sent != nil {
		return sent
	}

	if sent := ctrl.checkEventScope(c, []string{participant.EventID}, template.OrgID); sent != nil {
		return sent
	}

	event, eventErr := ctrl.eventRepo.GetById(participant.EventID)
	if eventErr != nil || event == nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to query event")
	}

	entity := render.Entity{
		ID:     participant.ID,
		Name:   participant.DisplayName(),
		Fields: participant.DynamicData,
	}
	results := ctrl.generator.GenerateImages(c.UserContext(), []render.Entity{entity}, tpl)
	if len(results) == 0 || !results[0].Success {
		reason := "unknown"
		if len(results) > 0 {
			reason = results[0].Error
		}
		slog.Error("Mail badge rendering failed", "participant_id", participantId, "error", reason)
		return response.SendErrorWithCode(c, response.CodeGenerationFailed, "Failed to render badge image")
	}

	result := results[0]
	if mailErr := util.SendBadgeMail(email, event.Name, result.FileName, result.Buffer); mailErr != nil {
		slog.Error("Mail badge delivery failed", "error", mailErr, "participant_id", participantId, "email", email)
		if statusErr := ctrl.participantRepo.SetEmailStatus(participantId, "failed"); statusErr != nil {
			slog.Warn("Mail badge status update failed", "error", statusErr, "participant_id", participantId)
		}
		return response.SendError(c, "Failed to send badge email")
	}

	if statusErr := ctrl.participantRepo.SetEmailStatus(participantId, "sent"); statusErr != nil {
		slog.Warn("Mail badge status update failed", "error", statusErr, "participant_id", participantId)
	}

	slog.Info("Mail badge sent", "participant_id", participantId, "email", email, "event_id", event.ID)
	return response.SendSuccess(c, "Badge email sent", fiber.Map{
		"participant_id": participantId,
		"email":          email,
		"file_name":      result.FileName,
	})
}
