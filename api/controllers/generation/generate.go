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

// GenerateImages renders one badge image per requested participant and
// returns either a single PNG or a ZIP archive of the batch.
func (ctrl *GenerationController) GenerateImages(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	body := new(payload.GenerateImagesPayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	template, tpl, sent := ctrl.loadTemplate(c, userId, body.TemplateId)
	if sent != nil {
		return sent
	}

	participants, missing, queryErr := ctrl.participantRepo.GetByIds(body.ParticipantIds)
	if queryErr != nil {
		slog.Error("Generation participant lookup failed", "error", queryErr, "template_id", body.TemplateId)
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to query participants")
	}
	if len(missing) > 0 {
		slog.Warn("Generation requested with unknown participants", "missing", missing, "template_id", body.TemplateId)
		return response.SendNotFound(c, "Some participants were not found", fiber.Map{"missing_ids": missing})
	}

	eventIds := make([]string, 0, len(participants))
	seen := map[string]bool{}
	for _, participant := range participants {
		if !seen[participant.EventID] {
			seen[participant.EventID] = true
			eventIds = append(eventIds, participant.EventID)
		}
	}
	if sent := ctrl.checkEventScope(c, eventIds, template.OrgID); sent != nil {
		return sent
	}

	entities := make([]render.Entity, 0, len(participants))
	for _, participant := range participants {
		entities = append(entities, render.Entity{
			ID:     participant.ID,
			Name:   participant.DisplayName(),
			Fields: participant.DynamicData,
		})
	}

	slog.Info("Generation batch started",
		"template_id", body.TemplateId,
		"participant_count", len(entities),
		"user_id", userId)

	results := ctrl.generator.GenerateImages(c.UserContext(), entities, tpl)
	return ctrl.respond(c, results, template.Name)
}
