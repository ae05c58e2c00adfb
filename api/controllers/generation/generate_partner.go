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

// GeneratePartnerImages is the partner variant of GenerateImages. Partners
// share the same rendering pipeline; only the entity source differs.
func (ctrl *GenerationController) GeneratePartnerImages(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	body := new(payload.GeneratePartnerImagesPayload)
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

	partners, missing, queryErr := ctrl.partnerRepo.GetByIds(body.PartnerIds)
	if queryErr != nil {
		slog.Error("Generation partner lookup failed", "error", queryErr, "template_id", body.TemplateId)
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to query partners")
	}
	if len(missing) > 0 {
		slog.Warn("Generation requested with unknown partners", "missing", missing, "template_id", body.TemplateId)
		return response.SendNotFound(c, "Some partners were not found", fiber.Map{"missing_ids": missing})
	}

	eventIds := make([]string, 0, len(partners))
	seen := map[string]bool{}
	for _, partner := range partners {
		if !seen[partner.EventID] {
			seen[partner.EventID] = true
			eventIds = append(eventIds, partner.EventID)
		}
	}
	if sent := ctrl.checkEventScope(c, eventIds, template.OrgID); sent != nil {
		return sent
	}

	entities := make([]render.Entity, 0, len(partners))
	for _, partner := range partners {
		entities = append(entities, render.Entity{
			ID:     partner.ID,
			Name:   partner.DisplayName(),
			Fields: partner.DynamicData,
		})
	}

	slog.Info("Generation partner batch started",
		"template_id", body.TemplateId,
		"partner_count", len(entities),
		"user_id", userId)

	results := ctrl.generator.GenerateImages(c.UserContext(), entities, tpl)
	return ctrl.respond(c, results, template.Name)
}
