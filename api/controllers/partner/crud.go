package partner_controller

import (
	"log/slog"

	"github.com/eventflow-app/eventflow-api/api/middleware"
	"github.com/eventflow-app/eventflow-api/common/util"
	"github.com/eventflow-app/eventflow-api/type/payload"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

func (ctrl *PartnerController) Add(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	eventId := c.Params("eventId")
	if eventId == "" {
		return response.SendFailed(c, "Event ID is required")
	}

	body := new(payload.AddPartnersPayload)
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

	partners, addErr := ctrl.partnerRepo.Add(eventId, body.Partners)
	if addErr != nil {
		slog.Error("Partner Add failed", "error", addErr, "event_id", eventId)
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to add partners")
	}

	slog.Info("Partner Add successful", "event_id", eventId, "added", len(body.Partners))
	return response.SendSuccess(c, "Partners added", fiber.Map{
		"event_id":    eventId,
		"added_count": len(body.Partners),
		"partners":    partners,
	})
}

func (ctrl *PartnerController) GetByEvent(c *fiber.Ctx) error {
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

	partners, err := ctrl.partnerRepo.GetByEvent(eventId)
	if err != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to query partners")
	}

	return response.SendSuccess(c, "Partners retrieved", partners)
}

func (ctrl *PartnerController) Edit(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	partnerId := c.Params("partnerId")
	if partnerId == "" {
		return response.SendFailed(c, "Partner ID is required")
	}

	body := new(payload.EditPartnerPayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	existing, err := ctrl.partnerRepo.GetById(partnerId)
	if err != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to query partner")
	}
	if existing == nil {
		return response.SendNotFound(c, "Partner not found")
	}

	if _, sent := ctrl.authorizeEvent(c, userId, existing.EventID); sent != nil {
		return sent
	}

	updated, editErr := ctrl.partnerRepo.Edit(partnerId, body.Data)
	if editErr != nil {
		slog.Error("Partner Edit failed", "error", editErr, "partner_id", partnerId)
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to edit partner")
	}

	return response.SendSuccess(c, "Partner updated", updated)
}

func (ctrl *PartnerController) Delete(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	partnerId := c.Params("partnerId")
	if partnerId == "" {
		return response.SendFailed(c, "Partner ID is required")
	}

	existing, err := ctrl.partnerRepo.GetById(partnerId)
	if err != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to query partner")
	}
	if existing == nil {
		return response.SendNotFound(c, "Partner not found")
	}

	if _, sent := ctrl.authorizeEvent(c, userId, existing.EventID); sent != nil {
		return sent
	}

	deleted, deleteErr := ctrl.partnerRepo.Delete(partnerId)
	if deleteErr != nil {
		slog.Error("Partner Delete failed", "error", deleteErr, "partner_id", partnerId)
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to delete partner")
	}

	slog.Info("Partner Delete successful", "partner_id", partnerId, "user_id", userId)
	return response.SendSuccess(c, "Partner deleted", deleted)
}
