package partner_controller

import (
	"log/slog"

	eventmodel "github.com/eventflow-app/eventflow-api/api/model/eventModel"
	orgmodel "github.com/eventflow-app/eventflow-api/api/model/orgModel"
	partnermodel "github.com/eventflow-app/eventflow-api/api/model/partnerModel"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/eventflow-app/eventflow-api/type/shared/model"
	"github.com/gofiber/fiber/v2"
)

// PartnerController handles partner-related HTTP requests
type PartnerController struct {
	partnerRepo partnermodel.IPartnerRepository
	eventRepo   eventmodel.IEventRepository
	orgRepo     orgmodel.IOrgRepository
}

// NewPartnerController creates a new partner controller with injected dependencies
func NewPartnerController(
	partnerRepo partnermodel.IPartnerRepository,
	eventRepo eventmodel.IEventRepository,
	orgRepo orgmodel.IOrgRepository,
) *PartnerController {
	return &PartnerController{
		partnerRepo: partnerRepo,
		eventRepo:   eventRepo,
		orgRepo:     orgRepo,
	}
}

func (ctrl *PartnerController) authorizeEvent(c *fiber.Ctx, userId string, eventId string) (*model.Event, error) {
	event, err := ctrl.eventRepo.GetById(eventId)
	if err != nil {
		return nil, response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to query event")
	}
	if event == nil {
		return nil, response.SendNotFound(c, "Event not found")
	}

	isMember, memberErr := ctrl.orgRepo.IsMember(userId, event.OrgID)
	if memberErr != nil {
		slog.Error("Partner event membership check failed", "error", memberErr, "user_id", userId, "org_id", event.OrgID)
		return nil, response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to verify organization membership")
	}
	if !isMember {
		slog.Warn("Partner access attempt by non-member", "user_id", userId, "event_id", eventId)
		return nil, response.SendForbidden(c, "You are not a member of this organization")
	}

	return event, nil
}
