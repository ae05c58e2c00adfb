package participant_controller

import (
	"log/slog"

	eventmodel "github.com/eventflow-app/eventflow-api/api/model/eventModel"
	orgmodel "github.com/eventflow-app/eventflow-api/api/model/orgModel"
	participantmodel "github.com/eventflow-app/eventflow-api/api/model/participantModel"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/eventflow-app/eventflow-api/type/shared/model"
	"github.com/gofiber/fiber/v2"
)

// ParticipantController handles participant-related HTTP requests
type ParticipantController struct {
	participantRepo participantmodel.IParticipantRepository
	eventRepo       eventmodel.IEventRepository
	orgRepo         orgmodel.IOrgRepository
}

// NewParticipantController creates a new participant controller with injected dependencies
func NewParticipantController(
	participantRepo participantmodel.IParticipantRepository,
	eventRepo eventmodel.IEventRepository,
	orgRepo orgmodel.IOrgRepository,
) *ParticipantController {
	return &ParticipantController{
		participantRepo: participantRepo,
		eventRepo:       eventRepo,
		orgRepo:         orgRepo,
	}
}

// authorizeEvent resolves the event and checks the caller's membership in
// its organization. A non-nil second return value is the response already
// sent to the client.
func (ctrl *ParticipantController) authorizeEvent(c *fiber.Ctx, userId string, eventId string) (*model.Event, error) {
	event, err := ctrl.eventRepo.GetById(eventId)
	if err != nil {
		return nil, response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to query event")
	}
	if event == nil {
		return nil, response.SendNotFound(c, "Event not found")
	}

	isMember, memberErr := ctrl.orgRepo.IsMember(userId, event.OrgID)
	if memberErr != nil {
		slog.Error("Participant event membership check failed", "error", memberErr, "user_id", userId, "org_id", event.OrgID)
		return nil, response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to verify organization membership")
	}
	if !isMember {
		slog.Warn("Participant access attempt by non-member", "user_id", userId, "event_id", eventId)
		return nil, response.SendForbidden(c, "You are not a member of this organization")
	}

	return event, nil
}
