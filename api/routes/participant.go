package routes

import (
	participant_controller "github.com/eventflow-app/eventflow-api/api/controllers/participant"
	"github.com/eventflow-app/eventflow-api/api/middleware"
	eventmodel "github.com/eventflow-app/eventflow-api/api/model/eventModel"
	orgmodel "github.com/eventflow-app/eventflow-api/api/model/orgModel"
	participantmodel "github.com/eventflow-app/eventflow-api/api/model/participantModel"
	"github.com/eventflow-app/eventflow-api/common"
	"github.com/gofiber/fiber/v2"
)

func SetupParticipantRoutes(router fiber.Router) {
	participantRepo := participantmodel.NewParticipantRepository(common.Gorm, common.Mongo)
	eventRepo := eventmodel.NewEventRepository(common.Gorm)
	orgRepo := orgmodel.NewOrgRepository(common.Gorm)

	participantCtrl := participant_controller.NewParticipantController(participantRepo, eventRepo, orgRepo)

	participantGroup := router.Group("participant")

	// Check-in stations scan badge QR codes without a session.
	participantGroup.Post("checkin/:participantId", participantCtrl.Checkin)

	participantGroup.Use(middleware.AuthMiddleware())

	participantGroup.Get("event/:eventId", participantCtrl.GetByEvent)
	participantGroup.Get("qr/:participantId", participantCtrl.CheckinQR)
	participantGroup.Get(":participantId", participantCtrl.GetById)
	participantGroup.Post("add/:eventId", participantCtrl.Add)
	participantGroup.Put(":participantId", participantCtrl.Edit)
	participantGroup.Delete(":participantId", participantCtrl.Delete)
}
