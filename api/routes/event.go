package routes

import (
	event_controller "github.com/eventflow-app/eventflow-api/api/controllers/event"
	"github.com/eventflow-app/eventflow-api/api/middleware"
	eventmodel "github.com/eventflow-app/eventflow-api/api/model/eventModel"
	orgmodel "github.com/eventflow-app/eventflow-api/api/model/orgModel"
	"github.com/eventflow-app/eventflow-api/common"
	"github.com/gofiber/fiber/v2"
)

func SetupEventRoutes(router fiber.Router) {
	eventRepo := eventmodel.NewEventRepository(common.Gorm)
	orgRepo := orgmodel.NewOrgRepository(common.Gorm)

	eventCtrl := event_controller.NewEventController(eventRepo, orgRepo)

	eventGroup := router.Group("event")

	eventGroup.Use(middleware.AuthMiddleware())

	eventGroup.Get("org/:orgId", eventCtrl.GetByOrg)
	eventGroup.Get(":eventId", eventCtrl.GetById)
	eventGroup.Post("", eventCtrl.Create)
	eventGroup.Put(":eventId", eventCtrl.Update)
	eventGroup.Delete(":eventId", eventCtrl.Delete)
}
