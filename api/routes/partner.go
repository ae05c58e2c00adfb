package routes

import (
	partner_controller "github.com/eventflow-app/eventflow-api/api/controllers/partner"
	"github.com/eventflow-app/eventflow-api/api/middleware"
	eventmodel "github.com/eventflow-app/eventflow-api/api/model/eventModel"
	orgmodel "github.com/eventflow-app/eventflow-api/api/model/orgModel"
	partnermodel "github.com/eventflow-app/eventflow-api/api/model/partnerModel"
	"github.com/eventflow-app/eventflow-api/common"
	"github.com/gofiber/fiber/v2"
)

func SetupPartnerRoutes(router fiber.Router) {
	partnerRepo := partnermodel.NewPartnerRepository(common.Gorm, common.Mongo)
	eventRepo := eventmodel.NewEventRepository(common.Gorm)
	orgRepo := orgmodel.NewOrgRepository(common.Gorm)

	partnerCtrl := partner_controller.NewPartnerController(partnerRepo, eventRepo, orgRepo)

	partnerGroup := router.Group("partner")

	partnerGroup.Use(middleware.AuthMiddleware())

	partnerGroup.Get("event/:eventId", partnerCtrl.GetByEvent)
	partnerGroup.Post("add/:eventId", partnerCtrl.Add)
	partnerGroup.Put(":partnerId", partnerCtrl.Edit)
	partnerGroup.Delete(":partnerId", partnerCtrl.Delete)
}
