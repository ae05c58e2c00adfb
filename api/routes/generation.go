package routes

import (
	generation_controller "github.com/eventflow-app/eventflow-api/api/controllers/generation"
	"github.com/eventflow-app/eventflow-api/api/middleware"
	eventmodel "github.com/eventflow-app/eventflow-api/api/model/eventModel"
	orgmodel "github.com/eventflow-app/eventflow-api/api/model/orgModel"
	participantmodel "github.com/eventflow-app/eventflow-api/api/model/participantModel"
	partnermodel "github.com/eventflow-app/eventflow-api/api/model/partnerModel"
	templatemodel "github.com/eventflow-app/eventflow-api/api/model/templateModel"
	"github.com/eventflow-app/eventflow-api/common"
	"github.com/gofiber/fiber/v2"
)

func SetupGenerationRoutes(router fiber.Router) {
	templateRepo := templatemodel.NewTemplateRepository(common.Gorm, common.Mongo)
	orgRepo := orgmodel.NewOrgRepository(common.Gorm)
	eventRepo := eventmodel.NewEventRepository(common.Gorm)
	participantRepo := participantmodel.NewParticipantRepository(common.Gorm, common.Mongo)
	partnerRepo := partnermodel.NewPartnerRepository(common.Gorm, common.Mongo)

	generationCtrl := generation_controller.NewGenerationController(
		templateRepo,
		orgRepo,
		eventRepo,
		participantRepo,
		partnerRepo,
		sharedGenerator(),
	)

	generationGroup := router.Group("generate-images")

	generationGroup.Use(middleware.Jwt())
	generationGroup.Use(middleware.UserContext())

	generationGroup.Post("", generationCtrl.GenerateImages)
	generationGroup.Post("partners", generationCtrl.GeneratePartnerImages)
	generationGroup.Post("mail/:participantId", generationCtrl.MailBadge)
	generationGroup.Get("pdf/:participantId", generationCtrl.ExportPDF)
}
