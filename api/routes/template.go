package routes

import (
	template_controller "github.com/eventflow-app/eventflow-api/api/controllers/template"
	"github.com/eventflow-app/eventflow-api/api/middleware"
	orgmodel "github.com/eventflow-app/eventflow-api/api/model/orgModel"
	templatemodel "github.com/eventflow-app/eventflow-api/api/model/templateModel"
	"github.com/eventflow-app/eventflow-api/common"
	"github.com/gofiber/fiber/v2"
)

func SetupTemplateRoutes(router fiber.Router) {
	templateRepo := templatemodel.NewTemplateRepository(common.Gorm, common.Mongo)
	orgRepo := orgmodel.NewOrgRepository(common.Gorm)

	templateCtrl := template_controller.NewTemplateController(templateRepo, orgRepo, sharedGenerator())

	templateGroup := router.Group("template")

	templateGroup.Use(middleware.AuthMiddleware())

	templateGroup.Get("org/:orgId", templateCtrl.GetByOrg)
	templateGroup.Get(":templateId", templateCtrl.GetById)
	templateGroup.Post("", templateCtrl.Create)
	templateGroup.Post("preview/:templateId", templateCtrl.Preview)
	templateGroup.Put(":templateId", templateCtrl.Update)
	templateGroup.Delete(":templateId", templateCtrl.Delete)
}
