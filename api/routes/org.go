package routes

import (
	org_controller "github.com/eventflow-app/eventflow-api/api/controllers/org"
	"github.com/eventflow-app/eventflow-api/api/middleware"
	orgmodel "github.com/eventflow-app/eventflow-api/api/model/orgModel"
	"github.com/eventflow-app/eventflow-api/common"
	"github.com/gofiber/fiber/v2"
)

func SetupOrgRoutes(router fiber.Router) {
	orgRepo := orgmodel.NewOrgRepository(common.Gorm)
	orgCtrl := org_controller.NewOrgController(orgRepo)

	orgGroup := router.Group("org")

	orgGroup.Use(middleware.AuthMiddleware())

	orgGroup.Get("", orgCtrl.GetMine)
	orgGroup.Post("", orgCtrl.Create)
}
