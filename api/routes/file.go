package routes

import (
	file_controller "github.com/eventflow-app/eventflow-api/api/controllers/file"
	"github.com/eventflow-app/eventflow-api/api/middleware"
	assetmodel "github.com/eventflow-app/eventflow-api/api/model/assetModel"
	orgmodel "github.com/eventflow-app/eventflow-api/api/model/orgModel"
	"github.com/eventflow-app/eventflow-api/common"
	"github.com/gofiber/fiber/v2"
)

func SetupFileRoutes(router fiber.Router) {
	assetRepo := assetmodel.NewAssetRepository(common.Gorm)
	orgRepo := orgmodel.NewOrgRepository(common.Gorm)

	fileCtrl := file_controller.NewFileController(assetRepo, orgRepo)

	fileGroup := router.Group("files")

	fileGroup.Use(middleware.AuthMiddleware())

	fileGroup.Post(":orgId", fileCtrl.Upload)
	fileGroup.Get("org/:orgId", fileCtrl.GetByOrg)
	fileGroup.Delete(":assetId", fileCtrl.Delete)
}

// SetupPublicFileRoutes configures unauthenticated downloads so stored
// images can be referenced directly from browsers and template designs.
func SetupPublicFileRoutes(router fiber.Router) {
	assetRepo := assetmodel.NewAssetRepository(common.Gorm)
	orgRepo := orgmodel.NewOrgRepository(common.Gorm)

	fileCtrl := file_controller.NewFileController(assetRepo, orgRepo)

	router.Get("/files/download/:bucket/*", fileCtrl.Download)
}
