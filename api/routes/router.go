package routes

import (
	"sync"

	"github.com/eventflow-app/eventflow-api/common"
	"github.com/eventflow-app/eventflow-api/internal/render"
	"github.com/gofiber/fiber/v2"
)

func Init(router fiber.Router) {
	api := router.Group("api")

	SetupAuthRoutes(api)
	SetupOrgRoutes(api)
	SetupEventRoutes(api)
	SetupTemplateRoutes(api)
	SetupParticipantRoutes(api)
	SetupPartnerRoutes(api)
	SetupGenerationRoutes(api)
	SetupFileRoutes(api)

	SetupPublicFileRoutes(router)
}

var (
	generatorOnce sync.Once
	generator     *render.Generator
)

// sharedGenerator lazily builds the one rendering pipeline the whole app
// uses. The font registry scans its directory once and is safe to share.
func sharedGenerator() *render.Generator {
	generatorOnce.Do(func() {
		fontDir := ""
		if common.Config != nil && common.Config.FontDir != nil {
			fontDir = *common.Config.FontDir
		}
		fonts := render.NewFontRegistry(fontDir)
		generator = render.NewGenerator(render.NewRenderer(fonts))
	})
	return generator
}
