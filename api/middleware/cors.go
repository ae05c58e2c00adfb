package middleware

import (
	"strings"

	"github.com/eventflow-app/eventflow-api/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func Cors() fiber.Handler {
	origins := make([]string, 0, len(common.Config.Cors))
	for _, origin := range common.Config.Cors {
		if origin != nil {
			origins = append(origins, *origin)
		}
	}

	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		ExposeHeaders:    "Content-Disposition,X-Generation-Failed-Count",
		AllowCredentials: true,
	})
}
