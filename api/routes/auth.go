package routes

import (
	auth_controller "github.com/eventflow-app/eventflow-api/api/controllers/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(router fiber.Router) {
	authGroup := router.Group("auth")

	authGroup.Post("login", auth_controller.Login)
	authGroup.Post("register", auth_controller.Register)
}
