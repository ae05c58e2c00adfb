package handler

import (
	"fmt"

	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

func HandleNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(
		response.ErrorWithCode(response.CodeNotFound, fmt.Sprintf("%s %s not found", c.Method(), c.Path())),
	)
}
