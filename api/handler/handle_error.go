package handler

import (
	"errors"

	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(
			response.Error(fiberErr.Message),
		)
	}

	return c.Status(fiber.StatusInternalServerError).JSON(
		response.ErrorWithCode(response.CodeInternalError, err.Error()),
	)
}
