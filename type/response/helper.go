package response

import "github.com/gofiber/fiber/v2"

func SendSuccess(c *fiber.Ctx, msg string, data ...any) error {
	return c.Status(fiber.StatusOK).JSON(Success(msg, data...))
}

func SendUnauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(ErrorWithCode(CodeUnauthorized, msg))
}

func SendFailed(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorWithCode(CodeInvalidRequest, msg))
}

func SendForbidden(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusForbidden).JSON(ErrorWithCode(CodeForbidden, msg))
}

func SendNotFound(c *fiber.Ctx, msg string, data ...any) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorWithCode(CodeNotFound, msg, data...))
}

func SendError(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorWithCode(CodeInternalError, msg))
}

func SendErrorWithCode(c *fiber.Ctx, code string, msg string, data ...any) error {
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorWithCode(code, msg, data...))
}

func SendInternalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorWithCode(CodeInternalError, err.Error()))
}
