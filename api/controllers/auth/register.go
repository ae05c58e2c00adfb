package auth_controller

import (
	"log/slog"

	"github.com/eventflow-app/eventflow-api/api/model/userModel"
	"github.com/eventflow-app/eventflow-api/common/util"
	"github.com/eventflow-app/eventflow-api/type/payload"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

func Register(c *fiber.Ctx) error {
	body := new(payload.RegisterPayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	existing, queryErr := usermodel.GetByUsername(body.Username)
	if queryErr != nil {
		slog.Error("Auth Register lookup failed", "error", queryErr, "username", body.Username)
		return response.SendInternalError(c, queryErr)
	}
	if existing != nil {
		slog.Info("Auth Register attempt with taken username", "username", body.Username)
		return response.SendFailed(c, "Username is already taken")
	}

	hashed, hashErr := util.HashPassword(body.Password)
	if hashErr != nil {
		slog.Error("Auth Register password hashing failed", "error", hashErr)
		return response.SendError(c, "Failed to process password")
	}

	user, createErr := usermodel.CreateNewUser(body.Username, hashed, body.Firstname, body.Lastname)
	if createErr != nil {
		slog.Error("Auth Register user creation failed", "error", createErr, "username", body.Username)
		return response.SendInternalError(c, createErr)
	}

	authToken, tokenErr := util.GenerateAuthToken(user.ID)
	if tokenErr != nil {
		slog.Error("Auth Register JWT generation failed", "error", tokenErr, "user_id", user.ID)
		return response.SendError(c, "Failed to generate JWT Token")
	}

	slog.Info("Auth Register successful", "username", body.Username, "user_id", user.ID)
	return response.SendSuccess(c, "Register Successfully", fiber.Map{
		"token":    authToken,
		"username": user.Username,
	})
}
