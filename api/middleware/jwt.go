package middleware

import (
	"github.com/eventflow-app/eventflow-api/common"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/eventflow-app/eventflow-api/type/shared"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

// Jwt validates the bearer token and parses its claims into the request
// context under "auth".
func Jwt() fiber.Handler {
	conf := jwtware.Config{
		SigningKey:  []byte(*common.Config.JWTSecret),
		TokenLookup: "header:Authorization",
		AuthScheme:  "Bearer",
		ContextKey:  "auth",
		Claims:      new(shared.UserClaims),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return response.SendUnauthorized(c, "Invalid or expired token")
		},
	}
	return jwtware.New(conf)
}

// UserContext lifts the user ID out of the validated token so handlers can
// read it with GetUserFromContext. Must run after Jwt.
func UserContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("auth").(*jwt.Token)
		if !ok {
			return response.SendUnauthorized(c, "Missing authentication context")
		}

		claims, ok := token.Claims.(*shared.UserClaims)
		if !ok || claims.UserId == nil || *claims.UserId == "" {
			return response.SendUnauthorized(c, "Token carries no user identity")
		}

		c.Locals("user_id", *claims.UserId)
		c.Locals("jwt_claims", claims)
		return c.Next()
	}
}
