package middleware

import (
	"strings"

	"timetrack/config"
	"timetrack/utils"

	"github.com/gofiber/fiber/v3"
)

// ManagerAuth guards the administrative routes: store CRUD, the
// hardware-token registry and report exports. It accepts only tokens
// whose role claim is "manager".
func ManagerAuth(cfg *config.Config) fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
				Error: "Missing authorization header",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
				Error: "Invalid authorization header format",
			})
		}

		token, err := utils.ValidateToken(parts[1], cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
				Error: "Invalid or expired token",
			})
		}

		role, err := token.GetString("role")
		if err != nil || role != "manager" {
			return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
				Error: "Manager access required",
			})
		}

		name, _ := token.GetString("name")
		username, _ := token.GetString("username")

		c.Locals("role", role)
		c.Locals("name", name)
		c.Locals("username", username)

		return c.Next()
	}
}
