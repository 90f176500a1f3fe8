package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"go-catalog-ws/pkg/jwt"
)

const claimsKey = "claims"

// RequireAuth validates the bearer token and stores its claims in Locals.
// When enabled is false every request passes through untouched.
func RequireAuth(tokens *jwt.Manager, enabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !enabled {
			return c.Next()
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// RequirePrivilege checks the claims set by RequireAuth for code.
func RequirePrivilege(code string, enabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !enabled {
			return c.Next()
		}

		claims, ok := c.Locals(claimsKey).(*jwt.Claims)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No privileges found"})
		}

		if claims.HasPrivilege(code) {
			return c.Next()
		}

		return c.Status(403).JSON(fiber.Map{
			"error": "Forbidden: requires '" + code + "' privilege",
		})
	}
}
