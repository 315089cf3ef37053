package middleware

import (
	"github.com/gofiber/fiber/v2"

	"aidbridge/internal/domain"
)

// RequireRole passes when the authenticated user holds any of the given
// roles. Roles are flat, not hierarchical: an Admin is not implicitly a
// Donor. Each route lists exactly the roles whose dashboard offers the
// action.
func RequireRole(roles ...domain.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return Unauthorized("User not found")
		}

		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}

		return Forbidden("Insufficient permissions for this operation")
	}
}

func GetCurrentUserRole(c *fiber.Ctx) domain.UserRole {
	user := GetCurrentUser(c)
	if user == nil {
		return ""
	}
	return user.Role
}
