package handler

import (
	"github.com/gofiber/fiber/v2"

	"aidbridge/internal/domain"
	"aidbridge/internal/middleware"
	"aidbridge/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}

	return c.JSON(user)
}

// ListByRole backs the assignment dropdowns: the logistics dashboard
// needs the recipients to assign donations to.
func (h *UserHandler) ListByRole(c *fiber.Ctx) error {
	role := domain.UserRole(c.Params("role"))

	users, err := h.userService.ListByRole(c.Context(), role)
	if err != nil {
		if err == service.ErrInvalidRole {
			return middleware.BadRequest("Invalid role")
		}
		return err
	}

	return c.JSON(fiber.Map{"users": users, "total": len(users)})
}
