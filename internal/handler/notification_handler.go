package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"aidbridge/internal/middleware"
	"aidbridge/internal/service"
)

type NotificationHandler struct {
	query service.QueryService
}

func NewNotificationHandler(query service.QueryService) *NotificationHandler {
	return &NotificationHandler{query: query}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	notifications, err := h.query.Notifications(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"notifications": notifications, "total": len(notifications)})
}

func (h *NotificationHandler) Dismiss(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid notification ID")
	}

	if err := h.query.DismissNotification(c.Context(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
