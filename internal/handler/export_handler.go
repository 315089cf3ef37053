package handler

import (
	"github.com/gofiber/fiber/v2"

	"aidbridge/internal/middleware"
	"aidbridge/internal/service"
)

type ExportHandler struct {
	export service.ExportService
}

func NewExportHandler(export service.ExportService) *ExportHandler {
	return &ExportHandler{export: export}
}

func (h *ExportHandler) Create(c *fiber.Ctx) error {
	result, err := h.export.ExportSnapshot(c.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		if err == service.ErrStorageUnavailable {
			return middleware.ServiceUnavailable("Object storage not configured")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}
