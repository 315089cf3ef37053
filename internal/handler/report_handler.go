package handler

import (
	"github.com/gofiber/fiber/v2"

	"aidbridge/internal/service"
)

type ReportHandler struct {
	demand service.DemandService
}

func NewReportHandler(demand service.DemandService) *ReportHandler {
	return &ReportHandler{demand: demand}
}

func (h *ReportHandler) HighDemand(c *fiber.Ctx) error {
	categories, err := h.demand.HighDemand(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"categories": categories})
}
