package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/socialpulse/insights-api/internal/service"
	"github.com/socialpulse/insights-api/internal/transfer"
)

type MetricsHandler struct {
	s service.MetricsService
}

func NewMetricsHandler(service service.MetricsService) *MetricsHandler {
	return &MetricsHandler{s: service}
}

func (h *MetricsHandler) CreateRecord(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var mc transfer.MetricCreation
	if err := c.BodyParser(&mc); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	recordID, err := h.s.CreateRecord(c.Context(), userID, &mc)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id":      recordID,
		"message": "Metric record created successfully",
	})
}

func (h *MetricsHandler) ListRecords(c *fiber.Ctx) error {
	userID := GetUserID(c)

	records, err := h.s.List(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to list metric records",
		})
	}

	return c.Status(fiber.StatusOK).JSON(records)
}

func (h *MetricsHandler) RemoveRecord(c *fiber.Ctx) error {
	userID := GetUserID(c)
	recordId := c.QueryInt("id", 0)

	err := h.s.Remove(c.Context(), userID, int64(recordId))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to remove metric record",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}
