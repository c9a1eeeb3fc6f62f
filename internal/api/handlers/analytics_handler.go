package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/socialpulse/insights-api/internal/insights"
	"github.com/socialpulse/insights-api/internal/service"
)

type AnalyticsHandler struct {
	s  service.AnalyticsService
	ex service.ExportService
}

func NewAnalyticsHandler(service service.AnalyticsService, export service.ExportService) *AnalyticsHandler {
	return &AnalyticsHandler{s: service, ex: export}
}

func (h *AnalyticsHandler) GetReport(c *fiber.Ctx) error {
	userID := GetUserID(c)

	kind, ok := periodKind(c.Query("period", "weekly"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "period must be weekly or monthly",
		})
	}

	report, err := h.s.PeriodReport(c.Context(), userID, kind, c.Query("anchor"), c.Query("category"))
	if err != nil {
		return c.Status(reportStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(report)
}

func (h *AnalyticsHandler) ExportReport(c *fiber.Ctx) error {
	userID := GetUserID(c)

	kind, ok := periodKind(c.Query("period", "weekly"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "period must be weekly or monthly",
		})
	}

	url, err := h.ex.ExportReport(c.Context(), userID, kind, c.Query("anchor"), c.Query("category"))
	if err != nil {
		return c.Status(reportStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"url": url,
	})
}

func periodKind(period string) (insights.PeriodKind, bool) {
	switch period {
	case "weekly":
		return insights.PeriodWeekly, true
	case "monthly":
		return insights.PeriodMonthly, true
	}
	return "", false
}

func reportStatus(err error) int {
	if errors.Is(err, insights.ErrInvalidPeriodAnchor) || errors.Is(err, insights.ErrUnsupportedCategory) {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
