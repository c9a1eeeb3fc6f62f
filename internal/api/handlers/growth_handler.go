package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/socialpulse/insights-api/internal/insights"
	"github.com/socialpulse/insights-api/internal/service"
	"github.com/socialpulse/insights-api/internal/transfer"
)

type GrowthHandler struct {
	s  service.AnalyticsService
	gs service.GrowthService
}

func NewGrowthHandler(analytics service.AnalyticsService, growth service.GrowthService) *GrowthHandler {
	return &GrowthHandler{s: analytics, gs: growth}
}

func (h *GrowthHandler) Simulate(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var req transfer.SimulationRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	result, err := h.s.SimulateGrowth(c.Context(), userID, insights.SimulationInput{
		CurrentFollowers: req.CurrentFollowers,
		TargetGain:       req.TargetGain,
		PeriodMonths:     req.PeriodMonths,
		StrategyCount:    req.StrategyCount,
		ContentQuality:   req.ContentQuality,
		MonthlyBudget:    req.MonthlyBudget,
	})
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, insights.ErrInvalidSimulationInput) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *GrowthHandler) GetTarget(c *fiber.Ctx) error {
	userID := GetUserID(c)

	target, err := h.gs.GetTarget(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(target)
}

func (h *GrowthHandler) UpdateTarget(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var update transfer.GrowthTargetUpdate
	if err := c.BodyParser(&update); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	if err := h.gs.UpdateTarget(c.Context(), userID, &update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Growth target saved successfully",
	})
}
