package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/socialpulse/insights-api/internal/models"
	"github.com/socialpulse/insights-api/internal/repository"
	"github.com/socialpulse/insights-api/internal/transfer"
)

type GrowthService interface {
	GetTarget(ctx context.Context, userID int64) (*models.GrowthTarget, error)
	UpdateTarget(ctx context.Context, userID int64, update *transfer.GrowthTargetUpdate) error
}

type growthService struct {
	gt repository.GrowthTargetRepository
}

func NewGrowthService(gt repository.GrowthTargetRepository) GrowthService {
	return &growthService{
		gt: gt,
	}
}

func (s *growthService) GetTarget(ctx context.Context, userID int64) (*models.GrowthTarget, error) {
	target, isExist, err := s.gt.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !isExist {
		err = errors.New("growth target for given user doesn't exist")
		slog.Info(err.Error())
		return nil, err
	}

	return target, nil
}

func (s *growthService) UpdateTarget(ctx context.Context, userID int64, update *transfer.GrowthTargetUpdate) error {
	if update == nil {
		err := errors.New("growth target data is nil")
		slog.Info(err.Error())
		return err
	}

	if update.TargetGain <= 0 || update.PeriodMonths <= 0 || update.CurrentFollowers <= 0 {
		err := errors.New("followers, target gain and period must be positive")
		slog.Info(err.Error())
		return err
	}

	switch update.ContentQuality {
	case "low", "medium", "high":
	default:
		err := fmt.Errorf("content quality %s is not allowed", update.ContentQuality)
		slog.Info(err.Error())
		return err
	}

	target := models.GrowthTarget{
		UserID:           userID,
		CurrentFollowers: update.CurrentFollowers,
		TargetGain:       update.TargetGain,
		PeriodMonths:     update.PeriodMonths,
		StrategyCount:    update.StrategyCount,
		ContentQuality:   update.ContentQuality,
		MonthlyBudget:    update.MonthlyBudget,
	}
	err := s.gt.Upsert(ctx, &target)
	if err != nil {
		return err
	}
	return nil
}
