package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/socialpulse/insights-api/internal/insights"
	"github.com/socialpulse/insights-api/internal/models"
	"github.com/socialpulse/insights-api/internal/repository"
)

type AnalyticsService interface {
	PeriodReport(ctx context.Context, userID int64, kind insights.PeriodKind, anchor, category string) (*insights.PeriodReport, error)
	SimulateGrowth(ctx context.Context, userID int64, input insights.SimulationInput) (*insights.GrowthSimulationResult, error)
}

type analyticsService struct {
	mr repository.MetricRecordRepository
	pr repository.PostRepository
	gt repository.GrowthTargetRepository
}

func NewAnalyticsService(
	mr repository.MetricRecordRepository,
	pr repository.PostRepository,
	gt repository.GrowthTargetRepository) AnalyticsService {
	return &analyticsService{
		mr: mr,
		pr: pr,
		gt: gt,
	}
}

// PeriodReport fetches the records spanning the requested and the
// previous period, resolves post types for linked records, and hands
// everything to the pure engine.
func (s *analyticsService) PeriodReport(ctx context.Context, userID int64, kind insights.PeriodKind, anchor, category string) (*insights.PeriodReport, error) {
	if userID == 0 {
		err := errors.New("User is not valid")
		slog.Info(err.Error())
		return nil, err
	}

	window, err := insights.ResolvePeriod(kind, anchor)
	if err != nil {
		return nil, err
	}
	prevAnchor, err := insights.PreviousAnchor(kind, anchor)
	if err != nil {
		return nil, err
	}
	prevWindow, err := insights.ResolvePeriod(kind, prevAnchor)
	if err != nil {
		return nil, err
	}

	// One fetch covers both windows; the engine splits them.
	records, err := s.mr.ListByUserAndRange(ctx, userID, prevWindow.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("error fetching metric records: %w", err)
	}

	postTypes, err := s.lookupPostTypes(ctx, records)
	if err != nil {
		return nil, err
	}

	report, err := insights.ComputePeriodReport(insights.ReportInput{
		Records:   records,
		Kind:      kind,
		Anchor:    anchor,
		Category:  category,
		PostTypes: postTypes,
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

func (s *analyticsService) lookupPostTypes(ctx context.Context, records []*models.MetricRecord) (map[int64]string, error) {
	var ids []int64
	seen := make(map[int64]struct{})
	for _, r := range records {
		if r.PostID == nil {
			continue
		}
		if _, ok := seen[*r.PostID]; ok {
			continue
		}
		seen[*r.PostID] = struct{}{}
		ids = append(ids, *r.PostID)
	}

	postTypes, err := s.pr.GetTypesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error resolving post types: %w", err)
	}
	return postTypes, nil
}

// SimulateGrowth fills unset simulation fields from the user's stored
// growth target, then runs the pure simulator. The three required
// numerics are never defaulted past the stored target; the simulator
// rejects them when still non-positive.
func (s *analyticsService) SimulateGrowth(ctx context.Context, userID int64, input insights.SimulationInput) (*insights.GrowthSimulationResult, error) {
	if userID == 0 {
		err := errors.New("User is not valid")
		slog.Info(err.Error())
		return nil, err
	}

	target, exists, err := s.gt.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading growth target: %w", err)
	}
	if exists {
		if input.CurrentFollowers == 0 {
			input.CurrentFollowers = target.CurrentFollowers
		}
		if input.TargetGain == 0 {
			input.TargetGain = target.TargetGain
		}
		if input.PeriodMonths == 0 {
			input.PeriodMonths = target.PeriodMonths
		}
		if input.StrategyCount == 0 {
			input.StrategyCount = target.StrategyCount
		}
		if input.ContentQuality == "" {
			input.ContentQuality = target.ContentQuality
		}
		if input.MonthlyBudget == 0 {
			input.MonthlyBudget = target.MonthlyBudget
		}
	}

	result, err := insights.SimulateGrowth(input)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return result, nil
}
