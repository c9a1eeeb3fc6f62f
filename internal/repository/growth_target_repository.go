package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/socialpulse/insights-api/internal/models"
)

type GrowthTargetRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*models.GrowthTarget, bool, error)
	Upsert(ctx context.Context, target *models.GrowthTarget) error
}

type growthTargetRepository struct {
	db *sql.DB
}

func NewGrowthTargetRepository(db *sql.DB) GrowthTargetRepository {
	return &growthTargetRepository{db: db}
}

func (r *growthTargetRepository) GetByUserID(ctx context.Context, userID int64) (*models.GrowthTarget, bool, error) {
	query := `SELECT id, user_id, current_followers, target_gain, period_months, strategy_count,
		content_quality, monthly_budget, created_at, updated_at
		FROM growth_targets WHERE user_id = $1`
	row := r.db.QueryRowContext(ctx, query, userID)

	var target models.GrowthTarget
	err := row.Scan(&target.ID, &target.UserID, &target.CurrentFollowers, &target.TargetGain,
		&target.PeriodMonths, &target.StrategyCount, &target.ContentQuality, &target.MonthlyBudget,
		&target.CreatedAt, &target.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &target, true, nil
}

func (r *growthTargetRepository) Upsert(ctx context.Context, target *models.GrowthTarget) error {
	query := `
		INSERT INTO growth_targets (user_id, current_followers, target_gain, period_months,
			strategy_count, content_quality, monthly_budget)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE
		SET current_followers = EXCLUDED.current_followers,
			target_gain = EXCLUDED.target_gain,
			period_months = EXCLUDED.period_months,
			strategy_count = EXCLUDED.strategy_count,
			content_quality = EXCLUDED.content_quality,
			monthly_budget = EXCLUDED.monthly_budget,
			updated_at = CURRENT_TIMESTAMP
	`
	_, err := r.db.ExecContext(ctx, query, target.UserID, target.CurrentFollowers, target.TargetGain,
		target.PeriodMonths, target.StrategyCount, target.ContentQuality, target.MonthlyBudget)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
