package models

import "time"

// GrowthTarget is the stored planning input for growth simulations.
type GrowthTarget struct {
	ID               int64     `db:"id" json:"id"`
	UserID           int64     `db:"user_id" json:"user_id"`
	CurrentFollowers int       `db:"current_followers" json:"current_followers"`
	TargetGain       int       `db:"target_gain" json:"target_gain"`
	PeriodMonths     int       `db:"period_months" json:"period_months"`
	StrategyCount    int       `db:"strategy_count" json:"strategy_count"`
	ContentQuality   string    `db:"content_quality" json:"content_quality"` // low, medium, high
	MonthlyBudget    float64   `db:"monthly_budget" json:"monthly_budget"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}
