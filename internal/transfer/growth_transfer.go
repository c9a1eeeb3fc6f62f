package transfer

// SimulationRequest carries the growth planning input. Zero-valued
// fields fall back to the user's stored growth target when one exists.
type SimulationRequest struct {
	CurrentFollowers int     `json:"current_followers"`
	TargetGain       int     `json:"target_gain"`
	PeriodMonths     int     `json:"period_months"`
	StrategyCount    int     `json:"strategy_count"`
	ContentQuality   string  `json:"content_quality"`
	MonthlyBudget    float64 `json:"monthly_budget"`
}

type GrowthTargetUpdate struct {
	CurrentFollowers int     `json:"current_followers"`
	TargetGain       int     `json:"target_gain"`
	PeriodMonths     int     `json:"period_months"`
	StrategyCount    int     `json:"strategy_count"`
	ContentQuality   string  `json:"content_quality"`
	MonthlyBudget    float64 `json:"monthly_budget"`
}
