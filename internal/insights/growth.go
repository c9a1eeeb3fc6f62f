package insights

import (
	"fmt"
	"math"
)

const (
	baseMonthlyGrowthRate = 0.02

	qualityLowMultiplier    = 0.7
	qualityMediumMultiplier = 1.0
	qualityHighMultiplier   = 1.5

	strategyMultiplier = 1.2
	budgetMultiplier   = 1.3

	feasibilityHighRatio   = 0.8
	feasibilityMediumRatio = 0.5
)

type SimulationInput struct {
	CurrentFollowers int     `json:"current_followers"`
	TargetGain       int     `json:"target_gain"`
	PeriodMonths     int     `json:"period_months"`
	StrategyCount    int     `json:"strategy_count"`
	ContentQuality   string  `json:"content_quality"` // low, medium, high
	MonthlyBudget    float64 `json:"monthly_budget"`
}

type TrajectoryPoint struct {
	Week      int     `json:"week"`
	Realistic float64 `json:"realistic"`
	Target    float64 `json:"target"`
}

type GrowthSimulationResult struct {
	MonthlyRate        float64           `json:"monthly_rate"`
	RealisticProjected float64           `json:"realistic_projected"`
	TargetFollowers    int               `json:"target_followers"`
	WeeklySubTarget    int               `json:"weekly_sub_target"`
	MonthlySubTarget   int               `json:"monthly_sub_target"`
	FeasibilityRatio   float64           `json:"feasibility_ratio"`
	Feasibility        string            `json:"feasibility"` // high, medium, low
	Trajectory         []TrajectoryPoint `json:"trajectory"`
}

// SimulateGrowth projects follower count forward under a realistic
// growth model and compares it against the stated target. The
// realistic monthly rate is the 2% base compounded by content quality,
// an active-strategy bonus and a paid-budget bonus.
func SimulateGrowth(in SimulationInput) (*GrowthSimulationResult, error) {
	if in.CurrentFollowers <= 0 {
		return nil, fmt.Errorf("%w: current followers must be positive", ErrInvalidSimulationInput)
	}
	if in.TargetGain <= 0 {
		return nil, fmt.Errorf("%w: target gain must be positive", ErrInvalidSimulationInput)
	}
	if in.PeriodMonths <= 0 {
		return nil, fmt.Errorf("%w: period months must be positive", ErrInvalidSimulationInput)
	}

	rate := baseMonthlyGrowthRate * qualityMultiplier(in.ContentQuality)
	if in.StrategyCount > 0 {
		rate *= strategyMultiplier
	}
	if in.MonthlyBudget > 0 {
		rate *= budgetMultiplier
	}

	weeks := in.PeriodMonths * 4
	current := float64(in.CurrentFollowers)
	projected := current * math.Pow(1+rate, float64(in.PeriodMonths))
	target := in.CurrentFollowers + in.TargetGain

	trajectory := make([]TrajectoryPoint, 0, weeks)
	for week := 1; week <= weeks; week++ {
		trajectory = append(trajectory, TrajectoryPoint{
			Week:      week,
			Realistic: current * math.Pow(1+rate, float64(week)/4),
			Target:    current + float64(in.TargetGain)*float64(week)/float64(weeks),
		})
	}

	ratio := projected / float64(target)

	return &GrowthSimulationResult{
		MonthlyRate:        rate,
		RealisticProjected: projected,
		TargetFollowers:    target,
		WeeklySubTarget:    in.TargetGain / weeks,
		MonthlySubTarget:   in.TargetGain / in.PeriodMonths,
		FeasibilityRatio:   ratio,
		Feasibility:        feasibility(ratio),
		Trajectory:         trajectory,
	}, nil
}

func qualityMultiplier(quality string) float64 {
	switch quality {
	case "low":
		return qualityLowMultiplier
	case "high":
		return qualityHighMultiplier
	default:
		return qualityMediumMultiplier
	}
}

func feasibility(ratio float64) string {
	switch {
	case ratio >= feasibilityHighRatio:
		return "high"
	case ratio >= feasibilityMediumRatio:
		return "medium"
	default:
		return "low"
	}
}
