package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateGrowth(t *testing.T) {
	result, err := SimulateGrowth(SimulationInput{
		CurrentFollowers: 1000,
		TargetGain:       500,
		PeriodMonths:     6,
		StrategyCount:    2,
		ContentQuality:   "high",
		MonthlyBudget:    100,
	})
	require.NoError(t, err)

	// 0.02 * 1.5 * 1.2 * 1.3
	assert.InDelta(t, 0.0468, result.MonthlyRate, 1e-9)
	assert.InDelta(t, 1315.78, result.RealisticProjected, 0.1)
	assert.Equal(t, 1500, result.TargetFollowers)
	assert.Equal(t, 20, result.WeeklySubTarget)  // 500 / 24
	assert.Equal(t, 83, result.MonthlySubTarget) // 500 / 6
	assert.InDelta(t, 0.877, result.FeasibilityRatio, 0.001)
	assert.Equal(t, "high", result.Feasibility)

	require.Len(t, result.Trajectory, 24)
	last := result.Trajectory[23]
	assert.Equal(t, 24, last.Week)
	assert.InDelta(t, result.RealisticProjected, last.Realistic, 0.01)
	assert.InDelta(t, 1500, last.Target, 1e-9)
}

func TestSimulateGrowthBaseline(t *testing.T) {
	// No strategies, no budget, default quality.
	result, err := SimulateGrowth(SimulationInput{
		CurrentFollowers: 1000,
		TargetGain:       100,
		PeriodMonths:     1,
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.02, result.MonthlyRate, 1e-9)
	assert.InDelta(t, 1020, result.RealisticProjected, 1e-9)
}

func TestSimulateGrowthQualityMultipliers(t *testing.T) {
	base := SimulationInput{CurrentFollowers: 1000, TargetGain: 100, PeriodMonths: 3}

	tests := []struct {
		quality string
		want    float64
	}{
		{"low", 0.014},
		{"medium", 0.02},
		{"high", 0.03},
		{"", 0.02},
		{"excellent", 0.02}, // unknown falls back to medium
	}

	for _, tt := range tests {
		in := base
		in.ContentQuality = tt.quality
		result, err := SimulateGrowth(in)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, result.MonthlyRate, 1e-9, "quality %q", tt.quality)
	}
}

func TestSimulateGrowthRejectsNonPositiveInput(t *testing.T) {
	tests := []struct {
		name string
		in   SimulationInput
	}{
		{"zero followers", SimulationInput{TargetGain: 100, PeriodMonths: 3}},
		{"negative followers", SimulationInput{CurrentFollowers: -5, TargetGain: 100, PeriodMonths: 3}},
		{"zero gain", SimulationInput{CurrentFollowers: 1000, PeriodMonths: 3}},
		{"zero months", SimulationInput{CurrentFollowers: 1000, TargetGain: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SimulateGrowth(tt.in)
			assert.ErrorIs(t, err, ErrInvalidSimulationInput)
		})
	}
}

func TestFeasibilityBands(t *testing.T) {
	assert.Equal(t, "high", feasibility(0.8))
	assert.Equal(t, "high", feasibility(1.5))
	assert.Equal(t, "medium", feasibility(0.79))
	assert.Equal(t, "medium", feasibility(0.5))
	assert.Equal(t, "low", feasibility(0.49))
}
