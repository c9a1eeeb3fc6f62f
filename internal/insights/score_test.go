package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorePeriodFullMarks(t *testing.T) {
	// Every component exactly at its saturation point.
	agg := PeriodAggregate{
		TotalLikes:          1000,
		TotalReach:          10000,
		TotalFollowerChange: 500,
		TotalPosts:          7,
	}

	score := ScorePeriod(agg, 5000, PeriodWeekly)

	assert.Equal(t, 50.0, score.Breakdown.Engagement)
	assert.Equal(t, 25.0, score.Breakdown.Growth)
	assert.Equal(t, 15.0, score.Breakdown.Quality)
	assert.Equal(t, 10.0, score.Breakdown.Consistency)
	assert.Equal(t, 100.0, score.Score)
	assert.Equal(t, "S", score.Rating)
	assert.False(t, score.EngagementRateNeedsReachInput)
}

func TestScorePeriodComponentsAreCapped(t *testing.T) {
	agg := PeriodAggregate{
		TotalLikes:          50000,
		TotalReach:          10000,
		TotalFollowerChange: 9999,
		TotalPosts:          100,
	}

	score := ScorePeriod(agg, 99999, PeriodWeekly)

	assert.Equal(t, 100.0, score.Score)
	assert.Equal(t, "S", score.Rating)
}

func TestScorePeriodZeroInput(t *testing.T) {
	score := ScorePeriod(PeriodAggregate{}, 0, PeriodWeekly)

	assert.Equal(t, 0.0, score.Score)
	assert.Equal(t, "F", score.Rating)
	assert.True(t, score.EngagementRateNeedsReachInput)
}

func TestScorePeriodNoReachFlagsMissingInput(t *testing.T) {
	// Engagement without reach: the component stays 0 but the flag
	// distinguishes missing data from bad performance.
	agg := PeriodAggregate{TotalLikes: 500, TotalPosts: 3}

	score := ScorePeriod(agg, 0, PeriodWeekly)

	assert.Equal(t, 0.0, score.Breakdown.Engagement)
	assert.True(t, score.EngagementRateNeedsReachInput)
}

func TestScorePeriodMonthlyCadence(t *testing.T) {
	// 28 posts in a month is 7 per week under the 4-week convention.
	agg := PeriodAggregate{TotalPosts: 28}

	score := ScorePeriod(agg, 0, PeriodMonthly)
	assert.Equal(t, 10.0, score.Breakdown.Consistency)

	// The same 28 posts in one week also saturate.
	score = ScorePeriod(agg, 0, PeriodWeekly)
	assert.Equal(t, 10.0, score.Breakdown.Consistency)
}

func TestScorePeriodNegativeGrowthEarnsNothing(t *testing.T) {
	agg := PeriodAggregate{TotalFollowerChange: -120, TotalPosts: 1}

	score := ScorePeriod(agg, 0, PeriodWeekly)
	assert.Equal(t, 0.0, score.Breakdown.Growth)
}

func TestScoreTotalIsSumOfBreakdown(t *testing.T) {
	agg := PeriodAggregate{
		TotalLikes:          120,
		TotalComments:       30,
		TotalReach:          5000,
		TotalFollowerChange: 100,
		TotalPosts:          3,
	}

	score := ScorePeriod(agg, agg.AverageReach(), PeriodWeekly)
	b := score.Breakdown
	assert.Equal(t, b.Engagement+b.Growth+b.Quality+b.Consistency, score.Score)
}

func TestRating(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "S"}, {90, "S"},
		{89.9, "A"}, {75, "A"},
		{74.9, "B"}, {60, "B"},
		{59.9, "C"}, {45, "C"},
		{44.9, "D"}, {30, "D"},
		{29.9, "F"}, {0, "F"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, rating(tt.score), "score %v", tt.score)
	}
}
