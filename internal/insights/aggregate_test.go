package insights

import (
	"testing"

	"github.com/socialpulse/insights-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	records := []*models.MetricRecord{
		{Likes: 100, Comments: 10, Shares: 5, Reach: 1000, FollowerChange: 20},
		{Likes: 50, Comments: 5, Shares: 0, Reach: 500, FollowerChange: -3},
	}

	agg := Aggregate(records)

	assert.Equal(t, PeriodAggregate{
		TotalLikes:          150,
		TotalComments:       15,
		TotalShares:         5,
		TotalReach:          1500,
		TotalFollowerChange: 17,
		TotalPosts:          2,
	}, agg)
	assert.Equal(t, 170, agg.TotalEngagement())
	assert.Equal(t, 750.0, agg.AverageReach())
}

func TestAggregateEmpty(t *testing.T) {
	agg := Aggregate(nil)
	assert.Equal(t, PeriodAggregate{}, agg)
	assert.Equal(t, 0.0, agg.AverageReach())
}
