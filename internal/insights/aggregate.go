package insights

import "github.com/socialpulse/insights-api/internal/models"

// PeriodAggregate is the summed totals over one period's records. It
// is recomputed per request and never persisted.
type PeriodAggregate struct {
	TotalLikes          int `json:"total_likes"`
	TotalComments       int `json:"total_comments"`
	TotalShares         int `json:"total_shares"`
	TotalReach          int `json:"total_reach"`
	TotalFollowerChange int `json:"total_follower_change"`
	TotalPosts          int `json:"total_posts"`
}

// TotalEngagement is likes + comments + shares.
func (a PeriodAggregate) TotalEngagement() int {
	return a.TotalLikes + a.TotalComments + a.TotalShares
}

// AverageReach is mean reach per post, 0 when the period has no posts.
func (a PeriodAggregate) AverageReach() float64 {
	if a.TotalPosts == 0 {
		return 0
	}
	return float64(a.TotalReach) / float64(a.TotalPosts)
}

// Aggregate reduces a record set into summed totals. An empty input
// yields the zero aggregate, not an error.
func Aggregate(records []*models.MetricRecord) PeriodAggregate {
	var agg PeriodAggregate
	for _, r := range records {
		agg.TotalLikes += r.Likes
		agg.TotalComments += r.Comments
		agg.TotalShares += r.Shares
		agg.TotalReach += r.Reach
		agg.TotalFollowerChange += r.FollowerChange
	}
	agg.TotalPosts = len(records)
	return agg
}
