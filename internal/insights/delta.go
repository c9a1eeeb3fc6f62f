package insights

// AggregateDeltas holds the percentage change of each aggregate field
// against the previous period.
type AggregateDeltas struct {
	Likes          float64 `json:"likes"`
	Comments       float64 `json:"comments"`
	Shares         float64 `json:"shares"`
	Reach          float64 `json:"reach"`
	FollowerChange float64 `json:"follower_change"`
	Posts          float64 `json:"posts"`
}

// PercentChange computes the change from previous to current as a
// percentage. A zero baseline maps to 100 when anything was gained and
// 0 otherwise; the asymmetry deliberately trades mathematical purity
// for NaN-free display values.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return ((current - previous) / previous) * 100
}

// Deltas compares two aggregates field by field.
func Deltas(current, previous PeriodAggregate) AggregateDeltas {
	return AggregateDeltas{
		Likes:          PercentChange(float64(current.TotalLikes), float64(previous.TotalLikes)),
		Comments:       PercentChange(float64(current.TotalComments), float64(previous.TotalComments)),
		Shares:         PercentChange(float64(current.TotalShares), float64(previous.TotalShares)),
		Reach:          PercentChange(float64(current.TotalReach), float64(previous.TotalReach)),
		FollowerChange: PercentChange(float64(current.TotalFollowerChange), float64(previous.TotalFollowerChange)),
		Posts:          PercentChange(float64(current.TotalPosts), float64(previous.TotalPosts)),
	}
}
