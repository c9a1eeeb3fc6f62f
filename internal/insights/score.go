package insights

// Component caps and saturation points for the weighted score. A 10%
// engagement rate, 500 net followers, 5000 average reach and 7 posts
// per week each earn the full points for their component.
const (
	engagementMax  = 50.0
	growthMax      = 25.0
	qualityMax     = 15.0
	consistencyMax = 10.0

	engagementRateSaturation = 0.10
	growthSaturation         = 500.0
	avgReachSaturation       = 5000.0
	weeklyCadenceSaturation  = 7.0
)

type ScoreBreakdown struct {
	Engagement  float64 `json:"engagement"`
	Growth      float64 `json:"growth"`
	Quality     float64 `json:"quality"`
	Consistency float64 `json:"consistency"`
}

type PerformanceScore struct {
	Score     float64        `json:"score"`
	Rating    string         `json:"rating"` // S, A, B, C, D, F
	Breakdown ScoreBreakdown `json:"breakdown"`

	// EngagementRateNeedsReachInput is set when no record in the
	// period carried reach, so the engagement component is 0 for lack
	// of data rather than poor performance.
	EngagementRateNeedsReachInput bool `json:"engagement_rate_needs_reach_input"`
}

// ScorePeriod maps an aggregate into the four-part weighted score.
// Each component is capped before summing; the total is the exact sum
// of the breakdown. All-zero input yields the lowest rating, never an
// error.
func ScorePeriod(agg PeriodAggregate, avgReach float64, kind PeriodKind) PerformanceScore {
	var b ScoreBreakdown
	needsReach := agg.TotalReach == 0

	if agg.TotalReach > 0 {
		rate := float64(agg.TotalEngagement()) / float64(agg.TotalReach)
		b.Engagement = capAt(rate/engagementRateSaturation*engagementMax, engagementMax)
	}

	if agg.TotalFollowerChange > 0 {
		b.Growth = capAt(float64(agg.TotalFollowerChange)/growthSaturation*growthMax, growthMax)
	}

	if avgReach > 0 {
		b.Quality = capAt(avgReach/avgReachSaturation*qualityMax, qualityMax)
	}

	postsPerWeek := float64(agg.TotalPosts) / float64(WeeksInPeriod(kind))
	b.Consistency = capAt(postsPerWeek/weeklyCadenceSaturation*consistencyMax, consistencyMax)

	total := b.Engagement + b.Growth + b.Quality + b.Consistency

	return PerformanceScore{
		Score:                         total,
		Rating:                        rating(total),
		Breakdown:                     b,
		EngagementRateNeedsReachInput: needsReach,
	}
}

func rating(score float64) string {
	switch {
	case score >= 90:
		return "S"
	case score >= 75:
		return "A"
	case score >= 60:
		return "B"
	case score >= 45:
		return "C"
	case score >= 30:
		return "D"
	default:
		return "F"
	}
}

func capAt(v, max float64) float64 {
	if v > max {
		return max
	}
	return v
}
