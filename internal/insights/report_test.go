package insights

import (
	"testing"
	"time"

	"github.com/socialpulse/insights-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePeriodReport(t *testing.T) {
	june := func(day int) time.Time {
		return time.Date(2024, time.June, day, 12, 0, 0, 0, time.UTC)
	}
	may := func(day int) time.Time {
		return time.Date(2024, time.May, day, 12, 0, 0, 0, time.UTC)
	}

	records := []*models.MetricRecord{
		{PublishedAt: june(5), Likes: 100, Reach: 1000, Hashtags: []string{"launch"}},
		{PublishedAt: june(20), Likes: 200, Reach: 2000},
		{PublishedAt: may(15), Likes: 150, Reach: 3000},
		{PublishedAt: time.Date(2024, time.April, 30, 12, 0, 0, 0, time.UTC), Likes: 999}, // outside both windows
	}

	report, err := ComputePeriodReport(ReportInput{
		Records: records,
		Kind:    PeriodMonthly,
		Anchor:  "2024-06",
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-06", report.Anchor)
	assert.Equal(t, "2024-05", report.PreviousAnchor)

	assert.Equal(t, 300, report.Aggregate.TotalLikes)
	assert.Equal(t, 2, report.Aggregate.TotalPosts)
	assert.Equal(t, 150, report.PreviousAggregate.TotalLikes)
	assert.Equal(t, 1, report.PreviousAggregate.TotalPosts)

	assert.Equal(t, 100.0, report.Deltas.Likes)
	assert.Equal(t, 100.0, report.Deltas.Posts)

	require.Len(t, report.Breakdowns.TopHashtags, 1)
	assert.Equal(t, "launch", report.Breakdowns.TopHashtags[0].Tag)
}

func TestComputePeriodReportIsDeterministic(t *testing.T) {
	records := []*models.MetricRecord{
		{PublishedAt: time.Date(2024, time.June, 3, 8, 0, 0, 0, time.UTC), Likes: 10, Hashtags: []string{"a", "b"}},
	}
	in := ReportInput{Records: records, Kind: PeriodWeekly, Anchor: "2024-W23"}

	first, err := ComputePeriodReport(in)
	require.NoError(t, err)
	second, err := ComputePeriodReport(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputePeriodReportInvalidAnchor(t *testing.T) {
	_, err := ComputePeriodReport(ReportInput{Kind: PeriodWeekly, Anchor: "nope"})
	assert.ErrorIs(t, err, ErrInvalidPeriodAnchor)
}

func TestComputePeriodReportInvalidCategory(t *testing.T) {
	_, err := ComputePeriodReport(ReportInput{Kind: PeriodMonthly, Anchor: "2024-06", Category: "short"})
	assert.ErrorIs(t, err, ErrUnsupportedCategory)
}

func TestComputePeriodReportEmpty(t *testing.T) {
	report, err := ComputePeriodReport(ReportInput{Kind: PeriodMonthly, Anchor: "2024-06"})
	require.NoError(t, err)

	assert.Equal(t, PeriodAggregate{}, report.Aggregate)
	assert.Equal(t, "F", report.Score.Rating)
	assert.True(t, report.Score.EngagementRateNeedsReachInput)
	assert.Nil(t, report.Breakdowns.BestTimeSlot)
}
