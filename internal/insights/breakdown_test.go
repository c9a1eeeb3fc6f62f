package insights

import (
	"testing"

	"github.com/socialpulse/insights-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taggedRecord(tags ...string) *models.MetricRecord {
	return &models.MetricRecord{Hashtags: tags}
}

func TestTopHashtagsRankingAndTies(t *testing.T) {
	records := []*models.MetricRecord{
		taggedRecord("a", "b", "c"),
		taggedRecord("a", "b"),
		taggedRecord("a"),
	}

	got := TopHashtags(records)

	require.Len(t, got, 3)
	assert.Equal(t, HashtagCount{Tag: "a", Count: 3}, got[0])
	assert.Equal(t, HashtagCount{Tag: "b", Count: 2}, got[1])
	assert.Equal(t, HashtagCount{Tag: "c", Count: 1}, got[2])
}

func TestTopHashtagsTiesKeepFirstSeenOrder(t *testing.T) {
	records := []*models.MetricRecord{
		taggedRecord("zeta", "alpha", "mid"),
	}

	got := TopHashtags(records)

	require.Len(t, got, 3)
	assert.Equal(t, "zeta", got[0].Tag)
	assert.Equal(t, "alpha", got[1].Tag)
	assert.Equal(t, "mid", got[2].Tag)
}

func TestTopHashtagsLimit(t *testing.T) {
	records := []*models.MetricRecord{
		taggedRecord("a", "b", "c", "d", "e", "f", "g"),
	}

	got := TopHashtags(records)
	assert.Len(t, got, 5)
}

func TestTimeSlotProfileLateNightWraps(t *testing.T) {
	records := []*models.MetricRecord{
		{PublishedTime: strPtr("22:30"), Likes: 10},
		{PublishedTime: strPtr("02:15"), Likes: 20},
		{PublishedTime: strPtr("05:59"), Likes: 30},
		{PublishedTime: strPtr("06:00"), Likes: 40},
	}

	stats := timeSlotProfile(records)

	byName := map[string]TimeSlotStat{}
	for _, s := range stats {
		byName[s.Slot] = s
	}

	assert.Equal(t, 3, byName["late_night"].Posts)
	assert.Equal(t, 20.0, byName["late_night"].MeanEngagement)
	assert.Equal(t, 1, byName["early_morning"].Posts)

	total := 0
	for _, s := range stats {
		total += s.Posts
	}
	assert.Equal(t, 4, total, "each record lands in exactly one slot")
}

func TestTimeSlotProfileSkipsRecordsWithoutTime(t *testing.T) {
	records := []*models.MetricRecord{
		{Likes: 10},
		{PublishedTime: strPtr("bad")},
		{PublishedTime: strPtr("12:00"), Likes: 5},
	}

	stats := timeSlotProfile(records)

	total := 0
	for _, s := range stats {
		total += s.Posts
	}
	assert.Equal(t, 1, total)
}

func TestBestTimeSlot(t *testing.T) {
	records := []*models.MetricRecord{
		{PublishedTime: strPtr("10:00"), Likes: 5},
		{PublishedTime: strPtr("19:00"), Likes: 50},
	}

	b := AnalyzeBreakdowns(records, nil)
	require.NotNil(t, b.BestTimeSlot)
	assert.Equal(t, "night", *b.BestTimeSlot)
}

func TestBestTimeSlotNilWithoutPosts(t *testing.T) {
	b := AnalyzeBreakdowns(nil, nil)
	assert.Nil(t, b.BestTimeSlot)
}

func TestPostTypeDistribution(t *testing.T) {
	records := []*models.MetricRecord{
		{Category: strPtr(models.CategoryReel)},
		{Category: strPtr(models.CategoryReel)},
		{Category: strPtr(models.CategoryFeed)},
		{PostID: int64Ptr(4)},
		{}, // uncategorized, excluded from the total
	}
	postTypes := map[int64]string{4: models.CategoryStory}

	shares := PostTypeDistribution(records, postTypes)

	require.Len(t, shares, 3)
	byCategory := map[string]PostTypeShare{}
	for _, s := range shares {
		byCategory[s.Category] = s
	}

	assert.Equal(t, 1, byCategory[models.CategoryFeed].Count)
	assert.Equal(t, 2, byCategory[models.CategoryReel].Count)
	assert.Equal(t, 1, byCategory[models.CategoryStory].Count)
	assert.InDelta(t, 25.0, byCategory[models.CategoryFeed].Percentage, 1e-9)
	assert.InDelta(t, 50.0, byCategory[models.CategoryReel].Percentage, 1e-9)
}

func TestPostTypeDistributionEmpty(t *testing.T) {
	shares := PostTypeDistribution(nil, nil)

	require.Len(t, shares, 3)
	for _, s := range shares {
		assert.Zero(t, s.Count)
		assert.Zero(t, s.Percentage)
	}
}
