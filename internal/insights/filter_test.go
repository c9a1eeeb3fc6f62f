package insights

import (
	"testing"
	"time"

	"github.com/socialpulse/insights-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func recordAt(day int, opts ...func(*models.MetricRecord)) *models.MetricRecord {
	r := &models.MetricRecord{
		PublishedAt: time.Date(2024, time.June, day, 12, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func TestFilterRecordsWindow(t *testing.T) {
	w, err := ResolvePeriod(PeriodMonthly, "2024-06")
	require.NoError(t, err)

	inside := recordAt(15)
	firstDay := &models.MetricRecord{PublishedAt: w.Start}
	lastMoment := &models.MetricRecord{PublishedAt: w.End}
	before := &models.MetricRecord{PublishedAt: w.Start.Add(-time.Nanosecond)}
	after := &models.MetricRecord{PublishedAt: w.End.Add(time.Nanosecond)}

	got, err := FilterRecords([]*models.MetricRecord{inside, firstDay, lastMoment, before, after}, w, "", nil)
	require.NoError(t, err)
	assert.Equal(t, []*models.MetricRecord{inside, firstDay, lastMoment}, got)
}

func TestFilterRecordsByCategory(t *testing.T) {
	w, err := ResolvePeriod(PeriodMonthly, "2024-06")
	require.NoError(t, err)

	linked := recordAt(3, func(r *models.MetricRecord) { r.PostID = int64Ptr(7) })
	manualReel := recordAt(4, func(r *models.MetricRecord) { r.Category = strPtr(models.CategoryReel) })
	manualFeed := recordAt(5, func(r *models.MetricRecord) { r.Category = strPtr(models.CategoryFeed) })
	uncategorized := recordAt(6)

	postTypes := map[int64]string{7: models.CategoryReel}

	got, err := FilterRecords([]*models.MetricRecord{linked, manualReel, manualFeed, uncategorized}, w, models.CategoryReel, postTypes)
	require.NoError(t, err)
	assert.Equal(t, []*models.MetricRecord{linked, manualReel}, got)
}

func TestFilterRecordsLinkedCategoryWinsOverOwn(t *testing.T) {
	w, err := ResolvePeriod(PeriodMonthly, "2024-06")
	require.NoError(t, err)

	// The linked post's type overrides whatever the record carries.
	r := recordAt(10, func(r *models.MetricRecord) {
		r.PostID = int64Ptr(9)
		r.Category = strPtr(models.CategoryReel)
	})
	postTypes := map[int64]string{9: models.CategoryStory}

	got, err := FilterRecords([]*models.MetricRecord{r}, w, models.CategoryReel, postTypes)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = FilterRecords([]*models.MetricRecord{r}, w, models.CategoryStory, postTypes)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestFilterRecordsUnsupportedCategory(t *testing.T) {
	w, err := ResolvePeriod(PeriodMonthly, "2024-06")
	require.NoError(t, err)

	_, err = FilterRecords(nil, w, "carousel", nil)
	assert.ErrorIs(t, err, ErrUnsupportedCategory)
}
