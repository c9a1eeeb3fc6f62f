package service

import (
	"context"
	"testing"

	"github.com/socialpulse/insights-api/internal/models"
	"github.com/socialpulse/insights-api/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsServiceCreateRecord(t *testing.T) {
	mr := &fakeMetricRecordRepo{}
	s := NewMetricsService(mr, &fakePostRepo{})

	timeOfDay := "14:30"
	id, err := s.CreateRecord(context.Background(), 1, &transfer.MetricCreation{
		Likes:         120,
		Comments:      8,
		Reach:         2400,
		PublishedAt:   "2024-06-05T14:30",
		PublishedTime: &timeOfDay,
		Hashtags:      []string{"launch", "demo"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	require.Len(t, mr.created, 1)
	record := mr.created[0]
	assert.Equal(t, int64(1), record.UserID)
	assert.Equal(t, models.RecordSourceManual, record.Source)
	assert.Equal(t, 120, record.Likes)
	assert.Equal(t, 5, record.PublishedAt.Day())
}

func TestMetricsServiceCreateRecordValidation(t *testing.T) {
	badCategory := "carousel"
	badTime := "25:99"

	tests := []struct {
		name string
		mc   *transfer.MetricCreation
	}{
		{"nil payload", nil},
		{"negative likes", &transfer.MetricCreation{Likes: -1, PublishedAt: "2024-06-05T14:30"}},
		{"bad category", &transfer.MetricCreation{Category: &badCategory, PublishedAt: "2024-06-05T14:30"}},
		{"bad published_at", &transfer.MetricCreation{PublishedAt: "yesterday"}},
		{"bad time of day", &transfer.MetricCreation{PublishedAt: "2024-06-05T14:30", PublishedTime: &badTime}},
	}

	s := NewMetricsService(&fakeMetricRecordRepo{}, &fakePostRepo{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateRecord(context.Background(), 1, tt.mc)
			assert.Error(t, err)
		})
	}
}

func TestMetricsServiceCreateRecordRejectsForeignPost(t *testing.T) {
	postID := int64(42)
	s := NewMetricsService(&fakeMetricRecordRepo{}, &fakePostRepo{exists: false})

	_, err := s.CreateRecord(context.Background(), 1, &transfer.MetricCreation{
		PostID:      &postID,
		PublishedAt: "2024-06-05T14:30",
	})
	assert.Error(t, err)
}

func TestMetricsServiceRemove(t *testing.T) {
	mr := &fakeMetricRecordRepo{checkedOK: true}
	s := NewMetricsService(mr, &fakePostRepo{})

	err := s.Remove(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, mr.removed)
}

func TestMetricsServiceRemoveUnknownRecord(t *testing.T) {
	mr := &fakeMetricRecordRepo{checkedOK: false}
	s := NewMetricsService(mr, &fakePostRepo{})

	err := s.Remove(context.Background(), 1, 5)
	assert.Error(t, err)
	assert.Empty(t, mr.removed)
}
