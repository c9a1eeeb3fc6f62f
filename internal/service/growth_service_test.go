package service

import (
	"context"
	"testing"

	"github.com/socialpulse/insights-api/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowthServiceUpdateTarget(t *testing.T) {
	gt := &fakeGrowthTargetRepo{}
	s := NewGrowthService(gt)

	err := s.UpdateTarget(context.Background(), 1, &transfer.GrowthTargetUpdate{
		CurrentFollowers: 1000,
		TargetGain:       500,
		PeriodMonths:     6,
		ContentQuality:   "medium",
	})
	require.NoError(t, err)

	require.NotNil(t, gt.saved)
	assert.Equal(t, int64(1), gt.saved.UserID)
	assert.Equal(t, 500, gt.saved.TargetGain)
}

func TestGrowthServiceUpdateTargetValidation(t *testing.T) {
	s := NewGrowthService(&fakeGrowthTargetRepo{})

	tests := []struct {
		name   string
		update *transfer.GrowthTargetUpdate
	}{
		{"nil", nil},
		{"zero gain", &transfer.GrowthTargetUpdate{CurrentFollowers: 1000, PeriodMonths: 6, ContentQuality: "low"}},
		{"bad quality", &transfer.GrowthTargetUpdate{CurrentFollowers: 1000, TargetGain: 500, PeriodMonths: 6, ContentQuality: "amazing"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.UpdateTarget(context.Background(), 1, tt.update)
			assert.Error(t, err)
		})
	}
}

func TestGrowthServiceGetTargetMissing(t *testing.T) {
	s := NewGrowthService(&fakeGrowthTargetRepo{})

	_, err := s.GetTarget(context.Background(), 1)
	assert.Error(t, err)
}
