package insights

import (
	"testing"

	"github.com/socialpulse/insights-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAverageAudienceReach(t *testing.T) {
	records := []*models.MetricRecord{
		{
			Audience: &models.AudienceDistribution{GenderMale: 40, GenderFemale: 60, Age18To24: 30},
		},
		{
			Audience:    &models.AudienceDistribution{GenderMale: 60, GenderFemale: 40, Age18To24: 50},
			ReachSource: &models.ReachSourceDistribution{FromExplore: 80, Followers: 30, NonFollowers: 70},
		},
		{}, // carries neither distribution, contributes to neither average
	}

	got := AverageAudienceReach(records)

	assert.Equal(t, 2, got.AudienceSamples)
	assert.Equal(t, 50.0, got.Audience.GenderMale)
	assert.Equal(t, 50.0, got.Audience.GenderFemale)
	assert.Equal(t, 40.0, got.Audience.Age18To24)

	assert.Equal(t, 1, got.ReachSourceSamples)
	assert.Equal(t, 80.0, got.ReachSource.FromExplore)
	assert.Equal(t, 30.0, got.ReachSource.Followers)
	assert.Equal(t, 70.0, got.ReachSource.NonFollowers)
}

func TestAverageAudienceReachIdenticalInputsAreIdempotent(t *testing.T) {
	dist := models.AudienceDistribution{GenderMale: 45, GenderFemale: 55, Age25To34: 35}
	records := []*models.MetricRecord{
		{Audience: &dist},
		{Audience: &dist},
		{Audience: &dist},
	}

	got := AverageAudienceReach(records)
	assert.Equal(t, dist, got.Audience)
}

func TestAverageAudienceReachNoSamples(t *testing.T) {
	got := AverageAudienceReach([]*models.MetricRecord{{}, {}})

	assert.Zero(t, got.AudienceSamples)
	assert.Zero(t, got.ReachSourceSamples)
	assert.Equal(t, models.AudienceDistribution{}, got.Audience)
	assert.Equal(t, models.ReachSourceDistribution{}, got.ReachSource)
}

func TestAverageAudienceReachDoesNotRenormalize(t *testing.T) {
	// Groups that do not sum to 100 stay that way.
	records := []*models.MetricRecord{
		{Audience: &models.AudienceDistribution{GenderMale: 10, GenderFemale: 10}},
	}

	got := AverageAudienceReach(records)
	assert.Equal(t, 10.0, got.Audience.GenderMale)
	assert.Equal(t, 10.0, got.Audience.GenderFemale)
}
