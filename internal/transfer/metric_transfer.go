package transfer

import "github.com/socialpulse/insights-api/internal/models"

// MetricCreation is the manual-entry payload for one data point.
type MetricCreation struct {
	PostID         *int64                          `json:"post_id"`
	Likes          int                             `json:"likes"`
	Comments       int                             `json:"comments"`
	Shares         int                             `json:"shares"`
	Reach          int                             `json:"reach"`
	FollowerChange int                             `json:"follower_change"`
	PublishedAt    string                          `json:"published_at"` // "2006-01-02T15:04"
	PublishedTime  *string                         `json:"published_time"`
	Hashtags       []string                        `json:"hashtags"`
	Category       *string                         `json:"category"`
	Audience       *models.AudienceDistribution    `json:"audience"`
	ReachSource    *models.ReachSourceDistribution `json:"reach_source"`
}
