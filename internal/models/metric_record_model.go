package models

import "time"

// MetricRecord is one measured post or one manually entered data point.
// Counts are non-negative. Engagement rate is derived at read time,
// never stored.
type MetricRecord struct {
	ID              int64                    `db:"id" json:"id"`
	UserID          int64                    `db:"user_id" json:"user_id"`
	PostID          *int64                   `db:"post_id" json:"post_id"`
	PlatformMediaID *string                  `db:"platform_media_id" json:"platform_media_id,omitempty"`
	Likes           int                      `db:"likes" json:"likes"`
	Comments        int                      `db:"comments" json:"comments"`
	Shares          int                      `db:"shares" json:"shares"`
	Reach           int                      `db:"reach" json:"reach"`
	FollowerChange  int                      `db:"follower_change" json:"follower_change"`
	PublishedAt     time.Time                `db:"published_at" json:"published_at"`
	PublishedTime   *string                  `db:"published_time" json:"published_time"` // "HH:MM"
	Hashtags        []string                 `db:"hashtags" json:"hashtags"`
	Category        *string                  `db:"category" json:"category"`
	Audience        *AudienceDistribution    `db:"audience" json:"audience"`
	ReachSource     *ReachSourceDistribution `db:"reach_source" json:"reach_source"`
	Source          string                   `db:"source" json:"source"` // manual, instagram
	CreatedAt       time.Time                `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time                `db:"updated_at" json:"updated_at"`
}

// AudienceDistribution holds follower demographic percentages. Groups
// are independent inputs and are not required to sum to 100.
type AudienceDistribution struct {
	GenderMale   float64 `json:"gender_male"`
	GenderFemale float64 `json:"gender_female"`
	GenderOther  float64 `json:"gender_other"`
	Age13To17    float64 `json:"age_13_17"`
	Age18To24    float64 `json:"age_18_24"`
	Age25To34    float64 `json:"age_25_34"`
	Age35To44    float64 `json:"age_35_44"`
	Age45To54    float64 `json:"age_45_54"`
	Age55To64    float64 `json:"age_55_64"`
	Age65Plus    float64 `json:"age_65_plus"`
}

// ReachSourceDistribution holds discovery channel percentages plus the
// follower / non-follower split.
type ReachSourceDistribution struct {
	FromPosts    float64 `json:"from_posts"`
	FromProfile  float64 `json:"from_profile"`
	FromExplore  float64 `json:"from_explore"`
	FromSearch   float64 `json:"from_search"`
	FromOther    float64 `json:"from_other"`
	Followers    float64 `json:"followers"`
	NonFollowers float64 `json:"non_followers"`
}

const (
	RecordSourceManual    = "manual"
	RecordSourceInstagram = "instagram"
)
