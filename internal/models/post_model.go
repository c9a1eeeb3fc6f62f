package models

import "time"

type Post struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Caption   string    `db:"caption" json:"caption"`
	Category  string    `db:"category" json:"category"` // feed, reel, story
	PostedAt  time.Time `db:"posted_at" json:"posted_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

const (
	CategoryFeed  = "feed"
	CategoryReel  = "reel"
	CategoryStory = "story"
)
