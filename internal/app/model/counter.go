package model

import (
	"time"
)

// LikeCounter is the shared like count document for a review.
// It exists separately from reviews.like_count so a counter can be
// created lazily on first like even for catalog reviews that were
// never written to the store.
type LikeCounter struct {
	ReviewID  string    `gorm:"type:varchar(64);primarykey" json:"review_id"`
	Count     int       `gorm:"default:0" json:"count"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (LikeCounter) TableName() string {
	return "like_counters"
}

// DailyViewCounter counts unique-ish site visits per UTC calendar day.
// The Date key is formatted as 2006-01-02.
type DailyViewCounter struct {
	Date      string    `gorm:"type:varchar(10);primarykey" json:"date"`
	Count     int       `gorm:"default:0" json:"count"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DailyViewCounter) TableName() string {
	return "daily_view_counters"
}
