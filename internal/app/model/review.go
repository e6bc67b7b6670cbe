package model

import (
	"time"

	"github.com/lib/pq"
)

// Review is a movie review document. The ID is a human-readable slug
// for the built-in catalog and a uuid for admin-authored reviews.
type Review struct {
	ID        string    `gorm:"type:varchar(64);primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title    string         `gorm:"type:varchar(200);not null" json:"title"`
	ImageURL string         `gorm:"type:text" json:"image_url"`
	ImageURLs pq.StringArray `gorm:"type:text[]" json:"image_urls,omitempty"`

	// Review body sections
	Review     string `gorm:"type:text" json:"review"`
	FirstHalf  string `gorm:"type:text" json:"first_half"`
	SecondHalf string `gorm:"type:text" json:"second_half"`
	Positives  string `gorm:"type:text" json:"positives"`
	Negatives  string `gorm:"type:text" json:"negatives"`
	Overall    string `gorm:"type:text" json:"overall"`

	// Free-form rating label, e.g. "3.5/5" or "Above Average"
	Rating string `gorm:"type:varchar(50)" json:"rating"`

	// Interaction counters. Never negative.
	LikeCount int `gorm:"default:0" json:"like_count"`
	ViewCount int `gorm:"default:0" json:"view_count"`

	// Static reviews come from the compiled-in catalog and cannot
	// be edited or deleted through the admin API.
	Static bool `gorm:"default:false" json:"static"`

	// Comment trees, populated in memory only (not a gorm relation)
	Comments []Comment `gorm:"-" json:"comments"`

	// Per-viewer flag, populated per request
	Liked bool `gorm:"-" json:"liked"`
}

func (Review) TableName() string {
	return "reviews"
}

// CreateReviewRequest is the admin create payload
type CreateReviewRequest struct {
	Title      string   `json:"title" binding:"required,min=1,max=200"`
	ImageURL   string   `json:"image_url"`
	ImageURLs  []string `json:"image_urls,omitempty"`
	Review     string   `json:"review"`
	FirstHalf  string   `json:"first_half"`
	SecondHalf string   `json:"second_half"`
	Positives  string   `json:"positives"`
	Negatives  string   `json:"negatives"`
	Overall    string   `json:"overall"`
	Rating     string   `json:"rating"`
}

// UpdateReviewRequest is the admin update payload; nil fields are left unchanged
type UpdateReviewRequest struct {
	Title      *string  `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	ImageURL   *string  `json:"image_url,omitempty"`
	ImageURLs  []string `json:"image_urls,omitempty"`
	Review     *string  `json:"review,omitempty"`
	FirstHalf  *string  `json:"first_half,omitempty"`
	SecondHalf *string  `json:"second_half,omitempty"`
	Positives  *string  `json:"positives,omitempty"`
	Negatives  *string  `json:"negatives,omitempty"`
	Overall    *string  `json:"overall,omitempty"`
	Rating     *string  `json:"rating,omitempty"`
}

// SharePayload is the share content for a review
type SharePayload struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}
