package model

import (
	"time"
)

// CommentRecord is the persisted comment row. Rows are append-only:
// they are never updated or deleted once written.
type CommentRecord struct {
	ID        string    `gorm:"type:varchar(64);primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ReviewID string `gorm:"type:varchar(64);not null;index" json:"review_id"`

	// Set only for replies. One nesting level: a reply's parent is
	// always a top-level comment.
	ParentCommentID *string `gorm:"type:varchar(64);index" json:"parent_comment_id,omitempty"`

	Text   string `gorm:"type:text;not null" json:"text"`
	Author string `gorm:"type:varchar(100);not null" json:"author"`
}

func (CommentRecord) TableName() string {
	return "comment_records"
}

// Comment is the in-memory tree node served to clients
type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	Replies   []Comment `json:"replies"`
}

// SubmitCommentRequest is the payload for new comments and replies
type SubmitCommentRequest struct {
	Text   string `json:"text" binding:"required"`
	Author string `json:"author" binding:"required,max=100"`
}
