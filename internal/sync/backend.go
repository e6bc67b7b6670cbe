package sync

import (
	"context"

	"github.com/smreview/smreview-backend/internal/app/model"
)

// Backend is the strategy boundary between the sync client and the
// shared store. It is selected once at startup; call sites never
// branch on store availability themselves.
type Backend interface {
	// FetchLikeCounts reads all like counter documents. A review with
	// no counter simply has no entry.
	FetchLikeCounts(ctx context.Context) (map[string]int, error)

	// LikeDelta adjusts a review's shared like counter by +1 or -1,
	// creating the counter document when it does not exist yet.
	LikeDelta(ctx context.Context, reviewID string, delta int) error

	// SaveComment appends a comment or reply record to the store
	SaveComment(ctx context.Context, record *model.CommentRecord) error

	// LoadCommentRecords reads the full comment stream, newest first
	LoadCommentRecords(ctx context.Context) ([]model.CommentRecord, error)

	// TrackDailyView transactionally increments the counter for the
	// given UTC date and returns the new value.
	TrackDailyView(ctx context.Context, date string) (int, error)
	FetchDailyViewCount(ctx context.Context, date string) (int, error)

	// TrackReviewView transactionally increments a review's view
	// counter and returns the new value.
	TrackReviewView(ctx context.Context, reviewID string) (int, error)

	// Remote reports whether writes actually reach a shared store
	Remote() bool
}
