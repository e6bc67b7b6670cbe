package sync

import (
	"context"

	"github.com/smreview/smreview-backend/internal/app/model"
	"github.com/smreview/smreview-backend/internal/app/repository"
)

// RemoteBackend persists interactions through the database
// repositories. It is selected at startup when a database is
// configured.
type RemoteBackend struct {
	reviews  repository.ReviewRepository
	comments repository.CommentRepository
	counters repository.CounterRepository
}

// NewRemoteBackend creates a backend over the given repositories
func NewRemoteBackend(
	reviews repository.ReviewRepository,
	comments repository.CommentRepository,
	counters repository.CounterRepository,
) *RemoteBackend {
	return &RemoteBackend{
		reviews:  reviews,
		comments: comments,
		counters: counters,
	}
}

func (b *RemoteBackend) FetchLikeCounts(_ context.Context) (map[string]int, error) {
	return b.counters.FetchLikeCounts()
}

func (b *RemoteBackend) LikeDelta(_ context.Context, reviewID string, delta int) error {
	return b.counters.LikeDelta(reviewID, delta)
}

func (b *RemoteBackend) SaveComment(_ context.Context, record *model.CommentRecord) error {
	return b.comments.Create(record)
}

func (b *RemoteBackend) LoadCommentRecords(_ context.Context) ([]model.CommentRecord, error) {
	return b.comments.List()
}

func (b *RemoteBackend) TrackDailyView(_ context.Context, date string) (int, error) {
	return b.counters.TrackDailyView(date)
}

func (b *RemoteBackend) FetchDailyViewCount(_ context.Context, date string) (int, error) {
	return b.counters.FetchDailyViewCount(date)
}

func (b *RemoteBackend) TrackReviewView(_ context.Context, reviewID string) (int, error) {
	return b.reviews.IncrementViewCount(reviewID)
}

func (b *RemoteBackend) Remote() bool {
	return true
}
