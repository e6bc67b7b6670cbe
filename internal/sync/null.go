package sync

import (
	"context"
	stdsync "sync"

	"github.com/smreview/smreview-backend/internal/app/model"
)

// NullBackend serves demo mode, used when no database is configured.
// Every call succeeds and state lives only in process memory, so all
// interactions are lost on restart.
type NullBackend struct {
	mu          stdsync.Mutex
	likeCounts  map[string]int
	comments    []model.CommentRecord
	dailyViews  map[string]int
	reviewViews map[string]int
}

// NewNullBackend creates an in-memory demo backend
func NewNullBackend() *NullBackend {
	return &NullBackend{
		likeCounts:  make(map[string]int),
		dailyViews:  make(map[string]int),
		reviewViews: make(map[string]int),
	}
}

func (b *NullBackend) FetchLikeCounts(_ context.Context) (map[string]int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	counts := make(map[string]int, len(b.likeCounts))
	for id, count := range b.likeCounts {
		counts[id] = count
	}
	return counts, nil
}

func (b *NullBackend) LikeDelta(_ context.Context, reviewID string, delta int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	next := b.likeCounts[reviewID] + delta
	if next < 0 {
		next = 0
	}
	b.likeCounts[reviewID] = next
	return nil
}

func (b *NullBackend) SaveComment(_ context.Context, record *model.CommentRecord) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.comments = append([]model.CommentRecord{*record}, b.comments...)
	return nil
}

func (b *NullBackend) LoadCommentRecords(_ context.Context) ([]model.CommentRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	records := make([]model.CommentRecord, len(b.comments))
	copy(records, b.comments)
	return records, nil
}

func (b *NullBackend) TrackDailyView(_ context.Context, date string) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.dailyViews[date]++
	return b.dailyViews[date], nil
}

func (b *NullBackend) FetchDailyViewCount(_ context.Context, date string) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.dailyViews[date], nil
}

func (b *NullBackend) TrackReviewView(_ context.Context, reviewID string) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.reviewViews[reviewID]++
	return b.reviewViews[reviewID], nil
}

func (b *NullBackend) Remote() bool {
	return false
}
