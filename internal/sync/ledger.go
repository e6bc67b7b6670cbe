package sync

import (
	"context"
	stdsync "sync"
	"time"
)

// Ledger records which actions a viewer already performed so repeated
// page loads do not inflate shared counters. It is a best-effort dedup
// heuristic keyed by an opaque viewer token, not a security boundary.
type Ledger interface {
	// HasCountedView reports whether a marker for scopeKey exists and
	// is still inside the policy window. Stale markers are treated as
	// absent and purged.
	HasCountedView(ctx context.Context, scopeKey string, policy Policy) (bool, error)
	MarkViewCounted(ctx context.Context, scopeKey string, policy Policy) error

	IsLiked(ctx context.Context, viewerID, reviewID string) (bool, error)
	SetLiked(ctx context.Context, viewerID, reviewID string, liked bool) error

	// PurgeExpired drops stale view markers and returns how many were
	// removed. Backends that expire markers on their own return 0.
	PurgeExpired(ctx context.Context) (int, error)
}

// MemoryLedger keeps all state in process memory. It backs demo mode
// and tests; everything is lost on restart.
type MemoryLedger struct {
	mu      stdsync.Mutex
	markers map[string]memoryMarker
	liked   map[string]map[string]bool

	now func() time.Time
}

type memoryMarker struct {
	at     time.Time
	policy Policy
}

// NewMemoryLedger creates an in-memory ledger
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		markers: make(map[string]memoryMarker),
		liked:   make(map[string]map[string]bool),
		now:     time.Now,
	}
}

func (l *MemoryLedger) HasCountedView(_ context.Context, scopeKey string, policy Policy) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	marker, ok := l.markers[scopeKey]
	if !ok {
		return false, nil
	}
	if policy.Expired(marker.at, l.now()) {
		delete(l.markers, scopeKey)
		return false, nil
	}
	return true, nil
}

func (l *MemoryLedger) MarkViewCounted(_ context.Context, scopeKey string, policy Policy) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.markers[scopeKey] = memoryMarker{at: l.now(), policy: policy}
	return nil
}

func (l *MemoryLedger) IsLiked(_ context.Context, viewerID, reviewID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.liked[viewerID][reviewID], nil
}

func (l *MemoryLedger) SetLiked(_ context.Context, viewerID, reviewID string, liked bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	set, ok := l.liked[viewerID]
	if !ok {
		set = make(map[string]bool)
		l.liked[viewerID] = set
	}
	if liked {
		set[reviewID] = true
	} else {
		delete(set, reviewID)
	}
	return nil
}

func (l *MemoryLedger) PurgeExpired(_ context.Context) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	purged := 0
	for key, marker := range l.markers {
		if marker.policy.Expired(marker.at, now) {
			delete(l.markers, key)
			purged++
		}
	}
	return purged, nil
}
