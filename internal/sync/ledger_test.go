package sync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLedger_DailyWindowExpiry(t *testing.T) {
	ledger := NewMemoryLedger()
	now := time.Date(2025, 8, 30, 10, 0, 0, 0, time.UTC)
	ledger.now = func() time.Time { return now }
	ctx := context.Background()

	counted, err := ledger.HasCountedView(ctx, "daily:v1:2025-08-30", DailyWindowPolicy)
	require.NoError(t, err)
	assert.False(t, counted)

	require.NoError(t, ledger.MarkViewCounted(ctx, "daily:v1:2025-08-30", DailyWindowPolicy))

	counted, err = ledger.HasCountedView(ctx, "daily:v1:2025-08-30", DailyWindowPolicy)
	require.NoError(t, err)
	assert.True(t, counted)

	// Still inside the window
	now = now.Add(23 * time.Hour)
	counted, err = ledger.HasCountedView(ctx, "daily:v1:2025-08-30", DailyWindowPolicy)
	require.NoError(t, err)
	assert.True(t, counted)

	// Past the window the marker is treated as absent
	now = now.Add(2 * time.Hour)
	counted, err = ledger.HasCountedView(ctx, "daily:v1:2025-08-30", DailyWindowPolicy)
	require.NoError(t, err)
	assert.False(t, counted)
}

func TestMemoryLedger_OnceEverNeverExpires(t *testing.T) {
	ledger := NewMemoryLedger()
	now := time.Date(2025, 8, 30, 10, 0, 0, 0, time.UTC)
	ledger.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, ledger.MarkViewCounted(ctx, "review:v1:coolie", OnceEverPolicy))

	now = now.Add(365 * 24 * time.Hour)
	counted, err := ledger.HasCountedView(ctx, "review:v1:coolie", OnceEverPolicy)
	require.NoError(t, err)
	assert.True(t, counted)
}

func TestMemoryLedger_LikedSet(t *testing.T) {
	ledger := NewMemoryLedger()
	ctx := context.Background()

	liked, err := ledger.IsLiked(ctx, "v1", "coolie")
	require.NoError(t, err)
	assert.False(t, liked)

	require.NoError(t, ledger.SetLiked(ctx, "v1", "coolie", true))
	liked, err = ledger.IsLiked(ctx, "v1", "coolie")
	require.NoError(t, err)
	assert.True(t, liked)

	// Viewers do not see each other's likes
	liked, err = ledger.IsLiked(ctx, "v2", "coolie")
	require.NoError(t, err)
	assert.False(t, liked)

	require.NoError(t, ledger.SetLiked(ctx, "v1", "coolie", false))
	liked, err = ledger.IsLiked(ctx, "v1", "coolie")
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestMemoryLedger_PurgeExpired(t *testing.T) {
	ledger := NewMemoryLedger()
	now := time.Date(2025, 8, 30, 10, 0, 0, 0, time.UTC)
	ledger.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, ledger.MarkViewCounted(ctx, "daily:v1:2025-08-30", DailyWindowPolicy))
	require.NoError(t, ledger.MarkViewCounted(ctx, "review:v1:coolie", OnceEverPolicy))

	now = now.Add(48 * time.Hour)
	purged, err := ledger.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	// The once-ever marker survives
	counted, err := ledger.HasCountedView(ctx, "review:v1:coolie", OnceEverPolicy)
	require.NoError(t, err)
	assert.True(t, counted)
}
