package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smreview/smreview-backend/internal/app/model"
	"github.com/smreview/smreview-backend/internal/app/repository"
	"github.com/smreview/smreview-backend/internal/data"
	"github.com/smreview/smreview-backend/internal/db"
	"github.com/smreview/smreview-backend/internal/sync"
)

func setupDemoService() (ReviewService, *sync.Client) {
	client := sync.NewClient(sync.NewNullBackend(), sync.NewMemoryLedger(), "")
	svc := NewReviewService(nil, client)
	return svc, client
}

func setupStoredService(t *testing.T) (ReviewService, *sync.Client) {
	database, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(database) })
	require.NoError(t, db.SeedStaticReviews(database))

	reviewRepo := repository.NewReviewRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	counterRepo := repository.NewCounterRepository(database)
	backend := sync.NewRemoteBackend(reviewRepo, commentRepo, counterRepo)
	client := sync.NewClient(backend, sync.NewMemoryLedger(), "")

	return NewReviewService(reviewRepo, client), client
}

func TestReviewService_CreateAppearsInFeed(t *testing.T) {
	svc, client := setupStoredService(t)
	require.NoError(t, svc.ReseedFeed(context.Background()))

	created, err := svc.Create(&model.CreateReviewRequest{
		Title:  "NEW RELEASE",
		Rating: "4 STARS",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	feed := client.Snapshot()
	require.NotEmpty(t, feed)
	// Admin-authored reviews come before the catalog
	assert.Equal(t, created.ID, feed[0].ID)
	assert.Len(t, feed, len(data.StaticReviews())+1)
}

func TestReviewService_UpdateAndDelete(t *testing.T) {
	svc, client := setupStoredService(t)
	require.NoError(t, svc.ReseedFeed(context.Background()))

	created, err := svc.Create(&model.CreateReviewRequest{Title: "DRAFT"})
	require.NoError(t, err)

	title := "FINAL"
	updated, err := svc.Update(created.ID, &model.UpdateReviewRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "FINAL", updated.Title)
	assert.Equal(t, "FINAL", client.Snapshot()[0].Title)

	require.NoError(t, svc.Delete(created.ID))
	assert.Len(t, client.Snapshot(), len(data.StaticReviews()))
}

func TestReviewService_StaticReviewsLocked(t *testing.T) {
	svc, _ := setupStoredService(t)
	require.NoError(t, svc.ReseedFeed(context.Background()))

	title := "HACKED"
	_, err := svc.Update("coolie", &model.UpdateReviewRequest{Title: &title})
	assert.ErrorIs(t, err, ErrStaticReview)

	err = svc.Delete("coolie")
	assert.ErrorIs(t, err, ErrStaticReview)
}

func TestReviewService_MissingReview(t *testing.T) {
	svc, _ := setupStoredService(t)

	_, err := svc.Update("ghost", &model.UpdateReviewRequest{})
	assert.ErrorIs(t, err, ErrReviewNotFound)

	err = svc.Delete("ghost")
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestReviewService_DemoModeCRUD(t *testing.T) {
	svc, client := setupDemoService()
	require.NoError(t, svc.ReseedFeed(context.Background()))
	assert.True(t, svc.DemoMode())

	created, err := svc.Create(&model.CreateReviewRequest{Title: "DEMO ONLY"})
	require.NoError(t, err)

	feed := client.Snapshot()
	assert.Equal(t, created.ID, feed[0].ID)

	require.NoError(t, svc.Delete(created.ID))
	assert.Len(t, client.Snapshot(), len(data.StaticReviews()))

	// Catalog stays locked in demo mode too
	err = svc.Delete("coolie")
	assert.ErrorIs(t, err, ErrStaticReview)
}

func TestReviewService_ReseedKeepsCatalogCounters(t *testing.T) {
	svc, client := setupStoredService(t)
	require.NoError(t, svc.ReseedFeed(context.Background()))

	// A like lands on a catalog review, then the feed is reseeded
	_, _, _, err := client.LikeToggle(context.Background(), "viewer", "coolie")
	require.NoError(t, err)
	require.NoError(t, svc.ReseedFeed(context.Background()))

	review, err := client.GetReview(context.Background(), "viewer", "coolie")
	require.NoError(t, err)
	assert.Equal(t, 1, review.LikeCount)
}
