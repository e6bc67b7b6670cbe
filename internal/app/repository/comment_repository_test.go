package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smreview/smreview-backend/internal/app/model"
	"github.com/smreview/smreview-backend/internal/db"
)

func TestCommentRepository_ListNewestFirst(t *testing.T) {
	database, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(database) })

	repo := NewCommentRepository(database)

	first := model.CommentRecord{ID: "c1", ReviewID: "coolie", Text: "first", Author: "anu", CreatedAt: time.Now().Add(-time.Minute)}
	second := model.CommentRecord{ID: "c2", ReviewID: "coolie", Text: "second", Author: "ravi", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(&first))
	require.NoError(t, repo.Create(&second))

	records, err := repo.List()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "c2", records[0].ID)
	assert.Equal(t, "c1", records[1].ID)
}

func TestCommentRepository_ReplyKeepsParentReference(t *testing.T) {
	database, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(database) })

	repo := NewCommentRepository(database)

	parent := model.CommentRecord{ID: "c1", ReviewID: "kubera", Text: "parent", Author: "anu"}
	require.NoError(t, repo.Create(&parent))

	parentID := "c1"
	reply := model.CommentRecord{ID: "r1", ReviewID: "kubera", ParentCommentID: &parentID, Text: "reply", Author: "ravi"}
	require.NoError(t, repo.Create(&reply))

	got, err := repo.GetByID("r1")
	require.NoError(t, err)
	require.NotNil(t, got.ParentCommentID)
	assert.Equal(t, "c1", *got.ParentCommentID)

	records, err := repo.ListByReview("kubera")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
