package sync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smreview/smreview-backend/internal/app/model"
)

func strPtr(s string) *string {
	return &s
}

func TestBuildCommentTrees(t *testing.T) {
	base := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)

	// Stream order is newest first, as delivered by the store
	records := []model.CommentRecord{
		{ID: "c2", ReviewID: "coolie", Text: "second comment", Author: "b", CreatedAt: base.Add(3 * time.Minute)},
		{ID: "r1", ReviewID: "coolie", ParentCommentID: strPtr("c1"), Text: "first reply", Author: "c", CreatedAt: base.Add(2 * time.Minute)},
		{ID: "r2", ReviewID: "coolie", ParentCommentID: strPtr("c1"), Text: "second reply", Author: "d", CreatedAt: base.Add(time.Minute)},
		{ID: "c1", ReviewID: "coolie", Text: "first comment", Author: "a", CreatedAt: base},
		{ID: "r3", ReviewID: "coolie", ParentCommentID: strPtr("ghost"), Text: "orphan", Author: "e", CreatedAt: base},
	}

	trees := BuildCommentTrees(records)

	comments := trees["coolie"]
	require.Len(t, comments, 2)
	assert.Equal(t, "c2", comments[0].ID)
	assert.Equal(t, "c1", comments[1].ID)

	// Replies keep stream order under their parent
	require.Len(t, comments[1].Replies, 2)
	assert.Equal(t, "r1", comments[1].Replies[0].ID)
	assert.Equal(t, "r2", comments[1].Replies[1].ID)
	assert.Empty(t, comments[0].Replies)

	// The orphan is dropped everywhere
	for _, comment := range comments {
		assert.NotEqual(t, "r3", comment.ID)
		for _, reply := range comment.Replies {
			assert.NotEqual(t, "r3", reply.ID)
		}
	}
}

func TestBuildCommentTrees_MultipleReviews(t *testing.T) {
	records := []model.CommentRecord{
		{ID: "c1", ReviewID: "coolie", Text: "on coolie", Author: "a"},
		{ID: "c2", ReviewID: "kubera", Text: "on kubera", Author: "b"},
		{ID: "r1", ReviewID: "kubera", ParentCommentID: strPtr("c2"), Text: "reply", Author: "c"},
	}

	trees := BuildCommentTrees(records)

	require.Len(t, trees["coolie"], 1)
	require.Len(t, trees["kubera"], 1)
	require.Len(t, trees["kubera"][0].Replies, 1)
	assert.Equal(t, "reply", trees["kubera"][0].Replies[0].Text)
}

func TestBuildCommentTrees_ReplyDoesNotCrossReviews(t *testing.T) {
	// A reply pointing at a parent id that only exists under another
	// review is treated as an orphan.
	records := []model.CommentRecord{
		{ID: "c1", ReviewID: "coolie", Text: "top", Author: "a"},
		{ID: "r1", ReviewID: "kubera", ParentCommentID: strPtr("c1"), Text: "stray", Author: "b"},
	}

	trees := BuildCommentTrees(records)

	assert.Empty(t, trees["coolie"][0].Replies)
	assert.Empty(t, trees["kubera"])
}

func TestBuildCommentTrees_Empty(t *testing.T) {
	trees := BuildCommentTrees(nil)
	assert.Empty(t, trees)
}
