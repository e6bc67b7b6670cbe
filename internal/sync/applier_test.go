package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smreview/smreview-backend/internal/app/model"
)

func feedFixture() []model.Review {
	return []model.Review{
		{ID: "coolie", Title: "COOLIE", LikeCount: 3, Comments: []model.Comment{}},
		{ID: "kubera", Title: "KUBERA", LikeCount: 0, Comments: []model.Comment{}},
	}
}

func TestApplyLikeToggle(t *testing.T) {
	feed := feedFixture()

	liked := ApplyLikeToggle(feed, "coolie", true)
	assert.Equal(t, 4, liked[0].LikeCount)
	// Input slice is untouched
	assert.Equal(t, 3, feed[0].LikeCount)

	unliked := ApplyLikeToggle(liked, "coolie", false)
	assert.Equal(t, 3, unliked[0].LikeCount)
}

func TestApplyLikeToggle_ClampedAtZero(t *testing.T) {
	feed := feedFixture()

	out := ApplyLikeToggle(feed, "kubera", false)
	assert.Equal(t, 0, out[1].LikeCount)
}

func TestApplyLikeToggle_UnknownReview(t *testing.T) {
	feed := feedFixture()

	out := ApplyLikeToggle(feed, "ghost", true)
	assert.Equal(t, feed, out)
}

func TestApplyLikeCounts(t *testing.T) {
	feed := feedFixture()

	out := ApplyLikeCounts(feed, map[string]int{"kubera": 12})
	assert.Equal(t, 12, out[1].LikeCount)
	// Reviews without a counter entry keep their local count
	assert.Equal(t, 3, out[0].LikeCount)
}

func TestApplyNewComment_PrependsNewestFirst(t *testing.T) {
	feed := feedFixture()

	out := ApplyNewComment(feed, "coolie", model.Comment{ID: "c1", Text: "older"})
	out = ApplyNewComment(out, "coolie", model.Comment{ID: "c2", Text: "newer"})

	require.Len(t, out[0].Comments, 2)
	assert.Equal(t, "newer", out[0].Comments[0].Text)
	assert.Equal(t, "older", out[0].Comments[1].Text)
	assert.Empty(t, feed[0].Comments)
}

func TestApplyNewReply(t *testing.T) {
	feed := feedFixture()
	feed = ApplyNewComment(feed, "coolie", model.Comment{ID: "c1", Text: "top"})

	out := ApplyNewReply(feed, "coolie", "c1", model.Comment{ID: "r1", Text: "older reply"})
	out = ApplyNewReply(out, "coolie", "c1", model.Comment{ID: "r2", Text: "newer reply"})

	require.Len(t, out[0].Comments[0].Replies, 2)
	assert.Equal(t, "newer reply", out[0].Comments[0].Replies[0].Text)
	assert.Equal(t, "older reply", out[0].Comments[0].Replies[1].Text)
}

func TestApplyNewReply_MissingParentDropped(t *testing.T) {
	feed := feedFixture()

	out := ApplyNewReply(feed, "coolie", "ghost", model.Comment{ID: "r1", Text: "dropped"})
	assert.Empty(t, out[0].Comments)
}

func TestApplyCommentSnapshot_ReplacesWholesale(t *testing.T) {
	feed := feedFixture()
	feed = ApplyNewComment(feed, "coolie", model.Comment{ID: "local", Text: "optimistic"})

	trees := map[string][]model.Comment{
		"coolie": {{ID: "c9", Text: "canonical"}},
	}
	out := ApplyCommentSnapshot(feed, trees)

	require.Len(t, out[0].Comments, 1)
	assert.Equal(t, "canonical", out[0].Comments[0].Text)
	// Reviews absent from the snapshot get emptied
	assert.Empty(t, out[1].Comments)
}

func TestApplyViewCount(t *testing.T) {
	feed := feedFixture()

	out := ApplyViewCount(feed, "coolie", 42)
	assert.Equal(t, 42, out[0].ViewCount)
	assert.Equal(t, 0, feed[0].ViewCount)
}
