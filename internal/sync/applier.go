package sync

import (
	"github.com/smreview/smreview-backend/internal/app/model"
)

// The applier is a set of pure functions over the in-memory review
// list. Every function returns a fresh slice instead of mutating its
// input, so subscribers holding an older snapshot never observe a
// half-applied change.

func cloneReviews(reviews []model.Review) []model.Review {
	out := make([]model.Review, len(reviews))
	copy(out, reviews)
	return out
}

// ApplyLikeToggle adjusts a review's like count by one in the direction
// of nowLiked, clamped at zero. Unknown review ids leave the list unchanged.
func ApplyLikeToggle(reviews []model.Review, reviewID string, nowLiked bool) []model.Review {
	out := cloneReviews(reviews)
	for i := range out {
		if out[i].ID != reviewID {
			continue
		}
		if nowLiked {
			out[i].LikeCount++
		} else if out[i].LikeCount > 0 {
			out[i].LikeCount--
		}
		break
	}
	return out
}

// ApplyLikeCounts merges a counter read into the list. A review with no
// counter document keeps a count of zero only when it had none locally;
// an existing local count is never overwritten by absence.
func ApplyLikeCounts(reviews []model.Review, counts map[string]int) []model.Review {
	out := cloneReviews(reviews)
	for i := range out {
		if count, ok := counts[out[i].ID]; ok {
			out[i].LikeCount = count
		}
	}
	return out
}

// ApplyViewCount sets a review's view counter to the given value
func ApplyViewCount(reviews []model.Review, reviewID string, count int) []model.Review {
	out := cloneReviews(reviews)
	for i := range out {
		if out[i].ID == reviewID {
			out[i].ViewCount = count
			break
		}
	}
	return out
}

// ApplyNewComment prepends a comment to the review's list, newest first
func ApplyNewComment(reviews []model.Review, reviewID string, comment model.Comment) []model.Review {
	out := cloneReviews(reviews)
	for i := range out {
		if out[i].ID != reviewID {
			continue
		}
		comments := make([]model.Comment, 0, len(out[i].Comments)+1)
		comments = append(comments, comment)
		comments = append(comments, out[i].Comments...)
		out[i].Comments = comments
		break
	}
	return out
}

// ApplyNewReply prepends a reply to the parent comment's replies. When
// the parent id is not present the reply is dropped from the optimistic
// view; the next snapshot rebuild reconciles it.
func ApplyNewReply(reviews []model.Review, reviewID, parentCommentID string, reply model.Comment) []model.Review {
	out := cloneReviews(reviews)
	for i := range out {
		if out[i].ID != reviewID {
			continue
		}
		comments := make([]model.Comment, len(out[i].Comments))
		copy(comments, out[i].Comments)
		for j := range comments {
			if comments[j].ID != parentCommentID {
				continue
			}
			replies := make([]model.Comment, 0, len(comments[j].Replies)+1)
			replies = append(replies, reply)
			replies = append(replies, comments[j].Replies...)
			comments[j].Replies = replies
			break
		}
		out[i].Comments = comments
		break
	}
	return out
}

// ApplyCommentSnapshot replaces every review's comment tree with the
// rebuilt trees. Reviews absent from the snapshot get an empty list.
func ApplyCommentSnapshot(reviews []model.Review, trees map[string][]model.Comment) []model.Review {
	out := cloneReviews(reviews)
	for i := range out {
		if tree, ok := trees[out[i].ID]; ok {
			out[i].Comments = tree
		} else {
			out[i].Comments = []model.Comment{}
		}
	}
	return out
}
