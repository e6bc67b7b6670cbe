package sync

import (
	"github.com/smreview/smreview-backend/internal/app/model"
)

// BuildCommentTrees turns a flat, timestamp-descending record stream
// into per-review comment lists with one level of replies attached.
//
// The rebuild is from scratch on every snapshot rather than an
// incremental merge. Replies whose parent is missing from the snapshot
// are dropped; records are append-only so an orphan can only exist
// transiently until the parent's own event arrives.
func BuildCommentTrees(records []model.CommentRecord) map[string][]model.Comment {
	type bucketKey struct {
		reviewID string
		parentID string
	}

	topLevel := make(map[string][]model.Comment)
	replies := make(map[bucketKey][]model.Comment)

	for _, record := range records {
		comment := model.Comment{
			ID:        record.ID,
			Text:      record.Text,
			Author:    record.Author,
			CreatedAt: record.CreatedAt,
			Replies:   []model.Comment{},
		}
		if record.ParentCommentID == nil {
			topLevel[record.ReviewID] = append(topLevel[record.ReviewID], comment)
		} else {
			key := bucketKey{reviewID: record.ReviewID, parentID: *record.ParentCommentID}
			replies[key] = append(replies[key], comment)
		}
	}

	trees := make(map[string][]model.Comment, len(topLevel))
	for reviewID, comments := range topLevel {
		for i := range comments {
			key := bucketKey{reviewID: reviewID, parentID: comments[i].ID}
			if bucket, ok := replies[key]; ok {
				comments[i].Replies = bucket
			}
		}
		trees[reviewID] = comments
	}
	return trees
}
