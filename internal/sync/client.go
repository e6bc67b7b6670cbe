package sync

import (
	"context"
	"errors"
	"fmt"
	"strings"
	stdsync "sync"
	"time"

	"github.com/google/uuid"

	"github.com/smreview/smreview-backend/internal/app/model"
	"github.com/smreview/smreview-backend/pkg/logger"
)

// Sentinel errors for caller-side validation. These are the only
// errors the client surfaces; store failures degrade to a demo-mode
// notice instead.
var (
	ErrReviewNotFound = errors.New("review not found")
	ErrEmptyText      = errors.New("text must not be empty")
	ErrEmptyAuthor    = errors.New("author must not be empty")
	ErrReplyDepth     = errors.New("replies can only target a top-level comment")
)

// Notice tells the caller whether the change reached the shared store
// or stayed on this server only
type Notice struct {
	DemoMode bool   `json:"demo_mode"`
	Message  string `json:"message,omitempty"`
}

// Client orchestrates the interaction state: it holds the canonical
// in-memory review feed, applies optimistic mutations synchronously,
// and reconciles with the backend. Store failures never roll back
// optimistic state and never surface as user-facing errors.
type Client struct {
	mu      stdsync.RWMutex
	reviews []model.Review

	ledger  Ledger
	backend Backend
	baseURL string

	onChange func([]model.Review)

	// demo-mode unavailability is reported once per client
	unavailableReported bool

	now func() time.Time
}

// NewClient creates a sync client over the given backend and ledger.
// baseURL is used when building share links.
func NewClient(backend Backend, ledger Ledger, baseURL string) *Client {
	return &Client{
		reviews: []model.Review{},
		ledger:  ledger,
		backend: backend,
		baseURL: baseURL,
		now:     time.Now,
	}
}

// SetOnChange registers the feed subscription callback. It is invoked
// with a fresh snapshot after every accepted mutation.
func (c *Client) SetOnChange(fn func([]model.Review)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Seed replaces the feed with the given reviews, typically the static
// catalog merged with admin-authored rows. Counters and comments are
// refreshed separately.
func (c *Client) Seed(reviews []model.Review) {
	c.mu.Lock()
	c.reviews = cloneReviews(reviews)
	c.mu.Unlock()
	c.notify()
}

// Snapshot returns a copy of the current feed
func (c *Client) Snapshot() []model.Review {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneReviews(c.reviews)
}

// SnapshotFor returns the feed with the viewer's liked flags set
func (c *Client) SnapshotFor(ctx context.Context, viewerID string) []model.Review {
	reviews := c.Snapshot()
	for i := range reviews {
		liked, err := c.ledger.IsLiked(ctx, viewerID, reviews[i].ID)
		if err != nil {
			logger.Warn("Ledger liked lookup failed", map[string]interface{}{
				"review_id": reviews[i].ID,
				"error":     err.Error(),
			})
			continue
		}
		reviews[i].Liked = liked
	}
	return reviews
}

// GetReview returns a single review with the viewer's liked flag
func (c *Client) GetReview(ctx context.Context, viewerID, reviewID string) (*model.Review, error) {
	for _, review := range c.SnapshotFor(ctx, viewerID) {
		if review.ID == reviewID {
			return &review, nil
		}
	}
	return nil, ErrReviewNotFound
}

// LikeToggle flips the viewer's like state for a review. The returned
// liked flag and count reflect the optimistic local state immediately;
// the shared counter delta may only have reached this server in demo
// mode.
func (c *Client) LikeToggle(ctx context.Context, viewerID, reviewID string) (bool, int, Notice, error) {
	if !c.hasReview(reviewID) {
		return false, 0, Notice{}, ErrReviewNotFound
	}

	wasLiked, err := c.ledger.IsLiked(ctx, viewerID, reviewID)
	if err != nil {
		// A broken ledger read degrades to "not liked" rather than
		// failing the action.
		logger.Warn("Ledger read failed, assuming not liked", map[string]interface{}{
			"review_id": reviewID,
			"error":     err.Error(),
		})
		wasLiked = false
	}
	nowLiked := !wasLiked

	if err := c.ledger.SetLiked(ctx, viewerID, reviewID, nowLiked); err != nil {
		logger.Warn("Ledger write failed", map[string]interface{}{
			"review_id": reviewID,
			"error":     err.Error(),
		})
	}

	c.mu.Lock()
	c.reviews = ApplyLikeToggle(c.reviews, reviewID, nowLiked)
	count := c.likeCountLocked(reviewID)
	c.mu.Unlock()
	c.notify()

	delta := 1
	if !nowLiked {
		delta = -1
	}
	notice := c.persist(func() error {
		return c.backend.LikeDelta(ctx, reviewID, delta)
	}, "like", reviewID)

	return nowLiked, count, notice, nil
}

// SubmitComment validates and appends a top-level comment. The comment
// appears in the feed synchronously; persistence follows.
func (c *Client) SubmitComment(ctx context.Context, viewerID, reviewID, text, author string) (*model.Comment, Notice, error) {
	comment, record, err := c.buildComment(reviewID, nil, text, author)
	if err != nil {
		return nil, Notice{}, err
	}

	c.mu.Lock()
	c.reviews = ApplyNewComment(c.reviews, reviewID, *comment)
	c.mu.Unlock()
	c.notify()

	notice := c.persist(func() error {
		return c.backend.SaveComment(ctx, record)
	}, "comment", reviewID)

	return comment, notice, nil
}

// SubmitReply validates and appends a reply to a top-level comment.
// Replying to a reply is rejected; the tree is one level deep. A
// parent id absent from the current snapshot is persisted anyway and
// left out of the optimistic view until the next rebuild.
func (c *Client) SubmitReply(ctx context.Context, viewerID, reviewID, parentCommentID, text, author string) (*model.Comment, Notice, error) {
	if c.isReply(reviewID, parentCommentID) {
		return nil, Notice{}, ErrReplyDepth
	}

	reply, record, err := c.buildComment(reviewID, &parentCommentID, text, author)
	if err != nil {
		return nil, Notice{}, err
	}

	c.mu.Lock()
	c.reviews = ApplyNewReply(c.reviews, reviewID, parentCommentID, *reply)
	c.mu.Unlock()
	c.notify()

	notice := c.persist(func() error {
		return c.backend.SaveComment(ctx, record)
	}, "reply", reviewID)

	return reply, notice, nil
}

// RegisterViewOnLoad counts a review page view, at most once per
// viewer for the lifetime of the browser identity.
func (c *Client) RegisterViewOnLoad(ctx context.Context, viewerID, reviewID string) (bool, int, Notice, error) {
	if !c.hasReview(reviewID) {
		return false, 0, Notice{}, ErrReviewNotFound
	}

	scopeKey := fmt.Sprintf("review:%s:%s", viewerID, reviewID)
	counted, err := c.ledger.HasCountedView(ctx, scopeKey, OnceEverPolicy)
	if err != nil {
		logger.Warn("Ledger view lookup failed", map[string]interface{}{
			"scope": scopeKey,
			"error": err.Error(),
		})
	}
	if counted {
		c.mu.RLock()
		count := c.viewCountLocked(reviewID)
		c.mu.RUnlock()
		return false, count, c.unavailableNotice(), nil
	}

	if err := c.ledger.MarkViewCounted(ctx, scopeKey, OnceEverPolicy); err != nil {
		logger.Warn("Ledger view marker failed", map[string]interface{}{
			"scope": scopeKey,
			"error": err.Error(),
		})
	}

	var tracked int
	notice := c.persist(func() error {
		var err error
		tracked, err = c.backend.TrackReviewView(ctx, reviewID)
		return err
	}, "view", reviewID)

	c.mu.Lock()
	if notice.DemoMode && tracked == 0 {
		// Keep the optimistic increment even though the store write failed
		c.reviews = ApplyViewCount(c.reviews, reviewID, c.viewCountLocked(reviewID)+1)
	} else {
		c.reviews = ApplyViewCount(c.reviews, reviewID, tracked)
	}
	count := c.viewCountLocked(reviewID)
	c.mu.Unlock()
	c.notify()

	return true, count, notice, nil
}

// RegisterDailySiteView counts a sitewide visit, at most once per
// viewer per 24 hours, keyed by the current UTC date.
func (c *Client) RegisterDailySiteView(ctx context.Context, viewerID string) (bool, int, Notice, error) {
	date := c.now().UTC().Format("2006-01-02")
	scopeKey := fmt.Sprintf("daily:%s:%s", viewerID, date)

	counted, err := c.ledger.HasCountedView(ctx, scopeKey, DailyWindowPolicy)
	if err != nil {
		logger.Warn("Ledger view lookup failed", map[string]interface{}{
			"scope": scopeKey,
			"error": err.Error(),
		})
	}
	if counted {
		count, _ := c.backend.FetchDailyViewCount(ctx, date)
		return false, count, c.unavailableNotice(), nil
	}

	if err := c.ledger.MarkViewCounted(ctx, scopeKey, DailyWindowPolicy); err != nil {
		logger.Warn("Ledger view marker failed", map[string]interface{}{
			"scope": scopeKey,
			"error": err.Error(),
		})
	}

	var tracked int
	notice := c.persist(func() error {
		var err error
		tracked, err = c.backend.TrackDailyView(ctx, date)
		return err
	}, "daily_view", date)

	return true, tracked, notice, nil
}

// DailyViewCount returns today's sitewide counter
func (c *Client) DailyViewCount(ctx context.Context) (int, error) {
	date := c.now().UTC().Format("2006-01-02")
	return c.backend.FetchDailyViewCount(ctx, date)
}

// ShareReview builds the share payload and degrade chain for a review
func (c *Client) ShareReview(reviewID string) (*SharePlan, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.reviews {
		if c.reviews[i].ID == reviewID {
			plan := BuildSharePlan(&c.reviews[i], c.baseURL)
			return &plan, nil
		}
	}
	return nil, ErrReviewNotFound
}

// RefreshLikeCounts merges a fresh counter read into the feed
func (c *Client) RefreshLikeCounts(ctx context.Context) error {
	counts, err := c.backend.FetchLikeCounts(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.reviews = ApplyLikeCounts(c.reviews, counts)
	c.mu.Unlock()
	c.notify()
	return nil
}

// ReloadComments rebuilds every comment tree from the store's record
// stream and replaces the feed's trees wholesale.
func (c *Client) ReloadComments(ctx context.Context) error {
	records, err := c.backend.LoadCommentRecords(ctx)
	if err != nil {
		return err
	}
	c.ApplyRemoteSnapshot(BuildCommentTrees(records))
	return nil
}

// ApplyRemoteSnapshot merges rebuilt comment trees into the feed
func (c *Client) ApplyRemoteSnapshot(trees map[string][]model.Comment) {
	c.mu.Lock()
	c.reviews = ApplyCommentSnapshot(c.reviews, trees)
	c.mu.Unlock()
	c.notify()
}

func (c *Client) buildComment(reviewID string, parentCommentID *string, text, author string) (*model.Comment, *model.CommentRecord, error) {
	text = strings.TrimSpace(text)
	author = strings.TrimSpace(author)
	if text == "" {
		return nil, nil, ErrEmptyText
	}
	if author == "" {
		return nil, nil, ErrEmptyAuthor
	}
	if !c.hasReview(reviewID) {
		return nil, nil, ErrReviewNotFound
	}

	record := &model.CommentRecord{
		ID:              uuid.NewString(),
		ReviewID:        reviewID,
		ParentCommentID: parentCommentID,
		Text:            text,
		Author:          author,
		CreatedAt:       c.now(),
	}
	comment := &model.Comment{
		ID:        record.ID,
		Text:      record.Text,
		Author:    record.Author,
		CreatedAt: record.CreatedAt,
		Replies:   []model.Comment{},
	}
	return comment, record, nil
}

// persist runs a backend write and converts any failure into a
// demo-mode notice. Optimistic state is never rolled back.
func (c *Client) persist(write func() error, action, subject string) Notice {
	if !c.backend.Remote() {
		if err := write(); err != nil {
			logger.Warn("Demo backend write failed", map[string]interface{}{
				"action":  action,
				"subject": subject,
				"error":   err.Error(),
			})
		}
		return c.unavailableNotice()
	}

	if err := write(); err != nil {
		logger.Error("Store write failed, keeping local state", err, map[string]interface{}{
			"action":  action,
			"subject": subject,
		})
		return Notice{DemoMode: true, Message: "saved locally only (demo mode)"}
	}
	return Notice{}
}

// unavailableNotice reports a never-configured store as demo mode,
// with the explanatory message included only once per client
func (c *Client) unavailableNotice() Notice {
	if c.backend.Remote() {
		return Notice{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unavailableReported {
		return Notice{DemoMode: true}
	}
	c.unavailableReported = true
	return Notice{DemoMode: true, Message: "demo mode: interactions stay on this server only"}
}

func (c *Client) hasReview(reviewID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.reviews {
		if c.reviews[i].ID == reviewID {
			return true
		}
	}
	return false
}

// isReply reports whether the id belongs to a reply in the current
// snapshot, as opposed to a top-level comment
func (c *Client) isReply(reviewID, commentID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.reviews {
		if c.reviews[i].ID != reviewID {
			continue
		}
		for _, comment := range c.reviews[i].Comments {
			for _, reply := range comment.Replies {
				if reply.ID == commentID {
					return true
				}
			}
		}
	}
	return false
}

func (c *Client) likeCountLocked(reviewID string) int {
	for i := range c.reviews {
		if c.reviews[i].ID == reviewID {
			return c.reviews[i].LikeCount
		}
	}
	return 0
}

func (c *Client) viewCountLocked(reviewID string) int {
	for i := range c.reviews {
		if c.reviews[i].ID == reviewID {
			return c.reviews[i].ViewCount
		}
	}
	return 0
}

func (c *Client) notify() {
	c.mu.RLock()
	fn := c.onChange
	snapshot := cloneReviews(c.reviews)
	c.mu.RUnlock()
	if fn != nil {
		fn(snapshot)
	}
}
