package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smreview/smreview-backend/internal/app/model"
	"github.com/smreview/smreview-backend/internal/errors"
	"github.com/smreview/smreview-backend/internal/middleware"
	"github.com/smreview/smreview-backend/internal/sync"
)

// ReviewController serves the public interaction surface: the feed,
// likes, comments, replies, views and sharing.
type ReviewController struct {
	syncClient *sync.Client
}

func NewReviewController(syncClient *sync.Client) *ReviewController {
	return &ReviewController{syncClient: syncClient}
}

// ListReviews returns the feed snapshot with the viewer's liked flags
// GET /api/v1/reviews
func (c *ReviewController) ListReviews(ctx *gin.Context) {
	viewerID := middleware.GetViewerID(ctx)
	reviews := c.syncClient.SnapshotFor(ctx.Request.Context(), viewerID)
	ctx.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// GetReview returns a single review
// GET /api/v1/reviews/:id
func (c *ReviewController) GetReview(ctx *gin.Context) {
	viewerID := middleware.GetViewerID(ctx)
	review, err := c.syncClient.GetReview(ctx.Request.Context(), viewerID, ctx.Param("id"))
	if err != nil {
		errors.NotFound(ctx, errors.ReviewNotFound, "review not found")
		return
	}
	ctx.JSON(http.StatusOK, review)
}

// ShareReview returns the share payload and degrade chain
// GET /api/v1/reviews/:id/share
func (c *ReviewController) ShareReview(ctx *gin.Context) {
	plan, err := c.syncClient.ShareReview(ctx.Param("id"))
	if err != nil {
		errors.NotFound(ctx, errors.ReviewNotFound, "review not found")
		return
	}
	ctx.JSON(http.StatusOK, plan)
}

// LikeReview toggles the viewer's like on a review
// POST /api/v1/reviews/:id/like
func (c *ReviewController) LikeReview(ctx *gin.Context) {
	viewerID := middleware.GetViewerID(ctx)
	liked, count, notice, err := c.syncClient.LikeToggle(ctx.Request.Context(), viewerID, ctx.Param("id"))
	if err != nil {
		errors.NotFound(ctx, errors.ReviewNotFound, "review not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"liked":      liked,
		"like_count": count,
		"demo_mode":  notice.DemoMode,
		"message":    notice.Message,
	})
}

// SubmitComment appends a top-level comment
// POST /api/v1/reviews/:id/comments
func (c *ReviewController) SubmitComment(ctx *gin.Context) {
	var req model.SubmitCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(ctx, errors.ValidationInvalidInput, err.Error())
		return
	}

	viewerID := middleware.GetViewerID(ctx)
	comment, notice, err := c.syncClient.SubmitComment(ctx.Request.Context(), viewerID, ctx.Param("id"), req.Text, req.Author)
	if err != nil {
		respondSyncError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"comment":   comment,
		"demo_mode": notice.DemoMode,
		"message":   notice.Message,
	})
}

// SubmitReply appends a reply to a top-level comment
// POST /api/v1/reviews/:id/comments/:cid/replies
func (c *ReviewController) SubmitReply(ctx *gin.Context) {
	var req model.SubmitCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(ctx, errors.ValidationInvalidInput, err.Error())
		return
	}

	viewerID := middleware.GetViewerID(ctx)
	reply, notice, err := c.syncClient.SubmitReply(ctx.Request.Context(), viewerID, ctx.Param("id"), ctx.Param("cid"), req.Text, req.Author)
	if err != nil {
		respondSyncError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"comment":   reply,
		"demo_mode": notice.DemoMode,
		"message":   notice.Message,
	})
}

// RegisterView counts a review page view, once per viewer
// POST /api/v1/reviews/:id/view
func (c *ReviewController) RegisterView(ctx *gin.Context) {
	viewerID := middleware.GetViewerID(ctx)
	counted, count, notice, err := c.syncClient.RegisterViewOnLoad(ctx.Request.Context(), viewerID, ctx.Param("id"))
	if err != nil {
		errors.NotFound(ctx, errors.ReviewNotFound, "review not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"counted":    counted,
		"view_count": count,
		"demo_mode":  notice.DemoMode,
	})
}

// RegisterDailyView counts a sitewide visit, once per viewer per day
// POST /api/v1/views/daily
func (c *ReviewController) RegisterDailyView(ctx *gin.Context) {
	viewerID := middleware.GetViewerID(ctx)
	counted, count, notice, err := c.syncClient.RegisterDailySiteView(ctx.Request.Context(), viewerID)
	if err != nil {
		errors.InternalError(ctx, "")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"counted":   counted,
		"count":     count,
		"demo_mode": notice.DemoMode,
	})
}

// GetDailyViews returns today's sitewide counter
// GET /api/v1/views/daily
func (c *ReviewController) GetDailyViews(ctx *gin.Context) {
	count, err := c.syncClient.DailyViewCount(ctx.Request.Context())
	if err != nil {
		errors.InternalError(ctx, "")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"count": count})
}

func respondSyncError(ctx *gin.Context, err error) {
	switch err {
	case sync.ErrReviewNotFound:
		errors.NotFound(ctx, errors.ReviewNotFound, "review not found")
	case sync.ErrEmptyText:
		errors.BadRequest(ctx, errors.ValidationRequired, "text must not be empty")
	case sync.ErrEmptyAuthor:
		errors.BadRequest(ctx, errors.ValidationRequired, "author must not be empty")
	case sync.ErrReplyDepth:
		errors.BadRequest(ctx, errors.CommentNestingDepth, "replies can only target a top-level comment")
	default:
		errors.InternalError(ctx, "")
	}
}
