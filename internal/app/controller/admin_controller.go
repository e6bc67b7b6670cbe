package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smreview/smreview-backend/internal/app/model"
	"github.com/smreview/smreview-backend/internal/app/service"
	"github.com/smreview/smreview-backend/internal/errors"
	"github.com/smreview/smreview-backend/internal/middleware"
	"github.com/smreview/smreview-backend/pkg/logger"
)

// AdminController handles admin login and the review CRUD surface
type AdminController struct {
	authService   service.AuthService
	reviewService service.ReviewService
}

func NewAdminController(authService service.AuthService, reviewService service.ReviewService) *AdminController {
	return &AdminController{
		authService:   authService,
		reviewService: reviewService,
	}
}

// Login authenticates an admin and issues a JWT
// POST /api/v1/admin/login
func (c *AdminController) Login(ctx *gin.Context) {
	var req model.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(ctx, errors.ValidationInvalidInput, err.Error())
		return
	}

	resp, err := c.authService.Login(req.Email, req.Password)
	if err != nil {
		switch err {
		case service.ErrInvalidCredentials:
			errors.RespondWithError(ctx, http.StatusUnauthorized, errors.AuthInvalidCredentials, "invalid email or password")
		case service.ErrAuthUnavailable:
			errors.RespondWithError(ctx, http.StatusServiceUnavailable, errors.InternalConfigError, "admin login is unavailable in demo mode")
		default:
			errors.InternalError(ctx, "")
		}
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// CreateReview publishes a new admin-authored review
// POST /api/v1/admin/reviews
func (c *AdminController) CreateReview(ctx *gin.Context) {
	var req model.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(ctx, errors.ValidationInvalidInput, err.Error())
		return
	}

	review, err := c.reviewService.Create(&req)
	if err != nil {
		errors.InternalError(ctx, "")
		return
	}

	adminID, _ := middleware.GetAdminID(ctx)
	logger.Info("Admin created review", map[string]interface{}{
		"review_id": review.ID,
		"admin_id":  adminID,
	})

	ctx.JSON(http.StatusCreated, gin.H{
		"review":    review,
		"demo_mode": c.reviewService.DemoMode(),
	})
}

// UpdateReview edits an admin-authored review
// PUT /api/v1/admin/reviews/:id
func (c *AdminController) UpdateReview(ctx *gin.Context) {
	var req model.UpdateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(ctx, errors.ValidationInvalidInput, err.Error())
		return
	}

	review, err := c.reviewService.Update(ctx.Param("id"), &req)
	if err != nil {
		respondReviewServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"review":    review,
		"demo_mode": c.reviewService.DemoMode(),
	})
}

// DeleteReview removes an admin-authored review
// DELETE /api/v1/admin/reviews/:id
func (c *AdminController) DeleteReview(ctx *gin.Context) {
	if err := c.reviewService.Delete(ctx.Param("id")); err != nil {
		respondReviewServiceError(ctx, err)
		return
	}

	adminID, _ := middleware.GetAdminID(ctx)
	logger.Info("Admin deleted review", map[string]interface{}{
		"review_id": ctx.Param("id"),
		"admin_id":  adminID,
	})

	ctx.JSON(http.StatusOK, gin.H{
		"deleted":   true,
		"demo_mode": c.reviewService.DemoMode(),
	})
}

func respondReviewServiceError(ctx *gin.Context, err error) {
	switch err {
	case service.ErrReviewNotFound:
		errors.NotFound(ctx, errors.ReviewNotFound, "review not found")
	case service.ErrStaticReview:
		errors.Conflict(ctx, errors.ReviewStaticLocked, "catalog reviews cannot be modified")
	default:
		errors.InternalError(ctx, "")
	}
}
