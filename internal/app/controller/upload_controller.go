package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smreview/smreview-backend/internal/errors"
	"github.com/smreview/smreview-backend/internal/storage"
	"github.com/smreview/smreview-backend/pkg/logger"
)

var allowedImageTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"image/webp",
}

// UploadController issues presigned S3 URLs for poster images
type UploadController struct {
	storage *storage.S3Storage
}

func NewUploadController(s3Storage *storage.S3Storage) *UploadController {
	return &UploadController{storage: s3Storage}
}

type presignRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

// PresignPosterUpload returns a presigned PUT URL for a poster image
// POST /api/v1/admin/uploads/presign
func (c *UploadController) PresignPosterUpload(ctx *gin.Context) {
	if c.storage == nil {
		errors.RespondWithError(ctx, http.StatusServiceUnavailable, errors.InternalConfigError, "image uploads are not configured")
		return
	}

	var req presignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(ctx, errors.ValidationInvalidInput, err.Error())
		return
	}

	if err := c.storage.ValidateContentType(req.ContentType, allowedImageTypes); err != nil {
		errors.BadRequest(ctx, errors.UploadInvalidFileType, "only image files can be uploaded")
		return
	}

	resp, err := c.storage.GeneratePosterUploadURL(req.Filename, req.ContentType)
	if err != nil {
		logger.Error("Failed to generate presigned URL", err, map[string]interface{}{
			"filename": req.Filename,
		})
		errors.RespondWithError(ctx, http.StatusInternalServerError, errors.UploadFailed, "failed to prepare upload")
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
