package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/smreview/smreview-backend/pkg/util"
)

const (
	// ViewerHeader carries the opaque per-browser token
	ViewerHeader = "X-Viewer-ID"
	ViewerIDKey  = "viewer_id"
)

// ViewerMiddleware resolves the viewer identity used for idempotency
// bookkeeping. A browser without a token gets a freshly minted one
// echoed back; the client persists and resends it on every request.
func ViewerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		viewerID := c.GetHeader(ViewerHeader)
		if viewerID == "" {
			viewerID = util.NewViewerID()
		}

		c.Set(ViewerIDKey, viewerID)
		c.Header(ViewerHeader, viewerID)
		c.Next()
	}
}

// GetViewerID extracts the viewer token from context
func GetViewerID(c *gin.Context) string {
	return c.GetString(ViewerIDKey)
}
