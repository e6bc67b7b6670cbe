package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupViewerRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ViewerMiddleware())
	router.GET("/probe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"viewer_id": GetViewerID(c)})
	})
	return router
}

func TestViewerMiddleware_MintsToken(t *testing.T) {
	router := setupViewerRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	minted := w.Header().Get(ViewerHeader)
	assert.NotEmpty(t, minted)
}

func TestViewerMiddleware_EchoesExistingToken(t *testing.T) {
	router := setupViewerRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(ViewerHeader, "known-viewer")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "known-viewer", w.Header().Get(ViewerHeader))
	assert.Contains(t, w.Body.String(), "known-viewer")
}
