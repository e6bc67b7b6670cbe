package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smreview/smreview-backend/internal/data"
	"github.com/smreview/smreview-backend/internal/middleware"
	"github.com/smreview/smreview-backend/internal/sync"
)

func setupReviewRouter() (*gin.Engine, *sync.Client) {
	gin.SetMode(gin.TestMode)

	client := sync.NewClient(sync.NewNullBackend(), sync.NewMemoryLedger(), "https://smreview.in")
	client.Seed(data.StaticReviews())

	ctrl := NewReviewController(client)

	router := gin.New()
	router.Use(middleware.ViewerMiddleware())
	v1 := router.Group("/api/v1")
	{
		v1.GET("/reviews", ctrl.ListReviews)
		v1.GET("/reviews/:id", ctrl.GetReview)
		v1.GET("/reviews/:id/share", ctrl.ShareReview)
		v1.POST("/reviews/:id/like", ctrl.LikeReview)
		v1.POST("/reviews/:id/comments", ctrl.SubmitComment)
		v1.POST("/reviews/:id/comments/:cid/replies", ctrl.SubmitReply)
		v1.POST("/reviews/:id/view", ctrl.RegisterView)
		v1.POST("/views/daily", ctrl.RegisterDailyView)
		v1.GET("/views/daily", ctrl.GetDailyViews)
	}
	return router, client
}

func doJSON(router *gin.Engine, method, path, viewerID string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if viewerID != "" {
		req.Header.Set(middleware.ViewerHeader, viewerID)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestReviewController_ListReviews(t *testing.T) {
	router, _ := setupReviewRouter()

	w := doJSON(router, http.MethodGet, "/api/v1/reviews", "viewer-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Reviews []map[string]interface{} `json:"reviews"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Reviews, len(data.StaticReviews()))

	// A viewer id is minted when the header is absent
	w = doJSON(router, http.MethodGet, "/api/v1/reviews", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.ViewerHeader))
}

func TestReviewController_GetReview(t *testing.T) {
	router, _ := setupReviewRouter()

	w := doJSON(router, http.MethodGet, "/api/v1/reviews/coolie", "viewer-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var review map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &review))
	assert.Equal(t, "coolie", review["id"])

	w = doJSON(router, http.MethodGet, "/api/v1/reviews/ghost", "viewer-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "REVIEW_NOT_FOUND")
}

func TestReviewController_LikeToggle(t *testing.T) {
	router, _ := setupReviewRouter()

	w := doJSON(router, http.MethodPost, "/api/v1/reviews/coolie/like", "viewer-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Liked     bool `json:"liked"`
		LikeCount int  `json:"like_count"`
		DemoMode  bool `json:"demo_mode"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Liked)
	assert.True(t, resp.DemoMode)
	first := resp.LikeCount

	// Same viewer toggles the like back off
	w = doJSON(router, http.MethodPost, "/api/v1/reviews/coolie/like", "viewer-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Liked)
	assert.Equal(t, first-1, resp.LikeCount)
}

func TestReviewController_CommentAndReply(t *testing.T) {
	router, _ := setupReviewRouter()

	w := doJSON(router, http.MethodPost, "/api/v1/reviews/coolie/comments", "viewer-1", gin.H{
		"text":   "Mass first half!",
		"author": "Ravi",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Comment struct {
			ID string `json:"id"`
		} `json:"comment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Comment.ID)

	w = doJSON(router, http.MethodPost, "/api/v1/reviews/coolie/comments/"+resp.Comment.ID+"/replies", "viewer-2", gin.H{
		"text":   "Agreed",
		"author": "Sita",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestReviewController_CommentValidation(t *testing.T) {
	router, _ := setupReviewRouter()

	// Binding rejects a missing author before the sync layer sees it
	w := doJSON(router, http.MethodPost, "/api/v1/reviews/coolie/comments", "viewer-1", gin.H{
		"text": "no author",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Whitespace-only text passes binding but fails in the sync layer
	w = doJSON(router, http.MethodPost, "/api/v1/reviews/coolie/comments", "viewer-1", gin.H{
		"text":   "   ",
		"author": "Ravi",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_REQUIRED")
}

func TestReviewController_ReplyDepthRejected(t *testing.T) {
	router, _ := setupReviewRouter()

	w := doJSON(router, http.MethodPost, "/api/v1/reviews/coolie/comments", "viewer-1", gin.H{
		"text":   "top level",
		"author": "Ravi",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Comment struct {
			ID string `json:"id"`
		} `json:"comment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(router, http.MethodPost, "/api/v1/reviews/coolie/comments/"+created.Comment.ID+"/replies", "viewer-1", gin.H{
		"text":   "reply",
		"author": "Ravi",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var reply struct {
		Comment struct {
			ID string `json:"id"`
		} `json:"comment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))

	// Replying to a reply exceeds the one-level nesting limit
	w = doJSON(router, http.MethodPost, "/api/v1/reviews/coolie/comments/"+reply.Comment.ID+"/replies", "viewer-1", gin.H{
		"text":   "too deep",
		"author": "Ravi",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "COMMENT_NESTING_DEPTH")
}

func TestReviewController_ViewCountedOncePerViewer(t *testing.T) {
	router, _ := setupReviewRouter()

	w := doJSON(router, http.MethodPost, "/api/v1/reviews/coolie/view", "viewer-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Counted   bool `json:"counted"`
		ViewCount int  `json:"view_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Counted)
	first := resp.ViewCount

	w = doJSON(router, http.MethodPost, "/api/v1/reviews/coolie/view", "viewer-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Counted)
	assert.Equal(t, first, resp.ViewCount)
}

func TestReviewController_DailyViews(t *testing.T) {
	router, _ := setupReviewRouter()

	w := doJSON(router, http.MethodPost, "/api/v1/views/daily", "viewer-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Counted bool `json:"counted"`
		Count   int  `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Counted)
	assert.Equal(t, 1, resp.Count)

	w = doJSON(router, http.MethodGet, "/api/v1/views/daily", "viewer-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
}

func TestReviewController_Share(t *testing.T) {
	router, _ := setupReviewRouter()

	w := doJSON(router, http.MethodGet, "/api/v1/reviews/coolie/share", "viewer-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var plan struct {
		Payload struct {
			URL string `json:"url"`
		} `json:"payload"`
		Methods []string `json:"methods"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Equal(t, "https://smreview.in/review/coolie", plan.Payload.URL)
	assert.Equal(t, []string{"native", "clipboard", "text"}, plan.Methods)
}
