package router

import (
	"github.com/gin-gonic/gin"
	"github.com/smreview/smreview-backend/config"
	"github.com/smreview/smreview-backend/internal/app/controller"
	"github.com/smreview/smreview-backend/internal/middleware"
)

type Router struct {
	reviewController *controller.ReviewController
	adminController  *controller.AdminController
	uploadController *controller.UploadController
	feedController   *controller.FeedController
	authMiddleware   *middleware.AuthMiddleware
	config           *config.Config
}

func NewRouter(
	reviewController *controller.ReviewController,
	adminController *controller.AdminController,
	uploadController *controller.UploadController,
	feedController *controller.FeedController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		reviewController: reviewController,
		adminController:  adminController,
		uploadController: uploadController,
		feedController:   feedController,
		authMiddleware:   authMiddleware,
		config:           cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))
	router.Use(middleware.ViewerMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "SM REVIEW API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		reviews := v1.Group("/reviews")
		{
			reviews.GET("", r.reviewController.ListReviews)
			reviews.GET("/:id", r.reviewController.GetReview)
			reviews.GET("/:id/share", r.reviewController.ShareReview)
			reviews.POST("/:id/like", r.reviewController.LikeReview)
			reviews.POST("/:id/comments", r.reviewController.SubmitComment)
			reviews.POST("/:id/comments/:cid/replies", r.reviewController.SubmitReply)
			reviews.POST("/:id/view", r.reviewController.RegisterView)
		}

		views := v1.Group("/views")
		{
			views.POST("/daily", r.reviewController.RegisterDailyView)
			views.GET("/daily", r.reviewController.GetDailyViews)
		}

		feed := v1.Group("/feed")
		{
			feed.GET("/ws", r.feedController.Subscribe)
		}

		admin := v1.Group("/admin")
		{
			admin.POST("/login", r.adminController.Login)

			admin.POST("/reviews",
				r.authMiddleware.Authenticate(),
				r.adminController.CreateReview,
			)
			admin.PUT("/reviews/:id",
				r.authMiddleware.Authenticate(),
				r.adminController.UpdateReview,
			)
			admin.DELETE("/reviews/:id",
				r.authMiddleware.Authenticate(),
				r.adminController.DeleteReview,
			)

			admin.POST("/uploads/presign",
				r.authMiddleware.Authenticate(),
				r.uploadController.PresignPosterUpload,
			)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Viewer-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Viewer-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
