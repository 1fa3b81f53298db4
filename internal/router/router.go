package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/phonebook-backend/config"
	"github.com/ikkim/phonebook-backend/internal/app/controller"
	"github.com/ikkim/phonebook-backend/internal/middleware"
)

type Router struct {
	phoneController  *controller.PhoneController
	reviewController *controller.ReviewController
	config           *config.Config
}

func NewRouter(
	phoneController *controller.PhoneController,
	reviewController *controller.ReviewController,
	cfg *config.Config,
) *Router {
	return &Router{
		phoneController:  phoneController,
		reviewController: reviewController,
		config:           cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "UP",
				"message": "Phone directory API is running",
			})
		})

		phones := api.Group("/phones")
		{
			phones.GET("", r.phoneController.SearchPhones)
			phones.POST("", r.phoneController.CreatePhone)
			phones.GET("/:id", r.phoneController.GetPhoneDetail)
			phones.GET("/:id/reviews", r.reviewController.ListReviews)
			phones.POST("/:id/reviews", r.reviewController.CreateReview)
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
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Requested-With, "+middleware.RequestIDHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Expose-Headers", middleware.RequestIDHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
