package api

import (
	"net/http"
	"time"

	"github.com/course-authoring-api/internal/config"
	"github.com/course-authoring-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	courseHandler := NewCourseHandler(services, cfg, log)
	uploadHandler := NewUploadHandler(services, cfg, log)
	translationHandler := NewTranslationHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(services))

	// API v1
	v1 := router.Group("/v1")
	{
		// Course creation and admin endpoints
		courses := v1.Group("/courses")
		{
			courses.POST("/generate", courseHandler.Generate)
			courses.POST("", courseHandler.Confirm)
			courses.GET("", courseHandler.List)
			courses.GET("/:course_id", courseHandler.Get)
			courses.POST("/:course_id/archive", courseHandler.Archive)
			courses.POST("/:course_id/translate", translationHandler.Translate)
			courses.POST("/:course_id/translation", translationHandler.Apply)
		}

		// Markdown upload endpoints
		uploads := v1.Group("/uploads")
		{
			uploads.POST("", uploadHandler.Parse)
			uploads.GET("", uploadHandler.List)
			uploads.GET("/:upload_id", uploadHandler.Get)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "course-authoring-api",
	})
}

// metricsHandler returns basic content counts
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		coursesCount, _ := services.Course.Count(ctx)

		c.JSON(http.StatusOK, gin.H{
			"database": gin.H{
				"courses": coursesCount,
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
