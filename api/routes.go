package api

import (
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/lectern/classroom-api/api/auth"
	"github.com/lectern/classroom-api/api/classrooms"
	"github.com/lectern/classroom-api/api/health"
	"github.com/lectern/classroom-api/api/lectures"
	"github.com/lectern/classroom-api/api/transcription"
	"github.com/lectern/classroom-api/api/types"
	"github.com/lectern/classroom-api/api/version"
	_ "github.com/lectern/classroom-api/docs/swagger"
	"github.com/lectern/classroom-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Swagger documentation
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	maxUploadBytes := int64(50 * 1024 * 1024)
	if cfg, err := config.GetConfig(); err == nil && cfg.Server.MaxUploadBytes > 0 {
		maxUploadBytes = cfg.Server.MaxUploadBytes
	}
	uploadLimit := RequestSizeLimitWithSize(maxUploadBytes)

	v1 := engine.Group("/api/v1")

	// Auth routes get tight rate limiting (5 req/s, burst of 10) to slow
	// down credential stuffing
	authGroup := v1.Group("/auth")
	authGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 5, 10))
	auth.RegisterRoutes(authGroup, deps)

	// Everything below requires a valid token
	protected := v1.Group("")
	protected.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	protected.Use(auth.Middleware(deps))

	auth.RegisterProtectedRoutes(protected.Group("/auth"), deps)

	classroomGroup := protected.Group("/classrooms")
	classrooms.RegisterRoutes(classroomGroup, deps)
	lectures.RegisterClassroomRoutes(classroomGroup, deps, uploadLimit)

	lectureGroup := protected.Group("/lectures")
	lectures.RegisterRoutes(lectureGroup, deps, uploadLimit)

	transcriptionGroup := protected.Group("/transcriptions")
	transcription.RegisterRoutes(transcriptionGroup, deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
