package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mozfest-backend/internal/shared/middleware"
	"mozfest-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// Root + probes. Some platforms probe with HEAD, hence the
	// explicit handler.
	router.GET("/", rootHandler(c))
	router.HEAD("/", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
	router.GET("/health", healthCheckHandler(c))

	// Contributor submission surface
	contributors := router.Group("/contributors")
	{
		contributors.POST("/", c.ContributorHandler.Create)
		contributors.GET("/:id", c.ContributorHandler.GetByID)
	}

	// Read-mostly surface consumed by the frontend mock layer
	mock := router.Group("/api/mock")
	{
		mock.GET("/contributors", c.ContributorHandler.ListBasic)
		mock.GET("/contributors/:id", c.ContributorHandler.GetBasicByID)

		mock.GET("/stories", c.StoryHandler.List)
		mock.POST("/stories", c.StoryHandler.Create)

		mock.GET("/tile_gradients", c.TileGradientHandler.List)
		mock.POST("/tile_gradients", c.TileGradientHandler.Create)
	}

	return router
}

func rootHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "MozFest API",
			"version": appCtx.Config.App.Version,
		})
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		statusCode := http.StatusOK
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			health["status"] = "degraded"
			statusCode = http.StatusServiceUnavailable
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				health["status"] = "degraded"
				statusCode = http.StatusServiceUnavailable
			}
		}

		c.JSON(statusCode, health)
	}
}
