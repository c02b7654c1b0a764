package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hackinsight-team/hackinsight/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	datasetHandler   *Dataset
	analyticsHandler *Analytics
	feedbackHandler  *Feedback
	imageHandler     *Image
	galleryHandler   *Gallery
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, datasetHandler *Dataset, analyticsHandler *Analytics, feedbackHandler *Feedback, imageHandler *Image, galleryHandler *Gallery) *Router {
	return &Router{
		cfg:              cfg,
		datasetHandler:   datasetHandler,
		analyticsHandler: analyticsHandler,
		feedbackHandler:  feedbackHandler,
		imageHandler:     imageHandler,
		galleryHandler:   galleryHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupDatasetRoutes(v1)
	rt.setupImageRoutes(v1)
}

func (rt *Router) setupDatasetRoutes(g *echo.Group) {
	datasets := g.Group("/datasets")

	datasets.POST("", rt.datasetHandler.Generate)
	datasets.POST("/upload", rt.datasetHandler.Upload)
	datasets.GET("/:id", rt.datasetHandler.Preview)
	datasets.GET("/:id/export", rt.datasetHandler.Export)
	datasets.POST("/:id/analytics", rt.analyticsHandler.Report)
	datasets.POST("/:id/feedback", rt.feedbackHandler.Analyze)
}

func (rt *Router) setupImageRoutes(g *echo.Group) {
	g.POST("/images/process", rt.imageHandler.Process)
	g.GET("/gallery", rt.galleryHandler.List)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
