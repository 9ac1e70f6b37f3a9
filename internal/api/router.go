// Package api wires the gin engine: middleware, page, assets and the /api/v1 routes.
package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cessao-fidc/internal/api/handlers"
	"cessao-fidc/internal/api/middleware"
	"cessao-fidc/internal/api/models"
	"cessao-fidc/internal/charts"
	"cessao-fidc/internal/config"
	"cessao-fidc/internal/fixtures"
	"cessao-fidc/internal/logging"
	"cessao-fidc/internal/session"
	"cessao-fidc/internal/web"
)

// Deps are the long-lived services the routes share.
type Deps struct {
	Config   *config.Config
	Logger   *logging.Logger
	Provider fixtures.Provider
	Sessions *session.Store
	Charts   *charts.Renderer
}

// NewRouter builds the engine. It does not start listening.
func NewRouter(deps Deps) (*gin.Engine, error) {
	cfg := deps.Config
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)

	// Apply middleware
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.Logger(deps.Logger.Named("http")))
	router.Use(middleware.ErrorHandler(deps.Logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"sessions": deps.Sessions.Len(),
		})
	})
	router.StaticFS("/assets", http.FS(web.Assets()))

	withSession := middleware.Session(deps.Sessions, cfg.Session.CookieName, cfg.Session.IdleTimeout)

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(deps.Provider)
	dashboardHandler := handlers.NewDashboardHandler()
	widgetHandler := handlers.NewWidgetHandler()
	submissionHandler := handlers.NewSubmissionHandler()
	simulationHandler := handlers.NewSimulationHandler(deps.Provider)
	statisticsHandler := handlers.NewStatisticsHandler(deps.Charts)
	resultsHandler := handlers.NewResultsHandler()
	downloadsHandler := handlers.NewDownloadsHandler()
	notificationHandler := handlers.NewNotificationHandler()
	exportHandler := handlers.NewExportHandler(deps.Provider)

	serialize := middleware.Serialize()

	router.GET("/", withSession, serialize, pageHandler.Index)

	// API routes
	api := router.Group("/api/v1")
	api.GET("/simulations", simulationHandler.ListSimulations)
	if cfg.Exports.Enabled {
		api.GET("/exports/:simulation/:option", exportHandler.Export)
	}

	// the notification stream stays open for the page's lifetime, so it
	// never takes the session lock
	api.GET("/notifications/stream", withSession, notificationHandler.Stream)

	sess := api.Group("", withSession, serialize)
	{
		sess.GET("/session", dashboardHandler.GetSession)
		sess.PUT("/tab", dashboardHandler.SelectTab)

		sess.POST("/widgets/:widget/drag", widgetHandler.Drag)
		sess.PUT("/widgets/:widget/files", widgetHandler.SetFiles)
		sess.POST("/widgets/:widget/files", widgetHandler.UploadFiles)
		sess.DELETE("/widgets/:widget/files/:index", widgetHandler.RemoveFile)

		sess.PATCH("/submission/form", submissionHandler.UpdateForm)
		sess.POST("/submission/transform-batch", submissionHandler.TransformBatch)
		sess.POST("/submission/send-invoices", submissionHandler.SendInvoices)
		sess.POST("/submission/apply-criteria", submissionHandler.ApplyCriteria)

		sess.GET("/statistics", statisticsHandler.GetStatistics)
		sess.PUT("/statistics/simulation", simulationHandler.SelectSimulation("statistics", handlers.StatisticsPicker))
		sess.GET("/statistics/charts/:chart", statisticsHandler.GetChart)

		sess.GET("/results", resultsHandler.GetResults)
		sess.PUT("/results/simulation", simulationHandler.SelectSimulation("results", handlers.ResultsPicker))

		sess.GET("/downloads", downloadsHandler.GetDownloads)
		sess.PUT("/downloads/simulation", simulationHandler.SelectSimulation("downloads", handlers.DownloadsPicker))
		sess.PUT("/downloads/options/:option", downloadsHandler.SetOption)
		sess.POST("/downloads", downloadsHandler.Download)

		sess.GET("/notifications", notificationHandler.Drain)
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, models.NewError("NOT_FOUND", "Not found"))
			return
		}
		c.Redirect(http.StatusFound, "/")
	})

	return router, nil
}
