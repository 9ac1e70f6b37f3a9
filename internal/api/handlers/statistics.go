package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cessao-fidc/internal/api/models"
	"cessao-fidc/internal/charts"
	"cessao-fidc/internal/fixtures"
)

// StatisticsHandler serves the "Análise Estatística" panel and its charts.
type StatisticsHandler struct {
	renderer *charts.Renderer
}

// NewStatisticsHandler creates a new statistics handler
func NewStatisticsHandler(renderer *charts.Renderer) *StatisticsHandler {
	return &StatisticsHandler{renderer: renderer}
}

// GetStatistics handles GET /api/v1/statistics
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	panel := currentDashboard(c).Statistics
	stats, err := panel.Data()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "STATISTICS_ERROR", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.StatisticsResponse{
		Simulation: panel.Selected(),
		Statistics: stats,
		Charts: map[string]string{
			string(charts.KindMaturity): "/api/v1/statistics/charts/maturity.svg",
			string(charts.KindStates):   "/api/v1/statistics/charts/states.svg",
		},
	})
}

// GetChart handles GET /api/v1/statistics/charts/:chart
func (h *StatisticsHandler) GetChart(c *gin.Context) {
	kind, err := charts.ParseKind(c.Param("chart"))
	if err != nil {
		respondError(c, http.StatusNotFound, "UNKNOWN_CHART", err.Error())
		return
	}

	sim := currentDashboard(c).Statistics.Selected()
	svg, err := h.renderer.Render(kind, sim)
	switch {
	case errors.Is(err, fixtures.ErrUnknownSimulation):
		respondError(c, http.StatusNotFound, "UNKNOWN_SIMULATION", err.Error())
		return
	case errors.Is(err, charts.ErrNoData):
		c.Status(http.StatusNoContent)
		return
	case err != nil:
		log.Printf("StatisticsHandler: render %s failed: %v", kind, err)
		respondError(c, http.StatusInternalServerError, "CHART_ERROR", fmt.Sprintf("Failed to render chart: %v", err))
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "image/svg+xml", svg)
}
