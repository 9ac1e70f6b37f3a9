package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cessao-fidc/internal/api/models"
)

// ResultsHandler serves the "Resultados de Critérios" panel.
type ResultsHandler struct{}

// NewResultsHandler creates a new results handler
func NewResultsHandler() *ResultsHandler {
	return &ResultsHandler{}
}

// GetResults handles GET /api/v1/results
func (h *ResultsHandler) GetResults(c *gin.Context) {
	panel := currentDashboard(c).Results
	results, err := panel.Data()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "RESULTS_ERROR", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.ResultsResponse{
		Simulation:      panel.Selected(),
		Results:         results,
		TotalRejections: results.TotalRejections(),
	})
}
