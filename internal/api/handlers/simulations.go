package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cessao-fidc/internal/api/models"
	"cessao-fidc/internal/dashboard"
	"cessao-fidc/internal/fixtures"
	"cessao-fidc/internal/model"
)

// SimulationHandler serves the simulation catalog and the per-panel pickers.
type SimulationHandler struct {
	provider fixtures.Provider
}

// NewSimulationHandler creates a new simulation handler
func NewSimulationHandler(provider fixtures.Provider) *SimulationHandler {
	return &SimulationHandler{provider: provider}
}

// ListSimulations handles GET /api/v1/simulations
func (h *SimulationHandler) ListSimulations(c *gin.Context) {
	sims := h.provider.Simulations()
	c.JSON(http.StatusOK, gin.H{
		"simulations": sims,
		"count":       len(sims),
	})
}

// pickerFunc picks which panel's picker a route drives.
type pickerFunc func(d *dashboard.Dashboard) *dashboard.SimulationPicker

// SelectSimulation returns a handler for PUT /api/v1/<panel>/simulation
func (h *SimulationHandler) SelectSimulation(panel string, pick pickerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SimulationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		picker := pick(currentDashboard(c))
		if err := picker.Select(model.SimulationID(req.ID)); err != nil {
			if errors.Is(err, fixtures.ErrUnknownSimulation) {
				respondError(c, http.StatusNotFound, "UNKNOWN_SIMULATION", err.Error())
				return
			}
			respondError(c, http.StatusInternalServerError, "SELECT_ERROR", err.Error())
			return
		}

		log.Printf("SimulationHandler: %s simulation=%s", panel, req.ID)
		c.JSON(http.StatusOK, gin.H{"simulation": picker.Selected()})
	}
}

// StatisticsPicker and friends adapt the panels to SelectSimulation.
func StatisticsPicker(d *dashboard.Dashboard) *dashboard.SimulationPicker {
	return d.Statistics.SimulationPicker
}

func ResultsPicker(d *dashboard.Dashboard) *dashboard.SimulationPicker {
	return d.Results.SimulationPicker
}

func DownloadsPicker(d *dashboard.Dashboard) *dashboard.SimulationPicker {
	return d.Downloads.SimulationPicker
}
