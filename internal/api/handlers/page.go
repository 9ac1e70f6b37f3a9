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

// PageHandler renders the dashboard page.
type PageHandler struct {
	provider fixtures.Provider
}

// NewPageHandler creates a new page handler
func NewPageHandler(provider fixtures.Provider) *PageHandler {
	return &PageHandler{provider: provider}
}

// pickerView feeds the "simulation-picker" template.
type pickerView struct {
	Panel       string
	Selected    model.SimulationID
	Simulations []model.Simulation
}

type pageView struct {
	Tabs     []dashboard.TabInfo
	Active   dashboard.Tab
	Snapshot dashboard.Snapshot
	Toasts   []model.Notification

	StatisticsPicker pickerView
	Statistics       *model.Statistics
	ResultsPicker    pickerView
	Results          *model.CriteriaResults
	DownloadsPicker  pickerView
	Downloads        models.DownloadsResponse
}

// Index handles GET /. An optional ?tab= selects the tab before rendering.
func (h *PageHandler) Index(c *gin.Context) {
	d := currentDashboard(c)

	if raw := c.Query("tab"); raw != "" {
		tab, err := dashboard.ParseTab(raw)
		if errors.Is(err, dashboard.ErrUnknownTab) {
			respondError(c, http.StatusNotFound, "UNKNOWN_TAB", err.Error())
			return
		}
		d.Tabs.Select(tab)
	}

	sims := h.provider.Simulations()
	view := pageView{
		Tabs:     dashboard.AllTabs,
		Active:   d.Tabs.Active(),
		Snapshot: d.Snapshot(),
		Toasts:   d.Notifier.Drain(),

		StatisticsPicker: pickerView{Panel: "statistics", Selected: d.Statistics.Selected(), Simulations: sims},
		ResultsPicker:    pickerView{Panel: "results", Selected: d.Results.Selected(), Simulations: sims},
		DownloadsPicker:  pickerView{Panel: "downloads", Selected: d.Downloads.Selected(), Simulations: sims},
		Downloads:        downloadsResponse(d.Downloads),
	}

	var err error
	if view.Statistics, err = d.Statistics.Data(); err != nil {
		log.Printf("PageHandler: statistics unavailable: %v", err)
	}
	if view.Results, err = d.Results.Data(); err != nil {
		log.Printf("PageHandler: results unavailable: %v", err)
	}

	c.HTML(http.StatusOK, "index.html", view)
}
