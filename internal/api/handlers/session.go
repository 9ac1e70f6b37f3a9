package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cessao-fidc/internal/api/models"
	"cessao-fidc/internal/dashboard"
)

// DashboardHandler serves page-level state: the snapshot and the tab bar.
type DashboardHandler struct{}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// GetSession handles GET /api/v1/session
func (h *DashboardHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, currentDashboard(c).Snapshot())
}

// SelectTab handles PUT /api/v1/tab
func (h *DashboardHandler) SelectTab(c *gin.Context) {
	var req models.TabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tab, err := dashboard.ParseTab(req.Tab)
	if errors.Is(err, dashboard.ErrUnknownTab) {
		respondError(c, http.StatusNotFound, "UNKNOWN_TAB", err.Error())
		return
	}

	d := currentDashboard(c)
	changed := d.Tabs.Select(tab)
	log.Printf("DashboardHandler: tab=%s changed=%t", tab, changed)
	c.JSON(http.StatusOK, gin.H{
		"active_tab": d.Tabs.Active(),
		"changed":    changed,
	})
}
