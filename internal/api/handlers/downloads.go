package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cessao-fidc/internal/api/models"
	"cessao-fidc/internal/dashboard"
	"cessao-fidc/internal/model"
)

// DownloadsHandler serves the "Downloads" panel.
type DownloadsHandler struct{}

// NewDownloadsHandler creates a new downloads handler
func NewDownloadsHandler() *DownloadsHandler {
	return &DownloadsHandler{}
}

func downloadsResponse(p *dashboard.DownloadsPanel) models.DownloadsResponse {
	checked := make(map[model.DownloadOptionID]bool)
	for _, id := range p.Checked() {
		checked[id] = true
	}

	catalog := p.Options()
	options := make([]models.DownloadOptionInfo, len(catalog))
	for i, opt := range catalog {
		options[i] = models.DownloadOptionInfo{
			ID:          opt.ID,
			Label:       opt.Label,
			Description: opt.Description,
			Checked:     checked[opt.ID],
		}
	}

	return models.DownloadsResponse{
		Simulation: p.Selected(),
		Options:    options,
		Summary:    p.Summary(),
		History:    p.History(),
		Pending:    p.Pending(),
	}
}

// GetDownloads handles GET /api/v1/downloads
func (h *DownloadsHandler) GetDownloads(c *gin.Context) {
	c.JSON(http.StatusOK, downloadsResponse(currentDashboard(c).Downloads))
}

// SetOption handles PUT /api/v1/downloads/options/:option
func (h *DownloadsHandler) SetOption(c *gin.Context) {
	var req models.OptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	panel := currentDashboard(c).Downloads
	id := model.DownloadOptionID(c.Param("option"))
	if err := panel.SetChecked(id, req.Checked); err != nil {
		if errors.Is(err, dashboard.ErrUnknownOption) {
			respondError(c, http.StatusNotFound, "UNKNOWN_OPTION", err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "OPTION_ERROR", err.Error())
		return
	}
	c.JSON(http.StatusOK, downloadsResponse(panel))
}

// Download handles POST /api/v1/downloads
func (h *DownloadsHandler) Download(c *gin.Context) {
	panel := currentDashboard(c).Downloads
	n := panel.Download()
	log.Printf("DownloadsHandler: Download simulation=%s files=%d error=%t",
		panel.Selected(), len(panel.Checked()), n.IsError())
	respondNotification(c, n)
}
