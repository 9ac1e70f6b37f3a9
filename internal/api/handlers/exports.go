package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cessao-fidc/internal/export"
	"cessao-fidc/internal/fixtures"
	"cessao-fidc/internal/model"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves fixture workbooks for preview. It is independent of the
// mocked Download action, which never produces files.
type ExportHandler struct {
	provider fixtures.Provider
}

// NewExportHandler creates a new export handler
func NewExportHandler(provider fixtures.Provider) *ExportHandler {
	return &ExportHandler{provider: provider}
}

// Export handles GET /api/v1/exports/:simulation/:option
func (h *ExportHandler) Export(c *gin.Context) {
	sim := model.SimulationID(c.Param("simulation"))
	option := model.DownloadOptionID(c.Param("option"))

	if !fixtures.HasOption(h.provider, option) {
		respondError(c, http.StatusNotFound, "UNKNOWN_OPTION", fmt.Sprintf("unknown download option %q", option))
		return
	}

	var (
		buf         bytes.Buffer
		contentType string
		ext         string
		err         error
	)
	switch c.DefaultQuery("format", "xlsx") {
	case "xlsx":
		contentType, ext = xlsxContentType, "xlsx"
		err = export.WriteWorkbook(&buf, h.provider, sim, []model.DownloadOptionID{option})
	case "csv":
		contentType, ext = "text/csv; charset=utf-8", "csv"
		var table *export.Table
		if table, err = export.BuildTable(h.provider, sim, option); err == nil {
			err = export.WriteCSV(&buf, table)
		}
	default:
		respondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be xlsx or csv")
		return
	}

	if err != nil {
		if errors.Is(err, fixtures.ErrUnknownSimulation) {
			respondError(c, http.StatusNotFound, "UNKNOWN_SIMULATION", err.Error())
			return
		}
		log.Printf("ExportHandler: export %s/%s failed: %v", sim, option, err)
		respondError(c, http.StatusInternalServerError, "EXPORT_ERROR", err.Error())
		return
	}

	filename := fmt.Sprintf("simulacao-%s-%s.%s", sim, option, ext)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
