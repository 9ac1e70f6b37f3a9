package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cessao-fidc/internal/api/models"
	"cessao-fidc/internal/dashboard"
	"cessao-fidc/internal/selection"
)

// WidgetHandler translates browser events on the file-selection widgets.
type WidgetHandler struct{}

// NewWidgetHandler creates a new widget handler
func NewWidgetHandler() *WidgetHandler {
	return &WidgetHandler{}
}

func (h *WidgetHandler) widget(c *gin.Context) (*selection.Widget, bool) {
	w, err := currentDashboard(c).Submission.Widget(c.Param("widget"))
	if errors.Is(err, dashboard.ErrUnknownWidget) {
		respondError(c, http.StatusNotFound, "UNKNOWN_WIDGET", err.Error())
		return nil, false
	}
	return w, true
}

func widgetResponse(w *selection.Widget) gin.H {
	return gin.H{
		"widget":    w.Config().ID,
		"drag_over": w.DragActive(),
		"files":     w.Files(),
		"count":     w.Count(),
	}
}

// Drag handles POST /api/v1/widgets/:widget/drag
func (h *WidgetHandler) Drag(c *gin.Context) {
	w, ok := h.widget(c)
	if !ok {
		return
	}
	var req models.DragRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if req.Over {
		w.DragOver()
	} else {
		w.DragLeave()
	}
	c.JSON(http.StatusOK, widgetResponse(w))
}

// SetFiles handles PUT /api/v1/widgets/:widget/files
func (h *WidgetHandler) SetFiles(c *gin.Context) {
	w, ok := h.widget(c)
	if !ok {
		return
	}
	var req models.FilesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	files := make([]selection.File, len(req.Files))
	for i, f := range req.Files {
		files[i] = selection.File{Name: f.FileName, SizeBytes: f.FileSizeBytes}
	}
	if req.Modality == "drop" {
		w.Drop(files)
	} else {
		w.Pick(files)
	}

	log.Printf("WidgetHandler: %s %s with %d file(s)", w.Config().ID, req.Modality, len(files))
	c.JSON(http.StatusOK, widgetResponse(w))
}

// UploadFiles handles POST /api/v1/widgets/:widget/files (multipart picker fallback).
// File bodies are discarded; only names and sizes are kept.
func (h *WidgetHandler) UploadFiles(c *gin.Context) {
	w, ok := h.widget(c)
	if !ok {
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_FORM", err.Error())
		return
	}
	defer form.RemoveAll()

	headers := form.File["files"]
	files := make([]selection.File, len(headers))
	for i, fh := range headers {
		files[i] = selection.File{Name: fh.Filename, SizeBytes: fh.Size}
	}
	w.Pick(files)

	if c.Query("redirect") != "" {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.JSON(http.StatusOK, widgetResponse(w))
}

// RemoveFile handles DELETE /api/v1/widgets/:widget/files/:index
func (h *WidgetHandler) RemoveFile(c *gin.Context) {
	w, ok := h.widget(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_INDEX", "index must be an integer")
		return
	}

	if err := w.Remove(index); err != nil {
		if errors.Is(err, selection.ErrIndexOutOfRange) {
			respondError(c, http.StatusNotFound, "FILE_NOT_FOUND", err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "REMOVE_ERROR", err.Error())
		return
	}
	c.JSON(http.StatusOK, widgetResponse(w))
}
