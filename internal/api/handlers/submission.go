package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cessao-fidc/internal/dashboard"
)

// SubmissionHandler serves the "Envio de Dados" panel.
type SubmissionHandler struct{}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler() *SubmissionHandler {
	return &SubmissionHandler{}
}

// UpdateForm handles PATCH /api/v1/submission/form
func (h *SubmissionHandler) UpdateForm(c *gin.Context) {
	var req dashboard.FormUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	form := currentDashboard(c).Submission.Form
	form.Apply(req)
	c.JSON(http.StatusOK, gin.H{
		"form":    form.Data(),
		"missing": form.Missing(),
	})
}

// TransformBatch handles POST /api/v1/submission/transform-batch
func (h *SubmissionHandler) TransformBatch(c *gin.Context) {
	respondNotification(c, currentDashboard(c).Submission.TransformBatch())
}

// SendInvoices handles POST /api/v1/submission/send-invoices
func (h *SubmissionHandler) SendInvoices(c *gin.Context) {
	respondNotification(c, currentDashboard(c).Submission.SendInvoices())
}

// ApplyCriteria handles POST /api/v1/submission/apply-criteria. An optional body
// carries the form values as the operator sees them; they are applied first, so a
// field edited just before the click cannot be missed.
func (h *SubmissionHandler) ApplyCriteria(c *gin.Context) {
	submission := currentDashboard(c).Submission
	if c.Request.ContentLength != 0 {
		var req dashboard.FormUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		submission.Form.Apply(req)
	}
	respondNotification(c, submission.ApplyCriteria())
}
