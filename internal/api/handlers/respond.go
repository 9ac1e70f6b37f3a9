package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cessao-fidc/internal/api/middleware"
	"cessao-fidc/internal/api/models"
	"cessao-fidc/internal/dashboard"
	"cessao-fidc/internal/model"
)

func currentDashboard(c *gin.Context) *dashboard.Dashboard {
	return middleware.CurrentSession(c).Dashboard
}

// respondNotification answers an action. Validation failures are ordinary
// outcomes, so the status is always 200 and the variant tells them apart.
func respondNotification(c *gin.Context, n model.Notification) {
	c.JSON(http.StatusOK, models.NotificationResponse{Notification: n})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.NewError(code, message))
}

func respondBindError(c *gin.Context, err error) {
	respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body: "+err.Error())
}
