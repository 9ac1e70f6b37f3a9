package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cessao-fidc/internal/events"
	"cessao-fidc/internal/model"
)

// keepAliveInterval keeps idle SSE connections open through proxies.
const keepAliveInterval = 25 * time.Second

// NotificationHandler hands toasts to the browser.
type NotificationHandler struct{}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

// Drain handles GET /api/v1/notifications
func (h *NotificationHandler) Drain(c *gin.Context) {
	notifications := currentDashboard(c).Notifier.Drain()
	if notifications == nil {
		notifications = []model.Notification{}
	}
	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"count":         len(notifications),
	})
}

// Stream handles GET /api/v1/notifications/stream. Every published notification
// drains the queue, so a toast is delivered once whether it arrives here or via
// Drain. The stream ends when the client goes away or the session is evicted.
func (h *NotificationHandler) Stream(c *gin.Context) {
	d := currentDashboard(c)
	sub := d.Bus.Subscribe(events.EventNotification)
	defer d.Bus.Unsubscribe(sub)

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	// anything queued before the subscription existed goes out first
	first := true
	c.Stream(func(w io.Writer) bool {
		if first {
			first = false
			h.send(c, d.Notifier.Drain())
			return true
		}

		select {
		case <-c.Request.Context().Done():
			return false
		case _, ok := <-sub:
			if !ok {
				return false
			}
			h.send(c, d.Notifier.Drain())
			return true
		case <-ticker.C:
			c.SSEvent("ping", gin.H{"at": time.Now().UTC()})
			return true
		}
	})
}

func (h *NotificationHandler) send(c *gin.Context, notifications []model.Notification) {
	for _, n := range notifications {
		c.SSEvent("notification", n)
	}
}
