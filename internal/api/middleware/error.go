package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cessao-fidc/internal/api/models"
	"cessao-fidc/internal/logging"
)

// ErrorHandler middleware handles panics and errors
func ErrorHandler(log *logging.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().
			Str("path", c.Request.URL.Path).
			Str("panic", fmt.Sprint(recovered)).
			Msg("recovered from panic")

		if msg, ok := recovered.(string); ok {
			c.JSON(http.StatusInternalServerError, models.NewError("INTERNAL_ERROR", msg))
		} else {
			c.JSON(http.StatusInternalServerError, models.NewError("INTERNAL_ERROR", "An unexpected error occurred"))
		}
		c.Abort()
	})
}
