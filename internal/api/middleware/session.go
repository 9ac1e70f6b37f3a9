package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cessao-fidc/internal/session"
)

const sessionKey = "session"

// Session resolves the session cookie to a dashboard, creating a fresh one when the
// cookie is missing, unknown or expired.
func Session(store *session.Store, cookieName string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(cookieName)
		sess, created := store.GetOrCreate(id)
		if created {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, sess.ID, int(ttl.Seconds()), "/", "", false, true)
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// CurrentSession returns the session attached by Session.
func CurrentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}

// Serialize runs the rest of the chain holding the session's lock, so requests
// against one dashboard apply one at a time. Must follow Session.
func Serialize() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		sess.Lock()
		defer sess.Unlock()
		c.Next()
	}
}
