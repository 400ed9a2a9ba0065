package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deskhub-io/deskhub-console/internal/session"
)

const sessionKey = "session"

// LoadSession decodes the session cookies, if present, and stores the
// session in the gin context for the handlers downstream.
func LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess, ok := session.FromRequest(c.Request); ok {
			c.Set(sessionKey, sess)
		}
		c.Next()
	}
}

// GetSession returns the session placed in the context by LoadSession.
func GetSession(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}

// RequireAuth redirects unauthenticated page requests to the login route.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetSession(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin sends non-admin sessions back to the dashboard. This gate is
// a UX convenience: the backend re-checks authorization on every admin call
// made with the session's token.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := GetSession(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if !sess.IsAdmin() {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}
