package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie = "cart_session"
	SessionHeader = "X-Cart-Session"
	sessionKey    = "session_id"
)

// SessionMiddleware assigns every visitor a cart session id. The first valid uuid found in the
// cookie or, failing that, the X-Cart-Session header is kept; otherwise a new one is issued.
func SessionMiddleware(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, _ := c.Cookie(SessionCookie)
		sessionID := firstValidID(cookie, c.GetHeader(SessionHeader))
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, sessionID, 0, "/", "", secure, true)
		c.Header(SessionHeader, sessionID)
		c.Set(sessionKey, sessionID)
		c.Next()
	}
}

func firstValidID(candidates ...string) string {
	for _, candidate := range candidates {
		if _, err := uuid.Parse(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
