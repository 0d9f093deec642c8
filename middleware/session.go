package middleware

import (
	"motorhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionKey is the gin context key holding the session id.
const SessionKey = "sessionID"

// SessionMiddleware reads the session id from the X-Session-ID header,
// minting a fresh one for first-time callers. The id is echoed back on
// the response so the client can persist it; all cart, wishlist and
// rewards state is scoped to it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(utils.SessionHeader)
		if sessionID == "" {
			sessionID = uuid.New().String()
		}
		c.Set(SessionKey, sessionID)
		c.Header(utils.SessionHeader, sessionID)
		c.Next()
	}
}

// SessionID extracts the session id set by SessionMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}
