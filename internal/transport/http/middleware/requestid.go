package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KeyRequestID is both the header and the context key for the request id.
const KeyRequestID = "X-Request-ID"

// RequestID propagates an incoming request id or mints a fresh one, and
// echoes it on the response so clients can correlate failures with logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(KeyRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set(KeyRequestID, rid)
		c.Set(KeyRequestID, rid)
		c.Next()
	}
}

// RequestIDFrom returns the id attached by RequestID, or "" outside it.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(KeyRequestID)
}
