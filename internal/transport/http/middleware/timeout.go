package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-blog-api/internal/domain"
)

// Timeout bounds a request's handling time via its context.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() && len(c.Errors) == 0 {
			Fail(c, &domain.Error{Status: http.StatusGatewayTimeout, Message: "Request timed out.", Err: ctx.Err()})
		}
	}
}
