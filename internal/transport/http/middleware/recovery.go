package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"go-blog-api/internal/domain"
)

// Recovery turns a panic into a 500 rendered through the Errors
// middleware so even crashes wear the uniform error body.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				Fail(c, &domain.Error{
					Status:  500,
					Message: "Internal server error.",
					Err:     fmt.Errorf("panic: %v", rec),
				})
			}
		}()
		c.Next()
	}
}
