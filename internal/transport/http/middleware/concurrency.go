package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	"go-blog-api/internal/domain"
)

// ConcurrencyLimit bounds the number of in-flight requests, protecting
// the database behind them.
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if err := sem.Acquire(c, 1); err != nil {
			Fail(c, &domain.Error{Status: http.StatusServiceUnavailable, Message: "Server busy.", Err: err})
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
