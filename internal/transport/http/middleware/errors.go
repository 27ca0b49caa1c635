package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-blog-api/internal/core/logger"
	"go-blog-api/internal/domain"
	"go-blog-api/internal/transport/http/response"
)

// Fail records err on the context and stops the chain. The Errors
// middleware renders it on the way out.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// Errors is the single global error handler. Whatever a handler or
// middleware recorded via Fail is converted into the uniform error body
// and logged with a category separating request failures, storage
// failures and unhandled errors.
func Errors(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status := domain.StatusOf(err)
		path := c.Request.URL.RequestURI()

		category := logger.CategoryRequestFail
		if status >= http.StatusInternalServerError {
			category = logger.CategoryUnhandled
			if domain.IsStorage(err) {
				category = logger.CategoryDBFail
			}
		}
		l.Error("request failed",
			logger.Category(category),
			zap.Int("status", status),
			zap.String("path", path),
			zap.String("rid", RequestIDFrom(c)),
			zap.Error(err),
		)

		message := err.Error()
		var ae *domain.Error
		if errors.As(err, &ae) {
			message = ae.Message
		}
		c.JSON(status, response.NewErrorBody(status, message, err.Error(), path))
	}
}
