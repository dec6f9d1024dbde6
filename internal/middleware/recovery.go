// Package middleware provides the gin middleware shared by every route.
package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/invoice-register-service/internal/apperror"
	"github.com/ridwanfathin/invoice-register-service/internal/logger"
	"github.com/ridwanfathin/invoice-register-service/internal/model"
)

// Recovery recovers from panics raised by handlers and answers with the
// exceptional error envelope.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				appErr := apperror.FromPanic("http_handler", r)

				logger.Error(c.Request.Context(), "panic recovered",
					"error", appErr.Message(),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)

				_ = c.Error(appErr)
				c.AbortWithStatusJSON(http.StatusInternalServerError, model.ErrorResponse{
					Error:   "Internal server error",
					Details: appErr.Message(),
				})
			}
		}()
		c.Next()
	}
}
