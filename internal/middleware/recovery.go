// Package middleware provides the HTTP middleware chain.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gidacan/blog-backend/internal/dto/response"
)

// Recovery returns a middleware that recovers from panics and responds 500
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.Stack("stack"))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					response.NewError("internal server error"))
			}
		}()
		c.Next()
	}
}
