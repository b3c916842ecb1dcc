package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the header carrying the request identifier
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key for the request identifier
	RequestIDKey = "request_id"
)

// RequestID returns a middleware that attaches a request identifier.
// An identifier supplied by the client is kept, otherwise one is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
