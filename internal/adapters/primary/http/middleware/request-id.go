package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerRequestID = "X-Request-ID"

	// ContextKeyRequestID is where the request id lands in the gin context.
	ContextKeyRequestID = "request_id"
)

// RequestID propagates the caller's X-Request-ID or generates one, so card
// writes can be correlated across the API, the search index and the
// publisher.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(ContextKeyRequestID, requestID)
		c.Header(headerRequestID, requestID)

		c.Next()
	}
}
