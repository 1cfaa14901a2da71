package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type contextKey string

const (
	HeaderRequestID = "X-Request-ID"

	RequestIDKey contextKey = "request_id"
)

// RequestID reuses the caller's X-Request-ID or mints one, echoes it on the
// response and stores it on both the gin and the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		c.Set(string(RequestIDKey), reqID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), RequestIDKey, reqID))
		c.Header(HeaderRequestID, reqID)

		c.Next()
	}
}

func GetRequestID(ctx context.Context) string {
	if val, ok := ctx.Value(RequestIDKey).(string); ok {
		return val
	}
	return ""
}
