package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderXRequestID = "X-Request-ID"
	ContextRequestID = "request_id"

	maxRequestIDLength = 128
)

// RequestID trusts a caller's X-Request-ID only when it is short, visible ASCII.
// Anything else is replaced with a fresh uuid before it reaches the logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderXRequestID)
		if !acceptableRequestID(id) {
			id = uuid.NewString()
		}

		c.Set(ContextRequestID, id)
		c.Writer.Header().Set(HeaderXRequestID, id)
		c.Next()
	}
}

// GetRequestID returns the id RequestID assigned, or "" outside that middleware.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextRequestID)
}

func acceptableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}
	return true
}
