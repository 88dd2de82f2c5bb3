package response

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stemsi/absensi-backend/internal/logger"
)

// ContextKeyRequestID is the Gin context key for the request ID.
const ContextKeyRequestID = logger.RequestIDKey

// maxRequestIDLength bounds client supplied ids echoed into logs.
const maxRequestIDLength = 64

// RequestIDMiddleware generates a unique request ID for every request.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" || len(reqID) > maxRequestIDLength {
			reqID = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, reqID)
		c.Header("X-Request-ID", reqID)
		c.Next()
	}
}
