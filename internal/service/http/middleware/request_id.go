package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/reusedev/draw-proxy/internal/consts"
)

// RequestID keeps an incoming X-Request-Id or assigns a fresh one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(consts.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(consts.CtxRequestID, id)
		c.Header(consts.HeaderRequestID, id)
		c.Next()
	}
}
