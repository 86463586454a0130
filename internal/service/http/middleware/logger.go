package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/draw-proxy/internal/consts"
	"github.com/reusedev/draw-proxy/internal/modules/logs"
)

func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method
		clientIP := c.ClientIP()

		c.Next()

		logs.Logger.Info().Str("method", method).
			Str("path", path).
			Str("client_ip", clientIP).
			Str("request_id", c.GetString(consts.CtxRequestID)).
			Int("status", c.Writer.Status()).
			Int("size", c.Writer.Size()).
			Dur("duration", time.Since(start)).
			Msg("request log")
	}
}
