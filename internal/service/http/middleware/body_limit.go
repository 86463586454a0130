package middleware

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/draw-proxy/internal/service/http/handler/response"
)

// BodyLimit reads the whole body up front so an oversized one is answered with
// 413 before any handler runs, whether or not Content-Length was declared.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, response.BodyTooLarge)
			return
		}
		if c.Request.Body == nil || c.Request.Body == http.NoBody {
			c.Next()
			return
		}
		data, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, limit))
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, response.BodyTooLarge)
				return
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, response.MalformedBody)
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(data))
		c.Next()
	}
}
