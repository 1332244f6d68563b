package middleware

import (
	"fmt"
	"net/http"

	"ecommerce-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DefaultMaxRequestSize applies when REQUEST_MAX_BYTES is unset or not positive.
const DefaultMaxRequestSize = 10 << 20

// RequestSizeLimitMiddleware caps request bodies at maxSize bytes. Declared
// lengths over the cap are refused up front; chunked bodies are cut off by
// http.MaxBytesReader and surface as *http.MaxBytesError when decoded.
func RequestSizeLimitMiddleware(maxSize int64) gin.HandlerFunc {
	if maxSize <= 0 {
		maxSize = DefaultMaxRequestSize
	}
	message := fmt.Sprintf("Request body exceeds %d bytes", maxSize)

	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, message)
			c.Abort()
			return
		}

		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		}
		c.Next()
	}
}
