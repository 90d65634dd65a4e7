package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// maxDecompressedBody caps inflated request bodies; order payloads are tiny.
const maxDecompressedBody = 1 << 20

// DecompressRequest transparently handles gzip encoded requests.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Content-Encoding"), "gzip") {
			c.Next()
			return
		}

		originalBody := c.Request.Body
		reader, err := gzip.NewReader(originalBody)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		defer originalBody.Close()

		c.Request.Body = http.MaxBytesReader(c.Writer, reader, maxDecompressedBody)
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		c.Next()
	}
}
