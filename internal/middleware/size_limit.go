package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yana-hris/DevJobsAPI/internal/utilities"
)

// DefaultMaxBodyBytes caps JSON request bodies.
const DefaultMaxBodyBytes = int64(1 << 20)

// SizeLimit function is a middleware that rejects bodies larger than maxBodyBytes.
// A declared Content-Length over the limit is answered 413 right away, otherwise
// reading past the limit fails with http.MaxBytesError.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBodyBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{
				Error: "Entity too large",
			})
			return
		}

		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
		}
		c.Next()
	}
}
