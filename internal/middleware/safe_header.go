package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// apiHeaders are sent on every response. The API only returns JSON, so
// nothing it serves may be framed or load sub-resources.
var apiHeaders = map[string]string{
	"X-Content-Type-Options":  "nosniff",
	"X-Frame-Options":         "DENY",
	"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
	"Referrer-Policy":         "no-referrer",
}

// SafeHeader adds security headers to each response. Anonymous reads (the
// public job board) may be cached but must be revalidated; anything carrying
// credentials or changing state is never stored.
func SafeHeader() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		for k, v := range apiHeaders {
			h.Set(k, v)
		}
		h.Del("X-Powered-By")

		if c.Request.Method == http.MethodGet && c.GetHeader("Authorization") == "" {
			h.Set("Cache-Control", "no-cache")
		} else {
			h.Set("Cache-Control", "no-store")
		}
		if gin.Mode() == gin.ReleaseMode {
			h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		}

		c.Next()
	}
}
