package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns a handler panic into a 500. No handler is expected to
// panic; in normal operation the fixed 404 is the only non-200 answer.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.String(http.StatusInternalServerError, "500 Internal Server Error")
		c.Abort()
	})
}
