package handlers

import (
	"context"
	"net/http"

	"link-refresh-go/pkg/services"

	"github.com/gin-gonic/gin"
)

// RunScript performs a full refresh pass and returns its log as plain text.
// The response is held open until the pass finishes and is always 200.
// A client disconnect does not stop the pass: every link is still fetched
// and paced.
func RunScript(service *services.RefreshService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := service.Run(context.WithoutCancel(c.Request.Context()), nil)

		c.Header("X-Run-ID", result.ID.String())
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(result.Log))
	}
}
