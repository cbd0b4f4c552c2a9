package api

import (
	"link-refresh-go/pkg/api/handlers"
	"link-refresh-go/pkg/api/middleware"
	"link-refresh-go/pkg/services"

	"github.com/gin-gonic/gin"
)

func NewRouter(refreshService *services.RefreshService) *gin.Engine {
	router := gin.New()

	// Anything not registered below is a plain 404, never a redirect.
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false
	router.HandleMethodNotAllowed = false

	// Middleware
	router.Use(middleware.RequestLogger())
	router.Use(middleware.ErrorHandler())

	router.GET("/", handlers.Index)
	router.GET("/run-script", handlers.RunScript(refreshService))
	router.NoRoute(handlers.NotFound)

	return router
}
