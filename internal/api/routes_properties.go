package api

import (
	"github.com/gin-gonic/gin"

	"github.com/oakfieldhq/oakfield/internal/handlers"
)

func registerPropertyRoutes(api *gin.RouterGroup, handler *handlers.PropertyHandler) {
	if api == nil || handler == nil {
		return
	}

	properties := api.Group("/properties")
	properties.GET("", handler.List)
	properties.GET("/cache/stats", handler.CacheStats)
	// Registered for every method: the handler's authorizer produces the
	// structured 405 for anything other than POST.
	properties.Any("/cache/invalidate", handler.InvalidateCache)
}
