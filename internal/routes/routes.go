package routes

import (
	"matchmaker_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every handler onto the root group. Each
// handler attaches its own gates from mw.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers, mw *handlers.RouteMiddleware) {
	root := router.Group("")

	h.SystemHandler.RegisterRoutes(root, mw)
	h.AuthHandler.RegisterRoutes(root, mw)
	h.UserHandler.RegisterRoutes(root, mw)
	h.BiodataHandler.RegisterRoutes(root, mw)
	h.PremiumHandler.RegisterRoutes(root, mw)
	h.ReviewHandler.RegisterRoutes(root, mw)
}
