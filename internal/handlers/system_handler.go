package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	*BaseHandler
}

func NewSystemHandler(base *BaseHandler) *SystemHandler {
	return &SystemHandler{BaseHandler: base}
}

func (h *SystemHandler) RegisterRoutes(r *gin.RouterGroup, mw *RouteMiddleware) {
	r.GET("/", h.Liveness)
}

// Liveness reports whether the service and its database are reachable.
func (h *SystemHandler) Liveness(c *gin.Context) {
	db := h.GetDB(c)

	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
