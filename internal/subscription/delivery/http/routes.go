package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the subscription and batch-trigger endpoints.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/subscribe", h.Subscribe)
	r.POST("/unsubscribe", h.Unsubscribe)
	r.POST("/send-alerts-now", h.SendAlertsNow)
}
