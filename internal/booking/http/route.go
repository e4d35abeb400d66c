package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/bookings")
	{
		group.GET("", h.List)
		group.GET("/calendar", h.Calendar)
		group.GET("/:id", h.Get)
		group.GET("/:id/history", h.History)
		group.POST("", h.Create)
		group.PATCH("/:id", h.Update)
		group.PATCH("/:id/status", h.UpdateStatus)
		group.DELETE("/:id", h.Delete)
	}
}
