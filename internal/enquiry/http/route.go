package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/enquiries")
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.POST("/:id/convert", h.Convert)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
