package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/menus")
	{
		group.GET("/packages", h.ListPackages)
		group.GET("/packages/:id", h.GetPackage)
		group.GET("/packages/:id/items", h.ListItems)
		group.POST("/packages", h.CreatePackage)
		group.POST("/packages/:id/recalculate-price", h.RecalculatePrice)
		group.PATCH("/packages/:id", h.UpdatePackage)
		group.DELETE("/packages/:id", h.DeletePackage)

		group.POST("/items", h.CreateItem)
		group.PATCH("/items/:id", h.UpdateItem)
		group.DELETE("/items/:id", h.DeleteItem)
	}
}
