package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/quotations")
	{
		group.GET("/:id", h.Get)
		group.GET("/:id/totals", h.Totals)
		group.POST("", h.Create)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}

	g.GET("/bookings/:id/quotations", h.ListByBooking)
}
