package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/banquetdesk/banquet-backend/internal/pkg/request"
	"github.com/banquetdesk/banquet-backend/internal/pkg/response"
	"github.com/banquetdesk/banquet-backend/internal/venue"
)

type Handler struct {
	service venue.Service
}

func NewHandler(service venue.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateVenueBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	v, err := h.service.Create(c.Request.Context(), venue.CreateRequest{
		Name:        body.Name,
		Floor:       body.Floor,
		Capacity:    body.Capacity,
		Description: body.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewVenueResponse(v))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	v, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewVenueResponse(v))
}

func (h *Handler) List(c *gin.Context) {
	var page request.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pagination parameters"})
		return
	}
	page.Normalize()

	filter := venue.Filter{
		Keyword:    c.Query("keyword"),
		ActiveOnly: c.Query("active") == "true",
		Page:       page.Page,
		PageSize:   page.PageSize,
	}

	venues, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list venues"})
		return
	}

	items := make([]VenueResponse, len(venues))
	for i, v := range venues {
		items[i] = NewVenueResponse(v)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, page.Page, page.PageSize, total))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateVenueBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	v, err := h.service.Update(c.Request.Context(), id, venue.UpdateRequest{
		Name:        body.Name,
		Floor:       body.Floor,
		Capacity:    body.Capacity,
		Description: body.Description,
		Active:      body.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewVenueResponse(v))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
