package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/banquetdesk/banquet-backend/internal/pkg/response"
	"github.com/banquetdesk/banquet-backend/internal/quotation"
)

type Handler struct {
	service quotation.Service
}

func NewHandler(service quotation.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateQuotationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	q, err := h.service.Create(c.Request.Context(), quotation.CreateRequest{
		BookingID:          body.BookingID,
		PackageID:          body.PackageID,
		CustomPackagePrice: body.CustomPackagePrice,
		Lines:              toLineInputs(body.Lines),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewQuotationResponse(q))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	q, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewQuotationResponse(q))
}

func (h *Handler) ListByBooking(c *gin.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	quotations, err := h.service.ListByBooking(c.Request.Context(), bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]QuotationResponse, len(quotations))
	for i, q := range quotations {
		items[i] = NewQuotationResponse(q)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateQuotationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req := quotation.UpdateRequest{
		CustomPackagePrice: body.CustomPackagePrice,
		ClearCustomPrice:   body.ClearCustomPrice,
	}
	if body.Lines != nil {
		lines := toLineInputs(*body.Lines)
		req.Lines = &lines
	}

	q, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewQuotationResponse(q))
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

func (h *Handler) Totals(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	totals, err := h.service.Totals(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, totals)
}
