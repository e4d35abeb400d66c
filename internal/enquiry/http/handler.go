package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/banquetdesk/banquet-backend/internal/enquiry"
	"github.com/banquetdesk/banquet-backend/internal/pkg/request"
	"github.com/banquetdesk/banquet-backend/internal/pkg/response"
)

type Handler struct {
	service enquiry.Service
}

func NewHandler(service enquiry.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateEnquiryBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	eventDate, err := time.Parse(dateLayout, body.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event_date, expected YYYY-MM-DD"})
		return
	}

	e, err := h.service.Create(c.Request.Context(), enquiry.CreateRequest{
		ClientName:  body.ClientName,
		ClientPhone: body.ClientPhone,
		ClientEmail: body.ClientEmail,
		EventDate:   eventDate,
		ExpectedPax: body.ExpectedPax,
		Occasion:    body.Occasion,
		Notes:       body.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewEnquiryResponse(e))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	e, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewEnquiryResponse(e))
}

func (h *Handler) List(c *gin.Context) {
	var page request.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pagination parameters"})
		return
	}
	page.Normalize()

	filter := enquiry.Filter{
		Status:   enquiry.Status(c.Query("status")),
		Keyword:  c.Query("keyword"),
		Page:     page.Page,
		PageSize: page.PageSize,
	}

	enquiries, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]EnquiryResponse, len(enquiries))
	for i, e := range enquiries {
		items[i] = NewEnquiryResponse(e)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, page.Page, page.PageSize, total))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateEnquiryBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := enquiry.UpdateRequest{
		ClientName:  body.ClientName,
		ClientPhone: body.ClientPhone,
		ClientEmail: body.ClientEmail,
		ExpectedPax: body.ExpectedPax,
		Occasion:    body.Occasion,
		Notes:       body.Notes,
	}
	if body.EventDate != nil {
		eventDate, err := time.Parse(dateLayout, *body.EventDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event_date, expected YYYY-MM-DD"})
			return
		}
		req.EventDate = &eventDate
	}
	if body.Status != nil {
		status := enquiry.Status(*body.Status)
		req.Status = &status
	}

	e, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewEnquiryResponse(e))
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

func (h *Handler) Convert(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	e, b, err := h.service.Convert(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"enquiry":    NewEnquiryResponse(e),
		"booking_id": b.ID,
	})
}
