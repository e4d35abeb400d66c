package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/banquetdesk/banquet-backend/internal/booking"
	"github.com/banquetdesk/banquet-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	return t, err == nil
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req, ok := h.buildCreateRequest(c, body)
	if !ok {
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) buildCreateRequest(c *gin.Context, body CreateBookingBody) (booking.CreateRequest, bool) {
	eventDate, ok := parseDate(body.EventDate)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_date must be YYYY-MM-DD"})
		return booking.CreateRequest{}, false
	}

	req := booking.CreateRequest{
		ClientName:   body.ClientName,
		ClientPhone:  body.ClientPhone,
		ClientEmail:  body.ClientEmail,
		EventDate:    eventDate,
		ConfirmedPax: body.ConfirmedPax,
		Venue:        body.Venue,
		StartTime:    body.StartTime,
		EndTime:      body.EndTime,
	}
	if body.EventEndDate != nil {
		endDate, ok := parseDate(*body.EventEndDate)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "event_end_date must be YYYY-MM-DD"})
			return booking.CreateRequest{}, false
		}
		req.EventEndDate = &endDate
	}

	sessions, ok := buildSessionInputs(c, body.Sessions)
	if !ok {
		return booking.CreateRequest{}, false
	}
	req.Sessions = sessions
	return req, true
}

func buildSessionInputs(c *gin.Context, payloads []SessionPayload) ([]booking.SessionInput, bool) {
	sessions := make([]booking.SessionInput, 0, len(payloads))
	for _, p := range payloads {
		date, ok := parseDate(p.Date)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session date must be YYYY-MM-DD"})
			return nil, false
		}
		sessions = append(sessions, booking.SessionInput{
			Name:         p.Name,
			Label:        p.Label,
			Venue:        p.Venue,
			Date:         date,
			StartTime:    p.StartTime,
			EndTime:      p.EndTime,
			Pax:          p.Pax,
			Instructions: p.Instructions,
		})
	}
	return sessions, true
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) List(c *gin.Context) {
	var q ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	var dateFrom, dateTo *time.Time
	if q.DateFrom != "" {
		if t, ok := parseDate(q.DateFrom); ok {
			dateFrom = &t
		}
	}
	if q.DateTo != "" {
		if t, ok := parseDate(q.DateTo); ok {
			dateTo = &t
		}
	}

	filter := booking.Filter{
		Status:    q.Status,
		Venue:     q.Venue,
		DateFrom:  dateFrom,
		DateTo:    dateTo,
		Page:      q.Page,
		PageSize:  q.PageSize,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, q.Page, q.PageSize, total))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req := booking.UpdateRequest{
		ClientName:   body.ClientName,
		ClientPhone:  body.ClientPhone,
		ClientEmail:  body.ClientEmail,
		ConfirmedPax: body.ConfirmedPax,
		Venue:        body.Venue,
		StartTime:    body.StartTime,
		EndTime:      body.EndTime,
	}
	if body.EventDate != nil {
		t, ok := parseDate(*body.EventDate)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "event_date must be YYYY-MM-DD"})
			return
		}
		req.EventDate = &t
	}
	if body.EventEndDate != nil {
		t, ok := parseDate(*body.EventEndDate)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "event_end_date must be YYYY-MM-DD"})
			return
		}
		req.EventEndDate = &t
	}
	if body.Sessions != nil {
		sessions, ok := buildSessionInputs(c, *body.Sessions)
		if !ok {
			return
		}
		req.Sessions = &sessions
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), id, booking.Status(body.Status), body.Note)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
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

func (h *Handler) History(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	history, err := h.service.History(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]StatusChangeResponse, 0, len(history))
	for _, sc := range history {
		items = append(items, StatusChangeResponse{
			ID:         sc.ID,
			FromStatus: string(sc.FromStatus),
			ToStatus:   string(sc.ToStatus),
			Note:       sc.Note,
			ChangedAt:  sc.ChangedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Calendar(c *gin.Context) {
	from, okFrom := parseDate(c.Query("from"))
	to, okTo := parseDate(c.Query("to"))
	if !okFrom || !okTo {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to must be YYYY-MM-DD"})
		return
	}

	days, err := h.service.Calendar(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]DayScheduleResponse, 0, len(days))
	for _, d := range days {
		items = append(items, NewDayScheduleResponse(d))
	}

	c.JSON(http.StatusOK, gin.H{"days": items})
}
