package http

import (
	"time"

	"github.com/banquetdesk/banquet-backend/internal/booking"
)

const dateLayout = "2006-01-02"

// SessionPayload is the wire form of a booking session.
type SessionPayload struct {
	Name         string `json:"name" binding:"required"`
	Label        string `json:"label"`
	Venue        string `json:"venue" binding:"required"`
	Date         string `json:"date" binding:"required"`
	StartTime    string `json:"start_time" binding:"required"`
	EndTime      string `json:"end_time" binding:"required"`
	Pax          int    `json:"pax" binding:"omitempty,min=0"`
	Instructions string `json:"instructions"`
}

type CreateBookingBody struct {
	ClientName   string           `json:"client_name" binding:"required"`
	ClientPhone  string           `json:"client_phone"`
	ClientEmail  string           `json:"client_email" binding:"omitempty,email"`
	EventDate    string           `json:"event_date" binding:"required"`
	EventEndDate *string          `json:"event_end_date"`
	ConfirmedPax int              `json:"confirmed_pax" binding:"omitempty,min=0"`
	Venue        string           `json:"venue"`
	StartTime    string           `json:"start_time"`
	EndTime      string           `json:"end_time"`
	Sessions     []SessionPayload `json:"sessions" binding:"omitempty,dive"`
}

type UpdateBookingBody struct {
	ClientName   *string           `json:"client_name"`
	ClientPhone  *string           `json:"client_phone"`
	ClientEmail  *string           `json:"client_email" binding:"omitempty,email"`
	EventDate    *string           `json:"event_date"`
	EventEndDate *string           `json:"event_end_date"`
	ConfirmedPax *int              `json:"confirmed_pax" binding:"omitempty,min=0"`
	Venue        *string           `json:"venue"`
	StartTime    *string           `json:"start_time"`
	EndTime      *string           `json:"end_time"`
	Sessions     *[]SessionPayload `json:"sessions" binding:"omitempty,dive"`
}

// ListBookingsQuery binds the list endpoint's query parameters. Sort
// fields are restricted to known columns before they reach the repository.
type ListBookingsQuery struct {
	Status    string `form:"status" binding:"omitempty,oneof=tentative booked cancelled closed"`
	Venue     string `form:"venue"`
	DateFrom  string `form:"date_from"`
	DateTo    string `form:"date_to"`
	Page      int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=event_date client_name status created_at"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

type UpdateStatusBody struct {
	Status string `json:"status" binding:"required,oneof=tentative booked cancelled closed"`
	Note   string `json:"note"`
}

type SessionResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Label        string `json:"label,omitempty"`
	Venue        string `json:"venue"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Pax          int    `json:"pax"`
	Instructions string `json:"instructions,omitempty"`
}

type BookingResponse struct {
	ID           string            `json:"id"`
	ClientName   string            `json:"client_name"`
	ClientPhone  string            `json:"client_phone,omitempty"`
	ClientEmail  string            `json:"client_email,omitempty"`
	Status       string            `json:"status"`
	EventDate    string            `json:"event_date"`
	EventEndDate *string           `json:"event_end_date,omitempty"`
	DurationDays int               `json:"duration_days"`
	ConfirmedPax int               `json:"confirmed_pax"`
	Venue        string            `json:"venue,omitempty"`
	StartTime    string            `json:"start_time,omitempty"`
	EndTime      string            `json:"end_time,omitempty"`
	CancelReason string            `json:"cancel_reason,omitempty"`
	CancelledAt  *time.Time        `json:"cancelled_at,omitempty"`
	Sessions     []SessionResponse `json:"sessions"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	resp := BookingResponse{
		ID:           b.ID,
		ClientName:   b.ClientName,
		ClientPhone:  b.ClientPhone,
		ClientEmail:  b.ClientEmail,
		Status:       string(b.Status),
		EventDate:    b.EventDate.Format(dateLayout),
		DurationDays: b.DurationDays,
		ConfirmedPax: b.ConfirmedPax,
		Venue:        b.Venue,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		CancelReason: b.CancelReason,
		CancelledAt:  b.CancelledAt,
		Sessions:     make([]SessionResponse, 0, len(b.Sessions)),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
	if b.EventEndDate != nil {
		s := b.EventEndDate.Format(dateLayout)
		resp.EventEndDate = &s
	}
	for _, s := range b.Sessions {
		resp.Sessions = append(resp.Sessions, SessionResponse{
			ID:           s.ID,
			Name:         s.Name,
			Label:        s.Label,
			Venue:        s.Venue,
			Date:         s.Date.Format(dateLayout),
			StartTime:    s.StartTime,
			EndTime:      s.EndTime,
			Pax:          s.Pax,
			Instructions: s.Instructions,
		})
	}
	return resp
}

type StatusChangeResponse struct {
	ID         string    `json:"id"`
	FromStatus string    `json:"from_status,omitempty"`
	ToStatus   string    `json:"to_status"`
	Note       string    `json:"note,omitempty"`
	ChangedAt  time.Time `json:"changed_at"`
}

type OccupancyEntryResponse struct {
	BookingID   string `json:"booking_id"`
	ClientName  string `json:"client_name"`
	SessionName string `json:"session_name,omitempty"`
	Label       string `json:"label,omitempty"`
	Venue       string `json:"venue"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

type DayScheduleResponse struct {
	Date             string                   `json:"date"`
	Entries          []OccupancyEntryResponse `json:"entries"`
	ConflictedVenues []string                 `json:"conflicted_venues"`
	HasConflict      bool                     `json:"has_conflict"`
}

func NewDayScheduleResponse(d booking.DaySchedule) DayScheduleResponse {
	entries := make([]OccupancyEntryResponse, 0, len(d.Entries))
	for _, e := range d.Entries {
		entries = append(entries, OccupancyEntryResponse{
			BookingID:   e.BookingID,
			ClientName:  e.ClientName,
			SessionName: e.SessionName,
			Label:       e.Label,
			Venue:       e.Venue,
			StartTime:   e.Start.String(),
			EndTime:     e.End.String(),
		})
	}
	conflicts := d.ConflictedVenues
	if conflicts == nil {
		conflicts = make([]string, 0)
	}
	return DayScheduleResponse{
		Date:             d.Date.Format(dateLayout),
		Entries:          entries,
		ConflictedVenues: conflicts,
		HasConflict:      len(conflicts) > 0,
	}
}
