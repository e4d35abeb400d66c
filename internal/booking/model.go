package booking

import (
	"net/http"
	"time"

	"github.com/banquetdesk/banquet-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "booking not found")
	ErrVenueConflict      = apperror.New(http.StatusConflict, "venue already occupied in the requested time slot")
	ErrInvalidDateRange   = apperror.New(http.StatusBadRequest, "event end date must not be before event date")
	ErrInvalidTimeRange   = apperror.New(http.StatusBadRequest, "session end time must be after start time")
	ErrSessionOutOfRange  = apperror.New(http.StatusBadRequest, "session date must fall within the event date range")
	ErrClientNameRequired = apperror.New(http.StatusBadRequest, "client name is required")
	ErrVenueRequired      = apperror.New(http.StatusBadRequest, "session venue is required")
	ErrInvalidStatus      = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrInvalidTransition  = apperror.New(http.StatusConflict, "status transition not allowed")
	ErrCancelReason       = apperror.New(http.StatusBadRequest, "cancellation reason is required")
)

type Status string

const (
	StatusTentative Status = "tentative"
	StatusBooked    Status = "booked"
	StatusCancelled Status = "cancelled"
	StatusClosed    Status = "closed"
)

// ValidStatus reports whether s is one of the known booking statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusTentative, StatusBooked, StatusCancelled, StatusClosed:
		return true
	}
	return false
}

// CanTransition reports whether a booking may move from one status to
// another. Cancelled and closed are terminal.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusTentative:
		return to == StatusBooked || to == StatusCancelled
	case StatusBooked:
		return to == StatusCancelled || to == StatusClosed
	}
	return false
}

// Booking is a banquet event reservation, usually converted from an
// enquiry. It owns its sessions; deleting the booking removes them.
type Booking struct {
	ID           string
	ClientName   string
	ClientPhone  string
	ClientEmail  string
	Status       Status
	EventDate    time.Time  // date only, midnight UTC
	EventEndDate *time.Time // nil for single-day events
	DurationDays int
	ConfirmedPax int

	// Fallbacks used to synthesize occupancy when no sessions exist yet.
	Venue     string
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"

	CancelReason string
	CancelledAt  *time.Time

	Sessions  []Session
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndDate returns the effective last day of the event.
func (b *Booking) EndDate() time.Time {
	if b.EventEndDate != nil {
		return *b.EventEndDate
	}
	return b.EventDate
}

// Session is a discrete time block within a booking at a specific venue,
// e.g. a dinner service. Venues are referenced by name.
type Session struct {
	ID           string
	BookingID    string
	Name         string
	Label        string
	Venue        string
	Date         time.Time
	StartTime    string // "HH:MM"
	EndTime      string // "HH:MM"
	Pax          int
	Instructions string
}

// StatusChange is one row of a booking's status history.
type StatusChange struct {
	ID         string
	BookingID  string
	FromStatus Status
	ToStatus   Status
	Note       string
	ChangedAt  time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	Status    string
	Venue     string
	DateFrom  *time.Time // bookings whose event range ends on or after this day
	DateTo    *time.Time // bookings whose event range starts on or before this day
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
