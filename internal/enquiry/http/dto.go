package http

import (
	"time"

	"github.com/banquetdesk/banquet-backend/internal/enquiry"
)

const dateLayout = "2006-01-02"

type CreateEnquiryBody struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone"`
	ClientEmail string `json:"client_email" binding:"omitempty,email"`
	EventDate   string `json:"event_date" binding:"required"`
	ExpectedPax int    `json:"expected_pax" binding:"omitempty,min=0"`
	Occasion    string `json:"occasion"`
	Notes       string `json:"notes"`
}

type UpdateEnquiryBody struct {
	ClientName  *string `json:"client_name"`
	ClientPhone *string `json:"client_phone"`
	ClientEmail *string `json:"client_email" binding:"omitempty,email"`
	EventDate   *string `json:"event_date"`
	ExpectedPax *int    `json:"expected_pax" binding:"omitempty,min=0"`
	Occasion    *string `json:"occasion"`
	Notes       *string `json:"notes"`
	Status      *string `json:"status" binding:"omitempty,oneof=new in_progress converted lost"`
}

type EnquiryResponse struct {
	ID          string    `json:"id"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	ClientEmail string    `json:"client_email"`
	EventDate   string    `json:"event_date"`
	ExpectedPax int       `json:"expected_pax"`
	Occasion    string    `json:"occasion"`
	Notes       string    `json:"notes"`
	Status      string    `json:"status"`
	BookingID   *string   `json:"booking_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewEnquiryResponse(e *enquiry.Enquiry) EnquiryResponse {
	return EnquiryResponse{
		ID:          e.ID,
		ClientName:  e.ClientName,
		ClientPhone: e.ClientPhone,
		ClientEmail: e.ClientEmail,
		EventDate:   e.EventDate.Format(dateLayout),
		ExpectedPax: e.ExpectedPax,
		Occasion:    e.Occasion,
		Notes:       e.Notes,
		Status:      string(e.Status),
		BookingID:   e.BookingID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
