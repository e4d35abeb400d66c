package enquiry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/banquetdesk/banquet-backend/internal/booking"
)

type CreateRequest struct {
	ClientName  string
	ClientPhone string
	ClientEmail string
	EventDate   time.Time
	ExpectedPax int
	Occasion    string
	Notes       string
}

type UpdateRequest struct {
	ClientName  *string
	ClientPhone *string
	ClientEmail *string
	EventDate   *time.Time
	ExpectedPax *int
	Occasion    *string
	Notes       *string
	Status      *Status
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Enquiry, error)
	GetByID(ctx context.Context, id string) (*Enquiry, error)
	List(ctx context.Context, filter Filter) ([]*Enquiry, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Enquiry, error)
	Delete(ctx context.Context, id string) error

	// Convert creates a tentative booking from the enquiry and marks it
	// converted. Venue conflicts surface as a 409 from the booking service.
	Convert(ctx context.Context, id string) (*Enquiry, *booking.Booking, error)
}

type service struct {
	repo     Repository
	bookings booking.Service
}

func NewService(repo Repository, bookings booking.Service) Service {
	return &service{repo: repo, bookings: bookings}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Enquiry, error) {
	if strings.TrimSpace(req.ClientName) == "" {
		return nil, ErrClientNameRequired
	}

	e := &Enquiry{
		ClientName:  strings.TrimSpace(req.ClientName),
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		EventDate:   req.EventDate,
		ExpectedPax: req.ExpectedPax,
		Occasion:    req.Occasion,
		Notes:       req.Notes,
		Status:      StatusNew,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Enquiry, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Enquiry, int, error) {
	if filter.Status != "" && !ValidStatus(filter.Status) {
		return nil, 0, ErrInvalidStatus
	}
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Enquiry, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ClientName != nil {
		if strings.TrimSpace(*req.ClientName) == "" {
			return nil, ErrClientNameRequired
		}
		e.ClientName = strings.TrimSpace(*req.ClientName)
	}
	if req.ClientPhone != nil {
		e.ClientPhone = *req.ClientPhone
	}
	if req.ClientEmail != nil {
		e.ClientEmail = *req.ClientEmail
	}
	if req.EventDate != nil {
		e.EventDate = *req.EventDate
	}
	if req.ExpectedPax != nil {
		e.ExpectedPax = *req.ExpectedPax
	}
	if req.Occasion != nil {
		e.Occasion = *req.Occasion
	}
	if req.Notes != nil {
		e.Notes = *req.Notes
	}
	if req.Status != nil {
		if !ValidStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		e.Status = *req.Status
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Convert(ctx context.Context, id string) (*Enquiry, *booking.Booking, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if e.Status.Closed() {
		return nil, nil, ErrAlreadyClosed
	}

	b, err := s.bookings.Create(ctx, booking.CreateRequest{
		ClientName:   e.ClientName,
		ClientPhone:  e.ClientPhone,
		ClientEmail:  e.ClientEmail,
		EventDate:    e.EventDate,
		ConfirmedPax: e.ExpectedPax,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("convert enquiry %s: %w", id, err)
	}

	e.Status = StatusConverted
	e.BookingID = &b.ID
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, nil, err
	}
	return e, b, nil
}
