package enquiry

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banquetdesk/banquet-backend/internal/booking"
)

type fakeRepository struct {
	enquiries map[string]*Enquiry
	nextID    int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{enquiries: make(map[string]*Enquiry)}
}

func (f *fakeRepository) Create(_ context.Context, e *Enquiry) error {
	f.nextID++
	e.ID = fmt.Sprintf("enquiry-%d", f.nextID)
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	clone := *e
	f.enquiries[e.ID] = &clone
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*Enquiry, error) {
	e, ok := f.enquiries[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *e
	return &clone, nil
}

func (f *fakeRepository) List(_ context.Context, filter Filter) ([]*Enquiry, int, error) {
	var out []*Enquiry
	for _, e := range f.enquiries {
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		clone := *e
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (f *fakeRepository) Update(_ context.Context, e *Enquiry) error {
	if _, ok := f.enquiries[e.ID]; !ok {
		return ErrNotFound
	}
	clone := *e
	f.enquiries[e.ID] = &clone
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.enquiries[id]; !ok {
		return ErrNotFound
	}
	delete(f.enquiries, id)
	return nil
}

// fakeBookingService returns a canned booking or error from Create; the
// remaining methods are unused by the enquiry service.
type fakeBookingService struct {
	booking.Service

	createErr error
	created   []booking.CreateRequest
}

func (f *fakeBookingService) Create(_ context.Context, req booking.CreateRequest) (*booking.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	return &booking.Booking{
		ID:         fmt.Sprintf("booking-%d", len(f.created)),
		ClientName: req.ClientName,
		EventDate:  req.EventDate,
		Status:     booking.StatusTentative,
	}, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestServiceConvert(t *testing.T) {
	ctx := context.Background()

	t.Run("converts an open enquiry into a tentative booking", func(t *testing.T) {
		repo := newFakeRepository()
		bookings := &fakeBookingService{}
		svc := NewService(repo, bookings)

		e, err := svc.Create(ctx, CreateRequest{
			ClientName:  "Mehta family",
			ClientPhone: "98765",
			EventDate:   day(2026, time.November, 20),
			ExpectedPax: 180,
			Occasion:    "Wedding reception",
		})
		require.NoError(t, err)
		require.Equal(t, StatusNew, e.Status)

		converted, b, err := svc.Convert(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusConverted, converted.Status)
		require.NotNil(t, converted.BookingID)
		assert.Equal(t, b.ID, *converted.BookingID)
		assert.Equal(t, booking.StatusTentative, b.Status)

		require.Len(t, bookings.created, 1)
		assert.Equal(t, "Mehta family", bookings.created[0].ClientName)
		assert.Equal(t, day(2026, time.November, 20), bookings.created[0].EventDate)
		assert.Equal(t, 180, bookings.created[0].ConfirmedPax)

		stored, err := svc.GetByID(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusConverted, stored.Status)
	})

	t.Run("booking conflict propagates and leaves the enquiry open", func(t *testing.T) {
		repo := newFakeRepository()
		bookings := &fakeBookingService{createErr: booking.ErrVenueConflict}
		svc := NewService(repo, bookings)

		e, err := svc.Create(ctx, CreateRequest{
			ClientName: "Rao",
			EventDate:  day(2026, time.December, 5),
		})
		require.NoError(t, err)

		_, _, err = svc.Convert(ctx, e.ID)
		require.ErrorIs(t, err, booking.ErrVenueConflict)

		stored, err := svc.GetByID(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusNew, stored.Status)
		assert.Nil(t, stored.BookingID)
	})

	t.Run("converted enquiry cannot be converted again", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo, &fakeBookingService{})

		e, err := svc.Create(ctx, CreateRequest{
			ClientName: "Iyer",
			EventDate:  day(2026, time.October, 2),
		})
		require.NoError(t, err)

		_, _, err = svc.Convert(ctx, e.ID)
		require.NoError(t, err)

		_, _, err = svc.Convert(ctx, e.ID)
		assert.ErrorIs(t, err, ErrAlreadyClosed)
	})

	t.Run("lost enquiry cannot be converted", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo, &fakeBookingService{})

		e, err := svc.Create(ctx, CreateRequest{
			ClientName: "Khan",
			EventDate:  day(2026, time.October, 9),
		})
		require.NoError(t, err)

		lost := StatusLost
		_, err = svc.Update(ctx, e.ID, UpdateRequest{Status: &lost})
		require.NoError(t, err)

		_, _, err = svc.Convert(ctx, e.ID)
		assert.ErrorIs(t, err, ErrAlreadyClosed)
	})

	t.Run("unknown enquiry", func(t *testing.T) {
		svc := NewService(newFakeRepository(), &fakeBookingService{})
		_, _, err := svc.Convert(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestServiceValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository(), &fakeBookingService{})

	t.Run("empty client name rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{ClientName: "  ", EventDate: day(2026, time.May, 1)})
		assert.ErrorIs(t, err, ErrClientNameRequired)
	})

	t.Run("unknown status rejected on update", func(t *testing.T) {
		e, err := svc.Create(ctx, CreateRequest{ClientName: "Das", EventDate: day(2026, time.May, 2)})
		require.NoError(t, err)

		bogus := Status("archived")
		_, err = svc.Update(ctx, e.ID, UpdateRequest{Status: &bogus})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("unknown status rejected on list", func(t *testing.T) {
		_, _, err := svc.List(ctx, Filter{Status: Status("archived")})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}
