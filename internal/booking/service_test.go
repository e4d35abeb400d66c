package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	bookings map[string]*Booking
	history  []*StatusChange
	nextID   int

	statusChangeErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{bookings: make(map[string]*Booking)}
}

func (r *fakeRepository) Create(_ context.Context, b *Booking) error {
	r.nextID++
	b.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", r.nextID)
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *fakeRepository) List(_ context.Context, _ Filter) ([]*Booking, int, error) {
	var out []*Booking
	for _, b := range r.bookings {
		clone := *b
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (r *fakeRepository) Update(_ context.Context, b *Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return ErrNotFound
	}
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.bookings[id]; !ok {
		return ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *fakeRepository) ListActiveInRange(_ context.Context, from, to time.Time) ([]*Booking, error) {
	var out []*Booking
	for _, b := range r.bookings {
		if b.Status == StatusCancelled {
			continue
		}
		if b.EventDate.After(to) || b.EndDate().Before(from) {
			continue
		}
		clone := *b
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeRepository) AddStatusChange(_ context.Context, sc *StatusChange) error {
	if r.statusChangeErr != nil {
		return r.statusChangeErr
	}
	sc.ID = fmt.Sprintf("h%d", len(r.history)+1)
	sc.ChangedAt = time.Now().UTC()
	r.history = append(r.history, sc)
	return nil
}

func (r *fakeRepository) ListStatusHistory(_ context.Context, bookingID string) ([]*StatusChange, error) {
	var out []*StatusChange
	for _, sc := range r.history {
		if sc.BookingID == bookingID {
			out = append(out, sc)
		}
	}
	return out, nil
}

func dinnerRequest(client string, venue string, start, end string) CreateRequest {
	return CreateRequest{
		ClientName: client,
		EventDate:  day(2025, 10, 10),
		Sessions: []SessionInput{
			{Name: "Dinner", Venue: venue, Date: day(2025, 10, 10), StartTime: start, EndTime: end},
		},
	}
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		b, err := svc.Create(ctx, dinnerRequest("Mehta Reception", "Hall A", "18:00", "22:00"))
		require.NoError(t, err)
		assert.NotEmpty(t, b.ID)
		assert.Equal(t, StatusTentative, b.Status)
		assert.Equal(t, 1, b.DurationDays)

		history, err := svc.History(ctx, b.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, StatusTentative, history[0].ToStatus)
	})

	t.Run("Venue Conflict Blocked", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		_, err := svc.Create(ctx, dinnerRequest("First", "Hall A", "18:00", "22:00"))
		require.NoError(t, err)

		_, err = svc.Create(ctx, dinnerRequest("Second", "Hall A", "20:00", "23:00"))
		assert.ErrorIs(t, err, ErrVenueConflict)
	})

	t.Run("Touching Sessions Allowed", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		_, err := svc.Create(ctx, dinnerRequest("First", "Hall A", "10:00", "12:00"))
		require.NoError(t, err)

		_, err = svc.Create(ctx, dinnerRequest("Second", "Hall A", "12:00", "14:00"))
		assert.NoError(t, err)
	})

	t.Run("Cancelled Bookings Do Not Conflict", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo)

		first, err := svc.Create(ctx, dinnerRequest("First", "Hall A", "18:00", "22:00"))
		require.NoError(t, err)
		_, err = svc.UpdateStatus(ctx, first.ID, StatusCancelled, "client withdrew")
		require.NoError(t, err)

		_, err = svc.Create(ctx, dinnerRequest("Second", "Hall A", "18:00", "22:00"))
		assert.NoError(t, err)
	})

	t.Run("Validation Errors", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		req := dinnerRequest("", "Hall A", "18:00", "22:00")
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrClientNameRequired)

		req = dinnerRequest("Client", "", "18:00", "22:00")
		_, err = svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrVenueRequired)

		req = dinnerRequest("Client", "Hall A", "18:00", "22:00")
		end := day(2025, 10, 8)
		req.EventEndDate = &end
		_, err = svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidDateRange)

		req = dinnerRequest("Client", "Hall A", "18:00", "22:00")
		req.Sessions[0].Date = day(2025, 12, 25)
		_, err = svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrSessionOutOfRange)
	})

	t.Run("Multi Day Duration Computed", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		req := dinnerRequest("Conference", "Hall A", "09:00", "17:00")
		end := day(2025, 10, 12)
		req.EventEndDate = &end
		b, err := svc.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, 3, b.DurationDays)
	})
}

func TestServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Own Slot Excluded From Conflict Check", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		b, err := svc.Create(ctx, dinnerRequest("Client", "Hall A", "18:00", "22:00"))
		require.NoError(t, err)

		// Shift by one hour within its own occupied slot.
		sessions := []SessionInput{
			{Name: "Dinner", Venue: "Hall A", Date: day(2025, 10, 10), StartTime: "19:00", EndTime: "23:00"},
		}
		updated, err := svc.Update(ctx, b.ID, UpdateRequest{Sessions: &sessions})
		require.NoError(t, err)
		assert.Equal(t, "19:00", updated.Sessions[0].StartTime)
	})

	t.Run("Moving Onto Another Booking Blocked", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		_, err := svc.Create(ctx, dinnerRequest("First", "Hall A", "10:00", "12:00"))
		require.NoError(t, err)
		second, err := svc.Create(ctx, dinnerRequest("Second", "Hall B", "10:00", "12:00"))
		require.NoError(t, err)

		sessions := []SessionInput{
			{Name: "Dinner", Venue: "Hall A", Date: day(2025, 10, 10), StartTime: "11:00", EndTime: "13:00"},
		}
		_, err = svc.Update(ctx, second.ID, UpdateRequest{Sessions: &sessions})
		assert.ErrorIs(t, err, ErrVenueConflict)
	})
}

func TestServiceUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Transition Matrix", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		b, err := svc.Create(ctx, dinnerRequest("Client", "Hall A", "18:00", "22:00"))
		require.NoError(t, err)

		// tentative -> closed is not allowed
		_, err = svc.UpdateStatus(ctx, b.ID, StatusClosed, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)

		// tentative -> booked -> closed
		_, err = svc.UpdateStatus(ctx, b.ID, StatusBooked, "advance received")
		require.NoError(t, err)
		updated, err := svc.UpdateStatus(ctx, b.ID, StatusClosed, "event completed")
		require.NoError(t, err)
		assert.Equal(t, StatusClosed, updated.Status)

		// closed is terminal
		_, err = svc.UpdateStatus(ctx, b.ID, StatusBooked, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)

		history, err := svc.History(ctx, b.ID)
		require.NoError(t, err)
		assert.Len(t, history, 3) // created, booked, closed
	})

	t.Run("Cancellation Requires Reason", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		b, err := svc.Create(ctx, dinnerRequest("Client", "Hall A", "18:00", "22:00"))
		require.NoError(t, err)

		_, err = svc.UpdateStatus(ctx, b.ID, StatusCancelled, "  ")
		assert.ErrorIs(t, err, ErrCancelReason)

		cancelled, err := svc.UpdateStatus(ctx, b.ID, StatusCancelled, "client withdrew")
		require.NoError(t, err)
		assert.Equal(t, "client withdrew", cancelled.CancelReason)
		require.NotNil(t, cancelled.CancelledAt)
	})

	t.Run("Unknown Status Rejected", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		_, err := svc.UpdateStatus(ctx, "00000000-0000-0000-0000-000000000001", Status("archived"), "")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("History Write Failure Surfaces", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo)

		b, err := svc.Create(ctx, dinnerRequest("Client", "Hall A", "18:00", "22:00"))
		require.NoError(t, err)

		repo.statusChangeErr = errors.New("history table unavailable")
		_, err = svc.UpdateStatus(ctx, b.ID, StatusBooked, "advance received")
		require.Error(t, err)
	})
}

func TestServiceCalendar(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository())

	_, err := svc.Create(ctx, dinnerRequest("First", "Hall A", "18:00", "22:00"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, dinnerRequest("Second", "Hall B", "18:00", "22:00"))
	require.NoError(t, err)

	days, err := svc.Calendar(ctx, day(2025, 10, 9), day(2025, 10, 11))
	require.NoError(t, err)
	require.Len(t, days, 3)

	assert.Empty(t, days[0].Entries)
	assert.Len(t, days[1].Entries, 2)
	assert.Empty(t, days[1].ConflictedVenues)
	assert.Empty(t, days[2].Entries)

	_, err = svc.Calendar(ctx, day(2025, 10, 11), day(2025, 10, 9))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}
