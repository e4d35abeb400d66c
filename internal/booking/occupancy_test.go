package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestExpandOccupancy(t *testing.T) {
	t.Run("Single Day With Sessions", func(t *testing.T) {
		b := &Booking{
			ID:         "b1",
			ClientName: "Sharma Wedding",
			EventDate:  day(2025, 10, 10),
			Sessions: []Session{
				{Name: "Lunch", Venue: "Hall A", Date: day(2025, 10, 10), StartTime: "12:00", EndTime: "15:00"},
				{Name: "Dinner", Venue: "Hall B", Date: day(2025, 10, 10), StartTime: "18:00", EndTime: "22:00"},
			},
		}

		entries, err := ExpandOccupancy(b)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		for _, e := range entries {
			assert.Equal(t, day(2025, 10, 10), e.Date)
			assert.Empty(t, e.Label)
		}
		assert.Equal(t, "Lunch", entries[0].SessionName)
		assert.Equal(t, "Hall B", entries[1].Venue)
	})

	t.Run("Multi Day Repeats Sessions With Day Labels", func(t *testing.T) {
		b := &Booking{
			ID:           "b2",
			ClientName:   "Tech Conference",
			EventDate:    day(2025, 10, 10),
			EventEndDate: datePtr(day(2025, 10, 12)),
			Sessions: []Session{
				{Name: "Dinner", Venue: "Hall A", Date: day(2025, 10, 10), StartTime: "18:00", EndTime: "22:00"},
			},
		}

		entries, err := ExpandOccupancy(b)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		for i, e := range entries {
			assert.Equal(t, day(2025, 10, 10+i), e.Date)
			assert.Equal(t, "Hall A", e.Venue)
		}
		assert.Equal(t, "Day 1", entries[0].Label)
		assert.Equal(t, "Day 2", entries[1].Label)
		assert.Equal(t, "Day 3", entries[2].Label)
	})

	t.Run("Multi Day Appends To Existing Label", func(t *testing.T) {
		b := &Booking{
			EventDate:    day(2025, 11, 1),
			EventEndDate: datePtr(day(2025, 11, 2)),
			Sessions: []Session{
				{Name: "Dinner", Label: "Reception", Venue: "Hall A", Date: day(2025, 11, 1), StartTime: "18:00", EndTime: "22:00"},
			},
		}

		entries, err := ExpandOccupancy(b)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Reception Day 1", entries[0].Label)
		assert.Equal(t, "Reception Day 2", entries[1].Label)
	})

	t.Run("D Days Times N Sessions", func(t *testing.T) {
		b := &Booking{
			EventDate:    day(2025, 12, 1),
			EventEndDate: datePtr(day(2025, 12, 4)), // 4 days
			Sessions: []Session{
				{Name: "Breakfast", Venue: "Terrace", Date: day(2025, 12, 1), StartTime: "08:00", EndTime: "10:00"},
				{Name: "Lunch", Venue: "Hall A", Date: day(2025, 12, 1), StartTime: "12:00", EndTime: "14:00"},
				{Name: "Dinner", Venue: "Hall A", Date: day(2025, 12, 1), StartTime: "19:00", EndTime: "22:00"},
			},
		}

		entries, err := ExpandOccupancy(b)
		require.NoError(t, err)
		assert.Len(t, entries, 12)
	})

	t.Run("No Sessions Synthesizes Per Day", func(t *testing.T) {
		b := &Booking{
			EventDate:    day(2025, 10, 10),
			EventEndDate: datePtr(day(2025, 10, 12)),
		}

		entries, err := ExpandOccupancy(b)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "Start", entries[0].Label)
		assert.Equal(t, "Middle", entries[1].Label)
		assert.Equal(t, "End", entries[2].Label)
		for _, e := range entries {
			assert.Equal(t, FallbackVenue, e.Venue)
			assert.Equal(t, "09:00", e.Start.String())
			assert.Equal(t, "18:00", e.End.String())
		}
	})

	t.Run("No Sessions Single Day Has No Label", func(t *testing.T) {
		b := &Booking{
			EventDate: day(2025, 10, 10),
			Venue:     "Lawn",
			StartTime: "10:00",
			EndTime:   "16:00",
		}

		entries, err := ExpandOccupancy(b)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Empty(t, entries[0].Label)
		assert.Equal(t, "Lawn", entries[0].Venue)
	})

	t.Run("End Date Before Start Date Rejected", func(t *testing.T) {
		b := &Booking{
			EventDate:    day(2025, 10, 10),
			EventEndDate: datePtr(day(2025, 10, 8)),
		}

		_, err := ExpandOccupancy(b)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("Inverted Session Times Rejected", func(t *testing.T) {
		b := &Booking{
			EventDate: day(2025, 10, 10),
			Sessions: []Session{
				{Name: "Dinner", Venue: "Hall A", Date: day(2025, 10, 10), StartTime: "22:00", EndTime: "18:00"},
			},
		}

		_, err := ExpandOccupancy(b)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})
}

func TestDetectVenueConflicts(t *testing.T) {
	entry := func(venue, start, end string) OccupancyEntry {
		b := &Booking{
			EventDate: day(2025, 10, 10),
			Sessions: []Session{
				{Name: "s", Venue: venue, Date: day(2025, 10, 10), StartTime: start, EndTime: end},
			},
		}
		entries, err := ExpandOccupancy(b)
		require.NoError(t, err)
		return entries[0]
	}

	t.Run("Genuine Overlap Flagged", func(t *testing.T) {
		conflicts := DetectVenueConflicts([]OccupancyEntry{
			entry("Hall A", "10:00", "12:00"),
			entry("Hall A", "11:00", "13:00"),
		})
		assert.Equal(t, []string{"Hall A"}, conflicts)
	})

	t.Run("Two Bookings Same Evening", func(t *testing.T) {
		conflicts := DetectVenueConflicts([]OccupancyEntry{
			entry("Hall A", "18:00", "22:00"),
			entry("Hall A", "20:00", "23:00"),
		})
		assert.Equal(t, []string{"Hall A"}, conflicts)
	})

	t.Run("Touching Sessions Not Flagged", func(t *testing.T) {
		conflicts := DetectVenueConflicts([]OccupancyEntry{
			entry("Hall A", "10:00", "12:00"),
			entry("Hall A", "12:00", "14:00"),
		})
		assert.Empty(t, conflicts)
	})

	t.Run("Different Venues Not Flagged", func(t *testing.T) {
		conflicts := DetectVenueConflicts([]OccupancyEntry{
			entry("Hall A", "10:00", "12:00"),
			entry("Hall B", "10:00", "12:00"),
		})
		assert.Empty(t, conflicts)
	})

	t.Run("Unsorted Input Handled", func(t *testing.T) {
		conflicts := DetectVenueConflicts([]OccupancyEntry{
			entry("Hall A", "20:00", "23:00"),
			entry("Hall A", "08:00", "09:00"),
			entry("Hall A", "18:00", "22:00"),
		})
		assert.Equal(t, []string{"Hall A"}, conflicts)
	})

	t.Run("Multiple Conflicted Venues Sorted", func(t *testing.T) {
		conflicts := DetectVenueConflicts([]OccupancyEntry{
			entry("Hall B", "10:00", "12:00"),
			entry("Hall B", "11:00", "13:00"),
			entry("Hall A", "18:00", "22:00"),
			entry("Hall A", "19:00", "20:00"),
		})
		assert.Equal(t, []string{"Hall A", "Hall B"}, conflicts)
	})

	t.Run("TBD Venues Participate", func(t *testing.T) {
		conflicts := DetectVenueConflicts([]OccupancyEntry{
			entry("TBD", "09:00", "18:00"),
			entry("TBD", "10:00", "11:00"),
		})
		assert.Equal(t, []string{"TBD"}, conflicts)
	})

	t.Run("Empty Input", func(t *testing.T) {
		assert.Empty(t, DetectVenueConflicts(nil))
	})
}
