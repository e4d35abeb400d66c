package booking

import (
	"fmt"
	"sort"
	"time"

	"github.com/banquetdesk/banquet-backend/internal/timeslot"
)

// Defaults applied when a booking without sessions is missing its
// fallback venue or times. The "TBD" venue participates in conflict
// detection like any other name; see DetectVenueConflicts.
const (
	FallbackVenue = "TBD"
	FallbackStart = "09:00"
	FallbackEnd   = "18:00"
)

// OccupancyEntry is one venue's use for one time block on one calendar
// day. Entries are derived on demand from a booking and never persisted.
type OccupancyEntry struct {
	BookingID   string
	ClientName  string
	SessionName string
	Label       string
	Venue       string
	Date        time.Time
	Start       timeslot.Minute
	End         timeslot.Minute
}

// ExpandOccupancy turns a booking into the full list of occupancy entries
// for every calendar day it spans.
//
// A single-day booking yields one entry per session at the session's own
// date. A multi-day booking repeats every session on each day of the range
// with a derived "Day {n}" label. A booking with no sessions yields one
// synthetic entry per day from the booking's fallback venue and times,
// labelled Start/Middle/End (single-day bookings get no label).
func ExpandOccupancy(b *Booking) ([]OccupancyEntry, error) {
	end := b.EndDate()
	if end.Before(b.EventDate) {
		return nil, ErrInvalidDateRange
	}

	if len(b.Sessions) == 0 {
		return expandWithoutSessions(b, end)
	}

	multiDay := !end.Equal(b.EventDate)
	if !multiDay {
		entries := make([]OccupancyEntry, 0, len(b.Sessions))
		for i := range b.Sessions {
			e, err := sessionEntry(b, &b.Sessions[i], b.Sessions[i].Date, b.Sessions[i].Label)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
		return entries, nil
	}

	var entries []OccupancyEntry
	n := 1
	for d := b.EventDate; !d.After(end); d = d.AddDate(0, 0, 1) {
		dayLabel := fmt.Sprintf("Day %d", n)
		for i := range b.Sessions {
			label := dayLabel
			if b.Sessions[i].Label != "" {
				label = b.Sessions[i].Label + " " + dayLabel
			}
			e, err := sessionEntry(b, &b.Sessions[i], d, label)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
		n++
	}
	return entries, nil
}

func sessionEntry(b *Booking, s *Session, date time.Time, label string) (OccupancyEntry, error) {
	start, end, err := parseRange(s.StartTime, s.EndTime)
	if err != nil {
		return OccupancyEntry{}, err
	}
	return OccupancyEntry{
		BookingID:   b.ID,
		ClientName:  b.ClientName,
		SessionName: s.Name,
		Label:       label,
		Venue:       s.Venue,
		Date:        date,
		Start:       start,
		End:         end,
	}, nil
}

// expandWithoutSessions synthesizes one pseudo-session per day from the
// booking's own venue and time fields.
func expandWithoutSessions(b *Booking, end time.Time) ([]OccupancyEntry, error) {
	venue := b.Venue
	if venue == "" {
		venue = FallbackVenue
	}
	startStr, endStr := b.StartTime, b.EndTime
	if startStr == "" {
		startStr = FallbackStart
	}
	if endStr == "" {
		endStr = FallbackEnd
	}
	start, endMin, err := parseRange(startStr, endStr)
	if err != nil {
		return nil, err
	}

	singleDay := end.Equal(b.EventDate)

	var entries []OccupancyEntry
	for d := b.EventDate; !d.After(end); d = d.AddDate(0, 0, 1) {
		var label string
		switch {
		case singleDay:
			label = ""
		case d.Equal(b.EventDate):
			label = "Start"
		case d.Equal(end):
			label = "End"
		default:
			label = "Middle"
		}
		entries = append(entries, OccupancyEntry{
			BookingID:  b.ID,
			ClientName: b.ClientName,
			Label:      label,
			Venue:      venue,
			Date:       d,
			Start:      start,
			End:        endMin,
		})
	}
	return entries, nil
}

func parseRange(startStr, endStr string) (timeslot.Minute, timeslot.Minute, error) {
	start, err := timeslot.Parse(startStr)
	if err != nil {
		return 0, 0, err
	}
	end, err := timeslot.Parse(endStr)
	if err != nil {
		return 0, 0, err
	}
	if end <= start {
		return 0, 0, ErrInvalidTimeRange
	}
	return start, end, nil
}

// DetectVenueConflicts identifies venues with overlapping sessions among
// the given entries, which callers restrict to a single calendar day.
// Entries are grouped by exact venue name, sorted by start time, and
// adjacent pairs are tested for strict overlap; touching sessions are not
// conflicts. One flag per venue is enough, so scanning stops at the first
// hit. Known limitation: the "TBD" placeholder venue is treated like any
// other name, so unassigned bookings can flag each other.
func DetectVenueConflicts(entries []OccupancyEntry) []string {
	byVenue := make(map[string][]OccupancyEntry)
	for _, e := range entries {
		byVenue[e.Venue] = append(byVenue[e.Venue], e)
	}

	var conflicted []string
	for venue, group := range byVenue {
		if len(group) < 2 {
			continue
		}
		sort.Slice(group, func(i, j int) bool { return group[i].Start < group[j].Start })
		for i := 0; i+1 < len(group); i++ {
			if timeslot.Overlap(group[i].Start, group[i].End, group[i+1].Start, group[i+1].End) {
				conflicted = append(conflicted, venue)
				break
			}
		}
	}

	sort.Strings(conflicted)
	return conflicted
}
