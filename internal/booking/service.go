package booking

import (
	"context"
	"log"
	"strings"
	"time"
)

type CreateRequest struct {
	ClientName   string
	ClientPhone  string
	ClientEmail  string
	EventDate    time.Time
	EventEndDate *time.Time
	ConfirmedPax int
	Venue        string
	StartTime    string
	EndTime      string
	Sessions     []SessionInput
}

type SessionInput struct {
	Name         string
	Label        string
	Venue        string
	Date         time.Time
	StartTime    string
	EndTime      string
	Pax          int
	Instructions string
}

type UpdateRequest struct {
	ClientName   *string
	ClientPhone  *string
	ClientEmail  *string
	EventDate    *time.Time
	EventEndDate *time.Time
	ConfirmedPax *int
	Venue        *string
	StartTime    *string
	EndTime      *string
	Sessions     *[]SessionInput
}

// DaySchedule is one calendar day of the occupancy view: every venue
// occupancy entry on that day plus the venues flagged as conflicted.
type DaySchedule struct {
	Date             time.Time
	Entries          []OccupancyEntry
	ConflictedVenues []string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Booking, error)
	UpdateStatus(ctx context.Context, id string, to Status, note string) (*Booking, error)
	Delete(ctx context.Context, id string) error
	History(ctx context.Context, id string) ([]*StatusChange, error)

	// Calendar returns the per-day occupancy entries and conflicted
	// venues for every day in [from, to].
	Calendar(ctx context.Context, from, to time.Time) ([]DaySchedule, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	b := &Booking{
		ClientName:   req.ClientName,
		ClientPhone:  req.ClientPhone,
		ClientEmail:  req.ClientEmail,
		Status:       StatusTentative,
		EventDate:    truncateDay(req.EventDate),
		ConfirmedPax: req.ConfirmedPax,
		Venue:        req.Venue,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Sessions:     buildSessions(req.Sessions),
	}
	if req.EventEndDate != nil {
		d := truncateDay(*req.EventEndDate)
		b.EventEndDate = &d
	}
	b.DurationDays = durationDays(b)

	if err := validate(b); err != nil {
		return nil, err
	}
	if err := s.checkConflicts(ctx, b, ""); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	// Initial history row; FromStatus is empty for a fresh booking. The
	// booking itself is already committed, so a history failure is logged
	// rather than failing the create.
	if err := s.repo.AddStatusChange(ctx, &StatusChange{
		BookingID: b.ID,
		ToStatus:  StatusTentative,
		Note:      "booking created",
	}); err != nil {
		log.Printf("record initial status for booking %s failed: %v", b.ID, err)
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ClientName != nil {
		b.ClientName = *req.ClientName
	}
	if req.ClientPhone != nil {
		b.ClientPhone = *req.ClientPhone
	}
	if req.ClientEmail != nil {
		b.ClientEmail = *req.ClientEmail
	}
	if req.EventDate != nil {
		b.EventDate = truncateDay(*req.EventDate)
	}
	if req.EventEndDate != nil {
		d := truncateDay(*req.EventEndDate)
		b.EventEndDate = &d
	}
	if req.ConfirmedPax != nil {
		b.ConfirmedPax = *req.ConfirmedPax
	}
	if req.Venue != nil {
		b.Venue = *req.Venue
	}
	if req.StartTime != nil {
		b.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		b.EndTime = *req.EndTime
	}
	if req.Sessions != nil {
		b.Sessions = buildSessions(*req.Sessions)
	}
	b.DurationDays = durationDays(b)

	if err := validate(b); err != nil {
		return nil, err
	}
	if err := s.checkConflicts(ctx, b, b.ID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, to Status, note string) (*Booking, error) {
	if !ValidStatus(to) {
		return nil, ErrInvalidStatus
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(b.Status, to) {
		return nil, ErrInvalidTransition
	}

	from := b.Status
	b.Status = to
	if to == StatusCancelled {
		if strings.TrimSpace(note) == "" {
			return nil, ErrCancelReason
		}
		now := time.Now().UTC()
		b.CancelReason = note
		b.CancelledAt = &now
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	if err := s.repo.AddStatusChange(ctx, &StatusChange{
		BookingID:  b.ID,
		FromStatus: from,
		ToStatus:   to,
		Note:       note,
	}); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) History(ctx context.Context, id string) ([]*StatusChange, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListStatusHistory(ctx, id)
}

func (s *service) Calendar(ctx context.Context, from, to time.Time) ([]DaySchedule, error) {
	from, to = truncateDay(from), truncateDay(to)
	if to.Before(from) {
		return nil, ErrInvalidDateRange
	}

	bookings, err := s.repo.ListActiveInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]OccupancyEntry)
	for _, b := range bookings {
		entries, err := ExpandOccupancy(b)
		if err != nil {
			// A stored booking that no longer expands cleanly should not
			// take down the whole calendar view.
			continue
		}
		for _, e := range entries {
			byDay[dayKey(e.Date)] = append(byDay[dayKey(e.Date)], e)
		}
	}

	var days []DaySchedule
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		entries := byDay[dayKey(d)]
		days = append(days, DaySchedule{
			Date:             d,
			Entries:          entries,
			ConflictedVenues: DetectVenueConflicts(entries),
		})
	}
	return days, nil
}

// checkConflicts expands the candidate booking and verifies that none of
// the venues it occupies conflicts with existing active bookings (or with
// the candidate's own sessions). excludeID ignores the booking itself
// during updates.
func (s *service) checkConflicts(ctx context.Context, b *Booking, excludeID string) error {
	candidate, err := ExpandOccupancy(b)
	if err != nil {
		return err
	}
	if len(candidate) == 0 {
		return nil
	}

	existing, err := s.repo.ListActiveInRange(ctx, b.EventDate, b.EndDate())
	if err != nil {
		return err
	}

	byDay := make(map[string][]OccupancyEntry)
	candidateVenues := make(map[string]map[string]bool) // day -> venue set
	for _, e := range candidate {
		key := dayKey(e.Date)
		byDay[key] = append(byDay[key], e)
		if candidateVenues[key] == nil {
			candidateVenues[key] = make(map[string]bool)
		}
		candidateVenues[key][e.Venue] = true
	}

	for _, other := range existing {
		if other.ID == excludeID {
			continue
		}
		entries, err := ExpandOccupancy(other)
		if err != nil {
			continue
		}
		for _, e := range entries {
			key := dayKey(e.Date)
			if _, ok := byDay[key]; ok {
				byDay[key] = append(byDay[key], e)
			}
		}
	}

	for key, entries := range byDay {
		for _, venue := range DetectVenueConflicts(entries) {
			if candidateVenues[key][venue] {
				return ErrVenueConflict
			}
		}
	}
	return nil
}

func validate(b *Booking) error {
	if strings.TrimSpace(b.ClientName) == "" {
		return ErrClientNameRequired
	}
	if b.EndDate().Before(b.EventDate) {
		return ErrInvalidDateRange
	}

	for i := range b.Sessions {
		s := &b.Sessions[i]
		if strings.TrimSpace(s.Venue) == "" {
			return ErrVenueRequired
		}
		if _, _, err := parseRange(s.StartTime, s.EndTime); err != nil {
			return err
		}
		d := truncateDay(s.Date)
		if d.Before(b.EventDate) || d.After(b.EndDate()) {
			return ErrSessionOutOfRange
		}
	}
	return nil
}

func buildSessions(inputs []SessionInput) []Session {
	sessions := make([]Session, len(inputs))
	for i, in := range inputs {
		sessions[i] = Session{
			Name:         in.Name,
			Label:        in.Label,
			Venue:        in.Venue,
			Date:         truncateDay(in.Date),
			StartTime:    in.StartTime,
			EndTime:      in.EndTime,
			Pax:          in.Pax,
			Instructions: in.Instructions,
		}
	}
	return sessions
}

func durationDays(b *Booking) int {
	return int(b.EndDate().Sub(b.EventDate).Hours()/24) + 1
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
