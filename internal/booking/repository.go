package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Update(ctx context.Context, b *Booking) error
	Delete(ctx context.Context, id string) error

	// ListActiveInRange returns non-cancelled bookings (with sessions)
	// whose event range intersects [from, to]. Used for conflict checks
	// and the occupancy calendar.
	ListActiveInRange(ctx context.Context, from, to time.Time) ([]*Booking, error)

	AddStatusChange(ctx context.Context, sc *StatusChange) error
	ListStatusHistory(ctx context.Context, bookingID string) ([]*StatusChange, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const bookingColumns = "id, client_name, client_phone, client_email, status, " +
	"event_date, event_end_date, duration_days, confirmed_pax, " +
	"venue, start_time, end_time, cancel_reason, cancelled_at, created_at, updated_at"

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create booking failed: %w", err)
	}
	defer tx.Rollback(ctx)

	query, args, err := psql.Insert("public.bookings").
		Columns(
			"client_name", "client_phone", "client_email", "status",
			"event_date", "event_end_date", "duration_days", "confirmed_pax",
			"venue", "start_time", "end_time",
		).
		Values(
			b.ClientName, b.ClientPhone, b.ClientEmail, b.Status,
			b.EventDate, b.EventEndDate, b.DurationDays, b.ConfirmedPax,
			b.Venue, b.StartTime, b.EndTime,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}

	if err := insertSessions(ctx, tx, b); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func insertSessions(ctx context.Context, tx pgx.Tx, b *Booking) error {
	for i := range b.Sessions {
		s := &b.Sessions[i]
		query, args, err := psql.Insert("public.booking_sessions").
			Columns("booking_id", "name", "label", "venue", "date", "start_time", "end_time", "pax", "instructions").
			Values(b.ID, s.Name, s.Label, s.Venue, s.Date, s.StartTime, s.EndTime, s.Pax, s.Instructions).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("build create session query failed: %w", err)
		}
		if err := tx.QueryRow(ctx, query, args...).Scan(&s.ID); err != nil {
			return fmt.Errorf("create session failed: %w", err)
		}
		s.BookingID = b.ID
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query, args, err := psql.Select(bookingColumns).
		From("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var b Booking
	if err := scanBooking(row, &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}

	if err := r.attachSessions(ctx, []*Booking{&b}); err != nil {
		return nil, err
	}
	return &b, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner, b *Booking, extra ...any) error {
	dest := []any{
		&b.ID, &b.ClientName, &b.ClientPhone, &b.ClientEmail, &b.Status,
		&b.EventDate, &b.EventEndDate, &b.DurationDays, &b.ConfirmedPax,
		&b.Venue, &b.StartTime, &b.EndTime, &b.CancelReason, &b.CancelledAt,
		&b.CreatedAt, &b.UpdatedAt,
	}
	dest = append(dest, extra...)
	return row.Scan(dest...)
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	query := psql.Select(bookingColumns + ", count(*) OVER() as total_count").
		From("public.bookings")

	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.Venue != "" {
		query = query.Where(squirrel.Expr(
			"(venue = ? OR id IN (SELECT booking_id FROM public.booking_sessions WHERE venue = ?))",
			filter.Venue, filter.Venue,
		))
	}
	// Date range filtering (intersection logic)
	if filter.DateFrom != nil {
		query = query.Where(squirrel.Expr("COALESCE(event_end_date, event_date) >= ?", filter.DateFrom))
	}
	if filter.DateTo != nil {
		query = query.Where(squirrel.LtOrEq{"event_date": filter.DateTo})
	}

	query = query.OrderBy(orderClause(filter.SortBy, filter.SortOrder))

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int
	for rows.Next() {
		var b Booking
		if err := scanBooking(rows, &b, &total); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	if err := r.attachSessions(ctx, bookings); err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// Sortable columns for List. OrderBy concatenates raw SQL, so only values
// from this map may reach it; anything else falls back to event_date.
var sortColumns = map[string]string{
	"event_date":  "event_date",
	"client_name": "client_name",
	"status":      "status",
	"created_at":  "created_at",
}

func orderClause(sortBy, sortOrder string) string {
	col, ok := sortColumns[sortBy]
	if !ok {
		col = "event_date"
	}
	dir := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		dir = "ASC"
	}
	return col + " " + dir
}

func (r *pgxRepository) ListActiveInRange(ctx context.Context, from, to time.Time) ([]*Booking, error) {
	query, args, err := psql.Select(bookingColumns).
		From("public.bookings").
		Where(squirrel.NotEq{"status": StatusCancelled}).
		Where(squirrel.LtOrEq{"event_date": to}).
		Where(squirrel.Expr("COALESCE(event_end_date, event_date) >= ?", from)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list active bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list active bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	if err := r.attachSessions(ctx, bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// attachSessions loads the sessions for all given bookings in one query.
func (r *pgxRepository) attachSessions(ctx context.Context, bookings []*Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	ids := make([]string, len(bookings))
	byID := make(map[string]*Booking, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
		byID[b.ID] = b
	}

	query, args, err := psql.Select(
		"id", "booking_id", "name", "label", "venue", "date",
		"start_time", "end_time", "pax", "instructions",
	).
		From("public.booking_sessions").
		Where(squirrel.Eq{"booking_id": ids}).
		OrderBy("date ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("build list sessions query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("list sessions failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s Session
		if err := rows.Scan(
			&s.ID, &s.BookingID, &s.Name, &s.Label, &s.Venue, &s.Date,
			&s.StartTime, &s.EndTime, &s.Pax, &s.Instructions,
		); err != nil {
			return fmt.Errorf("scan session failed: %w", err)
		}
		if b, ok := byID[s.BookingID]; ok {
			b.Sessions = append(b.Sessions, s)
		}
	}
	return nil
}

func (r *pgxRepository) Update(ctx context.Context, b *Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update booking failed: %w", err)
	}
	defer tx.Rollback(ctx)

	query, args, err := psql.Update("public.bookings").
		Set("client_name", b.ClientName).
		Set("client_phone", b.ClientPhone).
		Set("client_email", b.ClientEmail).
		Set("status", b.Status).
		Set("event_date", b.EventDate).
		Set("event_end_date", b.EventEndDate).
		Set("duration_days", b.DurationDays).
		Set("confirmed_pax", b.ConfirmedPax).
		Set("venue", b.Venue).
		Set("start_time", b.StartTime).
		Set("end_time", b.EndTime).
		Set("cancel_reason", b.CancelReason).
		Set("cancelled_at", b.CancelledAt).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	// Sessions are replaced wholesale on update.
	delQuery, delArgs, err := psql.Delete("public.booking_sessions").
		Where(squirrel.Eq{"booking_id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete sessions query failed: %w", err)
	}
	if _, err := tx.Exec(ctx, delQuery, delArgs...); err != nil {
		return fmt.Errorf("delete sessions failed: %w", err)
	}

	if err := insertSessions(ctx, tx, b); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) AddStatusChange(ctx context.Context, sc *StatusChange) error {
	query, args, err := psql.Insert("public.booking_status_history").
		Columns("booking_id", "from_status", "to_status", "note").
		Values(sc.BookingID, sc.FromStatus, sc.ToStatus, sc.Note).
		Suffix("RETURNING id, changed_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build add status change query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&sc.ID, &sc.ChangedAt); err != nil {
		return fmt.Errorf("add status change failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) ListStatusHistory(ctx context.Context, bookingID string) ([]*StatusChange, error) {
	query, args, err := psql.Select("id", "booking_id", "from_status", "to_status", "note", "changed_at").
		From("public.booking_status_history").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("changed_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list status history query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list status history failed: %w", err)
	}
	defer rows.Close()

	var history []*StatusChange
	for rows.Next() {
		var sc StatusChange
		if err := rows.Scan(&sc.ID, &sc.BookingID, &sc.FromStatus, &sc.ToStatus, &sc.Note, &sc.ChangedAt); err != nil {
			return nil, fmt.Errorf("scan status change failed: %w", err)
		}
		history = append(history, &sc)
	}
	return history, nil
}
