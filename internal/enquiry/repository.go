package enquiry

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, e *Enquiry) error
	GetByID(ctx context.Context, id string) (*Enquiry, error)
	List(ctx context.Context, filter Filter) ([]*Enquiry, int, error)
	Update(ctx context.Context, e *Enquiry) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const enquiryColumns = "id, client_name, client_phone, client_email, event_date, expected_pax, occasion, notes, status, booking_id, created_at, updated_at"

func (r *pgxRepository) Create(ctx context.Context, e *Enquiry) error {
	query, args, err := psql.Insert("public.enquiries").
		Columns("client_name", "client_phone", "client_email", "event_date",
			"expected_pax", "occasion", "notes", "status").
		Values(e.ClientName, e.ClientPhone, e.ClientEmail, e.EventDate,
			e.ExpectedPax, e.Occasion, e.Notes, e.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create enquiry query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return fmt.Errorf("create enquiry failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Enquiry, error) {
	query, args, err := psql.Select(enquiryColumns).
		From("public.enquiries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get enquiry query failed: %w", err)
	}

	e, err := scanEnquiry(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get enquiry failed: %w", err)
	}
	return e, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Enquiry, int, error) {
	query := psql.Select(enquiryColumns + ", count(*) OVER() as total_count").
		From("public.enquiries")

	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.Keyword != "" {
		kw := "%" + filter.Keyword + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"client_name": kw},
			squirrel.ILike{"occasion": kw},
		})
	}

	query = query.OrderBy("created_at DESC")

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
		return nil, 0, fmt.Errorf("build list enquiries query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list enquiries failed: %w", err)
	}
	defer rows.Close()

	var enquiries []*Enquiry
	var total int
	for rows.Next() {
		e, err := scanEnquiry(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan enquiry failed: %w", err)
		}
		enquiries = append(enquiries, e)
	}
	return enquiries, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, e *Enquiry) error {
	query, args, err := psql.Update("public.enquiries").
		Set("client_name", e.ClientName).
		Set("client_phone", e.ClientPhone).
		Set("client_email", e.ClientEmail).
		Set("event_date", e.EventDate).
		Set("expected_pax", e.ExpectedPax).
		Set("occasion", e.Occasion).
		Set("notes", e.Notes).
		Set("status", e.Status).
		Set("booking_id", e.BookingID).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": e.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update enquiry query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update enquiry failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.enquiries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete enquiry query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete enquiry failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEnquiry(row rowScanner, extra ...any) (*Enquiry, error) {
	var e Enquiry
	dest := []any{&e.ID, &e.ClientName, &e.ClientPhone, &e.ClientEmail, &e.EventDate,
		&e.ExpectedPax, &e.Occasion, &e.Notes, &e.Status, &e.BookingID,
		&e.CreatedAt, &e.UpdatedAt}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &e, nil
}
