package quotation

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, q *Quotation) error
	GetByID(ctx context.Context, id string) (*Quotation, error)
	ListByBooking(ctx context.Context, bookingID string) ([]*Quotation, error)
	Update(ctx context.Context, q *Quotation) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func (r *pgxRepository) Create(ctx context.Context, q *Quotation) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create quotation failed: %w", err)
	}
	defer tx.Rollback(ctx)

	query, args, err := psql.Insert("public.quotations").
		Columns("booking_id", "package_id", "custom_package_price").
		Values(q.BookingID, q.PackageID, q.CustomPackagePrice).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create quotation query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt); err != nil {
		return fmt.Errorf("create quotation failed: %w", err)
	}

	if err := insertLines(ctx, tx, q); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func insertLines(ctx context.Context, tx pgx.Tx, q *Quotation) error {
	for i := range q.Lines {
		line := &q.Lines[i]
		query, args, err := psql.Insert("public.quotation_lines").
			Columns("quotation_id", "item_id", "name", "is_package_item", "unit_additional_price", "quantity").
			Values(q.ID, line.ItemID, line.Name, line.IsPackageItem, line.UnitAdditionalPrice, line.Quantity).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("build create quotation line query failed: %w", err)
		}
		if err := tx.QueryRow(ctx, query, args...).Scan(&line.ID); err != nil {
			return fmt.Errorf("create quotation line failed: %w", err)
		}
		line.QuotationID = q.ID
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Quotation, error) {
	query, args, err := psql.Select("id", "booking_id", "package_id", "custom_package_price", "created_at", "updated_at").
		From("public.quotations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get quotation query failed: %w", err)
	}

	var q Quotation
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&q.ID, &q.BookingID, &q.PackageID, &q.CustomPackagePrice, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get quotation failed: %w", err)
	}

	if err := r.attachLines(ctx, []*Quotation{&q}); err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *pgxRepository) ListByBooking(ctx context.Context, bookingID string) ([]*Quotation, error) {
	query, args, err := psql.Select("id", "booking_id", "package_id", "custom_package_price", "created_at", "updated_at").
		From("public.quotations").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list quotations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quotations failed: %w", err)
	}
	defer rows.Close()

	var quotations []*Quotation
	for rows.Next() {
		var q Quotation
		if err := rows.Scan(&q.ID, &q.BookingID, &q.PackageID, &q.CustomPackagePrice, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan quotation failed: %w", err)
		}
		quotations = append(quotations, &q)
	}

	if err := r.attachLines(ctx, quotations); err != nil {
		return nil, err
	}
	return quotations, nil
}

func (r *pgxRepository) attachLines(ctx context.Context, quotations []*Quotation) error {
	if len(quotations) == 0 {
		return nil
	}

	ids := make([]string, len(quotations))
	byID := make(map[string]*Quotation, len(quotations))
	for i, q := range quotations {
		ids[i] = q.ID
		byID[q.ID] = q
	}

	query, args, err := psql.Select("id", "quotation_id", "item_id", "name", "is_package_item", "unit_additional_price", "quantity").
		From("public.quotation_lines").
		Where(squirrel.Eq{"quotation_id": ids}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("build list quotation lines query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("list quotation lines failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line Line
		if err := rows.Scan(&line.ID, &line.QuotationID, &line.ItemID, &line.Name, &line.IsPackageItem, &line.UnitAdditionalPrice, &line.Quantity); err != nil {
			return fmt.Errorf("scan quotation line failed: %w", err)
		}
		if q, ok := byID[line.QuotationID]; ok {
			q.Lines = append(q.Lines, line)
		}
	}
	return nil
}

func (r *pgxRepository) Update(ctx context.Context, q *Quotation) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update quotation failed: %w", err)
	}
	defer tx.Rollback(ctx)

	query, args, err := psql.Update("public.quotations").
		Set("package_id", q.PackageID).
		Set("custom_package_price", q.CustomPackagePrice).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": q.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update quotation query failed: %w", err)
	}

	ct, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update quotation failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	// Lines are replaced wholesale on update.
	delQuery, delArgs, err := psql.Delete("public.quotation_lines").
		Where(squirrel.Eq{"quotation_id": q.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete quotation lines query failed: %w", err)
	}
	if _, err := tx.Exec(ctx, delQuery, delArgs...); err != nil {
		return fmt.Errorf("delete quotation lines failed: %w", err)
	}

	if err := insertLines(ctx, tx, q); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.quotations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete quotation query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete quotation failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
