package venue

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, v *Venue) error
	GetByID(ctx context.Context, id string) (*Venue, error)
	GetByName(ctx context.Context, name string) (*Venue, error)
	List(ctx context.Context, filter Filter) ([]*Venue, int, error)
	Update(ctx context.Context, v *Venue) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func (r *pgxRepository) Create(ctx context.Context, v *Venue) error {
	query, args, err := psql.Insert("public.venues").
		Columns("name", "floor", "capacity", "description", "active").
		Values(v.Name, v.Floor, v.Capacity, v.Description, v.Active).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create venue query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&v.ID, &v.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrNameTaken
		}
		return fmt.Errorf("create venue failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Venue, error) {
	return r.getWhere(ctx, squirrel.Eq{"id": id})
}

func (r *pgxRepository) GetByName(ctx context.Context, name string) (*Venue, error) {
	return r.getWhere(ctx, squirrel.Eq{"name": name})
}

func (r *pgxRepository) getWhere(ctx context.Context, pred any) (*Venue, error) {
	query, args, err := psql.Select("id", "name", "floor", "capacity", "description", "active", "created_at").
		From("public.venues").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get venue query failed: %w", err)
	}

	var v Venue
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&v.ID, &v.Name, &v.Floor, &v.Capacity, &v.Description, &v.Active, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get venue failed: %w", err)
	}
	return &v, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Venue, int, error) {
	query := psql.Select("id", "name", "floor", "capacity", "description", "active", "created_at",
		"count(*) OVER() as total_count").
		From("public.venues")

	if filter.Keyword != "" {
		kw := "%" + filter.Keyword + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"name": kw},
			squirrel.ILike{"description": kw},
		})
	}
	if filter.ActiveOnly {
		query = query.Where(squirrel.Eq{"active": true})
	}

	query = query.OrderBy("name ASC")

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
		return nil, 0, fmt.Errorf("build list venues query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list venues failed: %w", err)
	}
	defer rows.Close()

	var venues []*Venue
	var total int
	for rows.Next() {
		var v Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.Floor, &v.Capacity, &v.Description, &v.Active, &v.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan venue failed: %w", err)
		}
		venues = append(venues, &v)
	}
	return venues, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, v *Venue) error {
	query, args, err := psql.Update("public.venues").
		Set("name", v.Name).
		Set("floor", v.Floor).
		Set("capacity", v.Capacity).
		Set("description", v.Description).
		Set("active", v.Active).
		Where(squirrel.Eq{"id": v.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update venue query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrNameTaken
		}
		return fmt.Errorf("update venue failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.venues").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete venue query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete venue failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
