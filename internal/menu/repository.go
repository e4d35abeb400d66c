package menu

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
	CreatePackage(ctx context.Context, p *Package) error
	GetPackage(ctx context.Context, id string) (*Package, error)
	ListPackages(ctx context.Context, filter Filter) ([]*Package, int, error)
	UpdatePackage(ctx context.Context, p *Package) error
	DeletePackage(ctx context.Context, id string) error

	// SetPackagePrice persists the derived package price.
	SetPackagePrice(ctx context.Context, packageID string, price float64) error

	CreateItem(ctx context.Context, it *Item) error
	GetItem(ctx context.Context, id string) (*Item, error)
	ListItemsByPackage(ctx context.Context, packageID string) ([]*Item, error)
	UpdateItem(ctx context.Context, it *Item) error
	DeleteItem(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func (r *pgxRepository) CreatePackage(ctx context.Context, p *Package) error {
	query, args, err := psql.Insert("public.menu_packages").
		Columns("name", "type", "category", "price").
		Values(p.Name, p.Type, p.Category, p.Price).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create package query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("create package failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetPackage(ctx context.Context, id string) (*Package, error) {
	query, args, err := psql.Select("id", "name", "type", "category", "price", "created_at", "updated_at").
		From("public.menu_packages").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get package query failed: %w", err)
	}

	var p Package
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&p.ID, &p.Name, &p.Type, &p.Category, &p.Price, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("get package failed: %w", err)
	}
	return &p, nil
}

func (r *pgxRepository) ListPackages(ctx context.Context, filter Filter) ([]*Package, int, error) {
	query := psql.Select("id", "name", "type", "category", "price", "created_at", "updated_at",
		"count(*) OVER() as total_count").
		From("public.menu_packages")

	if filter.Type != "" {
		query = query.Where(squirrel.Eq{"type": filter.Type})
	}
	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
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
		return nil, 0, fmt.Errorf("build list packages query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list packages failed: %w", err)
	}
	defer rows.Close()

	var packages []*Package
	var total int
	for rows.Next() {
		var p Package
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.Category, &p.Price, &p.CreatedAt, &p.UpdatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan package failed: %w", err)
		}
		packages = append(packages, &p)
	}
	return packages, total, nil
}

func (r *pgxRepository) UpdatePackage(ctx context.Context, p *Package) error {
	query, args, err := psql.Update("public.menu_packages").
		Set("name", p.Name).
		Set("type", p.Type).
		Set("category", p.Category).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update package query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update package failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrPackageNotFound
	}
	return nil
}

func (r *pgxRepository) DeletePackage(ctx context.Context, id string) error {
	// Items are removed by ON DELETE CASCADE.
	query, args, err := psql.Delete("public.menu_packages").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete package query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete package failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrPackageNotFound
	}
	return nil
}

func (r *pgxRepository) SetPackagePrice(ctx context.Context, packageID string, price float64) error {
	query, args, err := psql.Update("public.menu_packages").
		Set("price", price).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": packageID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set package price query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("set package price failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrPackageNotFound
	}
	return nil
}

func (r *pgxRepository) CreateItem(ctx context.Context, it *Item) error {
	query, args, err := psql.Insert("public.menu_items").
		Columns("package_id", "name", "type", "price", "additional_price", "quantity").
		Values(it.PackageID, it.Name, it.Type, it.Price, it.AdditionalPrice, it.Quantity).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create item query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&it.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrPackageNotFound
		}
		return fmt.Errorf("create item failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetItem(ctx context.Context, id string) (*Item, error) {
	query, args, err := psql.Select("id", "package_id", "name", "type", "price", "additional_price", "quantity").
		From("public.menu_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get item query failed: %w", err)
	}

	var it Item
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&it.ID, &it.PackageID, &it.Name, &it.Type, &it.Price, &it.AdditionalPrice, &it.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("get item failed: %w", err)
	}
	return &it, nil
}

func (r *pgxRepository) ListItemsByPackage(ctx context.Context, packageID string) ([]*Item, error) {
	query, args, err := psql.Select("id", "package_id", "name", "type", "price", "additional_price", "quantity").
		From("public.menu_items").
		Where(squirrel.Eq{"package_id": packageID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items failed: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.PackageID, &it.Name, &it.Type, &it.Price, &it.AdditionalPrice, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan item failed: %w", err)
		}
		items = append(items, &it)
	}
	return items, nil
}

func (r *pgxRepository) UpdateItem(ctx context.Context, it *Item) error {
	query, args, err := psql.Update("public.menu_items").
		Set("name", it.Name).
		Set("type", it.Type).
		Set("price", it.Price).
		Set("additional_price", it.AdditionalPrice).
		Set("quantity", it.Quantity).
		Where(squirrel.Eq{"id": it.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update item query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update item failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *pgxRepository) DeleteItem(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.menu_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete item query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete item failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}
