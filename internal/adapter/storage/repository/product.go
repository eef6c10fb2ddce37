package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

func scanProduct(row pgx.Row) (*domain.Product, error) {
	product := domain.Product{}
	if err := row.Scan(&product.ID, &product.Version, &product.Name, &product.Price); err != nil {
		return nil, mapError(err)
	}
	return &product, nil
}

func (r *Repository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	sql, args, err := r.db.QueryBuilder.
		Insert("products").
		Columns("name", "price").
		Values(product.Name, product.Price).
		Suffix("RETURNING id, version").
		ToSql()
	if err != nil {
		return nil, err
	}

	created := *product
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.Version); err != nil {
		return nil, mapError(err)
	}
	return &created, nil
}

func (r *Repository) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Update("products").
		Set("name", product.Name).
		Set("price", product.Price)

	version, err := r.updateVersioned(ctx, r.db, "products", product, statement)
	if err != nil {
		return nil, err
	}

	updated := *product
	updated.Version = version
	return &updated, nil
}

func (r *Repository) DeleteProduct(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "products", id)
}

func (r *Repository) ReadProduct(ctx context.Context, id int64) (*domain.Product, error) {
	sql, args, err := r.db.QueryBuilder.
		Select("id", "version", "name", "price").
		From("products").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanProduct(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) ListProducts(ctx context.Context, filter string,
	page domain.PageRequest) ([]*domain.Product, error) {
	sql, args, err := r.db.QueryBuilder.
		Select("id", "version", "name", "price").
		From("products").
		Where(anyColumnContains(filter, "name")).
		OrderBy("name", "id").
		Offset(page.Offset()).
		Limit(page.Limit()).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	list := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, product)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return list, nil
}

func (r *Repository) CountProducts(ctx context.Context, filter string) (int64, error) {
	return r.count(ctx, "products", anyColumnContains(filter, "name"))
}
