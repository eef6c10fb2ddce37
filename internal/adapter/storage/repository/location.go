package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/bakery/internal/core/domain"
)

func (r *Repository) CreatePickupLocation(ctx context.Context,
	location *domain.PickupLocation) (*domain.PickupLocation, error) {
	sql, args, err := r.db.QueryBuilder.
		Insert("pickup_locations").
		Columns("name").
		Values(location.Name).
		Suffix("RETURNING id, version").
		ToSql()
	if err != nil {
		return nil, err
	}

	created := *location
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.Version); err != nil {
		return nil, mapError(err)
	}
	return &created, nil
}

func (r *Repository) UpdatePickupLocation(ctx context.Context,
	location *domain.PickupLocation) (*domain.PickupLocation, error) {
	statement := r.db.QueryBuilder.
		Update("pickup_locations").
		Set("name", location.Name)

	version, err := r.updateVersioned(ctx, r.db, "pickup_locations", location, statement)
	if err != nil {
		return nil, err
	}

	updated := *location
	updated.Version = version
	return &updated, nil
}

func (r *Repository) DeletePickupLocation(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "pickup_locations", id)
}

func (r *Repository) ReadPickupLocation(ctx context.Context, id int64) (*domain.PickupLocation, error) {
	sql, args, err := r.db.QueryBuilder.
		Select("id", "version", "name").
		From("pickup_locations").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	location := domain.PickupLocation{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&location.ID, &location.Version, &location.Name)
	if err != nil {
		return nil, mapError(err)
	}
	return &location, nil
}

func (r *Repository) ListPickupLocations(ctx context.Context, filter string,
	page domain.PageRequest) ([]*domain.PickupLocation, error) {
	sql, args, err := r.db.QueryBuilder.
		Select("id", "version", "name").
		From("pickup_locations").
		Where(anyColumnContains(filter, "name")).
		OrderBy("id").
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

	list := make([]*domain.PickupLocation, 0)
	for rows.Next() {
		location := domain.PickupLocation{}
		if err := rows.Scan(&location.ID, &location.Version, &location.Name); err != nil {
			return nil, mapError(err)
		}
		list = append(list, &location)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return list, nil
}

func (r *Repository) CountPickupLocations(ctx context.Context, filter string) (int64, error) {
	return r.count(ctx, "pickup_locations", anyColumnContains(filter, "name"))
}
