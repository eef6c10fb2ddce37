package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

var userColumns = []string{"id", "version", "email", "first_name", "last_name", "password", "role", "locked"}

func scanUser(row pgx.Row) (*domain.User, error) {
	user := domain.User{}
	err := row.Scan(
		&user.ID,
		&user.Version,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.Password,
		&user.Role,
		&user.Locked,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

func (r *Repository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Insert("users").
		Columns("email", "first_name", "last_name", "password", "role", "locked").
		Values(user.Email, user.FirstName, user.LastName, user.Password, user.Role, user.Locked).
		Suffix("RETURNING id, version")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	created := *user
	err = r.db.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.Version)
	if err != nil {
		return nil, mapError(err)
	}
	return &created, nil
}

func (r *Repository) UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Update("users").
		Set("email", user.Email).
		Set("first_name", user.FirstName).
		Set("last_name", user.LastName).
		Set("password", user.Password).
		Set("role", user.Role).
		Set("locked", user.Locked)

	version, err := r.updateVersioned(ctx, r.db, "users", user, statement)
	if err != nil {
		return nil, err
	}

	updated := *user
	updated.Version = version
	return &updated, nil
}

func (r *Repository) DeleteUser(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "users", id)
}

func (r *Repository) ReadUser(ctx context.Context, id int64) (*domain.User, error) {
	sql, args, err := r.db.QueryBuilder.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	sql, args, err := r.db.QueryBuilder.
		Select(userColumns...).
		From("users").
		Where(sq.Expr("lower(email) = lower(?)", email)).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.db.QueryRow(ctx, sql, args...))
}

func userFilter(filter string) sq.Sqlizer {
	return anyColumnContains(filter, "email", "first_name", "last_name", "role")
}

func (r *Repository) ListUsers(ctx context.Context, filter string, page domain.PageRequest) ([]*domain.User, error) {
	sql, args, err := r.db.QueryBuilder.
		Select(userColumns...).
		From("users").
		Where(userFilter(filter)).
		OrderBy("email", "id").
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

	list := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, user)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return list, nil
}

func (r *Repository) CountUsers(ctx context.Context, filter string) (int64, error) {
	return r.count(ctx, "users", userFilter(filter))
}
