package repository

import (
	"context"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/bakery/internal/adapter/storage"
	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Repository implements all storage ports on top of one PostgreSQL pool.
type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// mapError translates driver errors into domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrDataNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return domain.ErrConflictingData
		case pgerrcode.ForeignKeyViolation, pgerrcode.RestrictViolation:
			return domain.ErrReferenced
		case pgerrcode.NotNullViolation, pgerrcode.CheckViolation, pgerrcode.StringDataRightTruncationDataException:
			return domain.ErrRequiredFields
		}
	}
	return err
}

// containsPattern builds an ILIKE pattern matching filter anywhere in the value.
func containsPattern(filter string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(filter) + "%"
}

// anyColumnContains matches rows where one of the columns contains filter, ignoring case.
// An empty filter matches everything.
func anyColumnContains(filter string, columns ...string) sq.Sqlizer {
	if filter == "" {
		return sq.Expr("TRUE")
	}
	pattern := containsPattern(filter)
	or := make(sq.Or, 0, len(columns))
	for _, c := range columns {
		or = append(or, sq.ILike{c: pattern})
	}
	return or
}

// updateVersioned runs an UPDATE guarded by the entity version and returns the new version.
// A missing row is ErrDataNotFound, a stale version ErrConcurrentUpdate.
func (r *Repository) updateVersioned(ctx context.Context, q querier, table string, e domain.Entity,
	statement sq.UpdateBuilder) (int, error) {
	statement = statement.
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": e.GetID(), "version": e.GetVersion()}).
		Suffix("RETURNING version")

	sql, args, err := statement.ToSql()
	if err != nil {
		return 0, err
	}

	var version int
	err = q.QueryRow(ctx, sql, args...).Scan(&version)
	if err == nil {
		return version, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, mapError(err)
	}

	exists, err := r.exists(ctx, q, table, e.GetID())
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, domain.ErrConcurrentUpdate
	}
	return 0, domain.ErrDataNotFound
}

func (r *Repository) exists(ctx context.Context, q querier, table string, id int64) (bool, error) {
	sql, args, err := r.db.QueryBuilder.
		Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where(sq.Eq{"id": id}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, mapError(err)
	}
	return exists, nil
}

func (r *Repository) deleteByID(ctx context.Context, table string, id int64) error {
	sql, args, err := r.db.QueryBuilder.
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (r *Repository) count(ctx context.Context, table string, where sq.Sqlizer) (int64, error) {
	sql, args, err := r.db.QueryBuilder.
		Select("count(*)").
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return 0, err
	}

	var n int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, mapError(err)
	}
	return n, nil
}
