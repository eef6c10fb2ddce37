package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "Nil", err: nil, want: nil},
		{name: "No rows", err: fmt.Errorf("read: %w", pgx.ErrNoRows), want: domain.ErrDataNotFound},
		{name: "Unique", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: domain.ErrConflictingData},
		{name: "Foreign key", err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, want: domain.ErrReferenced},
		{name: "Restrict", err: &pgconn.PgError{Code: pgerrcode.RestrictViolation}, want: domain.ErrReferenced},
		{name: "Not null", err: &pgconn.PgError{Code: pgerrcode.NotNullViolation}, want: domain.ErrRequiredFields},
		{name: "Check", err: &pgconn.PgError{Code: pgerrcode.CheckViolation}, want: domain.ErrRequiredFields},
		{name: "Too long", err: &pgconn.PgError{Code: pgerrcode.StringDataRightTruncationDataException},
			want: domain.ErrRequiredFields},
		{name: "Other", err: other, want: other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapError(tt.err))
		})
	}
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%jane%", containsPattern("jane"))
	assert.Equal(t, `%50\%\_off\\%`, containsPattern(`50%_off\`))
}

func TestAnyColumnContains(t *testing.T) {
	sql, args, err := anyColumnContains("", "name").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "TRUE", sql)
	assert.Empty(t, args)

	sql, args, err = anyColumnContains("doe", "first_name", "last_name").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "(first_name ILIKE ? OR last_name ILIKE ?)", sql)
	assert.Equal(t, []any{"%doe%", "%doe%"}, args)
}

func TestIntBuckets(t *testing.T) {
	assert.Equal(t, []int{0, 4, 0}, intBuckets(map[int]int64{2: 4, 7: 1}, 3))
	assert.Equal(t, []int{1, 0, 0, 2}, intBuckets(map[int]int64{1: 1, 4: 2}, 4))
}
