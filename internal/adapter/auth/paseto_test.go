package auth_test

import (
	"testing"
	"time"

	"github.com/MikeRez0/bakery/internal/adapter/auth"
	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasetoToken(t *testing.T) {
	ts, err := auth.New(time.Hour)
	require.NoError(t, err)

	token, err := ts.CreateToken(&domain.User{Base: domain.Base{ID: 42}, Role: domain.RoleAdmin})
	require.NoError(t, err)

	payload, err := ts.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), payload.UserID)
	assert.Equal(t, domain.RoleAdmin, payload.Role)

	_, err = ts.VerifyToken(token + "x")
	assert.Equal(t, domain.ErrInvalidToken, err)

	other, err := auth.New(time.Hour)
	require.NoError(t, err)
	_, err = other.VerifyToken(token)
	assert.Equal(t, domain.ErrInvalidToken, err)
}

func TestPasetoToken_BadTTL(t *testing.T) {
	_, err := auth.New(0)
	assert.Equal(t, domain.ErrTokenDuration, err)
}
