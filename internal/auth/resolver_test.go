package auth

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roleMap map[int64]string

func (r roleMap) RoleByID(ctx context.Context, id int64) (string, error) {
	role, ok := r[id]
	if !ok {
		return "", pgx.ErrNoRows
	}
	return role, nil
}

func newTestResolver() (*Resolver, *JWTManager) {
	m := NewJWTManager(JWTConfig{Issuer: "test", Secret: "s3cret"})
	return NewResolver(m, roleMap{1: "admin", 2: "customer"}), m
}

func TestResolve_Admin(t *testing.T) {
	r, m := newTestResolver()
	tok, _, err := m.Sign(1)
	require.NoError(t, err)

	acc, err := r.Resolve(context.Background(), tok)
	require.NoError(t, err)
	assert.True(t, acc.Admin)
	assert.Equal(t, int64(1), acc.UserID)
}

func TestResolve_NonAdminRole(t *testing.T) {
	r, m := newTestResolver()
	tok, _, err := m.Sign(2)
	require.NoError(t, err)

	acc, err := r.Resolve(context.Background(), tok)
	require.NoError(t, err)
	assert.False(t, acc.Admin)
}

func TestResolve_UnknownUserIsNotAdmin(t *testing.T) {
	r, m := newTestResolver()
	tok, _, err := m.Sign(42)
	require.NoError(t, err)

	acc, err := r.Resolve(context.Background(), tok)
	require.NoError(t, err)
	assert.False(t, acc.Admin)
}

func TestResolve_EmptyAndGarbageTokens(t *testing.T) {
	r, _ := newTestResolver()

	_, err := r.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = r.Resolve(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolve_WrongSecret(t *testing.T) {
	r, _ := newTestResolver()
	other := NewJWTManager(JWTConfig{Issuer: "test", Secret: "different"})
	tok, _, err := other.Sign(1)
	require.NoError(t, err)

	_, err = r.Resolve(context.Background(), tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", BearerToken("Bearer abc"))
	assert.Equal(t, "", BearerToken(""))
	assert.Equal(t, "", BearerToken("Basic abc"))
	assert.Equal(t, "", BearerToken("abc"))
}
