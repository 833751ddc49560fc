package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
)

const RoleAdmin = "admin"

// ErrInvalidToken covers missing, malformed, and expired credentials alike.
var ErrInvalidToken = errors.New("invalid token")

// Access is the result of resolving a bearer credential.
type Access struct {
	UserID int64
	Admin  bool
}

type RoleFinder interface {
	RoleByID(ctx context.Context, id int64) (string, error)
}

// Resolver turns a bearer token into an Access. The token only identifies
// the user; the role is always looked up from storage, never trusted from
// the token itself.
type Resolver struct {
	jwt   *JWTManager
	roles RoleFinder
}

func NewResolver(jwt *JWTManager, roles RoleFinder) *Resolver {
	return &Resolver{jwt: jwt, roles: roles}
}

// Resolve validates token and looks up the user's role. An empty or invalid
// token yields ErrInvalidToken. A user with no stored role resolves to a
// non-admin Access, not an error.
func (r *Resolver) Resolve(ctx context.Context, token string) (Access, error) {
	if token == "" {
		return Access{}, ErrInvalidToken
	}
	claims, err := r.jwt.Parse(token)
	if err != nil {
		return Access{}, ErrInvalidToken
	}

	role, err := r.roles.RoleByID(ctx, claims.UserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return Access{UserID: claims.UserID}, nil
	}
	if err != nil {
		return Access{}, err
	}
	return Access{UserID: claims.UserID, Admin: role == RoleAdmin}, nil
}

// BearerToken strips the Bearer prefix from an Authorization header value.
// Returns "" when the header is absent or not a bearer credential.
func BearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
