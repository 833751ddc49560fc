package auth

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo reads user identity attributes. The role column is the single
// privilege attribute this system recognizes.
type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) RoleByID(ctx context.Context, id int64) (string, error) {
	var role string
	err := r.db.QueryRow(ctx, `
		SELECT role FROM users WHERE id=$1
	`, id).Scan(&role)
	return role, err
}
