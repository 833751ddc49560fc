package packages

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/logoproof/Katalog-tsalis/internal/domain/pack"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// List returns every package with its SKU sequence in stored position order.
func (r *Repo) List(ctx context.Context) ([]pack.Package, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, updated_at
		FROM packages
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []pack.Package
	for rows.Next() {
		var p pack.Package
		if err := rows.Scan(&p.ID, &p.Name, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.SKUs = []string{}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		skus, err := r.memberSKUs(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].SKUs = skus
	}
	return out, nil
}

// ByName loads one package. Returns ErrNotFound when no row matches.
func (r *Repo) ByName(ctx context.Context, name string) (pack.Package, error) {
	var p pack.Package
	err := r.db.QueryRow(ctx, `
		SELECT id, name, updated_at FROM packages WHERE name=$1
	`, name).Scan(&p.ID, &p.Name, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return pack.Package{}, ErrNotFound
	}
	if err != nil {
		return pack.Package{}, err
	}
	p.SKUs, err = r.memberSKUs(ctx, p.ID)
	if err != nil {
		return pack.Package{}, err
	}
	return p, nil
}

// Replace upserts the package row by name, then fully rewrites its
// membership: delete all rows, re-insert in array order with position set to
// the array index and quantity fixed at 1.
//
// The delete and inserts are deliberately separate statements with no
// rollback between them. A crash in the middle leaves the package with zero
// members until the next successful write; writes are last-write-wins per
// package name.
func (r *Repo) Replace(ctx context.Context, name string, skus []string) (pack.Package, error) {
	var p pack.Package
	err := r.db.QueryRow(ctx, `
		INSERT INTO packages (id, name, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET updated_at = now()
		RETURNING id, name, updated_at
	`, uuid.NewString(), name).Scan(&p.ID, &p.Name, &p.UpdatedAt)
	if err != nil {
		return pack.Package{}, err
	}

	if _, err := r.db.Exec(ctx, `
		DELETE FROM package_items WHERE package_id=$1
	`, p.ID); err != nil {
		return pack.Package{}, err
	}

	for i, sku := range skus {
		if _, err := r.db.Exec(ctx, `
			INSERT INTO package_items (package_id, product_id, quantity, position)
			VALUES ($1, $2, 1, $3)
		`, p.ID, sku, i); err != nil {
			return pack.Package{}, err
		}
	}

	p.SKUs, err = r.memberSKUs(ctx, p.ID)
	if err != nil {
		return pack.Package{}, err
	}
	return p, nil
}

func (r *Repo) memberSKUs(ctx context.Context, packageID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT product_id FROM package_items
		WHERE package_id=$1
		ORDER BY position ASC
	`, packageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skus := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		skus = append(skus, id)
	}
	return skus, rows.Err()
}
