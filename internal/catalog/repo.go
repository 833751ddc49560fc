package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/logoproof/Katalog-tsalis/internal/domain/catalog"
)

// Repo reads the catalog collaborator's tables. Everything here is read-only
// to this service; catalog edits happen elsewhere.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Products(ctx context.Context) ([]catalog.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, category, image_url, sold_count
		FROM products
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.Product
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.ImageURL, &p.SoldCount); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) Tiers(ctx context.Context) ([]catalog.Tier, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name FROM tiers ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.Tier
	for rows.Next() {
		var t catalog.Tier
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *Repo) Prices(ctx context.Context) ([]catalog.PriceEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT product_id, tier_id, price FROM product_prices
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.PriceEntry
	for rows.Next() {
		var e catalog.PriceEntry
		if err := rows.Scan(&e.ProductID, &e.TierID, &e.Price); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
