package pack

import "time"

// Package is an admin-curated SKU list backing one bundle tier.
// SKUs keeps the stored position order; membership rows are always
// fully replaced on write.
type Package struct {
	ID        string    `json:"-"`
	Name      string    `json:"name"`
	SKUs      []string  `json:"skus"`
	UpdatedAt time.Time `json:"updated_at"`
}
