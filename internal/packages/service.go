package packages

import (
	"context"
	"errors"

	"github.com/logoproof/Katalog-tsalis/internal/auth"
	"github.com/logoproof/Katalog-tsalis/internal/domain/pack"
)

type Store interface {
	List(ctx context.Context) ([]pack.Package, error)
	ByName(ctx context.Context, name string) (pack.Package, error)
	Replace(ctx context.Context, name string, skus []string) (pack.Package, error)
}

type Authorizer interface {
	Resolve(ctx context.Context, token string) (auth.Access, error)
}

// Service implements package membership semantics over a Store, with
// admin-only mutation.
type Service struct {
	store Store
	auth  Authorizer
}

func NewService(store Store, auth Authorizer) *Service {
	return &Service{store: store, auth: auth}
}

type ListResult struct {
	Packages []pack.Package
	IsAdmin  bool
}

// List is public. The optional token only computes IsAdmin; any resolution
// failure degrades to IsAdmin=false rather than an error.
func (s *Service) List(ctx context.Context, token string) (ListResult, error) {
	isAdmin := false
	if acc, err := s.auth.Resolve(ctx, token); err == nil {
		isAdmin = acc.Admin
	}
	pkgs, err := s.store.List(ctx)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{Packages: pkgs, IsAdmin: isAdmin}, nil
}

// Replace is the PUT operation: upsert by name and fully replace membership
// in the given order. Creating an absent package is allowed. Idempotent.
// skus must be present (an empty slice is valid and clears the package).
func (s *Service) Replace(ctx context.Context, token, name string, skus []string) (pack.Package, error) {
	if err := s.requireAdmin(ctx, token); err != nil {
		return pack.Package{}, err
	}
	if name == "" || skus == nil {
		return pack.Package{}, ErrInvalidPayload
	}
	return s.store.Replace(ctx, name, skus)
}

// Merge is the PATCH operation: append addSkus not already present, then
// drop removeSkus, persisting through the same full replace. Unlike Replace
// it never creates the package implicitly.
func (s *Service) Merge(ctx context.Context, token, name string, addSkus, removeSkus []string) (pack.Package, error) {
	if err := s.requireAdmin(ctx, token); err != nil {
		return pack.Package{}, err
	}
	if name == "" {
		return pack.Package{}, ErrInvalidPayload
	}
	current, err := s.store.ByName(ctx, name)
	if err != nil {
		return pack.Package{}, err
	}
	return s.store.Replace(ctx, name, MergeSKUs(current.SKUs, addSkus, removeSkus))
}

func (s *Service) requireAdmin(ctx context.Context, token string) error {
	acc, err := s.auth.Resolve(ctx, token)
	if errors.Is(err, auth.ErrInvalidToken) {
		return ErrUnauthenticated
	}
	if err != nil {
		return err
	}
	if !acc.Admin {
		return ErrForbidden
	}
	return nil
}

// MergeSKUs applies the PATCH merge to an ordered SKU sequence: ids from add
// not already present are appended in input order, then every id in remove
// is dropped. Existing order is preserved for survivors.
func MergeSKUs(current, add, remove []string) []string {
	merged := make([]string, 0, len(current)+len(add))
	seen := make(map[string]bool, len(current)+len(add))
	for _, sku := range current {
		if !seen[sku] {
			seen[sku] = true
			merged = append(merged, sku)
		}
	}
	for _, sku := range add {
		if !seen[sku] {
			seen[sku] = true
			merged = append(merged, sku)
		}
	}
	if len(remove) == 0 {
		return merged
	}
	drop := make(map[string]bool, len(remove))
	for _, sku := range remove {
		drop[sku] = true
	}
	out := merged[:0]
	for _, sku := range merged {
		if !drop[sku] {
			out = append(out, sku)
		}
	}
	return out
}
