package bundle

import (
	"context"
	"log"

	"github.com/logoproof/Katalog-tsalis/internal/cart"
	"github.com/logoproof/Katalog-tsalis/internal/domain/catalog"
	"github.com/logoproof/Katalog-tsalis/internal/domain/pack"
	"github.com/logoproof/Katalog-tsalis/internal/pricing"
)

// MatchTolerance is the band, in rupiah, within which a bundle total counts
// as matching its target for display purposes.
const MatchTolerance = 1000

// Summary describes one bundle mode priced against the current catalog.
type Summary struct {
	Mode       pricing.Mode `json:"mode"`
	Label      string       `json:"label"`
	Multiplier int          `json:"multiplier"`
	SKUs       []string     `json:"skus"`
	Total      int64        `json:"total"`
	Target     int64        `json:"target"`
	Diff       int64        `json:"diff"`
	Matched    bool         `json:"matched"`
}

// SKUSet resolves which products compose the bundle for mode: the
// admin-configured package list when one is present and non-empty, otherwise
// every product in the catalog.
func SKUSet(mode pricing.Mode, packages []pack.Package, products []catalog.Product) []string {
	for _, p := range packages {
		if p.Name == mode.TierName() && len(p.SKUs) > 0 {
			return p.SKUs
		}
	}
	all := make([]string, 0, len(products))
	for _, p := range products {
		all = append(all, p.ID)
	}
	return all
}

// Compute prices the bundle: total = Σ active price · multiplier over the
// resolved SKU set. SKUs missing from priced are skipped, matching the
// resolver's "missing data is 0" policy.
func Compute(mode pricing.Mode, priced []catalog.PricedProduct, skus []string) Summary {
	byID := make(map[string]catalog.PricedProduct, len(priced))
	for _, p := range priced {
		byID[p.ID] = p
	}

	m := mode.Multiplier()
	var total int64
	for _, id := range skus {
		if p, ok := byID[id]; ok {
			total += p.Price * int64(m)
		}
	}

	s := Summary{
		Mode:       mode,
		Label:      mode.Label(),
		Multiplier: m,
		SKUs:       skus,
		Total:      total,
	}
	if target, ok := mode.Target(); ok {
		s.Target = target
		s.Diff = total - target
		s.Matched = s.Diff > -MatchTolerance && s.Diff < MatchTolerance
	}
	return s
}

// Buy adds every product of the SKU set to the cart at the mode's
// multiplier, on top of any quantity already there. Insertions fan out
// independently: one failing item is logged and skipped, the rest still
// proceed. Returns the number of lines added.
func Buy(ctx context.Context, store *cart.Store, mode pricing.Mode, priced []catalog.PricedProduct, skus []string) int {
	byID := make(map[string]catalog.PricedProduct, len(priced))
	for _, p := range priced {
		byID[p.ID] = p
	}

	m := mode.Multiplier()
	added := 0
	for _, id := range skus {
		p, ok := byID[id]
		if !ok {
			continue
		}
		line := cart.Line{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price,
			Image: p.ImageURL,
		}
		if err := store.Add(ctx, line, m); err != nil {
			log.Printf("bundle: add %s failed: %v", id, err)
			continue
		}
		added++
	}
	return added
}
