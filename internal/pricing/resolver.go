package pricing

import (
	"github.com/logoproof/Katalog-tsalis/internal/domain/catalog"
)

// Resolve merges products with their tier prices for the given mode.
//
// The consumer price is the (product, Consumer tier) entry, or 0 when absent.
// The active price is the consumer price in Consumer mode; for every other
// mode it is the mode-tier entry when present and non-zero, falling back to
// the consumer price. The fallback keeps new tiers with incomplete price
// tables from rendering as free.
//
// Missing tiers or prices never raise an error; they resolve to 0 and the
// caller treats 0 as "price unknown".
func Resolve(products []catalog.Product, tiers []catalog.Tier, entries []catalog.PriceEntry, mode Mode) []catalog.PricedProduct {
	tierIDs := make(map[string]string, len(tiers))
	for _, t := range tiers {
		tierIDs[t.Name] = t.ID
	}

	consumerID := tierIDs[ModeConsumer.TierName()]
	modeID := tierIDs[mode.TierName()]

	prices := make(map[string]int64, len(entries))
	for _, e := range entries {
		prices[e.ProductID+"/"+e.TierID] = e.Price
	}

	out := make([]catalog.PricedProduct, 0, len(products))
	for _, p := range products {
		consumer := prices[p.ID+"/"+consumerID]
		active := consumer
		if mode != ModeConsumer {
			if v := prices[p.ID+"/"+modeID]; v != 0 {
				active = v
			}
		}
		out = append(out, catalog.PricedProduct{
			Product:       p,
			ConsumerPrice: consumer,
			Price:         active,
		})
	}
	return out
}
