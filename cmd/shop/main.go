// Command shop drives a storefront session from the terminal: it keeps its
// cart in redis under the given key, prices products through the backend
// API, and applies the same mode/guard rules the storefront UI does.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/logoproof/Katalog-tsalis/internal/cart"
	"github.com/logoproof/Katalog-tsalis/internal/config"
	"github.com/logoproof/Katalog-tsalis/internal/pricing"
	"github.com/logoproof/Katalog-tsalis/internal/redisx"
	"github.com/logoproof/Katalog-tsalis/internal/shop"
)

func main() {
	var (
		cartKey = flag.String("cart", "default", "cart key in redis")
		mode    = flag.String("mode", "Consumer", "purchase mode (tier name)")
		add     = flag.String("add", "", "product id to add")
		qty     = flag.Int("qty", 1, "quantity for -add")
		remove  = flag.String("remove", "", "product id to remove")
		buy     = flag.String("buy", "", "bundle mode to buy (Silver/Gold/Platinum)")
		clear   = flag.Bool("clear", false, "empty the cart")
	)
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	rdb := redisx.New(cfg.RedisAddr)
	if err := redisx.Ping(ctx, rdb); err != nil {
		log.Fatalf("redis: %v", err)
	}

	m, ok := pricing.Parse(*mode)
	if !ok {
		log.Fatalf("unknown mode %q", *mode)
	}

	client := shop.NewClient(cfg.BackendURL, cfg.BackendAPIKey)
	store := cart.NewStore(ctx, cart.NewRedisPersister(rdb, *cartKey))
	sess := shop.NewSession(client, store)
	defer sess.Close()
	sess.SetMode(m)

	switch {
	case *clear:
		if err := sess.ClearCart(ctx); err != nil {
			log.Fatalf("clear: %v", err)
		}
	case *remove != "":
		if err := sess.RemoveFromCart(ctx, *remove); err != nil {
			log.Fatalf("remove: %v", err)
		}
	case *add != "":
		priced, err := client.PricedProducts(ctx, sess.Mode())
		if err != nil {
			log.Fatalf("products: %v", err)
		}
		found := false
		for _, p := range priced {
			if p.ID == *add {
				found = true
				line := cart.Line{ID: p.ID, Name: p.Name, Price: p.Price, Image: p.ImageURL}
				if err := sess.AddToCart(ctx, line, *qty); err != nil {
					log.Fatalf("add: %v", err)
				}
				break
			}
		}
		if !found {
			log.Fatalf("no product %q", *add)
		}
	case *buy != "":
		bm, ok := pricing.Parse(*buy)
		if !ok || !bm.IsBundle() {
			log.Fatalf("not a bundle mode: %q", *buy)
		}
		added, err := sess.BuyBundle(ctx, bm)
		if err != nil {
			log.Fatalf("buy: %v", err)
		}
		fmt.Printf("added %d products at x%d\n", added, bm.Multiplier())
	}

	for _, l := range store.Lines() {
		fmt.Printf("%-36s %-24s x%-4d Rp %d\n", l.ID, l.Name, l.Quantity, l.Price)
	}
	fmt.Printf("mode: %s  items: %d  total: Rp %d\n", sess.Mode().Label(), store.TotalCount(), store.TotalPrice())
	if n := sess.Notice(); n != nil {
		fmt.Printf("catatan: mode Agen Kecil butuh satu produk saja; kurang Rp %d menuju Paket Silver\n", n.Shortfall)
	}
}
