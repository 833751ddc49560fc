package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/logoproof/Katalog-tsalis/internal/auth"
	"github.com/logoproof/Katalog-tsalis/internal/catalog"
	"github.com/logoproof/Katalog-tsalis/internal/config"
	"github.com/logoproof/Katalog-tsalis/internal/db"
	"github.com/logoproof/Katalog-tsalis/internal/packages"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	pool, err := db.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	jwtMgr := auth.NewJWTManager(auth.JWTConfig{
		Issuer:    cfg.JWTIssuer,
		Secret:    cfg.JWTAccessSecret,
		AccessTTL: 15 * time.Minute,
	})
	resolver := auth.NewResolver(jwtMgr, auth.NewUserRepo(pool))

	catRepo := catalog.NewRepo(pool)
	pkgRepo := packages.NewRepo(pool)

	pkgHandler := packages.NewHandler(packages.NewService(pkgRepo, resolver))
	catHandler := catalog.NewHandler(catRepo, pkgRepo)

	r := gin.Default()

	api := r.Group("/api")
	{
		api.GET("/products", catHandler.ListPriced)
		api.GET("/tiers", catHandler.ListTiers)
		api.GET("/bundles/:mode", catHandler.BundleSummary)

		api.GET("/packages", pkgHandler.List)
		api.PUT("/packages", pkgHandler.Put)
		api.PATCH("/packages", pkgHandler.Patch)
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
