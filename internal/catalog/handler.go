package catalog

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/logoproof/Katalog-tsalis/internal/bundle"
	"github.com/logoproof/Katalog-tsalis/internal/domain/catalog"
	"github.com/logoproof/Katalog-tsalis/internal/domain/pack"
	"github.com/logoproof/Katalog-tsalis/internal/pricing"
)

type Source interface {
	Products(ctx context.Context) ([]catalog.Product, error)
	Tiers(ctx context.Context) ([]catalog.Tier, error)
	Prices(ctx context.Context) ([]catalog.PriceEntry, error)
}

type PackageSource interface {
	List(ctx context.Context) ([]pack.Package, error)
}

type Handler struct {
	src  Source
	pkgs PackageSource
}

func NewHandler(src Source, pkgs PackageSource) *Handler {
	return &Handler{src: src, pkgs: pkgs}
}

// ListPriced returns the catalog priced for the requested mode
// (?mode=Silver, default Consumer).
func (h *Handler) ListPriced(c *gin.Context) {
	mode := pricing.ModeConsumer
	if v := c.Query("mode"); v != "" {
		m, ok := pricing.Parse(v)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown mode"})
			return
		}
		mode = m
	}

	priced, _, err := h.resolve(c.Request.Context(), mode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": priced, "mode": mode})
}

func (h *Handler) ListTiers(c *gin.Context) {
	tiers, err := h.src.Tiers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tiers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": tiers})
}

// BundleSummary prices one bundle mode against the current catalog and the
// admin-configured package membership.
func (h *Handler) BundleSummary(c *gin.Context) {
	mode, ok := pricing.Parse(c.Param("mode"))
	if !ok || !mode.IsBundle() {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown bundle"})
		return
	}

	ctx := c.Request.Context()
	priced, products, err := h.resolve(ctx, mode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to price bundle"})
		return
	}
	packages, err := h.pkgs.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to price bundle"})
		return
	}

	skus := bundle.SKUSet(mode, packages, products)
	c.JSON(http.StatusOK, bundle.Compute(mode, priced, skus))
}

func (h *Handler) resolve(ctx context.Context, mode pricing.Mode) ([]catalog.PricedProduct, []catalog.Product, error) {
	products, err := h.src.Products(ctx)
	if err != nil {
		return nil, nil, err
	}
	tiers, err := h.src.Tiers(ctx)
	if err != nil {
		return nil, nil, err
	}
	prices, err := h.src.Prices(ctx)
	if err != nil {
		return nil, nil, err
	}
	return pricing.Resolve(products, tiers, prices, mode), products, nil
}
