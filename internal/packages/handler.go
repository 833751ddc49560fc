package packages

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/logoproof/Katalog-tsalis/internal/auth"
	"github.com/logoproof/Katalog-tsalis/internal/domain/pack"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type packageJSON struct {
	Name      string   `json:"name"`
	SKUs      []string `json:"skus"`
	UpdatedAt string   `json:"updated_at"`
}

func toJSON(p pack.Package) packageJSON {
	return packageJSON{Name: p.Name, SKUs: p.SKUs, UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339Nano)}
}

// List is public; a bearer token only determines is_admin in the response.
func (h *Handler) List(c *gin.Context) {
	token := auth.BearerToken(c.GetHeader("Authorization"))

	res, err := h.svc.List(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}
	pkgs := make([]packageJSON, 0, len(res.Packages))
	for _, p := range res.Packages {
		pkgs = append(pkgs, toJSON(p))
	}
	c.JSON(http.StatusOK, gin.H{"packages": pkgs, "is_admin": res.IsAdmin})
}

type putReq struct {
	Name string    `json:"name"`
	SKUs *[]string `json:"skus"`
}

func (h *Handler) Put(c *gin.Context) {
	var req putReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, ErrInvalidPayload)
		return
	}
	token := auth.BearerToken(c.GetHeader("Authorization"))

	var skus []string
	if req.SKUs != nil {
		skus = *req.SKUs
		if skus == nil {
			skus = []string{}
		}
	}
	p, err := h.svc.Replace(c.Request.Context(), token, req.Name, skus)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"package": toJSON(p)})
}

type patchReq struct {
	Name       string   `json:"name"`
	AddSKUs    []string `json:"addSkus"`
	RemoveSKUs []string `json:"removeSkus"`
}

func (h *Handler) Patch(c *gin.Context) {
	var req patchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, ErrInvalidPayload)
		return
	}
	token := auth.BearerToken(c.GetHeader("Authorization"))

	p, err := h.svc.Merge(c.Request.Context(), token, req.Name, req.AddSKUs, req.RemoveSKUs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"package": toJSON(p)})
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, ErrInvalidPayload):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "package not found"})
	default:
		log.Printf("packages: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
