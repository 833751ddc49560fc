package shop

import (
	"context"
	"errors"
	"sync"

	"github.com/logoproof/Katalog-tsalis/internal/bundle"
	"github.com/logoproof/Katalog-tsalis/internal/cart"
	"github.com/logoproof/Katalog-tsalis/internal/domain/catalog"
	"github.com/logoproof/Katalog-tsalis/internal/domain/pack"
	"github.com/logoproof/Katalog-tsalis/internal/pricing"
)

var ErrClosed = errors.New("session closed")

// Catalog is the collaborator the session fetches read models from.
type Catalog interface {
	PricedProducts(ctx context.Context, mode pricing.Mode) ([]catalog.PricedProduct, error)
	Packages(ctx context.Context) ([]pack.Package, error)
}

// Session is the explicit per-buyer context: collaborator handle, current
// mode, and the cart. The agent-mode guard re-runs after every cart mutation
// and on mode change; results of fetches that land after Close are discarded.
type Session struct {
	mu      sync.Mutex
	catalog Catalog
	mode    pricing.Mode
	cart    *cart.Store
	notice  *cart.Notice
	closed  bool
}

func NewSession(cat Catalog, store *cart.Store) *Session {
	s := &Session{catalog: cat, mode: pricing.ModeConsumer, cart: store}
	s.mu.Lock()
	s.applyGuard()
	s.mu.Unlock()
	return s
}

func (s *Session) Mode() pricing.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Session) Cart() *cart.Store { return s.cart }

// SetMode switches the purchase mode. Switching into Agen Kecil with more
// than one distinct product in the cart is immediately reverted by the guard.
func (s *Session) SetMode(m pricing.Mode) {
	if !m.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
	s.applyGuard()
}

func (s *Session) AddToCart(ctx context.Context, item cart.Line, qty int) error {
	err := s.cart.Add(ctx, item, qty)
	s.mu.Lock()
	s.applyGuard()
	s.mu.Unlock()
	return err
}

func (s *Session) RemoveFromCart(ctx context.Context, id string) error {
	err := s.cart.Remove(ctx, id)
	s.mu.Lock()
	s.applyGuard()
	s.mu.Unlock()
	return err
}

func (s *Session) SetQuantity(ctx context.Context, id string, q int) error {
	err := s.cart.SetQuantity(ctx, id, q)
	s.mu.Lock()
	s.applyGuard()
	s.mu.Unlock()
	return err
}

func (s *Session) ClearCart(ctx context.Context) error {
	err := s.cart.Clear(ctx)
	s.mu.Lock()
	s.applyGuard()
	s.mu.Unlock()
	return err
}

// Notice returns the pending advisory, if any.
func (s *Session) Notice() *cart.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notice
}

func (s *Session) DismissNotice() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = nil
}

// BuyBundle fetches the priced catalog and package membership, resolves the
// bundle's SKU set and adds every SKU to the cart at the mode's multiplier.
// Returns the number of lines added.
func (s *Session) BuyBundle(ctx context.Context, mode pricing.Mode) (int, error) {
	if !mode.IsBundle() {
		return 0, nil
	}
	priced, err := s.catalog.PricedProducts(ctx, mode)
	if err != nil {
		return 0, err
	}
	packages, err := s.catalog.Packages(ctx)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return 0, ErrClosed
	}
	s.mu.Unlock()

	products := make([]catalog.Product, 0, len(priced))
	for _, p := range priced {
		products = append(products, p.Product)
	}
	skus := bundle.SKUSet(mode, packages, products)
	added := bundle.Buy(ctx, s.cart, mode, priced, skus)

	s.mu.Lock()
	s.applyGuard()
	s.mu.Unlock()
	return added, nil
}

// BuySilver is the notice's one-click action.
func (s *Session) BuySilver(ctx context.Context) (int, error) {
	return s.BuyBundle(ctx, pricing.ModeSilver)
}

// Close tears the session down; later collaborator results are discarded.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// applyGuard must be called with s.mu held.
func (s *Session) applyGuard() {
	mode, notice := cart.NextMode(s.mode, s.cart.DistinctCount(), s.cart.TotalPrice())
	if notice != nil {
		s.mode = mode
		s.notice = notice
	}
}
