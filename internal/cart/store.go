package cart

import (
	"context"
	"sync"
)

// Line is one cart entry. ID is the product id; at most one line exists per
// product. Price is the unit price captured when the line was first added and
// is never re-resolved, even if the buyer switches mode afterwards.
type Line struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    int64   `json:"price"`
	Quantity int     `json:"quantity"`
	Image    *string `json:"image,omitempty"`
}

// Store holds the cart lines and writes them through a Persister on every
// mutation. State is meant for a single interactive caller; the mutex is
// plain hygiene, not a concurrency contract.
type Store struct {
	mu    sync.Mutex
	lines []Line
	p     Persister
}

// NewStore loads persisted state through p. A missing or malformed blob
// degrades to an empty cart, never an error.
func NewStore(ctx context.Context, p Persister) *Store {
	s := &Store{p: p}
	if p != nil {
		if lines, err := p.Load(ctx); err == nil {
			s.lines = lines
		}
	}
	return s
}

// Add inserts item at the given quantity, or increments the existing line's
// quantity when the product id is already present. The stored unit price of
// an existing line is left untouched. Quantities below 1 count as 1.
func (s *Store) Add(ctx context.Context, item Line, qty int) error {
	if qty < 1 {
		qty = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == item.ID {
			s.lines[i].Quantity += qty
			return s.save(ctx)
		}
	}
	item.Quantity = qty
	s.lines = append(s.lines, item)
	return s.save(ctx)
}

// Remove deletes the line for id. Removing an absent id is a no-op.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return s.save(ctx)
		}
	}
	return nil
}

// SetQuantity sets the line's quantity, clamped to a minimum of 1.
// Unknown ids are ignored.
func (s *Store) SetQuantity(ctx context.Context, id string, q int) error {
	if q < 1 {
		q = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Quantity = q
			return s.save(ctx)
		}
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	return s.save(ctx)
}

// Lines returns a copy of the current cart lines in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalCount is the summed quantity across all lines.
func (s *Store) TotalCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

// TotalPrice is Σ price·quantity over all lines.
func (s *Store) TotalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum int64
	for _, l := range s.lines {
		sum += l.Price * int64(l.Quantity)
	}
	return sum
}

// DistinctCount is the number of distinct product ids in the cart.
func (s *Store) DistinctCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

func (s *Store) save(ctx context.Context) error {
	if s.p == nil {
		return nil
	}
	return s.p.Save(ctx, s.lines)
}
