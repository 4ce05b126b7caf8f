package services

import (
	"context"
	"sync"

	"robomart/internal/catalog"
	"robomart/internal/domain"
)

// CatalogClient is the slice of the remote API the catalog service needs.
type CatalogClient interface {
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, d domain.Draft) (domain.Product, error)
	Update(ctx context.Context, id string, d domain.Draft) (domain.Product, error)
	Remove(ctx context.Context, id string) error
}

// CatalogService owns the client-side cache of the remote catalog. The cache
// is a possibly-stale snapshot: every successful create or update invalidates
// it and triggers a full re-list; a successful delete only removes the entry
// locally. Reads always serve the current snapshot.
type CatalogService struct {
	Remote CatalogClient

	mu       sync.RWMutex
	products []domain.Product
}

func NewCatalogService(remote CatalogClient) *CatalogService {
	return &CatalogService{Remote: remote}
}

// Refresh replaces the cache with the backend's current list. On failure the
// previous snapshot is kept.
func (s *CatalogService) Refresh(ctx context.Context) error {
	products, err := s.Remote.List(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	return nil
}

// Products returns a copy of the cached list.
func (s *CatalogService) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Filtered applies the storefront search/category filter to the cache.
func (s *CatalogService) Filtered(search, category string) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.Filter(s.products, search, category)
}

// Stats computes the dashboard aggregates over the cache.
func (s *CatalogService) Stats() catalog.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.ComputeStats(s.products)
}

// Create persists a new product, then re-lists to pick up authoritative state.
func (s *CatalogService) Create(ctx context.Context, d domain.Draft) (domain.Product, error) {
	p, err := s.Remote.Create(ctx, d)
	if err != nil {
		return domain.Product{}, err
	}
	// The mutation succeeded; a failed refresh only leaves the cache stale.
	_ = s.Refresh(ctx)
	return p, nil
}

// Update replaces the addressed product's fields, then re-lists.
func (s *CatalogService) Update(ctx context.Context, id string, d domain.Draft) (domain.Product, error) {
	p, err := s.Remote.Update(ctx, id, d)
	if err != nil {
		return domain.Product{}, err
	}
	_ = s.Refresh(ctx)
	return p, nil
}

// Delete removes the product remotely, then drops it from the cache by id.
// A failed delete leaves the cache untouched.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.Remote.Remove(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.products[:0:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	return nil
}

// Get looks up a cached product by id.
func (s *CatalogService) Get(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}
