package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"arogya-storefront/internal/model"
	"arogya-storefront/internal/service"

	"github.com/rs/zerolog"
)

// ProductStore is a fetch-once catalog cache. The first Products call
// loads from the API; everything after is served from memory. Reload is
// the only invalidation.
type ProductStore struct {
	products service.ProductsService
	logger   zerolog.Logger

	mu     sync.Mutex
	loaded bool
	items  []model.Product
}

// NewProductStore creates the catalog cache.
func NewProductStore(products service.ProductsService, logger zerolog.Logger) *ProductStore {
	return &ProductStore{
		products: products,
		logger:   logger.With().Str("store", "products").Logger(),
	}
}

// Products returns the catalog, fetching it on first use. A failed fetch
// is not cached; the next call tries again.
func (s *ProductStore) Products(ctx context.Context) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.items, nil
	}
	return s.fetchLocked(ctx)
}

// Reload discards the cache and fetches the catalog again.
func (s *ProductStore) Reload(ctx context.Context) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchLocked(ctx)
}

func (s *ProductStore) fetchLocked(ctx context.Context) ([]model.Product, error) {
	items, err := s.products.GetProducts(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("catalog fetch failed")
		return nil, err
	}
	s.items = items
	s.loaded = true
	s.logger.Debug().Int("count", len(items)).Msg("catalog loaded")
	return items, nil
}

// FindByID returns the catalog entry with the given id.
func (s *ProductStore) FindByID(ctx context.Context, id string) (*model.Product, error) {
	items, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, model.ErrNotFound
}

// Categories returns the distinct category labels present in the live
// catalog, sorted. Filtering is always done against these, never against
// a hardcoded label list, so server-side renames cannot silently empty
// the results.
func (s *ProductStore) Categories(ctx context.Context) ([]string, error) {
	items, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var categories []string
	for _, p := range items {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

// FilterByCategory returns catalog entries in the given category,
// matched case-insensitively.
func (s *ProductStore) FilterByCategory(ctx context.Context, category string) ([]model.Product, error) {
	items, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}

	var matched []model.Product
	for _, p := range items {
		if strings.EqualFold(p.Category, category) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
