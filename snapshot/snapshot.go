// Package snapshot keeps the product a shopper last saw in a listing, keyed by
// slug, so a product page can recover variants a fresh fetch lost.
package snapshot

import (
	"context"
	"strings"
	"time"

	"storefront.GO/catalog"
	"storefront.GO/core/cache"
	"storefront.GO/magento"
)

// KeyPrefix namespaces snapshot keys in a shared backend.
const KeyPrefix = "snapshot:"

// Store reads and writes snapshots through a cache backend.
type Store struct {
	backend cache.Store
	ttl     time.Duration
}

func New(backend cache.Store, ttl time.Duration) *Store {
	return &Store{backend: backend, ttl: ttl}
}

func key(ctx context.Context, slug string) string {
	return cache.Key(magento.StoreFromContext(ctx), strings.ToLower(strings.TrimSpace(slug)))
}

// Get returns the snapshot for slug, or nil.
func (s *Store) Get(ctx context.Context, slug string) (*catalog.ProductDetail, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, nil
	}
	var d catalog.ProductDetail
	ok, err := s.backend.Load(ctx, key(ctx, slug), &d)
	if err != nil || !ok {
		return nil, err
	}
	return &d, nil
}

// Set stores product under slug. Empty slugs are ignored.
func (s *Store) Set(ctx context.Context, slug string, product *catalog.ProductDetail) error {
	if strings.TrimSpace(slug) == "" || product == nil {
		return nil
	}
	return s.backend.Save(ctx, key(ctx, slug), product, s.ttl)
}

// Delete drops the snapshot of slug.
func (s *Store) Delete(ctx context.Context, slug string) error {
	return s.backend.Remove(ctx, key(ctx, slug))
}
