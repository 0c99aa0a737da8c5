// Package storefront composes the upstream client, the catalog mappers and the
// resolver into the storefront read operations.
package storefront

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"storefront.GO/catalog"
	"storefront.GO/config"
	"storefront.GO/core/cache"
	"storefront.GO/magento"
	"storefront.GO/resolver"
	"storefront.GO/snapshot"
)

// Upstream is the commerce API used by the service.
type Upstream interface {
	resolver.Upstream
	Products(ctx context.Context, in magento.ProductsInput) (*magento.ProductsResult, error)
	Facets(ctx context.Context, categoryUIDs []string) ([]magento.Aggregation, error)
	Categories(ctx context.Context) ([]*magento.Category, error)
}

// ProductsResponse is the catalog listing payload.
type ProductsResponse struct {
	Items      []catalog.ProductSummary `json:"items"`
	SaleItems  []catalog.ProductSummary `json:"saleItems"`
	TotalCount int                      `json:"totalCount"`
	catalog.Facets
}

type Options struct {
	Upstream   Upstream
	Attributes catalog.Attributes
	Names      *catalog.NameSplitter
	// Cache holds facet and category responses. Nil disables response caching.
	Cache     cache.Store
	Snapshots *snapshot.Store
	TTL       config.CacheConfig
	Logger    *zap.Logger
}

type Service struct {
	upstream   Upstream
	attrs      catalog.Attributes
	mapper     *catalog.Mapper
	aggregator *catalog.Aggregator
	resolver   *resolver.Resolver
	cache      cache.Store
	snapshots  *snapshot.Store
	ttl        config.CacheConfig
	logger     *zap.Logger
}

func New(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	mapper := catalog.NewMapper(opts.Attributes, opts.Names)
	return &Service{
		upstream:   opts.Upstream,
		attrs:      opts.Attributes,
		mapper:     mapper,
		aggregator: catalog.NewAggregator(opts.Attributes),
		resolver:   resolver.New(opts.Upstream, mapper, logger),
		cache:      opts.Cache,
		snapshots:  opts.Snapshots,
		ttl:        opts.TTL,
		logger:     logger.Named("storefront"),
	}
}

// Products returns one listing page, grouped by name and sorted by price.
func (s *Service) Products(ctx context.Context, q ProductQuery) (*ProductsResponse, error) {
	q = q.WithDefaults()
	res, err := s.upstream.Products(ctx, magento.ProductsInput{
		Page:     q.Page,
		PageSize: q.PageSize,
		Sort:     magento.SortByPrice(q.Sort),
		Filter:   BuildFilter(q, s.attrs),
	})
	if err != nil {
		s.logger.Error("products fetch failed", zap.Error(err))
		return nil, err
	}

	items := catalog.GroupProductsByName(s.mapper.MapProducts(res.Items))
	asc := q.Ascending()
	sort.SliceStable(items, func(i, j int) bool {
		a, b := price(items[i]), price(items[j])
		if asc {
			return a < b
		}
		return a > b
	})

	sale := make([]catalog.ProductSummary, 0)
	for _, it := range items {
		if it.HasBadge(catalog.BadgeSale) {
			sale = append(sale, it)
		}
	}

	return &ProductsResponse{
		Items:      items,
		SaleItems:  sale,
		TotalCount: res.TotalCount,
		Facets:     s.aggregator.Facets(res.Aggregations),
	}, nil
}

func price(p catalog.ProductSummary) float64 {
	if p.Price == nil {
		return 0
	}
	return p.Price.Value
}

func facetsKey(ctx context.Context, categoryUIDs []string) string {
	uids := append([]string(nil), categoryUIDs...)
	sort.Strings(uids)
	return cache.Key("facets", magento.StoreFromContext(ctx), strings.Join(uids, ","))
}

func categoriesKey(ctx context.Context) string {
	return cache.Key("categories", magento.StoreFromContext(ctx))
}

func (s *Service) load(ctx context.Context, key string, dst interface{}) bool {
	if s.cache == nil {
		return false
	}
	ok, err := s.cache.Load(ctx, key, dst)
	if err != nil {
		s.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return ok
}

func (s *Service) save(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if s.cache == nil || ttl <= 0 {
		return
	}
	if err := s.cache.Save(ctx, key, value, ttl); err != nil {
		s.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Facets returns the filter options of the catalog, or of the given categories.
func (s *Service) Facets(ctx context.Context, categoryUIDs []string) (*catalog.Facets, error) {
	var cached catalog.Facets
	if s.load(ctx, facetsKey(ctx, categoryUIDs), &cached) {
		return &cached, nil
	}
	return s.RefreshFacets(ctx, categoryUIDs)
}

// RefreshFacets fetches facets upstream and replaces the cached entry.
func (s *Service) RefreshFacets(ctx context.Context, categoryUIDs []string) (*catalog.Facets, error) {
	aggs, err := s.upstream.Facets(ctx, categoryUIDs)
	if err != nil {
		s.logger.Error("facets fetch failed", zap.Error(err))
		return nil, err
	}
	f := s.aggregator.Facets(aggs)
	s.save(ctx, facetsKey(ctx, categoryUIDs), f, s.ttl.FacetsTTL)
	return &f, nil
}

// Categories returns the flattened category tree.
func (s *Service) Categories(ctx context.Context) ([]catalog.FilterOption, error) {
	var cached []catalog.FilterOption
	if s.load(ctx, categoriesKey(ctx), &cached) {
		return cached, nil
	}
	tree, err := s.upstream.Categories(ctx)
	if err != nil {
		s.logger.Error("categories fetch failed", zap.Error(err))
		return nil, err
	}
	opts := catalog.CategoryOptions(tree)
	s.save(ctx, categoriesKey(ctx), opts, s.ttl.CategoriesTTL)
	return opts, nil
}

// ProductDetail resolves slug, folds in a stored snapshot and preselects a
// variant. It returns resolver.ErrNotFound for unknown slugs.
func (s *Service) ProductDetail(ctx context.Context, slug string) (*catalog.ProductDetail, error) {
	d, err := s.resolver.Resolve(ctx, slug)
	if err != nil {
		return nil, err
	}
	if s.snapshots != nil {
		snap, err := s.snapshots.Get(ctx, slug)
		if err != nil {
			s.logger.Warn("snapshot read failed", zap.String("slug", slug), zap.Error(err))
		}
		d = catalog.MergeSnapshot(d, snap)
	}
	d.SelectedVariant = catalog.SelectInitialVariant(d, slug)
	return d, nil
}

// SaveSnapshot stores the product a shopper navigated from under slug.
func (s *Service) SaveSnapshot(ctx context.Context, slug string, product *catalog.ProductDetail) error {
	if s.snapshots == nil {
		return nil
	}
	return s.snapshots.Set(ctx, slug, product)
}

// WarmFacets refreshes the cached facets of the unfiltered catalog.
func (s *Service) WarmFacets(ctx context.Context) error {
	f, err := s.RefreshFacets(ctx, nil)
	if err != nil {
		return err
	}
	s.logger.Info("facets warmed",
		zap.Int("colors", len(f.ColorOptions)),
		zap.Int("rooms", len(f.RoomOptions)),
		zap.Int("materials", len(f.MaterialOptions)),
		zap.Int("sizes", len(f.SizeOptions)))
	return nil
}
