// Package resolver maps a storefront URL identifier onto the richest
// upstream configurable product it can find.
package resolver

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"storefront.GO/catalog"
	"storefront.GO/magento"
)

// ErrNotFound means no named product could be resolved for an identifier.
var ErrNotFound = errors.New("product not found")

// SearchPageSize is the page size of fallback full-text searches.
const SearchPageSize = 30

// Upstream is the part of the commerce API the resolver needs.
type Upstream interface {
	ResolveURL(ctx context.Context, url string) (*magento.URLResolution, error)
	ProductsByURLKey(ctx context.Context, urlKey string) ([]*magento.Product, error)
	SearchProducts(ctx context.Context, term string, pageSize int) ([]*magento.Product, error)
}

// Result is the outcome of one strategy: Found carries a product, NotFound does not.
type Result struct {
	Product *magento.Product
}

// NotFound is the empty Result.
var NotFound = Result{}

func Found(p *magento.Product) Result {
	return Result{Product: p}
}

// OK reports whether r carries a product.
func (r Result) OK() bool {
	return r.Product != nil
}

// Strategy tries to find a product for one search term.
type Strategy struct {
	Name string
	Run  func(ctx context.Context, term string) (Result, error)
}

// Resolver drives the resolution chain. Upstream calls are sequential.
type Resolver struct {
	upstream Upstream
	mapper   *catalog.Mapper
	logger   *zap.Logger
}

func New(upstream Upstream, mapper *catalog.Mapper, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{upstream: upstream, mapper: mapper, logger: logger.Named("resolver")}
}

// fatal reports errors that end the whole resolution instead of one attempt.
func fatal(ctx context.Context, err error) bool {
	return errors.Is(err, magento.ErrNotConfigured) || ctx.Err() != nil
}

func (r *Resolver) swallow(ctx context.Context, step, term string, err error) error {
	if fatal(ctx, err) {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	r.logger.Debug("attempt failed", zap.String("step", step), zap.String("term", term), zap.Error(err))
	return nil
}

// Canonicalize asks the url resolver for identifier and extracts the url key.
// Any non-fatal failure falls back to identifier itself.
func (r *Resolver) Canonicalize(ctx context.Context, identifier string) (string, error) {
	res, err := r.upstream.ResolveURL(ctx, identifier)
	if err != nil {
		return identifier, r.swallow(ctx, "canonicalize", identifier, err)
	}
	if res == nil {
		return identifier, nil
	}
	url := res.CanonicalURL
	if url == "" {
		url = res.RelativeURL
	}
	if key := ExtractURLKey(url); key != "" {
		return key, nil
	}
	return identifier, nil
}

func firstConfigurable(items []*magento.Product) *magento.Product {
	for _, p := range items {
		if p.IsConfigurableWithVariants() {
			return p
		}
	}
	return nil
}

// ByURLKey retries the detail query with term as url key.
func (r *Resolver) ByURLKey() Strategy {
	return Strategy{Name: "url_key", Run: func(ctx context.Context, term string) (Result, error) {
		items, err := r.upstream.ProductsByURLKey(ctx, term)
		if err != nil {
			return NotFound, err
		}
		if p := firstConfigurable(items); p != nil {
			return Found(p), nil
		}
		return NotFound, nil
	}}
}

// SearchConfigurable runs a full-text search for term.
func (r *Resolver) SearchConfigurable() Strategy {
	return Strategy{Name: "search", Run: func(ctx context.Context, term string) (Result, error) {
		items, err := r.upstream.SearchProducts(ctx, term, SearchPageSize)
		if err != nil {
			return NotFound, err
		}
		if p := firstConfigurable(items); p != nil {
			return Found(p), nil
		}
		return NotFound, nil
	}}
}

// run tries every strategy on every term, in order, and stops at the first
// result accepted by accept.
func (r *Resolver) run(ctx context.Context, terms []string, strategies []Strategy, accept func(*magento.Product) bool) (Result, error) {
	for _, term := range terms {
		for _, s := range strategies {
			res, err := s.Run(ctx, term)
			if err != nil {
				if ferr := r.swallow(ctx, s.Name, term, err); ferr != nil {
					return NotFound, ferr
				}
				continue
			}
			if res.OK() && accept(res.Product) {
				r.logger.Debug("strategy matched", zap.String("step", s.Name), zap.String("term", term), zap.String("sku", res.Product.SKU))
				return res, nil
			}
			r.logger.Debug("strategy missed", zap.String("step", s.Name), zap.String("term", term))
		}
	}
	return NotFound, nil
}

func terms(candidates ...string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Resolve resolves identifier to a product detail, or ErrNotFound.
func (r *Resolver) Resolve(ctx context.Context, identifier string) (*catalog.ProductDetail, error) {
	p, err := r.ResolveProduct(ctx, identifier)
	if err != nil {
		return nil, err
	}
	d := r.mapper.MapProductToDetail(p)
	if d == nil {
		return nil, ErrNotFound
	}
	return d, nil
}

// ResolveProduct runs the chain and returns the raw upstream product.
func (r *Resolver) ResolveProduct(ctx context.Context, identifier string) (*magento.Product, error) {
	urlKey, err := r.Canonicalize(ctx, identifier)
	if err != nil {
		return nil, err
	}

	var product *magento.Product
	items, err := r.upstream.ProductsByURLKey(ctx, urlKey)
	if err != nil {
		if ferr := r.swallow(ctx, "direct", urlKey, err); ferr != nil {
			return nil, ferr
		}
	} else if len(items) > 0 {
		product = items[0]
	}

	var initialName string
	if s := r.mapper.MapProductToSummary(product); s != nil {
		initialName = s.Name
	}

	if !product.IsConfigurableWithVariants() {
		stripped := StripColorFromSlug(urlKey)
		var sku string
		if product != nil {
			sku = product.SKU
		}
		list := terms(urlKey, stripped, BuildSearchHint(urlKey), BuildSearchHint(stripped), sku, initialName, BuildSearchHint(initialName))
		res, err := r.run(ctx, list, []Strategy{r.ByURLKey(), r.SearchConfigurable()}, func(*magento.Product) bool { return true })
		if err != nil {
			return nil, err
		}
		if res.OK() {
			product = res.Product
		}
	}

	if product.IsConfigurableWithVariants() && len(product.Variants) <= 1 {
		current := len(product.Variants)
		list := terms(product.Name, initialName, BuildSearchHint(product.Name), BuildSearchHint(initialName))
		res, err := r.run(ctx, list, []Strategy{r.SearchConfigurable()}, func(p *magento.Product) bool {
			return len(p.Variants) > current
		})
		if err != nil {
			return nil, err
		}
		if res.OK() {
			product = res.Product
		}
	}

	if product == nil || product.Name == "" {
		return nil, ErrNotFound
	}
	return product, nil
}
