// Package apitest builds echo servers over in-memory upstream fakes for route tests.
package apitest

import (
	"context"
	"encoding/json"
	"time"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	"storefront.GO/catalog"
	"storefront.GO/config"
	"storefront.GO/core/cache"
	"storefront.GO/magento"
	"storefront.GO/service/storefront"
	"storefront.GO/snapshot"
)

// Upstream is a canned commerce API.
type Upstream struct {
	Listing      *magento.ProductsResult
	Aggs         []magento.Aggregation
	CategoryTree []*magento.Category
	ByURLKey     map[string][]*magento.Product
	Search       map[string][]*magento.Product
	// Err is returned by every call when set.
	Err error
	// LastInput is the last listing input seen.
	LastInput magento.ProductsInput
	// LastStore is the store view of the last listing call.
	LastStore string
}

func (u *Upstream) Products(ctx context.Context, in magento.ProductsInput) (*magento.ProductsResult, error) {
	u.LastInput = in
	u.LastStore = magento.StoreFromContext(ctx)
	if u.Err != nil {
		return nil, u.Err
	}
	if u.Listing == nil {
		return &magento.ProductsResult{}, nil
	}
	return u.Listing, nil
}

func (u *Upstream) Facets(context.Context, []string) ([]magento.Aggregation, error) {
	return u.Aggs, u.Err
}

func (u *Upstream) Categories(context.Context) ([]*magento.Category, error) {
	return u.CategoryTree, u.Err
}

func (u *Upstream) ResolveURL(context.Context, string) (*magento.URLResolution, error) {
	return nil, u.Err
}

func (u *Upstream) ProductsByURLKey(_ context.Context, key string) ([]*magento.Product, error) {
	return u.ByURLKey[key], u.Err
}

func (u *Upstream) SearchProducts(_ context.Context, term string, _ int) ([]*magento.Product, error) {
	return u.Search[term], u.Err
}

// Proxy is a canned Forwarder that records the last request.
type Proxy struct {
	Status int
	Body   string
	Err    error
	Last   magento.ProxyRequest
}

func (p *Proxy) Forward(_ context.Context, req magento.ProxyRequest) (int, json.RawMessage, error) {
	p.Last = req
	if p.Err != nil {
		return 0, nil, p.Err
	}
	return p.Status, json.RawMessage(p.Body), nil
}

// Deps wires a storefront service over up with in-memory caches.
func Deps(up storefront.Upstream, proxy api.Forwarder) *api.Deps {
	svc := storefront.New(storefront.Options{
		Upstream:   up,
		Attributes: catalog.Attributes{Color: "benuta_color_filter", Room: "benuta_living_area", Material: "benuta_material", Size: "benuta_form_new"},
		Cache:      cache.NewMemoryStore(cache.NewCache()),
		Snapshots:  snapshot.New(cache.NewMemoryStore(cache.NewCache()), time.Minute),
		TTL:        config.CacheConfig{FacetsTTL: time.Minute, CategoriesTTL: time.Minute},
	})
	return &api.Deps{Storefront: svc, Proxy: proxy}
}

// NewServer returns an echo instance with every registered module and route applied.
func NewServer(deps *api.Deps) *echo.Echo {
	e := echo.New()
	e.Validator = api.NewValidator()
	e.Use(api.StoreContext())
	api.ApplyRoutes(e, deps)
	api.ApplyModules(e.Group("/api"), deps)
	return e
}

// Price builds an upstream price block.
func Price(final, regular float64) *magento.PriceRange {
	return &magento.PriceRange{MinimumPrice: &magento.ProductPrice{
		FinalPrice:   &magento.Money{Value: &final, Currency: "EUR"},
		RegularPrice: &magento.Money{Value: &regular, Currency: "EUR"},
	}}
}
