package graphqlserver

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"storefront.GO/graphql"
	gqlmodels "storefront.GO/graphql/models"
	"storefront.GO/graphql/registry"
	"storefront.GO/resolver"
	"storefront.GO/service/storefront"
)

// RootResolver is the root for graphql-go. Store context comes from the
// request (see graphql.StoreMiddleware) and flows through ctx.
type RootResolver struct {
	svc      *storefront.Service
	validate *validator.Validate
}

// ProductsArgs matches the products query arguments.
type ProductsArgs struct {
	Page          *int32
	PageSize      *int32
	Sort          *string
	Color         *string
	PriceFrom     *float64
	PriceTo       *float64
	Rooms         *[]string
	Materials     *[]string
	Sizes         *[]string
	CategoryUids  *[]string
	SearchKeyword *string
}

func (a ProductsArgs) query() storefront.ProductQuery {
	q := storefront.ProductQuery{
		Page:      storefront.DefaultPage,
		PageSize:  storefront.DefaultPageSize,
		Sort:      storefront.DefaultSort,
		Color:     str(a.Color),
		PriceFrom: a.PriceFrom,
		PriceTo:   a.PriceTo,
		Rooms:     list(a.Rooms),
		Materials: list(a.Materials),
		Sizes:     list(a.Sizes),

		CategoryUIDs:  list(a.CategoryUids),
		SearchKeyword: str(a.SearchKeyword),
	}
	if a.Page != nil {
		q.Page = int(*a.Page)
	}
	if a.PageSize != nil {
		q.PageSize = int(*a.PageSize)
	}
	if a.Sort != nil && *a.Sort != "" {
		q.Sort = *a.Sort
	}
	return q
}

func (r *RootResolver) Products(ctx context.Context, args ProductsArgs) (*gqlmodels.ProductList, error) {
	q := args.query()
	if err := r.validate.Struct(q); err != nil {
		return nil, err
	}
	res, err := r.svc.Products(ctx, q)
	if err != nil {
		return nil, err
	}
	return mapProductList(res), nil
}

// FacetsArgs matches the facets query arguments.
type FacetsArgs struct {
	CategoryUids *[]string
}

func (r *RootResolver) Facets(ctx context.Context, args FacetsArgs) (*gqlmodels.Facets, error) {
	f, err := r.svc.Facets(ctx, list(args.CategoryUids))
	if err != nil {
		return nil, err
	}
	return mapFacets(f), nil
}

func (r *RootResolver) Categories(ctx context.Context) ([]*gqlmodels.FilterOption, error) {
	opts, err := r.svc.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return mapOptions(opts), nil
}

// ProductArgs matches the product query arguments.
type ProductArgs struct {
	Slug string
}

func (r *RootResolver) Product(ctx context.Context, args ProductArgs) (*gqlmodels.ProductDetail, error) {
	d, err := r.svc.ProductDetail(ctx, args.Slug)
	if errors.Is(err, resolver.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mapDetail(d), nil
}

// ExtensionArgs for _extension(name, args).
type ExtensionArgs struct {
	Name string
	Args *string
}

func (r *RootResolver) Extension(ctx context.Context, args ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := registry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// NewSchema parses the schema and returns a graphql-go Schema over svc.
func NewSchema(svc *storefront.Service) (*gql.Schema, error) {
	root := &RootResolver{svc: svc, validate: validator.New()}
	return gql.ParseSchema(graphql.Schema(), root, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
