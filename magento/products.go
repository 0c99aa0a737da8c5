package magento

import (
	"context"
	"strings"
)

// SortDirection values accepted by ProductAttributeSortInput.
const (
	SortASC  = "ASC"
	SortDESC = "DESC"
)

// ProductsInput are the variables of a product listing call.
type ProductsInput struct {
	Page     int
	PageSize int
	Sort     map[string]string
	Filter   Filter
}

// Filter is a ProductAttributeFilterInput keyed by attribute code.
type Filter map[string]interface{}

// In adds an `in` condition for code. Empty value lists are ignored.
func (f Filter) In(code string, values ...string) Filter {
	if code == "" || len(values) == 0 {
		return f
	}
	f[code] = map[string]interface{}{"in": values}
	return f
}

// Range adds a from/to condition. Bounds are sent as strings, a nil bound is omitted.
func (f Filter) Range(code string, from, to *string) Filter {
	if from == nil && to == nil {
		return f
	}
	cond := map[string]interface{}{}
	if from != nil {
		cond["from"] = *from
	}
	if to != nil {
		cond["to"] = *to
	}
	f[code] = cond
	return f
}

// Match adds a full-text `match` condition.
func (f Filter) Match(code, term string) Filter {
	if term == "" {
		return f
	}
	f[code] = map[string]interface{}{"match": term}
	return f
}

type productsData struct {
	Products *ProductsResult `json:"products"`
}

func (d productsData) result() *ProductsResult {
	if d.Products == nil {
		return &ProductsResult{}
	}
	return d.Products
}

// Products runs the listing query with aggregations.
func (c *Client) Products(ctx context.Context, in ProductsInput) (*ProductsResult, error) {
	vars := map[string]interface{}{
		"pageSize":    in.PageSize,
		"currentPage": in.Page,
	}
	if len(in.Sort) > 0 {
		vars["sort"] = in.Sort
	}
	if len(in.Filter) > 0 {
		vars["filter"] = map[string]interface{}(in.Filter)
	} else {
		vars["filter"] = map[string]interface{}{}
	}
	var data productsData
	if err := c.Query(ctx, productsQuery, vars, &data); err != nil {
		return nil, err
	}
	return data.result(), nil
}

// Facets returns the aggregation buckets of the whole catalog, or of the given
// categories. Only one item is requested.
func (c *Client) Facets(ctx context.Context, categoryUIDs []string) ([]Aggregation, error) {
	vars := map[string]interface{}{
		"pageSize":    1,
		"currentPage": 1,
		"search":      " ",
	}
	if len(categoryUIDs) > 0 {
		vars["filter"] = map[string]interface{}(Filter{}.In("category_uid", categoryUIDs...))
	}
	var data productsData
	if err := c.Query(ctx, facetsQuery, vars, &data); err != nil {
		return nil, err
	}
	return data.result().Aggregations, nil
}

// ProductsByURLKey runs the detail query for one url key.
func (c *Client) ProductsByURLKey(ctx context.Context, urlKey string) ([]*Product, error) {
	var data productsData
	if err := c.Query(ctx, productDetailQuery, map[string]interface{}{"urlKey": urlKey}, &data); err != nil {
		return nil, err
	}
	return data.result().Items, nil
}

// SearchProducts runs a full-text product search.
func (c *Client) SearchProducts(ctx context.Context, term string, pageSize int) ([]*Product, error) {
	vars := map[string]interface{}{"search": term, "pageSize": pageSize}
	var data productsData
	if err := c.Query(ctx, searchQuery, vars, &data); err != nil {
		return nil, err
	}
	return data.result().Items, nil
}

// ResolveURL asks the url resolver for the canonical route of url. A nil
// resolution with a nil error means the url is unknown.
func (c *Client) ResolveURL(ctx context.Context, url string) (*URLResolution, error) {
	var data struct {
		URLResolver *URLResolution `json:"urlResolver"`
	}
	if err := c.Query(ctx, urlResolverQuery, map[string]interface{}{"url": url}, &data); err != nil {
		return nil, err
	}
	return data.URLResolver, nil
}

// Categories returns the children of the root catalog category, two levels deep.
func (c *Client) Categories(ctx context.Context) ([]*Category, error) {
	var data struct {
		CategoryList []*Category `json:"categoryList"`
	}
	if err := c.Query(ctx, categoryTreeQuery, nil, &data); err != nil {
		return nil, err
	}
	if len(data.CategoryList) == 0 || data.CategoryList[0] == nil {
		return nil, nil
	}
	return data.CategoryList[0].Children, nil
}

// SortByPrice builds the sort input, ASC only for "price_asc".
func SortByPrice(sort string) map[string]string {
	if strings.EqualFold(sort, "price_asc") {
		return map[string]string{"price": SortASC}
	}
	return map[string]string{"price": SortDESC}
}
