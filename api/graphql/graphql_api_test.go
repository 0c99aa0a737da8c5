package graphql

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"storefront.GO/api/apitest"
	"storefront.GO/magento"
)

type gqlResponse struct {
	Data   map[string]json.RawMessage
	Errors []struct{ Message string }
}

func runQuery(t *testing.T, up *apitest.Upstream, query string, variables map[string]interface{}, store string) gqlResponse {
	t.Helper()
	e := echo.New()
	RegisterGraphQLRoutes(e, apitest.Deps(up, nil))

	body := map[string]interface{}{"query": query}
	if variables != nil {
		body["variables"] = variables
	}
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	if store != "" {
		req.Header.Set("Store", store)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	var resp gqlResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp
}

func listing() *apitest.Upstream {
	return &apitest.Upstream{Listing: &magento.ProductsResult{
		TotalCount: 2,
		Items: []*magento.Product{
			{Name: "Teppich Blau", SKU: "T-B", URLKey: "teppich-blau", PriceRange: apitest.Price(70, 100)},
			{Name: "Kissen", SKU: "K", URLKey: "kissen", PriceRange: apitest.Price(20, 20)},
		},
	}}
}

func TestGraphQL_Products(t *testing.T) {
	up := listing()
	resp := runQuery(t, up, `query($size: Int) {
		products(pageSize: $size, sort: "price_asc", rooms: ["wohnzimmer"]) {
			items { name sku badges price { value currency } }
			saleItems { sku }
			totalCount
			colorOptions { label }
		}
	}`, map[string]interface{}{"size": 12}, "benuta_de")
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	var products struct {
		Items []struct {
			Name   string
			SKU    string
			Badges []string
			Price  struct{ Value float64 }
		}
		SaleItems  []struct{ SKU string }
		TotalCount int
	}
	if err := json.Unmarshal(resp.Data["products"], &products); err != nil {
		t.Fatalf("decode products: %v", err)
	}
	if products.TotalCount != 2 || len(products.Items) != 2 {
		t.Fatalf("products = %+v", products)
	}
	if products.Items[0].SKU != "K" || products.Items[1].Name != "Teppich" {
		t.Errorf("items not price sorted: %+v", products.Items)
	}
	if len(products.SaleItems) != 1 || products.SaleItems[0].SKU != "T-B" {
		t.Errorf("saleItems = %+v", products.SaleItems)
	}
	if up.LastInput.PageSize != 12 || up.LastInput.Page != 1 {
		t.Errorf("input = %+v", up.LastInput)
	}
	if up.LastStore != "benuta_de" {
		t.Errorf("store = %q, want benuta_de", up.LastStore)
	}
}

func TestGraphQL_Products_StoreVariable(t *testing.T) {
	up := listing()
	resp := runQuery(t, up, `query { products { totalCount } }`, map[string]interface{}{"__Store": "benuta_ch"}, "benuta_de")
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	if up.LastStore != "benuta_ch" {
		t.Errorf("store = %q, want variables.__Store to win", up.LastStore)
	}
}

func TestGraphQL_Products_Invalid(t *testing.T) {
	resp := runQuery(t, listing(), `query { products(pageSize: 500) { totalCount } }`, nil, "")
	if len(resp.Errors) == 0 {
		t.Fatal("pageSize 500: want validation error")
	}
}

func TestGraphQL_Product(t *testing.T) {
	up := &apitest.Upstream{ByURLKey: map[string][]*magento.Product{
		"kissen": {{Name: "Kissen", SKU: "K", URLKey: "kissen", PriceRange: apitest.Price(20, 20)}},
	}}
	resp := runQuery(t, up, `query {
		found: product(slug: "kissen") { sku gallery selectedVariant { sku } }
		missing: product(slug: "unknown-thing") { sku }
	}`, nil, "")
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	var found struct {
		SKU     string
		Gallery []string
	}
	if err := json.Unmarshal(resp.Data["found"], &found); err != nil {
		t.Fatalf("decode found: %v", err)
	}
	if found.SKU != "K" || len(found.Gallery) != 1 {
		t.Errorf("found = %+v", found)
	}
	if string(resp.Data["missing"]) != "null" {
		t.Errorf("missing = %s, want null", resp.Data["missing"])
	}
}

func TestGraphQL_CategoriesAndFacets(t *testing.T) {
	up := &apitest.Upstream{
		CategoryTree: []*magento.Category{{UID: "MQ==", Name: "Teppiche", Children: []*magento.Category{{UID: "Mg==", Name: "Rund"}}}},
		Aggs: []magento.Aggregation{{AttributeCode: "benuta_color_filter", Options: []*magento.AggregationOption{{Label: "Blau", Value: "12"}}}},
	}
	resp := runQuery(t, up, `query { categories { label value } facets { colorOptions { label value } } }`, nil, "")
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	if !strings.Contains(string(resp.Data["categories"]), "Teppiche / Rund") {
		t.Errorf("categories = %s", resp.Data["categories"])
	}
	if !strings.Contains(string(resp.Data["facets"]), `"Blau"`) {
		t.Errorf("facets = %s", resp.Data["facets"])
	}
}

func TestPlayground(t *testing.T) {
	e := echo.New()
	RegisterGraphQLRoutes(e, apitest.Deps(&apitest.Upstream{}, nil))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/playground", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "GraphQLPlayground") {
		t.Errorf("playground status = %d", rec.Code)
	}
}
