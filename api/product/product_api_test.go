package product

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront.GO/api/apitest"
	"storefront.GO/magento"
)

func TestProductDetail_NotFound(t *testing.T) {
	e := apitest.NewServer(apitest.Deps(&apitest.Upstream{}, nil))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/product/unknown-thing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Product not found") {
		t.Errorf("body = %s", rec.Body)
	}
}

func TestProductDetail_WithSnapshot(t *testing.T) {
	up := &apitest.Upstream{ByURLKey: map[string][]*magento.Product{
		"kissen": {{Name: "Kissen", SKU: "K", URLKey: "kissen", PriceRange: apitest.Price(20, 20)}},
	}}
	e := apitest.NewServer(apitest.Deps(up, nil))

	snap := `{"name":"Kissen","sku":"K","variants":[{"sku":"K-1","urlKey":"kissen-1"},{"sku":"K-2","urlKey":"kissen-2"}]}`
	req := httptest.NewRequest(http.MethodPut, "/api/product/kissen/snapshot", strings.NewReader(snap))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("PUT status = %d, want 204: %s", rec.Code, rec.Body)
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/product/kissen", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d, want 200: %s", rec.Code, rec.Body)
	}
	var body struct {
		SKU             string              `json:"sku"`
		Gallery         []string            `json:"gallery"`
		Variants        []map[string]string `json:"variants"`
		VariantChoices  []map[string]string `json:"variantChoices"`
		SelectedVariant map[string]string   `json:"selectedVariant"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.SKU != "K" || len(body.Gallery) != 1 {
		t.Errorf("body = %+v", body)
	}
	if len(body.VariantChoices) != 2 {
		t.Errorf("variantChoices = %v, want snapshot variants", body.VariantChoices)
	}
	if body.SelectedVariant["sku"] != "K-1" {
		t.Errorf("selectedVariant = %v, want K-1", body.SelectedVariant)
	}
}

func TestSnapshot_InvalidJSON(t *testing.T) {
	e := apitest.NewServer(apitest.Deps(&apitest.Upstream{}, nil))
	req := httptest.NewRequest(http.MethodPut, "/api/product/x/snapshot", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
