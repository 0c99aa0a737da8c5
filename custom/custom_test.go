package custom

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	gqlregistry "storefront.GO/graphql/registry"
)

func TestHealth(t *testing.T) {
	e := echo.New()
	api.ApplyRoutes(e, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("GET /health = %d %s", rec.Code, rec.Body)
	}
}

func TestInspectSlug_Registered(t *testing.T) {
	out, err := gqlregistry.Resolve(context.Background(), "slug", map[string]interface{}{"slug": "/teppich-blau.html"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	m := out.(map[string]string)
	if m["urlKey"] != "teppich-blau" {
		t.Errorf("urlKey = %q, want teppich-blau", m["urlKey"])
	}
}

func TestInspectSlug_Missing(t *testing.T) {
	if _, err := InspectSlug(context.Background(), map[string]interface{}{}); err == nil {
		t.Error("missing slug: want error")
	}
}
