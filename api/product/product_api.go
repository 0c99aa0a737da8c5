package product

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	"storefront.GO/catalog"
)

func init() {
	api.RegisterModule(RegisterProductRoutes)
}

// RegisterProductRoutes wires the product page endpoints under /api/product.
func RegisterProductRoutes(g *echo.Group, deps *api.Deps) {
	log := deps.Log()
	pg := g.Group("/product")

	// GET /api/product/:slug
	pg.GET("/:slug", func(c echo.Context) error {
		slug := strings.TrimSpace(c.Param("slug"))
		if slug == "" {
			return api.Error(c, log, api.BadRequest("Product slug is required"), "")
		}
		d, err := deps.Storefront.ProductDetail(c.Request().Context(), slug)
		if err != nil {
			return api.Error(c, log, err, "Failed to fetch product details")
		}
		return c.JSON(http.StatusOK, d)
	})

	// PUT /api/product/:slug/snapshot stores the listing entry a shopper came from.
	pg.PUT("/:slug/snapshot", func(c echo.Context) error {
		slug := strings.TrimSpace(c.Param("slug"))
		if slug == "" {
			return api.Error(c, log, api.BadRequest("Product slug is required"), "")
		}
		var body catalog.ProductDetail
		if err := c.Bind(&body); err != nil {
			return api.Error(c, log, api.BadRequest("Invalid JSON payload"), "")
		}
		if err := deps.Storefront.SaveSnapshot(c.Request().Context(), slug, &body); err != nil {
			return api.Error(c, log, err, "Failed to store snapshot")
		}
		return c.NoContent(http.StatusNoContent)
	})
}
