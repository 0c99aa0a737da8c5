package catalog

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	"storefront.GO/service/storefront"
)

func init() {
	api.RegisterModule(RegisterCatalogRoutes)
}

// RegisterCatalogRoutes wires the listing endpoints under /api.
func RegisterCatalogRoutes(g *echo.Group, deps *api.Deps) {
	log := deps.Log()

	// GET /api/products?page=&pageSize=&sort=&color=&priceFrom=&priceTo=&rooms=&materials=&sizes=&categoryUids=&searchKeyword=
	g.GET("/products", func(c echo.Context) error {
		q, err := parseProductQuery(c)
		if err != nil {
			return api.Error(c, log, err, "Failed to fetch products")
		}
		if err := c.Validate(&q); err != nil {
			return api.Error(c, log, err, "Failed to fetch products")
		}
		res, err := deps.Storefront.Products(c.Request().Context(), q)
		if err != nil {
			return api.Error(c, log, err, "Failed to fetch products")
		}
		return c.JSON(http.StatusOK, res)
	})

	// GET /api/facets?categoryUids=a,b
	g.GET("/facets", func(c echo.Context) error {
		res, err := deps.Storefront.Facets(c.Request().Context(), storefront.SplitList(c.QueryParam("categoryUids")))
		if err != nil {
			return api.Error(c, log, err, "Failed to fetch facets")
		}
		return c.JSON(http.StatusOK, res)
	})

	// GET /api/categories
	g.GET("/categories", func(c echo.Context) error {
		res, err := deps.Storefront.Categories(c.Request().Context())
		if err != nil {
			return api.Error(c, log, err, "Failed to fetch categories")
		}
		return c.JSON(http.StatusOK, res)
	})
}

func intParam(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, api.BadRequest(fmt.Sprintf("invalid %s: %q", name, raw))
	}
	return v, nil
}

func floatParam(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, api.BadRequest(fmt.Sprintf("invalid %s: %q", name, raw))
	}
	return &v, nil
}

func parseProductQuery(c echo.Context) (storefront.ProductQuery, error) {
	q := storefront.ProductQuery{}.WithDefaults()
	var err error
	if q.Page, err = intParam(c, "page", q.Page); err != nil {
		return q, err
	}
	if q.PageSize, err = intParam(c, "pageSize", q.PageSize); err != nil {
		return q, err
	}
	if q.PriceFrom, err = floatParam(c, "priceFrom"); err != nil {
		return q, err
	}
	if q.PriceTo, err = floatParam(c, "priceTo"); err != nil {
		return q, err
	}
	if sort := c.QueryParam("sort"); sort != "" {
		q.Sort = sort
	}
	q.Color = c.QueryParam("color")
	q.Rooms = storefront.SplitList(c.QueryParam("rooms"))
	q.Materials = storefront.SplitList(c.QueryParam("materials"))
	q.Sizes = storefront.SplitList(c.QueryParam("sizes"))
	q.CategoryUIDs = storefront.SplitList(c.QueryParam("categoryUids"))
	q.SearchKeyword = c.QueryParam("searchKeyword")
	return q, nil
}
