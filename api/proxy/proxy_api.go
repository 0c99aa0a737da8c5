package proxy

import (
	"encoding/json"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	"storefront.GO/magento"
)

func init() {
	api.RegisterModule(RegisterProxyRoutes)
}

// RegisterProxyRoutes wires POST /api/magento, a raw GraphQL relay.
func RegisterProxyRoutes(g *echo.Group, deps *api.Deps) {
	log := deps.Log()

	g.POST("/magento", func(c echo.Context) error {
		var req magento.ProxyRequest
		if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
			return api.Error(c, log, api.BadRequest("Invalid JSON payload"), "")
		}
		if req.Query == "" {
			return api.Error(c, log, api.BadRequest("Missing GraphQL query"), "")
		}
		status, body, err := deps.Proxy.Forward(c.Request().Context(), req)
		if err != nil {
			return api.Error(c, log, err, "Failed to reach Magento")
		}
		return c.JSONBlob(status, body)
	})
}
