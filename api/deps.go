package api

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"storefront.GO/magento"
	"storefront.GO/service/storefront"
)

// Forwarder relays raw GraphQL calls upstream.
type Forwarder interface {
	Forward(ctx context.Context, req magento.ProxyRequest) (int, json.RawMessage, error)
}

// Deps is handed to every route module.
type Deps struct {
	Storefront *storefront.Service
	Proxy      Forwarder
	Logger     *zap.Logger
}

// Log returns the deps logger or a no-op logger.
func (d *Deps) Log() *zap.Logger {
	if d == nil || d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

