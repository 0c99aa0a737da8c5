package magento

import "context"

type contextKey string

const ctxKeyStore contextKey = "store"

// HeaderStore is the upstream store-view header.
const HeaderStore = "Store"

// WithStore attaches a store view code to ctx. Upstream calls made with ctx
// send it instead of the configured default.
func WithStore(ctx context.Context, code string) context.Context {
	if code == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKeyStore, code)
}

// StoreFromContext returns the store view code attached to ctx, or "".
func StoreFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyStore).(string); ok {
		return v
	}
	return ""
}
