package graphql

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"storefront.GO/magento"
)

// The store view for the current request.
// Resolved from: __Store query param > JSON variables.__Store > Store header
const (
	HeaderStore     = magento.HeaderStore
	QueryParamStore = "__Store"
	VarStore        = "__Store"
)

// StoreFromRequest extracts the store view code from r. The POST body is
// read and restored so the GraphQL handler can still decode it.
func StoreFromRequest(r *http.Request) string {
	if q := strings.TrimSpace(r.URL.Query().Get(QueryParamStore)); q != "" {
		return q
	}
	if r.Method == http.MethodPost && r.Body != nil {
		body, err := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))
		if err == nil {
			if code, ok := ParseStoreFromVariables(body); ok {
				return code
			}
		}
	}
	return strings.TrimSpace(r.Header.Get(HeaderStore))
}

// ParseStoreFromVariables reads variables.__Store from a GraphQL request body.
func ParseStoreFromVariables(body []byte) (string, bool) {
	var payload struct {
		Variables map[string]interface{} `json:"variables"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Variables == nil {
		return "", false
	}
	switch val := payload.Variables[VarStore].(type) {
	case string:
		if v := strings.TrimSpace(val); v != "" {
			return v, true
		}
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	}
	return "", false
}

// StoreMiddleware attaches the request store view to the context.
func StoreMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := magento.WithStore(r.Context(), StoreFromRequest(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
