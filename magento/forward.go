package magento

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// ProxyRequest is a caller-built GraphQL call relayed verbatim to the upstream.
type ProxyRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
	Headers   map[string]string      `json:"headers,omitempty"`
}

// Forward posts req to the upstream and returns its status and JSON body
// untouched. Content-Type and Store are defaulted, caller headers override them.
// A body that is not JSON is reported as a *TransportError.
func (c *Client) Forward(ctx context.Context, req ProxyRequest) (int, json.RawMessage, error) {
	if !c.Configured() {
		return 0, nil, ErrNotConfigured
	}
	payload, err := json.Marshal(GraphQLRequest{Query: req.Query, Variables: req.Variables})
	if err != nil {
		return 0, nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if store := c.store(ctx); store != "" {
		httpReq.Header.Set(HeaderStore, store)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Magento proxy failed", zap.Error(err))
		return 0, nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &TransportError{Err: err}
	}
	if !json.Valid(body) {
		c.logger.Error("Magento proxy returned invalid JSON", zap.Int("status", resp.StatusCode))
		return 0, nil, &TransportError{Err: fmt.Errorf("invalid JSON from upstream (status %d)", resp.StatusCode)}
	}
	return resp.StatusCode, json.RawMessage(body), nil
}
