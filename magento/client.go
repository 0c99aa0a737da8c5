package magento

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"storefront.GO/config"
)

// GraphQLRequest is the standard GraphQL request body.
type GraphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// GraphQLResponse is the standard GraphQL response.
type GraphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

type GraphQLError struct {
	Message string        `json:"message"`
	Path    []interface{} `json:"path,omitempty"`
}

// Client talks to the Magento storefront GraphQL API.
type Client struct {
	endpoint   string
	storeCode  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for cfg. An empty endpoint is allowed; calls then
// fail with ErrNotConfigured.
func NewClient(cfg config.MagentoConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		endpoint:  strings.TrimSpace(cfg.Endpoint),
		storeCode: cfg.StoreCode,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.Named("magento"),
	}
}

// Configured reports whether an endpoint is set.
func (c *Client) Configured() bool {
	return c.endpoint != ""
}

func (c *Client) store(ctx context.Context) string {
	if s := StoreFromContext(ctx); s != "" {
		return s
	}
	return c.storeCode
}

// Execute runs a query. Non-2xx answers and GraphQL errors are returned as *UpstreamError,
// network and decoding failures as *TransportError.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]interface{}) (*GraphQLResponse, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	jsonData, err := json.Marshal(GraphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if store := c.store(ctx); store != "" {
		req.Header.Set(HeaderStore, store)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("GraphQL fetch failed", zap.Error(err))
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	var gqlResp GraphQLResponse
	decodeErr := json.Unmarshal(body, &gqlResp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		uerr := &UpstreamError{Status: resp.StatusCode, Messages: messages(gqlResp.Errors)}
		if len(uerr.Messages) == 0 {
			uerr.Messages = []string{http.StatusText(resp.StatusCode)}
		}
		c.logger.Error("GraphQL fetch failed", zap.Int("status", resp.StatusCode), zap.Strings("errors", uerr.Messages))
		return nil, uerr
	}
	if decodeErr != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to unmarshal response: %w", decodeErr)}
	}
	if len(gqlResp.Errors) > 0 {
		msgs := messages(gqlResp.Errors)
		c.logger.Warn("GraphQL errors", zap.Strings("errors", msgs))
		return nil, &UpstreamError{Status: resp.StatusCode, Messages: msgs}
	}
	if len(gqlResp.Data) == 0 || string(gqlResp.Data) == "null" {
		c.logger.Error("GraphQL empty data")
		return nil, &UpstreamError{Status: resp.StatusCode, Messages: []string{"empty response"}}
	}
	return &gqlResp, nil
}

// Query runs query and decodes its data into out.
func (c *Client) Query(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	resp, err := c.Execute(ctx, query, variables)
	if err != nil {
		return err
	}
	if err := decodeGraph(resp.Data, out); err != nil {
		return &TransportError{Err: err}
	}
	return nil
}

func messages(errs []GraphQLError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		if e.Message != "" {
			out = append(out, e.Message)
		}
	}
	return out
}
