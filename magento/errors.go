package magento

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotConfigured is returned by every call when no endpoint is configured.
var ErrNotConfigured = errors.New("magento endpoint is not configured")

// UpstreamError is a non-2xx answer or a GraphQL errors array.
type UpstreamError struct {
	Status   int
	Messages []string
}

func (e *UpstreamError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("magento: upstream status %d", e.Status)
	}
	return fmt.Sprintf("magento: upstream status %d: %s", e.Status, strings.Join(e.Messages, "; "))
}

// TransportError means the upstream could not be reached or answered garbage.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "magento: transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
