package llm

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable is returned when the resolved provider has no API
// token configured. Checked at call time, not at construction.
var ErrProviderUnavailable = errors.New("llm: provider API token not configured")

// UpstreamError is returned when a provider responds with a non-success
// HTTP status.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s api error (status %d): %s", e.Provider, e.StatusCode, e.Body)
}
