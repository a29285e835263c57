package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is the shared outbound HTTP client.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a resty client with the given timeout and a
// descriptive user agent.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", "go-pixel-analytics")

	return &HTTPClient{Client: client}
}
