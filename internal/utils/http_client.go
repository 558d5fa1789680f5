package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries the outbound request identifier.
const RequestIDHeader = "X-Request-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://127.0.0.1:8000", time.Minute)
//	resp, err := client.R().SetContext(ctx).Post("/chat")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty-backed client with the given base URL and
// timeout. Every request gets an [RequestIDHeader] taken from its context
// (see [WithRequestID]) or freshly generated when the context has none.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	ids := NewUUIDGenerator()

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if req.Header.Get(RequestIDHeader) != "" {
				return nil
			}
			requestID, ok := GetRequestIDFromContext(req.Context())
			if !ok {
				requestID = ids.Generate()
			}
			req.SetHeader(RequestIDHeader, requestID)
			return nil
		})

	return &HTTPClient{Client: client}
}
