package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client for outbound calls to third-party APIs.
// The embedded client exposes the full resty API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client rooted at baseURL. A non-positive timeout
// leaves requests bounded only by their context.
//
//	client := utils.NewHTTPClient("https://proj.supabase.co", 30*time.Second)
//	resp, err := client.R().SetContext(ctx).Get("/storage/v1/bucket")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(strings.TrimRight(baseURL, "/"))
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
