package utils

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient whose cookies live in jar. Passing the
// same jar to several clients makes them share one set of session
// credentials. A nil jar keeps resty's own default jar.
func NewHTTPClient(jar http.CookieJar) *HTTPClient {
	client := resty.New()
	if jar != nil {
		client.SetCookieJar(jar)
	}

	return &HTTPClient{Client: client}
}
