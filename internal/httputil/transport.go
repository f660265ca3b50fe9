package httputil

import "net/http"

// DefaultHeaderTransport is a RoundTripper that sets default headers on
// every outgoing request, without overriding headers the request already
// carries.
type DefaultHeaderTransport struct {
	Base    http.RoundTripper
	Headers http.Header
}

func (t *DefaultHeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	for key, values := range t.Headers {
		if req.Header.Get(key) != "" {
			continue
		}
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}
