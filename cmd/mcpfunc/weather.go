package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/loopwork-ai/mcpfunc/internal/httputil"
)

// weatherClient fetches current conditions for the sample weather tool.
// With no endpoint configured it returns a canned report.
type weatherClient struct {
	endpoint string
	client   *http.Client
}

func newWeatherClient(endpoint string) *weatherClient {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = 10 * time.Second
	retryClient.HTTPClient.Timeout = 15 * time.Second
	retryClient.Logger = nil

	client := retryClient.StandardClient()
	client.Transport = &httputil.DefaultHeaderTransport{
		Base: client.Transport,
		Headers: http.Header{
			"Accept":     []string{"text/plain"},
			"User-Agent": []string{"mcpfunc"},
		},
	}

	return &weatherClient{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		client:   client,
	}
}

// Current returns a one-line weather report for the given city and state.
func (c *weatherClient) Current(ctx context.Context, city, state string) (string, error) {
	if c.endpoint == "" {
		return fmt.Sprintf("The weather in %s, %s is sunny with a high of 21°C.", city, state), nil
	}

	query := url.Values{}
	query.Set("city", city)
	query.Set("state", state)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/current?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("error creating weather request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error fetching weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("weather API returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading weather response: %w", err)
	}
	return strings.TrimSpace(string(body)), nil
}
