package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherClient_NoEndpoint(t *testing.T) {
	client := newWeatherClient("")

	report, err := client.Current(context.Background(), "Lisbon", "Portugal")
	require.NoError(t, err)
	assert.Contains(t, report, "Lisbon, Portugal")
}

func TestWeatherClient_Endpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/current", r.URL.Path)
		assert.Equal(t, "Lisbon", r.URL.Query().Get("city"))
		assert.Equal(t, "Portugal", r.URL.Query().Get("state"))
		fmt.Fprintln(w, "Sunny, 21°C")
	}))
	defer server.Close()

	client := newWeatherClient(server.URL)

	report, err := client.Current(context.Background(), "Lisbon", "Portugal")
	require.NoError(t, err)
	assert.Equal(t, "Sunny, 21°C", report)
}

func TestWeatherClient_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unknown city", http.StatusNotFound)
	}))
	defer server.Close()

	client := newWeatherClient(server.URL)

	_, err := client.Current(context.Background(), "Nowhere", "XX")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
