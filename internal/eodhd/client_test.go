package eodhd

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRealTimeQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/real-time/AAPL.US", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_token"))
		assert.Equal(t, "json", r.URL.Query().Get("fmt"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":"AAPL.US","timestamp":1767100000,"open":254.1,"high":256.9,"low":253.2,"close":255.45,"previousClose":253.3,"change":2.15,"change_p":0.8489,"volume":48210000}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))

	quote, err := client.GetRealTimeQuote(context.Background(), "AAPL.US")
	require.NoError(t, err)
	assert.Equal(t, "AAPL.US", quote.Code)
	assert.Equal(t, 255.45, quote.Close)
	assert.Equal(t, 2.15, quote.Change)
	assert.Equal(t, 0.8489, quote.ChangePercent)
}

func TestGetRealTimeQuote_FillsMissingCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"close":100.5,"change":1.5,"change_p":1.51}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))

	quote, err := client.GetRealTimeQuote(context.Background(), "MSFT.US")
	require.NoError(t, err)
	assert.Equal(t, "MSFT.US", quote.Code)
}

func TestGetRealTimeQuote_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid API token", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient("bad-key", WithBaseURL(srv.URL))

	_, err := client.GetRealTimeQuote(context.Background(), "AAPL.US")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "/real-time/AAPL.US", apiErr.Endpoint)
}
