// Package eodhd provides a client for the EODHD (End of Day Historical Data)
// API. Only the real-time quote surface is exposed; that is all the ticker
// needs.
package eodhd

import (
	"fmt"
	"time"
)

// RealTimeQuote represents a live price snapshot for one symbol.
type RealTimeQuote struct {
	Code          string  `json:"code"`
	Timestamp     int64   `json:"timestamp"`
	Open          float64 `json:"open"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Close         float64 `json:"close"`          // current/last price
	PreviousClose float64 `json:"previousClose"`  // previous day's close
	Change        float64 `json:"change"`         // absolute change from previous close
	ChangePercent float64 `json:"change_p"`       // percentage change from previous close
	Volume        int64   `json:"volume"`
}

// APIError represents an error from the EODHD API.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("EODHD API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// RateLimitError represents a rate limit error.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("EODHD rate limit exceeded, retry after %v", e.RetryAfter)
}
