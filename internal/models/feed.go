package models

// Status values used in API envelopes. Anything other than StatusSuccess is
// treated by clients as a reported failure.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// NewsItem is a single story in the feed payload. Analysis is nil until the
// enrichment pass has run for the underlying article; renderers must treat
// that as a normal state, not an error.
type NewsItem struct {
	Source    string    `json:"source"`
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Published string    `json:"published"`
	Analysis  *Analysis `json:"analysis,omitempty"`
}

// StockQuote is a single ticker entry, keyed by symbol in the feed payload.
type StockQuote struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	PercentChange float64 `json:"percent_change"`
}

// FeedData is the payload of a successful main feed response.
type FeedData struct {
	News   []NewsItem            `json:"news"`
	Stocks map[string]StockQuote `json:"stocks"`
}

// FeedEnvelope is the wire format of GET /api/main_feed.
type FeedEnvelope struct {
	Status  string    `json:"status"`
	Message string    `json:"message,omitempty"`
	Data    *FeedData `json:"data,omitempty"`
}

// AskRequest is the body of POST /api/ask.
type AskRequest struct {
	Question string `json:"question"`
}

// AskEnvelope is the wire format of the ask response.
type AskEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Answer  string `json:"answer,omitempty"`
}
