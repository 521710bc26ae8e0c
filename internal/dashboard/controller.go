package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/finflow/internal/models"
	"github.com/ternarybob/finflow/internal/render"
)

// User-facing fallback messages. Underlying errors are logged, never shown.
const (
	FeedConnectMessage = "Could not connect to the server. Please try again later."
	FeedFailedMessage  = "Failed to load data."
	AskPendingMessage  = "Analyzing your question..."
	AskFailedMessage   = "Sorry, an error occurred. Please try again."
)

// Controller owns the dashboard session: the current news and stock slots,
// the single-flight guard for questions, and the wiring between the feed API
// and the view. Both state slots are replaced wholesale on a successful feed
// load and are never merged or mutated in place.
type Controller struct {
	baseURL    string
	httpClient *http.Client
	logger     arbor.ILogger
	view       View

	mu     sync.RWMutex
	news   []models.NewsItem
	stocks map[string]models.StockQuote

	// asking serializes questions: transitions Idle->Pending via
	// CompareAndSwap at the single entry point. Rejected attempts are
	// dropped, not queued.
	asking atomic.Bool
}

// Option configures the Controller.
type Option func(*Controller)

// WithHTTPClient sets a custom HTTP client. The controller itself enforces no
// timeout; whatever the supplied transport does is what applies.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Controller) {
		c.httpClient = client
	}
}

// WithLogger sets a logger.
func WithLogger(logger arbor.ILogger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewController creates a dashboard controller talking to the finflow API at
// baseURL and rendering into view.
func NewController(baseURL string, view View, opts ...Option) *Controller {
	c := &Controller{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     arbor.NewLogger(),
		view:       view,
		stocks:     map[string]models.StockQuote{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// News returns the current news slot.
func (c *Controller) News() []models.NewsItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.news
}

// Stocks returns the current stock slot.
func (c *Controller) Stocks() map[string]models.StockQuote {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stocks
}

// LoadFeed fetches the main feed once and either replaces both state slots
// and re-renders both views, or renders an error view over the feed area.
// A failed load leaves the in-memory slots untouched: stale state from an
// earlier success stays in memory but is not re-rendered until the next
// successful load. Concurrent loads are not guarded; overlapping responses
// resolve last-response-wins.
func (c *Controller) LoadFeed(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/main_feed", nil)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to build feed request")
		c.view.RenderFeedError(FeedConnectMessage)
		return
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Msg("Feed request failed")
		c.view.RenderFeedError(FeedConnectMessage)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error().Int("status", resp.StatusCode).Msg("Feed request returned failure status")
		c.view.RenderFeedError(FeedConnectMessage)
		return
	}

	var envelope models.FeedEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.logger.Error().Err(err).Msg("Failed to decode feed envelope")
		c.view.RenderFeedError(FeedConnectMessage)
		return
	}

	if envelope.Status != models.StatusSuccess {
		message := envelope.Message
		if message == "" {
			message = FeedFailedMessage
		}
		c.view.RenderFeedError(message)
		return
	}

	// A success envelope without a payload is malformed; treat it the same
	// as a reported failure rather than rendering from nil.
	if envelope.Data == nil {
		c.logger.Warn().Msg("Feed envelope missing data payload")
		c.view.RenderFeedError(FeedFailedMessage)
		return
	}

	news := envelope.Data.News
	stocks := envelope.Data.Stocks
	if stocks == nil {
		stocks = map[string]models.StockQuote{}
	}

	c.mu.Lock()
	c.news = news
	c.stocks = stocks
	c.mu.Unlock()

	c.view.RenderTicker(render.Ticker(stocks))
	c.view.RenderNews(render.NewsCards(news))
}

// Ask submits one question to the ask endpoint and writes the outcome into
// the answer box. An empty question, or a question submitted while another is
// in flight, is silently dropped without touching the view. Once a question
// is accepted the finalization step always runs: guard released, busy UI
// cleared, question input emptied.
func (c *Controller) Ask(ctx context.Context, question string) {
	question = strings.TrimSpace(question)
	if question == "" {
		return
	}
	if !c.asking.CompareAndSwap(false, true) {
		return
	}

	defer func() {
		c.asking.Store(false)
		c.view.SetAskBusy(false)
		c.view.ClearQuestion()
	}()

	c.view.SetAskBusy(true)
	c.view.SetAnswer(AskPendingMessage)

	body, err := json.Marshal(models.AskRequest{Question: question})
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to encode ask request")
		c.view.SetAnswer(AskFailedMessage)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/ask", bytes.NewReader(body))
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to build ask request")
		c.view.SetAnswer(AskFailedMessage)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Msg("Ask request failed")
		c.view.SetAnswer(AskFailedMessage)
		return
	}
	defer resp.Body.Close()

	var envelope models.AskEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.logger.Error().Err(err).Msg("Failed to decode ask envelope")
		c.view.SetAnswer(AskFailedMessage)
		return
	}

	if envelope.Status != models.StatusSuccess {
		c.view.SetAnswer("Error: " + envelope.Message)
		return
	}

	c.view.SetAnswer(envelope.Answer)
}
