// Package stocks maintains the in-memory quote snapshot behind the ticker.
package stocks

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ternarybob/arbor"
	"golang.org/x/sync/errgroup"

	"github.com/ternarybob/finflow/internal/eodhd"
	"github.com/ternarybob/finflow/internal/models"
)

// fetchConcurrency bounds parallel quote requests per refresh.
const fetchConcurrency = 4

// Service fetches real-time quotes for the configured symbols and holds the
// latest snapshot. The snapshot is replaced wholesale on each refresh; a
// symbol whose fetch fails is dropped from that snapshot and logged.
type Service struct {
	client  *eodhd.Client
	symbols []string
	logger  arbor.ILogger

	mu       sync.RWMutex
	snapshot map[string]models.StockQuote
}

// NewService creates a stock quote service. client may be nil (no API key),
// in which case the snapshot stays empty and the ticker shows its
// fetching placeholder.
func NewService(client *eodhd.Client, symbols []string, logger arbor.ILogger) *Service {
	return &Service{
		client:   client,
		symbols:  symbols,
		logger:   logger,
		snapshot: map[string]models.StockQuote{},
	}
}

// Refresh fetches quotes for all configured symbols concurrently and
// replaces the snapshot with whatever succeeded.
func (s *Service) Refresh(ctx context.Context) error {
	if s.client == nil || len(s.symbols) == 0 {
		return nil
	}

	var mu sync.Mutex
	quotes := make(map[string]models.StockQuote, len(s.symbols))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for _, symbol := range s.symbols {
		g.Go(func() error {
			quote, err := s.client.GetRealTimeQuote(ctx, symbol)
			if err != nil {
				// Degrade per symbol; a partial ticker beats none.
				s.logger.Warn().Err(err).Str("symbol", symbol).Msg("Quote fetch failed")
				return nil
			}

			display := displaySymbol(symbol)
			mu.Lock()
			quotes[display] = models.StockQuote{
				Symbol:        display,
				Price:         quote.Close,
				Change:        quote.Change,
				PercentChange: quote.ChangePercent,
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("quote refresh aborted: %w", err)
	}

	s.mu.Lock()
	s.snapshot = quotes
	s.mu.Unlock()

	s.logger.Info().
		Int("quotes", len(quotes)).
		Int("symbols", len(s.symbols)).
		Msg("Quote refresh complete")
	return nil
}

// Snapshot returns a copy of the current quote mapping.
func (s *Service) Snapshot() map[string]models.StockQuote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]models.StockQuote, len(s.snapshot))
	for k, v := range s.snapshot {
		out[k] = v
	}
	return out
}

// displaySymbol strips the exchange suffix from an EODHD symbol for display
// ("AAPL.US" -> "AAPL").
func displaySymbol(symbol string) string {
	if i := strings.Index(symbol, "."); i > 0 {
		return symbol[:i]
	}
	return symbol
}
