package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/finflow/internal/models"
)

func TestTicker_EmptyRendersPlaceholder(t *testing.T) {
	assert.Equal(t, TickerPlaceholder, Ticker(nil))
	assert.Equal(t, TickerPlaceholder, Ticker(map[string]models.StockQuote{}))
}

func TestTicker_FormatsGainAndLoss(t *testing.T) {
	stocks := map[string]models.StockQuote{
		"AAPL": {Symbol: "AAPL", Price: 255.45, Change: 2.15, PercentChange: 0.85},
		"TSLA": {Symbol: "TSLA", Price: 185.1, Change: -3.25, PercentChange: -1.72},
	}

	out := Ticker(stocks)

	assert.Contains(t, out, `<div class="ticker-item positive"><span class="ticker-symbol">AAPL</span><span class="ticker-price">255.45</span><span class="ticker-change">+2.15 (+0.85%)</span></div>`)
	assert.Contains(t, out, `<div class="ticker-item negative"><span class="ticker-symbol">TSLA</span><span class="ticker-price">185.10</span><span class="ticker-change">-3.25 (-1.72%)</span></div>`)
}

func TestTicker_ZeroChangeRendersPositive(t *testing.T) {
	stocks := map[string]models.StockQuote{
		"MSFT": {Symbol: "MSFT", Price: 420, Change: 0, PercentChange: 0},
	}

	out := Ticker(stocks)

	assert.Contains(t, out, `ticker-item positive`)
	assert.Contains(t, out, `+0.00 (+0.00%)`)
	assert.NotContains(t, out, "negative")
}

func TestTicker_SequenceDuplicatedExactly(t *testing.T) {
	stocks := map[string]models.StockQuote{
		"AAPL": {Symbol: "AAPL", Price: 255.45, Change: 2.15, PercentChange: 0.85},
		"NVDA": {Symbol: "NVDA", Price: 131.2, Change: 1.1, PercentChange: 0.84},
	}

	out := Ticker(stocks)

	require.Zero(t, len(out)%2)
	half := len(out) / 2
	assert.Equal(t, out[:half], out[half:])
	assert.Equal(t, 2, strings.Count(out, "AAPL"))
}

func TestTicker_RepeatRendersIdentical(t *testing.T) {
	stocks := map[string]models.StockQuote{
		"AAPL": {Symbol: "AAPL", Price: 1, Change: 1, PercentChange: 1},
		"MSFT": {Symbol: "MSFT", Price: 2, Change: -2, PercentChange: -2},
		"NVDA": {Symbol: "NVDA", Price: 3, Change: 0, PercentChange: 0},
		"TSLA": {Symbol: "TSLA", Price: 4, Change: 4, PercentChange: 4},
	}

	first := Ticker(stocks)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Ticker(stocks))
	}
}

func TestTicker_OrderedBySymbol(t *testing.T) {
	stocks := map[string]models.StockQuote{
		"TSLA": {Symbol: "TSLA", Price: 1, Change: 1, PercentChange: 1},
		"AAPL": {Symbol: "AAPL", Price: 1, Change: 1, PercentChange: 1},
		"MSFT": {Symbol: "MSFT", Price: 1, Change: 1, PercentChange: 1},
	}

	out := Ticker(stocks)

	assert.Less(t, strings.Index(out, "AAPL"), strings.Index(out, "MSFT"))
	assert.Less(t, strings.Index(out, "MSFT"), strings.Index(out, "TSLA"))
}
