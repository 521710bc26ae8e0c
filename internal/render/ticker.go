package render

import (
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/ternarybob/finflow/internal/models"
)

// TickerPlaceholder is the fragment shown while no quote data is available.
const TickerPlaceholder = `<div class="ticker-item ticker-placeholder">Fetching market data...</div>`

// Ticker renders the stock mapping into the scrolling ticker fragment.
//
// The quote sequence is emitted twice back to back so the presentation layer
// can scroll by exactly one copy for a seamless loop. Quotes are ordered by
// symbol: the wire mapping carries no order and Go map iteration is
// randomized, so a stable order is required for repeat renders to produce
// identical fragments.
func Ticker(stocks map[string]models.StockQuote) string {
	if len(stocks) == 0 {
		return TickerPlaceholder
	}

	symbols := make([]string, 0, len(stocks))
	for symbol := range stocks {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	var items strings.Builder
	for _, symbol := range symbols {
		writeQuote(&items, stocks[symbol])
	}

	// Two copies, byte-identical.
	sequence := items.String()
	return sequence + sequence
}

func writeQuote(b *strings.Builder, quote models.StockQuote) {
	direction := "negative"
	if quote.Change >= 0 {
		direction = "positive"
	}

	fmt.Fprintf(b,
		`<div class="ticker-item %s"><span class="ticker-symbol">%s</span><span class="ticker-price">%.2f</span><span class="ticker-change">%s (%s%%)</span></div>`,
		direction,
		template.HTMLEscapeString(quote.Symbol),
		quote.Price,
		signedAmount(quote.Change),
		signedAmount(quote.PercentChange),
	)
}

// signedAmount formats a two-decimal value with an explicit "+" for
// non-negative values. Zero renders as "+0.00"; negative values carry the
// "-" from the numeric formatting itself.
func signedAmount(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+%.2f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
