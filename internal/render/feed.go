package render

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/ternarybob/finflow/internal/models"
)

// EmptyFeedMessage is shown when the feed loads successfully but carries no
// stories. This is an informational state, not a failure.
const EmptyFeedMessage = "No news available yet. Stories are being processed in the background - check back shortly."

// displayTimeFormat is a medium date / short time layout for card headers.
const displayTimeFormat = "Jan 2, 2006 15:04"

// NewsCards renders the ordered story list into one card fragment per item,
// concatenated in feed order. The client never reorders, filters, or
// deduplicates; an empty list renders the shared message view instead.
func NewsCards(items []models.NewsItem) string {
	if len(items) == 0 {
		return MessageView(EmptyFeedMessage)
	}

	var b strings.Builder
	for _, item := range items {
		writeCard(&b, item)
	}
	return b.String()
}

// MessageView renders the shared message fragment used for feed errors and
// the empty-feed state.
func MessageView(message string) string {
	return fmt.Sprintf(`<div class="feed-message"><p>%s</p></div>`, template.HTMLEscapeString(message))
}

func writeCard(b *strings.Builder, item models.NewsItem) {
	analysis := item.Analysis.Resolve()

	fmt.Fprintf(b, `<article class="news-card sentiment-%s">`, strings.ToLower(template.HTMLEscapeString(analysis.Sentiment)))
	fmt.Fprintf(b,
		`<div class="news-meta"><span class="news-source">%s</span><time class="news-time" datetime="%s">%s</time></div>`,
		template.HTMLEscapeString(item.Source),
		template.HTMLEscapeString(item.Published),
		template.HTMLEscapeString(displayTime(item.Published)),
	)
	fmt.Fprintf(b,
		`<h3 class="news-title"><a href="%s" target="_blank" rel="noopener">%s</a></h3>`,
		template.HTMLEscapeString(item.Link),
		template.HTMLEscapeString(item.Title),
	)
	fmt.Fprintf(b, `<p class="news-summary">%s</p>`, template.HTMLEscapeString(analysis.Summary))
	fmt.Fprintf(b,
		`<div class="news-analysis"><span class="news-sentiment">%s</span><span class="news-impact">Impact: %s</span></div>`,
		template.HTMLEscapeString(analysis.Sentiment),
		template.HTMLEscapeString(analysis.Impact),
	)
	b.WriteString(`</article>`)
}

// displayTime formats the published timestamp for human display. The raw
// value is kept verbatim in the datetime attribute; a timestamp that does not
// parse as RFC 3339 is displayed as-is rather than rejected.
func displayTime(published string) string {
	t, err := time.Parse(time.RFC3339, published)
	if err != nil {
		return published
	}
	return t.Format(displayTimeFormat)
}
