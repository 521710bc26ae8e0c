package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ternarybob/finflow/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestNewsCards_EmptyRendersMessage(t *testing.T) {
	out := NewsCards(nil)

	assert.Equal(t, MessageView(EmptyFeedMessage), out)
	assert.Contains(t, out, "No news available yet")
}

func TestNewsCards_FullyAnalyzedStory(t *testing.T) {
	items := []models.NewsItem{
		{
			Source:    "Reuters",
			Title:     "Fed Holds Rates Steady",
			Link:      "https://example.com/fed",
			Published: "2026-08-30T14:30:00Z",
			Analysis: &models.Analysis{
				Sentiment:   models.SentimentPositive,
				ImpactScore: floatPtr(8),
				SummaryTH:   "ธนาคารกลางคงอัตราดอกเบี้ย",
				SummaryEN:   "The central bank held rates.",
			},
		},
	}

	out := NewsCards(items)

	assert.Contains(t, out, `<article class="news-card sentiment-positive">`)
	assert.Contains(t, out, `<span class="news-source">Reuters</span>`)
	assert.Contains(t, out, `datetime="2026-08-30T14:30:00Z"`)
	assert.Contains(t, out, `>Aug 30, 2026 14:30</time>`)
	assert.Contains(t, out, `<a href="https://example.com/fed" target="_blank" rel="noopener">Fed Holds Rates Steady</a>`)
	// Thai summary wins over English when both are present
	assert.Contains(t, out, "ธนาคารกลางคงอัตราดอกเบี้ย")
	assert.NotContains(t, out, "The central bank held rates.")
	assert.Contains(t, out, `<span class="news-impact">Impact: 8</span>`)
}

func TestNewsCards_MissingAnalysisUsesDefaults(t *testing.T) {
	items := []models.NewsItem{
		{Source: "Bloomberg", Title: "Untitled", Link: "https://example.com/x", Published: "2026-08-30T10:00:00Z"},
	}

	out := NewsCards(items)

	assert.Contains(t, out, "sentiment-neutral")
	assert.Contains(t, out, models.SummaryUnavailable)
	assert.Contains(t, out, "Impact: N/A")
}

func TestNewsCards_PartialAnalysisFillsOnlyMissingFields(t *testing.T) {
	items := []models.NewsItem{
		{
			Source:    "CNBC",
			Title:     "Oil Slides",
			Link:      "https://example.com/oil",
			Published: "2026-08-30T10:00:00Z",
			Analysis:  &models.Analysis{Sentiment: models.SentimentNegative, SummaryEN: "Crude fell sharply."},
		},
	}

	out := NewsCards(items)

	assert.Contains(t, out, "sentiment-negative")
	assert.Contains(t, out, "Crude fell sharply.")
	assert.Contains(t, out, "Impact: N/A")
}

func TestNewsCards_UnparseableTimestampShownRaw(t *testing.T) {
	items := []models.NewsItem{
		{Source: "AP", Title: "t", Link: "https://example.com", Published: "yesterday-ish"},
	}

	out := NewsCards(items)

	assert.Contains(t, out, `datetime="yesterday-ish"`)
	assert.Contains(t, out, `>yesterday-ish</time>`)
}

func TestNewsCards_PreservesFeedOrder(t *testing.T) {
	items := []models.NewsItem{
		{Source: "s", Title: "first", Link: "l", Published: "p"},
		{Source: "s", Title: "second", Link: "l", Published: "p"},
	}

	out := NewsCards(items)

	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
}

func TestNewsCards_EscapesUntrustedText(t *testing.T) {
	items := []models.NewsItem{
		{Source: "<script>", Title: `"quoted" & <b>`, Link: "https://example.com/?a=1&b=2", Published: "p"},
	}

	out := NewsCards(items)

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "&amp;b=2")
}

func TestNewsCards_Idempotent(t *testing.T) {
	items := []models.NewsItem{
		{Source: "Reuters", Title: "a", Link: "l", Published: "2026-08-30T10:00:00Z"},
		{Source: "AP", Title: "b", Link: "l2", Published: "2026-08-30T11:00:00Z"},
	}

	first := NewsCards(items)
	assert.Equal(t, first, NewsCards(items))
}
