// Package analysis enriches stored articles with AI-generated sentiment,
// impact, and bilingual summaries. Enrichment is best-effort: a story whose
// analysis fails or has not run yet is served without one, and the dashboard
// renders defined fallbacks.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/finflow/internal/interfaces"
	"github.com/ternarybob/finflow/internal/models"
)

const systemPrompt = `You are a financial news analyst. You respond with a single valid JSON object and nothing else - no prose, no code fences.`

// maxContentChars bounds how much article body is sent per request.
const maxContentChars = 2000

// Service runs the enrichment pass over unanalyzed articles.
type Service struct {
	llm     interfaces.LLMService
	storage interfaces.ArticleStorage
	logger  arbor.ILogger
}

// NewService creates an analysis service. llm may be nil, in which case
// enrichment is disabled and EnrichPending is a no-op.
func NewService(llm interfaces.LLMService, storage interfaces.ArticleStorage, logger arbor.ILogger) *Service {
	return &Service{
		llm:     llm,
		storage: storage,
		logger:  logger,
	}
}

// EnrichPending analyzes up to limit unanalyzed articles. Per-article
// failures are logged and skipped; the pass never fails the caller.
func (s *Service) EnrichPending(ctx context.Context, limit int) {
	if s.llm == nil {
		return
	}

	articles, err := s.storage.Unanalyzed(ctx, limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load unanalyzed articles")
		return
	}
	if len(articles) == 0 {
		return
	}

	enriched := 0
	for _, article := range articles {
		if ctx.Err() != nil {
			return
		}

		result, err := s.analyze(ctx, article)
		if err != nil {
			s.logger.Warn().Err(err).Str("article", article.ID).Msg("Article analysis failed")
			continue
		}

		article.Analysis = result
		if err := s.storage.Save(ctx, article); err != nil {
			s.logger.Error().Err(err).Str("article", article.ID).Msg("Failed to store analysis")
			continue
		}
		enriched++
	}

	s.logger.Info().
		Int("enriched", enriched).
		Int("pending", len(articles)).
		Msg("Enrichment pass complete")
}

// analysisPayload is the JSON shape requested from the model.
type analysisPayload struct {
	Sentiment   string   `json:"sentiment"`
	ImpactScore *float64 `json:"impact_score"`
	SummaryTH   string   `json:"summary_th"`
	SummaryEN   string   `json:"summary_en"`
}

func (s *Service) analyze(ctx context.Context, article *models.Article) (*models.Analysis, error) {
	content := truncateContent(article.Content, maxContentChars)

	prompt := fmt.Sprintf(`Analyze this financial news story for an investor audience.

Title: %q
Content: %q

Return a JSON object with exactly these fields:
{
  "sentiment": "Positive" | "Negative" | "Neutral",
  "impact_score": <number 0-10, how much this could move the market>,
  "summary_th": "<one-paragraph summary in Thai>",
  "summary_en": "<one-paragraph summary in English>"
}`, article.Title, content)

	response, err := s.llm.Chat(ctx, []interfaces.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return nil, err
	}

	payload, err := parsePayload(response)
	if err != nil {
		return nil, err
	}

	return &models.Analysis{
		Sentiment:   normalizeSentiment(payload.Sentiment),
		ImpactScore: payload.ImpactScore,
		SummaryTH:   strings.TrimSpace(payload.SummaryTH),
		SummaryEN:   strings.TrimSpace(payload.SummaryEN),
	}, nil
}

// truncateContent caps the article body at max bytes without splitting a
// multi-byte rune; Thai summaries make invalid UTF-8 here a real hazard.
func truncateContent(content string, max int) string {
	if len(content) <= max {
		return content
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	return content[:cut]
}

// parsePayload decodes the model response, tolerating code fences and
// surrounding prose around the JSON object.
func parsePayload(response string) (*analysisPayload, error) {
	text := strings.TrimSpace(response)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in model response")
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(text[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode analysis response: %w", err)
	}
	return &payload, nil
}

// normalizeSentiment maps free-form model output onto the three supported
// labels, defaulting to Neutral.
func normalizeSentiment(sentiment string) string {
	switch strings.ToLower(strings.TrimSpace(sentiment)) {
	case "positive", "bullish":
		return models.SentimentPositive
	case "negative", "bearish":
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}
