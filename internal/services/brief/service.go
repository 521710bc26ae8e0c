// Package brief generates a daily market briefing from the current
// headlines: overall sentiment, key themes, and what to watch tomorrow.
package brief

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/finflow/internal/interfaces"
	"github.com/ternarybob/finflow/internal/models"
)

// ErrUnavailable is returned when no LLM provider is configured.
var ErrUnavailable = errors.New("AI briefing is not available")

// contextHeadlines is how many recent stories ground the briefing.
const contextHeadlines = 5

// briefDateFormat matches the long date the briefing displays.
const briefDateFormat = "January 2, 2006"

const systemPrompt = `You are a financial news editor writing a concise daily market briefing. You respond with a single valid JSON object and nothing else - no prose, no code fences.`

// Service implements interfaces.BriefService.
type Service struct {
	llm    interfaces.LLMService
	feed   interfaces.FeedService
	logger arbor.ILogger
}

// NewService creates a briefing service. llm may be nil; Generate then
// returns ErrUnavailable.
func NewService(llm interfaces.LLMService, feed interfaces.FeedService, logger arbor.ILogger) *Service {
	return &Service{
		llm:    llm,
		feed:   feed,
		logger: logger,
	}
}

// Generate builds a briefing from the latest headlines, weighted toward the
// given assets. An empty asset list reads as the general market.
func (s *Service) Generate(ctx context.Context, assets []string) (*models.DailyBrief, error) {
	if s.llm == nil {
		return nil, ErrUnavailable
	}

	prompt, err := s.buildPrompt(ctx, assets)
	if err != nil {
		return nil, err
	}

	response, err := s.llm.Chat(ctx, []interfaces.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate briefing: %w", err)
	}

	brief, err := parseBrief(response)
	if err != nil {
		return nil, err
	}

	// The date is ours to set; never trust the model to echo it back.
	brief.Date = time.Now().Format(briefDateFormat)
	if brief.KeyThemes == nil {
		brief.KeyThemes = []string{}
	}
	if brief.TomorrowWatch == nil {
		brief.TomorrowWatch = []string{}
	}
	return brief, nil
}

func (s *Service) buildPrompt(ctx context.Context, assets []string) (string, error) {
	data, err := s.feed.MainFeed(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to build briefing context: %w", err)
	}

	interest := "general market"
	if cleaned := cleanAssets(assets); len(cleaned) > 0 {
		interest = strings.Join(cleaned, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Write a daily market briefing for a reader interested in: %s.\n\n", interest)

	b.WriteString("Today's key headlines:\n")
	for i, item := range data.News {
		if i >= contextHeadlines {
			break
		}
		fmt.Fprintf(&b, "- %q (%s)\n", item.Title, item.Source)
	}
	if len(data.News) == 0 {
		b.WriteString("- (no headlines available)\n")
	}

	b.WriteString(`
Return a JSON object with exactly these fields:
{
  "market_overview": "<one paragraph on overall market sentiment today: positive, negative, or mixed>",
  "key_themes": ["<2-3 major themes from today's news>"],
  "tomorrow_watch": ["<2-3 things investors should watch tomorrow>"]
}`)
	return b.String(), nil
}

// parseBrief decodes the model response, tolerating code fences and
// surrounding prose around the JSON object.
func parseBrief(response string) (*models.DailyBrief, error) {
	text := strings.TrimSpace(response)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in model response")
	}

	var brief models.DailyBrief
	if err := json.Unmarshal([]byte(text[start:end+1]), &brief); err != nil {
		return nil, fmt.Errorf("failed to decode briefing response: %w", err)
	}
	if strings.TrimSpace(brief.MarketOverview) == "" {
		return nil, fmt.Errorf("briefing response missing market overview")
	}
	return &brief, nil
}

func cleanAssets(assets []string) []string {
	out := make([]string, 0, len(assets))
	for _, a := range assets {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}
