// Package ask answers one-shot market questions grounded in the current
// feed snapshot.
package ask

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/finflow/internal/interfaces"
)

// ErrUnavailable is returned when no LLM provider is configured.
var ErrUnavailable = errors.New("AI assistant is not available")

// contextArticles is how many recent stories are included in the prompt.
const contextArticles = 10

const systemPrompt = `You are a concise financial market assistant for a news dashboard. Answer using the market context provided. If the context does not cover the question, say so briefly. Never give direct financial advice.`

// Service implements interfaces.AskService.
type Service struct {
	llm    interfaces.LLMService
	feed   interfaces.FeedService
	logger arbor.ILogger
}

// NewService creates an ask service. llm may be nil; Ask then returns
// ErrUnavailable.
func NewService(llm interfaces.LLMService, feed interfaces.FeedService, logger arbor.ILogger) *Service {
	return &Service{
		llm:    llm,
		feed:   feed,
		logger: logger,
	}
}

// Ask answers a single question against the current snapshot.
func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	if s.llm == nil {
		return "", ErrUnavailable
	}

	prompt, err := s.buildPrompt(ctx, question)
	if err != nil {
		return "", err
	}

	answer, err := s.llm.Chat(ctx, []interfaces.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate answer: %w", err)
	}

	return strings.TrimSpace(answer), nil
}

func (s *Service) buildPrompt(ctx context.Context, question string) (string, error) {
	data, err := s.feed.MainFeed(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to build market context: %w", err)
	}

	var b strings.Builder
	b.WriteString("Current market context:\n\n")

	if len(data.Stocks) > 0 {
		b.WriteString("Quotes:\n")
		for _, quote := range data.Stocks {
			fmt.Fprintf(&b, "- %s: %.2f (%+.2f, %+.2f%%)\n",
				quote.Symbol, quote.Price, quote.Change, quote.PercentChange)
		}
		b.WriteString("\n")
	}

	if len(data.News) > 0 {
		b.WriteString("Recent headlines:\n")
		for i, item := range data.News {
			if i >= contextArticles {
				break
			}
			fmt.Fprintf(&b, "- [%s] %s", item.Source, item.Title)
			if item.Analysis != nil {
				resolved := item.Analysis.Resolve()
				fmt.Fprintf(&b, " (sentiment: %s)", resolved.Sentiment)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Question: %s", question)
	return b.String(), nil
}
