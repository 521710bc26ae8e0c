// Package feed assembles the combined dashboard payload from article storage
// and the stock snapshot.
package feed

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/finflow/internal/interfaces"
	"github.com/ternarybob/finflow/internal/models"
	"github.com/ternarybob/finflow/internal/services/stocks"
)

// Service implements interfaces.FeedService.
type Service struct {
	storage interfaces.ArticleStorage
	stocks  *stocks.Service
	limit   int
	logger  arbor.ILogger
}

// NewService creates a feed service serving up to limit stories per payload.
func NewService(storage interfaces.ArticleStorage, stocks *stocks.Service, limit int, logger arbor.ILogger) *Service {
	return &Service{
		storage: storage,
		stocks:  stocks,
		limit:   limit,
		logger:  logger,
	}
}

// MainFeed returns the current news list (newest first, storage order
// preserved) and the stock mapping. An empty store yields an empty news
// list, not an error.
func (s *Service) MainFeed(ctx context.Context) (*models.FeedData, error) {
	articles, err := s.storage.Latest(ctx, s.limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load articles: %w", err)
	}

	news := make([]models.NewsItem, 0, len(articles))
	for _, article := range articles {
		news = append(news, article.NewsItem())
	}

	return &models.FeedData{
		News:   news,
		Stocks: s.stocks.Snapshot(),
	}, nil
}
