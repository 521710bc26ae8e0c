package news

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/finflow/internal/common"
	"github.com/ternarybob/finflow/internal/interfaces"
	"github.com/ternarybob/finflow/internal/models"
)

// maxPerFeed caps how many items are taken from a single source per refresh
// so one chatty feed cannot crowd out the others.
const maxPerFeed = 15

// Service aggregates financial news from configured RSS/Atom feeds into
// article storage. When no feeds are configured it falls back to a built-in
// seed set so the dashboard is never empty in development.
type Service struct {
	config  *common.NewsConfig
	storage interfaces.ArticleStorage
	parser  *gofeed.Parser
	logger  arbor.ILogger
}

// NewService creates a news aggregation service.
func NewService(config *common.NewsConfig, storage interfaces.ArticleStorage, logger arbor.ILogger) *Service {
	return &Service{
		config:  config,
		storage: storage,
		parser:  gofeed.NewParser(),
		logger:  logger,
	}
}

// Refresh pulls every configured feed and persists new articles. Per-feed
// failures are logged and skipped; the refresh only fails when nothing could
// be stored at all.
func (s *Service) Refresh(ctx context.Context) error {
	if len(s.config.Feeds) == 0 {
		return s.seed(ctx)
	}

	var stored, failed int
	for _, feedURL := range s.config.Feeds {
		n, err := s.refreshFeed(ctx, feedURL)
		if err != nil {
			failed++
			s.logger.Warn().Err(err).Str("feed", feedURL).Msg("Feed refresh failed")
			continue
		}
		stored += n
	}

	if failed == len(s.config.Feeds) {
		return fmt.Errorf("all %d feeds failed", failed)
	}

	s.logger.Info().
		Int("stored", stored).
		Int("feeds", len(s.config.Feeds)).
		Int("failed", failed).
		Msg("News refresh complete")
	return nil
}

// Latest returns up to limit stored articles, newest first.
func (s *Service) Latest(ctx context.Context, limit int) ([]*models.Article, error) {
	return s.storage.Latest(ctx, limit)
}

func (s *Service) refreshFeed(ctx context.Context, feedURL string) (int, error) {
	feed, err := s.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to parse feed: %w", err)
	}

	source := strings.TrimSpace(feed.Title)
	if source == "" {
		source = hostOf(feedURL)
	}

	stored := 0
	for i, item := range feed.Items {
		if i >= maxPerFeed {
			break
		}
		if item.Link == "" || item.Title == "" {
			continue
		}

		existing, err := s.storage.GetByLink(ctx, item.Link)
		if err != nil {
			return stored, err
		}
		if existing != nil {
			continue
		}

		article := &models.Article{
			ID:          uuid.NewString(),
			Source:      source,
			Title:       strings.TrimSpace(item.Title),
			Content:     extractText(firstNonEmpty(item.Content, item.Description)),
			Link:        item.Link,
			PublishedAt: publishedTime(item),
			FetchedAt:   time.Now(),
		}
		if err := s.storage.Save(ctx, article); err != nil {
			return stored, err
		}
		stored++
	}

	return stored, nil
}

// extractText strips HTML markup from feed content, returning collapsed
// plain text for storage and LLM input.
func extractText(html string) string {
	if html == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func publishedTime(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	return time.Now()
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
