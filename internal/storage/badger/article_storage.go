package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/ternarybob/finflow/internal/interfaces"
	"github.com/ternarybob/finflow/internal/models"
)

// ArticleStorage implements the ArticleStorage interface for Badger
type ArticleStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewArticleStorage creates a new ArticleStorage instance
func NewArticleStorage(db *BadgerDB, logger arbor.ILogger) interfaces.ArticleStorage {
	return &ArticleStorage{
		db:     db,
		logger: logger,
	}
}

// Save inserts or updates an article keyed by ID.
func (s *ArticleStorage) Save(ctx context.Context, article *models.Article) error {
	if article.ID == "" {
		return fmt.Errorf("article ID is required")
	}
	if article.FetchedAt.IsZero() {
		article.FetchedAt = time.Now()
	}

	if err := s.db.Store().Upsert(article.ID, article); err != nil {
		return fmt.Errorf("failed to save article: %w", err)
	}
	return nil
}

// Get retrieves an article by ID.
func (s *ArticleStorage) Get(ctx context.Context, id string) (*models.Article, error) {
	var article models.Article
	err := s.db.Store().Get(id, &article)
	if err == badgerhold.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return &article, nil
}

// GetByLink retrieves an article by its canonical link.
func (s *ArticleStorage) GetByLink(ctx context.Context, link string) (*models.Article, error) {
	var articles []models.Article
	if err := s.db.Store().Find(&articles, badgerhold.Where("Link").Eq(link).Limit(1)); err != nil {
		return nil, fmt.Errorf("failed to query article by link: %w", err)
	}
	if len(articles) == 0 {
		return nil, nil
	}
	return &articles[0], nil
}

// Latest returns up to limit articles, newest first by publish time.
func (s *ArticleStorage) Latest(ctx context.Context, limit int) ([]*models.Article, error) {
	query := badgerhold.Where("ID").Ne("").SortBy("PublishedAt").Reverse()
	if limit > 0 {
		query = query.Limit(limit)
	}

	var articles []models.Article
	if err := s.db.Store().Find(&articles, query); err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	result := make([]*models.Article, len(articles))
	for i := range articles {
		result[i] = &articles[i]
	}
	return result, nil
}

// Unanalyzed returns up to limit articles without analysis, newest first.
// Pointer fields are filtered in memory; IsNil() queries can panic in
// badgerhold's reflection path.
func (s *ArticleStorage) Unanalyzed(ctx context.Context, limit int) ([]*models.Article, error) {
	var articles []models.Article
	query := badgerhold.Where("ID").Ne("").SortBy("PublishedAt").Reverse()
	if err := s.db.Store().Find(&articles, query); err != nil {
		return nil, fmt.Errorf("failed to list unanalyzed articles: %w", err)
	}

	result := make([]*models.Article, 0, limit)
	for i := range articles {
		if articles[i].Analyzed() {
			continue
		}
		result = append(result, &articles[i])
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result, nil
}

// Count returns the number of stored articles.
func (s *ArticleStorage) Count(ctx context.Context) (int, error) {
	count, err := s.db.Store().Count(&models.Article{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return int(count), nil
}
