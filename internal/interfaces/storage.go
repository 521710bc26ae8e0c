package interfaces

import (
	"context"

	"github.com/ternarybob/finflow/internal/models"
)

// ArticleStorage persists aggregated news articles and their analysis.
type ArticleStorage interface {
	// Save inserts or updates an article keyed by ID.
	Save(ctx context.Context, article *models.Article) error

	// Get retrieves an article by ID.
	Get(ctx context.Context, id string) (*models.Article, error)

	// GetByLink retrieves an article by its canonical link, used for
	// dedupe during aggregation.
	GetByLink(ctx context.Context, link string) (*models.Article, error)

	// Latest returns up to limit articles, newest first.
	Latest(ctx context.Context, limit int) ([]*models.Article, error)

	// Unanalyzed returns up to limit articles that have no analysis yet,
	// newest first.
	Unanalyzed(ctx context.Context, limit int) ([]*models.Article, error)

	// Count returns the number of stored articles.
	Count(ctx context.Context) (int, error)
}
