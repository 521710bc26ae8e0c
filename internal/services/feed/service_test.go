package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/finflow/internal/models"
	"github.com/ternarybob/finflow/internal/services/stocks"
)

type mockStorage struct {
	articles []*models.Article
	err      error
	limit    int
}

func (m *mockStorage) Save(ctx context.Context, article *models.Article) error { return nil }
func (m *mockStorage) Get(ctx context.Context, id string) (*models.Article, error) {
	return nil, nil
}
func (m *mockStorage) GetByLink(ctx context.Context, link string) (*models.Article, error) {
	return nil, nil
}
func (m *mockStorage) Latest(ctx context.Context, limit int) ([]*models.Article, error) {
	m.limit = limit
	return m.articles, m.err
}
func (m *mockStorage) Unanalyzed(ctx context.Context, limit int) ([]*models.Article, error) {
	return nil, nil
}
func (m *mockStorage) Count(ctx context.Context) (int, error) { return len(m.articles), nil }

func TestMainFeed_ConvertsArticles(t *testing.T) {
	published := time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC)
	storage := &mockStorage{
		articles: []*models.Article{
			{
				ID:          "a1",
				Source:      "Reuters",
				Title:       "Fed Holds Rates",
				Link:        "https://example.com/fed",
				PublishedAt: published,
				Analysis:    &models.Analysis{Sentiment: models.SentimentPositive},
			},
			{ID: "a2", Source: "AP", Title: "Oil Slides", Link: "https://example.com/oil", PublishedAt: published.Add(-time.Hour)},
		},
	}
	quotes := stocks.NewService(nil, nil, arbor.NewLogger())
	svc := NewService(storage, quotes, 20, arbor.NewLogger())

	data, err := svc.MainFeed(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 20, storage.limit)
	require.Len(t, data.News, 2)
	assert.Equal(t, "Fed Holds Rates", data.News[0].Title)
	assert.Equal(t, "2026-08-30T14:30:00Z", data.News[0].Published)
	assert.NotNil(t, data.News[0].Analysis)
	assert.Equal(t, "Oil Slides", data.News[1].Title)
	assert.NotNil(t, data.Stocks)
}

func TestMainFeed_EmptyStoreIsNotAnError(t *testing.T) {
	svc := NewService(&mockStorage{}, stocks.NewService(nil, nil, arbor.NewLogger()), 10, arbor.NewLogger())

	data, err := svc.MainFeed(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data.News)
}

func TestMainFeed_StorageFailure(t *testing.T) {
	svc := NewService(&mockStorage{err: errors.New("badger closed")}, stocks.NewService(nil, nil, arbor.NewLogger()), 10, arbor.NewLogger())

	_, err := svc.MainFeed(context.Background())
	assert.Error(t, err)
}
