package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/finflow/internal/common"
	"github.com/ternarybob/finflow/internal/eodhd"
	"github.com/ternarybob/finflow/internal/handlers"
	"github.com/ternarybob/finflow/internal/interfaces"
	"github.com/ternarybob/finflow/internal/pages"
	"github.com/ternarybob/finflow/internal/scheduler"
	"github.com/ternarybob/finflow/internal/services/analysis"
	"github.com/ternarybob/finflow/internal/services/ask"
	"github.com/ternarybob/finflow/internal/services/brief"
	"github.com/ternarybob/finflow/internal/services/feed"
	"github.com/ternarybob/finflow/internal/services/llm"
	"github.com/ternarybob/finflow/internal/services/news"
	"github.com/ternarybob/finflow/internal/services/stocks"
	badgerstorage "github.com/ternarybob/finflow/internal/storage/badger"
)

const enrichBatchSize = 20

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	// Storage
	DB             *badgerstorage.BadgerDB
	ArticleStorage interfaces.ArticleStorage

	// Services
	LLMService      interfaces.LLMService
	NewsService     *news.Service
	AnalysisService *analysis.Service
	StocksService   *stocks.Service
	FeedService     interfaces.FeedService
	AskService      interfaces.AskService
	BriefService    interfaces.BriefService
	Scheduler       *scheduler.Service

	// HTTP handlers
	APIHandler   *handlers.APIHandler
	FeedHandler  *handlers.FeedHandler
	AskHandler   *handlers.AskHandler
	BriefHandler *handlers.BriefHandler
	PageHandler  *handlers.PageHandler
}

// New initializes the application with all dependencies
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	if err := app.initDatabase(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := app.initServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	if err := app.initHandlers(); err != nil {
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}

	if err := app.initScheduler(); err != nil {
		return nil, fmt.Errorf("failed to initialize scheduler: %w", err)
	}

	logger.Info().
		Bool("ai_enabled", app.LLMService != nil).
		Bool("stocks_enabled", app.StocksService != nil).
		Msg("Application initialization complete")

	return app, nil
}

// initDatabase initializes the storage layer (Badger)
func (a *App) initDatabase() error {
	db, err := badgerstorage.NewBadgerDB(a.Logger, &a.Config.Storage.Badger)
	if err != nil {
		return fmt.Errorf("failed to open badger store: %w", err)
	}
	a.DB = db
	a.ArticleStorage = badgerstorage.NewArticleStorage(db, a.Logger)

	a.Logger.Debug().
		Str("storage", "badger").
		Str("path", a.Config.Storage.Badger.Path).
		Msg("Storage layer initialized")
	return nil
}

// initServices wires the domain services together
func (a *App) initServices() error {
	llmService, err := llm.NewLLMService(a.Config, a.Logger)
	if err != nil {
		return fmt.Errorf("failed to create LLM service: %w", err)
	}
	a.LLMService = llmService

	a.NewsService = news.NewService(&a.Config.News, a.ArticleStorage, a.Logger)
	a.AnalysisService = analysis.NewService(a.LLMService, a.ArticleStorage, a.Logger)

	var quoteClient *eodhd.Client
	if a.Config.Stocks.APIKey != "" {
		opts := []eodhd.ClientOption{eodhd.WithLogger(a.Logger)}
		if a.Config.Stocks.BaseURL != "" {
			opts = append(opts, eodhd.WithBaseURL(a.Config.Stocks.BaseURL))
		}
		quoteClient = eodhd.NewClient(a.Config.Stocks.APIKey, opts...)
	} else {
		a.Logger.Warn().Msg("Stocks API key not configured - ticker will be empty")
	}
	a.StocksService = stocks.NewService(quoteClient, a.Config.Stocks.Symbols, a.Logger)

	a.FeedService = feed.NewService(a.ArticleStorage, a.StocksService, a.Config.News.Limit, a.Logger)
	a.AskService = ask.NewService(a.LLMService, a.FeedService, a.Logger)
	a.BriefService = brief.NewService(a.LLMService, a.FeedService, a.Logger)
	return nil
}

// initHandlers creates the HTTP handlers
func (a *App) initHandlers() error {
	templates, err := pages.New()
	if err != nil {
		return fmt.Errorf("failed to parse page templates: %w", err)
	}

	a.APIHandler = handlers.NewAPIHandler()
	a.FeedHandler = handlers.NewFeedHandler(a.FeedService, a.Logger)
	a.AskHandler = handlers.NewAskHandler(a.AskService, a.Logger)
	a.BriefHandler = handlers.NewBriefHandler(a.BriefService, a.Logger)
	a.PageHandler = handlers.NewPageHandler(a.FeedService, a.AskService, templates, a.Logger)
	return nil
}

// initScheduler registers the background refresh jobs and starts the cron
// runner. Each job runs once at startup so the first page load has data.
func (a *App) initScheduler() error {
	a.Scheduler = scheduler.NewService(a.Logger)

	refreshNews := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		if err := a.NewsService.Refresh(ctx); err != nil {
			return err
		}
		a.AnalysisService.EnrichPending(ctx, enrichBatchSize)
		return nil
	}
	if err := a.Scheduler.Register("news-refresh", a.Config.News.Schedule, refreshNews); err != nil {
		return err
	}

	refreshStocks := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		return a.StocksService.Refresh(ctx)
	}
	if err := a.Scheduler.Register("stocks-refresh", a.Config.Stocks.Schedule, refreshStocks); err != nil {
		return err
	}

	go a.Scheduler.RunAll()
	return a.Scheduler.Start()
}

// Close shuts down background work and releases resources
func (a *App) Close() error {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}

	if a.LLMService != nil {
		if err := a.LLMService.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close LLM service")
		}
	}

	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			return fmt.Errorf("failed to close badger store: %w", err)
		}
	}

	a.Logger.Info().Msg("Application closed")
	return nil
}
