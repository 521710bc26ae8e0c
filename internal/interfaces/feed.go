package interfaces

import (
	"context"

	"github.com/ternarybob/finflow/internal/models"
)

// FeedService assembles the combined dashboard payload.
type FeedService interface {
	// MainFeed returns the current news list and stock mapping.
	MainFeed(ctx context.Context) (*models.FeedData, error)
}

// AskService answers one-shot market questions.
type AskService interface {
	// Ask returns an answer grounded in the current feed snapshot.
	Ask(ctx context.Context, question string) (string, error)
}

// BriefService generates the daily market briefing.
type BriefService interface {
	// Generate builds a briefing from the current headlines, weighted
	// toward the given assets. An empty asset list means the general
	// market.
	Generate(ctx context.Context, assets []string) (*models.DailyBrief, error)
}
