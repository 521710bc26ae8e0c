package news

import (
	"context"
	"time"

	"github.com/ternarybob/finflow/internal/models"
)

// seed stores the built-in article set when no feeds are configured and the
// store is empty. Seed articles carry fixed IDs so repeated startups do not
// duplicate them.
func (s *Service) seed(ctx context.Context) error {
	count, err := s.storage.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	articles := []*models.Article{
		{
			ID:          "seed-fed-rates",
			Source:      "Financial Times",
			Title:       "Federal Reserve Holds Interest Rates Steady",
			Content:     "The Federal Reserve announced it will maintain current interest rates at the 5.25-5.5% range, citing ongoing concerns about inflation and employment data. Fed Chair Jerome Powell emphasized the committee's commitment to bringing inflation down to the 2% target while maintaining a strong labor market. The decision affects mortgage rates, business lending, and overall economic growth.",
			Link:        "https://example.com/fed-rates",
			PublishedAt: now.Add(-2 * time.Hour),
			FetchedAt:   now,
		},
		{
			ID:          "seed-tesla-earnings",
			Source:      "Reuters",
			Title:       "Tesla Stock Surges 15% on Quarterly Earnings Beat",
			Content:     "Tesla shares jumped 15% in after-hours trading following a stronger-than-expected quarterly earnings report. The electric vehicle maker reported earnings per share of $0.71, beating analyst estimates of $0.63, with revenue of $25.2 billion up 3% year-over-year on strong demand in China and Europe.",
			Link:        "https://example.com/tesla-earnings",
			PublishedAt: now.Add(-1 * time.Hour),
			FetchedAt:   now,
		},
		{
			ID:          "seed-bitcoin-ath",
			Source:      "CoinDesk",
			Title:       "Bitcoin Reaches New All-Time High Above $73,000",
			Content:     "Bitcoin reached a new all-time high of $73,147, driven by institutional adoption and ETF inflows. The cryptocurrency has gained over 160% year-to-date, though analysts warn of potential volatility following the rapid run-up.",
			Link:        "https://example.com/bitcoin-ath",
			PublishedAt: now.Add(-30 * time.Minute),
			FetchedAt:   now,
		},
	}

	for _, article := range articles {
		if err := s.storage.Save(ctx, article); err != nil {
			return err
		}
	}

	s.logger.Info().Int("count", len(articles)).Msg("Seeded built-in articles (no feeds configured)")
	return nil
}
