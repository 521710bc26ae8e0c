package models

// DailyBrief is an AI-generated market briefing grounded in the current
// headlines: overall sentiment, the day's themes, and what to watch next.
type DailyBrief struct {
	Date           string   `json:"date"`
	MarketOverview string   `json:"market_overview"`
	KeyThemes      []string `json:"key_themes"`
	TomorrowWatch  []string `json:"tomorrow_watch"`
}

// BriefEnvelope is the wire format of GET /api/daily-brief.
type BriefEnvelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    *DailyBrief `json:"data,omitempty"`
}
