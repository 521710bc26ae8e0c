package models

import (
	"fmt"
	"strings"
)

// Sentiment labels produced by the enrichment pass.
const (
	SentimentPositive = "Positive"
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
)

// Fallback text used when an analysis field is absent.
const (
	ImpactUnavailable  = "N/A"
	SummaryUnavailable = "Summary not available."
)

// Analysis holds the AI enrichment for one story. Every field is optional;
// the server may not have finished enrichment when the feed is served.
type Analysis struct {
	Sentiment   string   `json:"sentiment,omitempty"`
	ImpactScore *float64 `json:"impact_score,omitempty"`
	SummaryTH   string   `json:"summary_th,omitempty"`
	SummaryEN   string   `json:"summary_en,omitempty"`
}

// ResolvedAnalysis is an Analysis with every field filled in. Rendering code
// only consumes resolved values so the fallback rules live in one place.
type ResolvedAnalysis struct {
	Sentiment string
	Impact    string
	Summary   string
}

// Resolve fills defaults for a possibly-nil Analysis: sentiment "Neutral",
// impact "N/A", and the first non-empty of Thai summary, English summary,
// or the literal unavailable text.
func (a *Analysis) Resolve() ResolvedAnalysis {
	resolved := ResolvedAnalysis{
		Sentiment: SentimentNeutral,
		Impact:    ImpactUnavailable,
		Summary:   SummaryUnavailable,
	}
	if a == nil {
		return resolved
	}

	if s := strings.TrimSpace(a.Sentiment); s != "" {
		resolved.Sentiment = s
	}
	if a.ImpactScore != nil {
		resolved.Impact = formatImpact(*a.ImpactScore)
	}
	if s := strings.TrimSpace(a.SummaryTH); s != "" {
		resolved.Summary = s
	} else if s := strings.TrimSpace(a.SummaryEN); s != "" {
		resolved.Summary = s
	}

	return resolved
}

// formatImpact renders an impact score without trailing zero noise
// (7 not 7.0, but 7.5 stays 7.5).
func formatImpact(score float64) string {
	if score == float64(int64(score)) {
		return fmt.Sprintf("%d", int64(score))
	}
	return fmt.Sprintf("%g", score)
}
