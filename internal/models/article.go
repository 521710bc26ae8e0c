package models

import "time"

// Article is the stored form of an aggregated news story. The feed payload
// exposes a trimmed view of this (NewsItem); Article keeps the full content
// for the enrichment pass and the ask context.
type Article struct {
	ID          string    `json:"id" badgerhold:"key"`
	Source      string    `json:"source"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Link        string    `json:"link"`
	PublishedAt time.Time `json:"published_at" badgerholdIndex:"PublishedAt"`
	FetchedAt   time.Time `json:"fetched_at"`
	Analysis    *Analysis `json:"analysis,omitempty"`
	AnalyzedAt  time.Time `json:"analyzed_at,omitempty"`
}

// Analyzed reports whether the enrichment pass has completed for the article.
func (a *Article) Analyzed() bool {
	return a.Analysis != nil
}

// NewsItem converts the stored article into its feed payload form.
// The published timestamp is serialized as RFC 3339 so the client can carry
// it verbatim in a machine-readable attribute.
func (a *Article) NewsItem() NewsItem {
	return NewsItem{
		Source:    a.Source,
		Title:     a.Title,
		Link:      a.Link,
		Published: a.PublishedAt.UTC().Format(time.RFC3339),
		Analysis:  a.Analysis,
	}
}
