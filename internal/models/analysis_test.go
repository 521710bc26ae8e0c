package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_NilAnalysis(t *testing.T) {
	var a *Analysis
	resolved := a.Resolve()

	assert.Equal(t, SentimentNeutral, resolved.Sentiment)
	assert.Equal(t, ImpactUnavailable, resolved.Impact)
	assert.Equal(t, SummaryUnavailable, resolved.Summary)
}

func TestResolve_PartialFieldsKeepProvidedValues(t *testing.T) {
	score := 7.5
	a := &Analysis{Sentiment: SentimentNegative, ImpactScore: &score}
	resolved := a.Resolve()

	assert.Equal(t, SentimentNegative, resolved.Sentiment)
	assert.Equal(t, "7.5", resolved.Impact)
	assert.Equal(t, SummaryUnavailable, resolved.Summary)
}

func TestResolve_ThaiSummaryPreferred(t *testing.T) {
	a := &Analysis{SummaryTH: "สรุปข่าว", SummaryEN: "News summary"}
	assert.Equal(t, "สรุปข่าว", a.Resolve().Summary)

	a = &Analysis{SummaryEN: "News summary"}
	assert.Equal(t, "News summary", a.Resolve().Summary)
}

func TestResolve_WhitespaceFieldsFallBack(t *testing.T) {
	a := &Analysis{Sentiment: "  ", SummaryTH: "\n", SummaryEN: "  "}
	resolved := a.Resolve()

	assert.Equal(t, SentimentNeutral, resolved.Sentiment)
	assert.Equal(t, SummaryUnavailable, resolved.Summary)
}

func TestFormatImpact_TrimsWholeNumbers(t *testing.T) {
	whole := 8.0
	fractional := 6.5

	assert.Equal(t, "8", (&Analysis{ImpactScore: &whole}).Resolve().Impact)
	assert.Equal(t, "6.5", (&Analysis{ImpactScore: &fractional}).Resolve().Impact)
}
