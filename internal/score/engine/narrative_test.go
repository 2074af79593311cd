package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marketlens/marketlens/internal/benchmarks"
	"github.com/marketlens/marketlens/internal/domain"
)

func TestVerdictIsDeterministic(t *testing.T) {
	eng := New(benchmarks.NewStoreWithDefaults())

	first := eng.Evaluate(strongSnapshot())
	second := eng.Evaluate(strongSnapshot())
	assert.Equal(t, first.Verdict, second.Verdict)
}

func TestVerdictReferencesDominantDrivers(t *testing.T) {
	eng := New(benchmarks.NewStoreWithDefaults())

	strong := eng.Evaluate(strongSnapshot())
	assert.Contains(t, strong.Verdict, "STRN rates Strong Buy at 100/100.")
	assert.Contains(t, strong.Verdict, "exceptional")
	assert.Contains(t, strong.Verdict, "Mature Tech")
	assert.Contains(t, strong.Verdict, "No risk gates fired.")

	gated := strongSnapshot()
	gated.Technicals.Price = domain.Num(91)
	result := eng.Evaluate(gated)
	assert.Contains(t, result.Verdict, "One risk gate reduced the score.")

	bothGated := gated
	bothGated.Projections.MonteCarloP10 = domain.Num(78)
	result = eng.Evaluate(bothGated)
	assert.Contains(t, result.Verdict, "Both the trend and projected-downside gates reduced the score.")
}

func TestVerdictMentionsContextWhenPresent(t *testing.T) {
	eng := New(benchmarks.NewStoreWithDefaults())

	stock := strongSnapshot()
	stock.Sentiment = domain.Sentiment{Label: "Bullish", Score: 0.7, ArticleCount: 12}
	stock.MarketBullRegime = true

	result := eng.Evaluate(stock)
	assert.Contains(t, result.Verdict, "News sentiment reads bullish across 12 articles.")
	assert.Contains(t, result.Verdict, "bull regime")

	plain := eng.Evaluate(strongSnapshot())
	assert.NotContains(t, plain.Verdict, "sentiment")
	assert.NotContains(t, plain.Verdict, "regime")
}

func TestVerdictFundamentalsBuckets(t *testing.T) {
	eng := New(benchmarks.NewStoreWithDefaults())

	weak := domain.StockData{Ticker: "WK", Fundamentals: domain.Fundamentals{SectorName: "Technology"}}
	assert.Contains(t, eng.Evaluate(weak).Verdict, "weak")

	middling := strongSnapshot()
	middling.Fundamentals.PEGRatio = domain.None()
	middling.Fundamentals.ForwardPE = domain.None()
	middling.Fundamentals.InstOwnership = domain.None()
	// 60 quality points remain: solid but not exceptional.
	assert.Contains(t, eng.Evaluate(middling).Verdict, "solid")
}
