// Package engine orchestrates one scoring pass: sector classification,
// fundamentals aggregation, risk gates, modifiers, rating and narrative.
// Evaluate is a total function over well-typed input — every degenerate
// case downgrades to a skipped check or a zero subtotal, never an error.
package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/marketlens/marketlens/internal/benchmarks"
	"github.com/marketlens/marketlens/internal/domain"
	"github.com/marketlens/marketlens/internal/metrics"
	"github.com/marketlens/marketlens/internal/score/fundamentals"
	"github.com/marketlens/marketlens/internal/score/gates"
	"github.com/marketlens/marketlens/internal/score/modifiers"
	"github.com/marketlens/marketlens/internal/score/spectrum"
	"github.com/marketlens/marketlens/internal/sector"
)

// Engine evaluates StockData snapshots against a read-only benchmark store.
// It holds no per-call state: concurrent Evaluate calls on distinct inputs
// are safe without synchronization.
type Engine struct {
	store   *benchmarks.Store
	metrics *metrics.Registry
	now     func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithMetrics attaches a Prometheus registry; without it the engine runs
// uninstrumented.
func WithMetrics(reg *metrics.Registry) Option {
	return func(e *Engine) { e.metrics = reg }
}

// WithClock overrides the timestamp source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New builds an engine over the given benchmark store. A nil store falls
// back to the built-in defaults so construction can never yield an engine
// that fails to evaluate.
func New(store *benchmarks.Store, opts ...Option) *Engine {
	if store == nil {
		store = benchmarks.NewStoreWithDefaults()
	}
	e := &Engine{store: store, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// adjustment is one gate or modifier outcome, kept in evaluation order.
type adjustment struct {
	name   string
	points float64
	isGate bool
}

// Evaluate scores one snapshot. The input is never mutated; the canonical
// sector theme is reported on the result instead of being written back.
func (e *Engine) Evaluate(stock domain.StockData) domain.ScoreResult {
	start := e.now()
	rec := spectrum.NewRecorder()

	theme := sector.Classify(stock.Fundamentals.SectorName, stock.Ticker)
	bench := e.store.Lookup(theme)

	sub := fundamentals.Aggregate(rec, stock.Fundamentals, bench)
	fScore := sub.Total()

	// Gates first, then modifiers; the modifications list preserves this order.
	adjustments := []adjustment{
		{"Trend gate", gates.TrendPenalty(rec, stock.Technicals), true},
		{"Projection gate", gates.ProjectionPenalty(rec, stock.Projections), true},
		{"Income safety", modifiers.IncomeSafetyBonus(rec, stock.Beta, stock.DividendYield), false},
		{"RSI", modifiers.RSIModifier(rec, stock.Technicals.RSI), false},
		{"FCF yield", modifiers.FCFYieldBonus(rec, stock.Fundamentals.FCFYield, bench), false},
		{"EPS surprise", modifiers.EPSSurpriseBonus(rec, stock.Fundamentals.EPSSurprisePct, bench), false},
	}

	var total, bonuses, penalties float64
	var modifications []string
	gatesFired := 0

	for _, adj := range adjustments {
		total += adj.points
		switch {
		case adj.points > 0:
			bonuses += adj.points
		case adj.points < 0:
			penalties += adj.points
		default:
			continue
		}

		modifications = append(modifications,
			fmt.Sprintf("%s: %+.1f pts", adj.name, adj.points))

		if adj.isGate {
			gatesFired++
			e.metrics.ObserveGate(adj.name)
		} else {
			e.metrics.ObserveModifier(adj.name, adj.points)
		}
	}

	finalScore := clamp(fScore+total, 0, 100)
	totalScore := int(math.Round(finalScore))
	rating := domain.RatingForScore(totalScore)

	result := domain.ScoreResult{
		EvaluationID: uuid.New().String(),
		Ticker:       stock.Ticker,
		Sector:       string(theme),
		TotalScore:   totalScore,
		Rating:       rating,
		Verdict:      verdict(stock, theme, rating, totalScore, fScore, gatesFired),
		Timestamp:    start,
		Breakdown: map[string]float64{
			domain.CategoryValuation:     round1(sub.Valuation),
			domain.CategoryProfitability: round1(sub.Profitability),
			domain.CategoryEfficiency:    round1(sub.Efficiency),
			domain.CategorySolvency:      round1(sub.Solvency),
			domain.CategoryGrowth:        round1(sub.Growth),
			domain.CategoryConviction:    round1(sub.Conviction),
			domain.CategoryBonuses:       math.Max(0, round1(bonuses)),
			domain.CategoryPenalties:     math.Min(0, round1(penalties)),
		},
		Modifications: modifications,
		Details:       rec.Details(),
	}

	elapsed := e.now().Sub(start).Seconds()
	e.metrics.ObserveEvaluation(string(rating), elapsed)

	log.Debug().
		Str("ticker", stock.Ticker).
		Str("sector", result.Sector).
		Int("score", totalScore).
		Str("rating", string(rating)).
		Msg("Evaluation complete")

	return result
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
