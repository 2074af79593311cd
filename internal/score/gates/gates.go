// Package gates implements the two penalty-only risk checks. Each gate runs
// the spectrum scorer with a 15-point allocation and converts the earned
// score into a penalty by subtracting the allocation, so a perfect reading
// costs nothing and a failed one costs the full 15 points. Gates can only
// reduce the final score, never raise it.
package gates

import (
	"fmt"

	"github.com/marketlens/marketlens/internal/domain"
	"github.com/marketlens/marketlens/internal/score/spectrum"
)

// GateMax is the point allocation of each gate; penalties live in [-GateMax, 0].
const GateMax = 15.0

// Trend gate anchors: price/SMA200 ratio. Trading 5% above the 200-day
// average clears the gate entirely; 10% below costs the full penalty.
const (
	trendRatioIdeal = 1.05
	trendRatioZero  = 0.90
)

// Projection gate anchors: P10 downside in percent of current price. A
// worst-decile loss of 5% or less clears the gate; 25% costs the full penalty.
const (
	downsideIdealPct = -5.0
	downsideZeroPct  = -25.0
)

// Category under which gate detail rows are recorded.
const category = "Modifiers"

// TrendPenalty scores trend strength against the 200-day moving average.
// Returns a penalty in [-15, 0]. The gate is skipped (zero penalty, noted
// in the detail log) when price or SMA200 is absent or non-positive: a
// missing denominator is a data gap, not a failing trend.
func TrendPenalty(rec *spectrum.Recorder, t domain.Technicals) float64 {
	if !t.SMA200.Positive() || !t.Price.Positive() {
		rec.Note(category, "Trend vs SMA200", "—",
			fmt.Sprintf("≥ %.2f", trendRatioIdeal), spectrum.StatusSkipped)
		return 0
	}

	ratio := t.Price.Value / t.SMA200.Value
	score := rec.Score(category, "Trend vs SMA200",
		domain.Num(ratio), trendRatioIdeal, trendRatioZero, GateMax)

	return score - GateMax
}

// ProjectionPenalty scores the projected worst-decile downside from the
// Monte-Carlo terminal-price distribution. Returns a penalty in [-15, 0].
// Skipped when the current price is absent or non-positive, or when the
// P10 projection itself is missing.
func ProjectionPenalty(rec *spectrum.Recorder, p domain.Projections) float64 {
	if !p.CurrentPrice.Positive() || !p.MonteCarloP10.Valid {
		rec.Note(category, "Projected Downside", "—",
			fmt.Sprintf("≥ %.0f%%", downsideIdealPct), spectrum.StatusSkipped)
		return 0
	}

	downsidePct := (p.MonteCarloP10.Value - p.CurrentPrice.Value) / p.CurrentPrice.Value * 100
	score := rec.Score(category, "Projected Downside",
		domain.Num(downsidePct), downsideIdealPct, downsideZeroPct, GateMax)

	return score - GateMax
}
