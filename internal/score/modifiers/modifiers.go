// Package modifiers implements the bounded bonus/penalty adjustments that
// sit outside the fundamentals weighting: income safety for low-beta
// dividend payers, RSI extremes, and the benchmark-anchored conviction
// extras (free-cash-flow yield and EPS surprise).
package modifiers

import (
	"fmt"

	"github.com/marketlens/marketlens/internal/benchmarks"
	"github.com/marketlens/marketlens/internal/domain"
	"github.com/marketlens/marketlens/internal/score/spectrum"
)

// Income-safety anchors: dividend yield in percentage units. Only low-beta
// names qualify; the bonus rewards defensive income, not yield chasing.
const (
	incomeBetaCeiling = 1.0
	incomeYieldIdeal  = 4.0
	incomeYieldZero   = 1.5
	incomeMax         = 5.0
)

// RSI band edges and allocations.
const (
	rsiOversold   = 30.0
	rsiOverbought = 70.0
	rsiBonusIdeal = 20.0 // deeper oversold earns more
	rsiPenalIdeal = 80.0 // deeper overbought costs more
	rsiMax        = 5.0
)

// Conviction-extra allocations.
const (
	fcfYieldMax    = 3.0
	epsSurpriseMax = 2.0
)

const category = "Modifiers"

// IncomeSafetyBonus rewards dividend yield on low-beta names. Returns a
// bonus in [0, 5]. Names at or above the beta ceiling earn nothing
// regardless of yield, and no detail row is recorded for them.
func IncomeSafetyBonus(rec *spectrum.Recorder, beta, dividendYield domain.Metric) float64 {
	if !beta.Valid || beta.Value >= incomeBetaCeiling {
		return 0
	}

	return rec.Score(category, "Income Safety",
		dividendYield, incomeYieldIdeal, incomeYieldZero, incomeMax)
}

// RSIModifier converts RSI extremes into a bounded adjustment: a bonus up
// to +5 below 30 (oversold), a penalty down to -5 above 70 (overbought),
// and zero inside the band. The neutral band and a missing RSI both record
// an informational detail row so the breakdown stays complete.
func RSIModifier(rec *spectrum.Recorder, rsi domain.Metric) float64 {
	if !rsi.Valid {
		rec.Note(category, "RSI", "—", "30–70 neutral", spectrum.StatusNA)
		return 0
	}

	switch {
	case rsi.Value < rsiOversold:
		return rec.Score(category, "RSI Oversold",
			rsi, rsiBonusIdeal, rsiOversold, rsiMax)
	case rsi.Value > rsiOverbought:
		return -rec.Score(category, "RSI Overbought",
			rsi, rsiPenalIdeal, rsiOverbought, rsiMax)
	default:
		rec.Note(category, "RSI", fmt.Sprintf("%.1f", rsi.Value),
			"30–70 neutral", spectrum.StatusNeutral)
		return 0
	}
}

// FCFYieldBonus rewards strong free-cash-flow yield against the sector
// anchor. Returns a bonus in [0, 3]; an absent value earns 0 with an N/A row.
func FCFYieldBonus(rec *spectrum.Recorder, fcfYield domain.Metric, bench benchmarks.Record) float64 {
	return rec.Score(category, "FCF Yield",
		fcfYield, bench.FCFYieldStrong, 0, fcfYieldMax)
}

// EPSSurpriseBonus rewards a large positive earnings surprise against the
// sector anchor. Returns a bonus in [0, 2].
func EPSSurpriseBonus(rec *spectrum.Recorder, epsSurprisePct domain.Metric, bench benchmarks.Record) float64 {
	return rec.Score(category, "EPS Surprise",
		epsSurprisePct, bench.EPSSurpriseHuge, 0, epsSurpriseMax)
}
