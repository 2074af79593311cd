// Package fundamentals converts a fundamentals record into the six weighted
// category subtotals that form the base quality score. Every sub-metric runs
// through the spectrum scorer with benchmark-derived anchors, so each
// category is independently bounded and the sum never exceeds 100.
package fundamentals

import (
	"github.com/marketlens/marketlens/internal/benchmarks"
	"github.com/marketlens/marketlens/internal/domain"
	"github.com/marketlens/marketlens/internal/score/spectrum"
)

// Maximum points per category. Valuation 30, Profitability 20, Efficiency
// 20, Solvency 10, Growth 10, Conviction 10 — 100 total.
const (
	MaxValuation     = 30.0
	MaxProfitability = 20.0
	MaxEfficiency    = 20.0
	MaxSolvency      = 10.0
	MaxGrowth        = 10.0
	MaxConviction    = 10.0
)

// Anchor constants that are deliberately not sector-derived.
const (
	pegIdeal = 1.0 // PEG at or below 1.0 is fully priced-for-growth
	pegZero  = 3.0

	instOwnershipIdeal = 70.0 // percent of float held by institutions
	instOwnershipZero  = 20.0
)

// Anchor multipliers applied to sector benchmarks.
const (
	forwardPEZeroMult    = 2.0 // zero credit at twice the fair forward P/E
	debtZeroMult         = 3.0 // zero credit at triple the safe leverage
	currentRatioZeroMult = 0.5 // zero credit at half the safe liquidity
)

// Subtotals carries the per-category point totals for one evaluation.
type Subtotals struct {
	Valuation     float64
	Profitability float64
	Efficiency    float64
	Solvency      float64
	Growth        float64
	Conviction    float64
}

// Total sums the six categories into the base quality score (max 100).
func (s Subtotals) Total() float64 {
	return s.Valuation + s.Profitability + s.Efficiency +
		s.Solvency + s.Growth + s.Conviction
}

// Aggregate scores every fundamental sub-metric against the benchmark
// record for the instrument's canonical theme. Missing metrics earn 0
// points with an N/A detail row; nothing here can fail.
func Aggregate(rec *spectrum.Recorder, f domain.Fundamentals, bench benchmarks.Record) Subtotals {
	var sub Subtotals

	// Valuation 30: PEG 20 + forward P/E 10. PEG anchors are fixed rather
	// than sector-derived; a PEG of 1.0 means the same thing in every sector.
	sub.Valuation += rec.Score(domain.CategoryValuation, "PEG Ratio",
		f.PEGRatio, pegIdeal, pegZero, 20)
	sub.Valuation += rec.Score(domain.CategoryValuation, "Forward P/E",
		f.ForwardPE, bench.ForwardPEFair, bench.ForwardPEFair*forwardPEZeroMult, 10)

	// Profitability 20: net margin 10 + operating margin 10, both against
	// the same healthy-margin anchor.
	sub.Profitability += rec.Score(domain.CategoryProfitability, "Net Margin",
		f.ProfitMargin, bench.MarginHealthy, 0, 10)
	sub.Profitability += rec.Score(domain.CategoryProfitability, "Operating Margin",
		f.OperatingMargin, bench.MarginHealthy, 0, 10)

	// Efficiency 20: ROE 10 + ROA 10.
	sub.Efficiency += rec.Score(domain.CategoryEfficiency, "Return on Equity",
		f.ROE, bench.ROEStrong, 0, 10)
	sub.Efficiency += rec.Score(domain.CategoryEfficiency, "Return on Assets",
		f.ROA, bench.ROAStrong, 0, 10)

	// Solvency 10: debt/equity 5 + current ratio 5. Debt is inverted.
	sub.Solvency += rec.Score(domain.CategorySolvency, "Debt/Equity",
		f.DebtToEquity, bench.DebtSafe, bench.DebtSafe*debtZeroMult, 5)
	sub.Solvency += rec.Score(domain.CategorySolvency, "Current Ratio",
		f.CurrentRatio, bench.CurrentRatioSafe, bench.CurrentRatioSafe*currentRatioZeroMult, 5)

	// Growth 10: quarter-over-quarter earnings growth.
	sub.Growth += rec.Score(domain.CategoryGrowth, "Earnings Growth QoQ",
		f.EarningsGrowthQoQ, bench.GrowthStrong, 0, MaxGrowth)

	// Conviction 10: institutional ownership on the 0-100 scale.
	sub.Conviction += rec.Score(domain.CategoryConviction, "Institutional Ownership",
		f.InstOwnership, instOwnershipIdeal, instOwnershipZero, MaxConviction)

	return sub
}
