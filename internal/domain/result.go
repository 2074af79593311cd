package domain

import "time"

// Rating is the ordinal verdict derived from the final score.
type Rating string

const (
	RatingStrongBuy Rating = "Strong Buy"
	RatingBuy       Rating = "Buy"
	RatingHold      Rating = "Hold"
	RatingSell      Rating = "Sell"
)

// RatingForScore maps a clamped 0-100 score onto a rating. Thresholds are
// boundary-inclusive: 85, 70 and 50.
func RatingForScore(score int) Rating {
	switch {
	case score >= 85:
		return RatingStrongBuy
	case score >= 70:
		return RatingBuy
	case score >= 50:
		return RatingHold
	default:
		return RatingSell
	}
}

// ScoringDetail is one row of the itemized breakdown: every metric the
// spectrum scorer touches produces exactly one of these, in evaluation order.
type ScoringDetail struct {
	Category  string `json:"category"`
	Metric    string `json:"metric"`
	Value     string `json:"value"`
	Benchmark string `json:"benchmark"`
	Score     string `json:"score"` // "earned/max", earned rounded to 1 decimal
	Status    string `json:"status"`
}

// Breakdown keys. The six fundamental categories plus the two adjustment
// buckets are always present in ScoreResult.Breakdown.
const (
	CategoryValuation     = "Valuation"
	CategoryProfitability = "Profitability"
	CategoryEfficiency    = "Efficiency"
	CategorySolvency      = "Solvency"
	CategoryGrowth        = "Growth"
	CategoryConviction    = "Conviction"
	CategoryBonuses       = "Bonuses"
	CategoryPenalties     = "Penalties"
)

// ScoreResult is the complete outcome of one evaluation. It is produced
// fresh on every call and has no persistent identity beyond the evaluation
// id stamped on it for log and report correlation.
type ScoreResult struct {
	EvaluationID string    `json:"evaluation_id"`
	Ticker       string    `json:"ticker"`
	Sector       string    `json:"sector"` // canonical theme, not the raw label
	TotalScore   int       `json:"total_score"`
	Rating       Rating    `json:"rating"`
	Verdict      string    `json:"verdict"`
	Timestamp    time.Time `json:"timestamp"`

	Breakdown     map[string]float64 `json:"breakdown"`
	Modifications []string           `json:"modifications"`
	Details       []ScoringDetail    `json:"details"`
}
