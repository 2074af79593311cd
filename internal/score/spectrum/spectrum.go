// Package spectrum implements the single numeric primitive every scoring
// component composes: a bounded linear interpolation between a "zero"
// reference (worst case, 0 points) and an "ideal" reference (best case,
// full points). Direction is implied by the anchor order: ideal above zero
// means higher is better, ideal below zero means lower is better.
package spectrum

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/marketlens/marketlens/internal/domain"
)

// Status labels, bucketed at 90/70/40/0 percent of the maximum allocation.
const (
	StatusExcellent = "Excellent"
	StatusStrong    = "Strong"
	StatusFair      = "Fair"
	StatusWeak      = "Weak"
	StatusPoor      = "Poor"
	StatusNA        = "N/A"
	StatusNeutral   = "Neutral"
	StatusSkipped   = "Skipped"
)

// Recorder scores metrics and accumulates one ScoringDetail per call, in
// call order. One Recorder serves exactly one evaluation; it is not safe
// for concurrent use and is never reused across calls.
type Recorder struct {
	details []domain.ScoringDetail
}

// NewRecorder returns an empty per-evaluation recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Details returns the accumulated detail rows in evaluation order.
func (r *Recorder) Details() []domain.ScoringDetail {
	return r.details
}

// Score maps value onto [0, maxPoints] between the zero and ideal anchors
// and records a detail row under the given category and metric name.
//
// The boundary behavior is exact, not approximate: value == ideal earns
// precisely maxPoints and value == zero earns precisely 0, with values
// beyond either anchor clamped to the closed interval. An absent value
// earns 0 with an "N/A" status.
func (r *Recorder) Score(category, metric string, value domain.Metric, ideal, zero, maxPoints float64) float64 {
	if !value.Valid {
		r.details = append(r.details, domain.ScoringDetail{
			Category:  category,
			Metric:    metric,
			Value:     "—",
			Benchmark: benchmarkLabel(ideal, zero),
			Score:     scoreLabel(0, maxPoints),
			Status:    StatusNA,
		})
		return 0
	}

	score := interpolate(value.Value, ideal, zero, maxPoints)

	r.details = append(r.details, domain.ScoringDetail{
		Category:  category,
		Metric:    metric,
		Value:     formatValue(value.Value),
		Benchmark: benchmarkLabel(ideal, zero),
		Score:     scoreLabel(score, maxPoints),
		Status:    statusFor(score, maxPoints),
	})

	return score
}

// Note records an informational detail row that carries no points: neutral
// bands and skipped computations still show up in the itemized breakdown.
func (r *Recorder) Note(category, metric, value, benchmark, status string) {
	r.details = append(r.details, domain.ScoringDetail{
		Category:  category,
		Metric:    metric,
		Value:     value,
		Benchmark: benchmark,
		Score:     "—",
		Status:    status,
	})
}

// interpolate is the raw spectrum computation, shared by Score and callers
// that need the number without a detail row.
func interpolate(value, ideal, zero, maxPoints float64) float64 {
	span := ideal - zero
	if span == 0 {
		// Degenerate anchors: only an exact hit earns points.
		if value == ideal {
			return maxPoints
		}
		return 0
	}

	var frac float64
	if span > 0 { // higher is better
		frac = (value - zero) / span
	} else { // lower is better
		frac = (zero - value) / (zero - ideal)
	}

	return clamp(frac*maxPoints, 0, maxPoints)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// statusFor buckets an earned score against its allocation.
func statusFor(score, maxPoints float64) string {
	if maxPoints <= 0 {
		return StatusNA
	}
	pct := score / maxPoints
	switch {
	case pct >= 0.9:
		return StatusExcellent
	case pct >= 0.7:
		return StatusStrong
	case pct >= 0.4:
		return StatusFair
	case pct > 0:
		return StatusWeak
	default:
		return StatusPoor
	}
}

// benchmarkLabel renders the ideal anchor with its comparison direction,
// e.g. "≥ 0.15" for higher-is-better metrics and "≤ 1.00" for inverted ones.
func benchmarkLabel(ideal, zero float64) string {
	op := "≥"
	if ideal < zero {
		op = "≤"
	}
	return fmt.Sprintf("%s %s", op, formatValue(ideal))
}

// scoreLabel renders "earned/max" with the earned side rounded to 1 decimal.
func scoreLabel(score, maxPoints float64) string {
	return fmt.Sprintf("%.1f/%s", math.Round(score*10)/10, formatValue(maxPoints))
}

// formatValue trims trailing zeros so benchmark tables stay readable for
// both ratio-scale (0.12) and point-scale (20) anchors.
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
