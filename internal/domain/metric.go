package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Metric is a numeric input that knows whether it was actually supplied.
// Data providers routinely return null for ratios they cannot compute, and
// overloading 0 as both "unknown" and "truly zero" corrupts scoring, so the
// distinction is kept explicit all the way into the scorer.
type Metric struct {
	Value float64
	Valid bool
}

// Num returns a present metric carrying v.
func Num(v float64) Metric {
	return Metric{Value: v, Valid: true}
}

// None returns an absent metric. It scores 0 points with an "N/A" status.
func None() Metric {
	return Metric{}
}

var jsonNull = []byte("null")

// UnmarshalJSON accepts either a JSON number or null.
func (m *Metric) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*m = Metric{}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("metric must be a number or null: %w", err)
	}

	*m = Metric{Value: v, Valid: true}
	return nil
}

// MarshalJSON emits the value, or null when the metric is absent.
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return jsonNull, nil
	}
	return json.Marshal(m.Value)
}

// Positive reports whether the metric is present with a value above zero.
// Denominator-style fields (SMA200, current price) use this to decide
// whether a dependent computation can run at all.
func (m Metric) Positive() bool {
	return m.Valid && m.Value > 0
}
