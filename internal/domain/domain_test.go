package domain

import (
	"encoding/json"
	"testing"
)

func TestMetricJSONNullHandling(t *testing.T) {
	var f Fundamentals
	payload := []byte(`{"pe_ratio": 18.5, "peg_ratio": null, "sector_name": "Technology"}`)

	if err := json.Unmarshal(payload, &f); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !f.PERatio.Valid || f.PERatio.Value != 18.5 {
		t.Errorf("expected pe_ratio 18.5 valid, got %+v", f.PERatio)
	}
	if f.PEGRatio.Valid {
		t.Errorf("expected null peg_ratio to be invalid, got %+v", f.PEGRatio)
	}
	if f.ProfitMargin.Valid {
		t.Errorf("expected omitted profit_margin to be invalid, got %+v", f.ProfitMargin)
	}
}

func TestMetricJSONRoundTrip(t *testing.T) {
	out, err := json.Marshal(struct {
		A Metric `json:"a"`
		B Metric `json:"b"`
	}{A: Num(0.25), B: None()})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	want := `{"a":0.25,"b":null}`
	if string(out) != want {
		t.Errorf("expected %s, got %s", want, out)
	}
}

func TestMetricPositive(t *testing.T) {
	cases := []struct {
		name   string
		metric Metric
		want   bool
	}{
		{"positive value", Num(100), true},
		{"zero value", Num(0), false},
		{"negative value", Num(-1), false},
		{"absent", None(), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.metric.Positive(); got != tc.want {
				t.Errorf("Positive() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRatingThresholdsBoundaryInclusive(t *testing.T) {
	cases := []struct {
		score int
		want  Rating
	}{
		{100, RatingStrongBuy},
		{85, RatingStrongBuy},
		{84, RatingBuy},
		{70, RatingBuy},
		{69, RatingHold},
		{50, RatingHold},
		{49, RatingSell},
		{0, RatingSell},
	}

	for _, tc := range cases {
		if got := RatingForScore(tc.score); got != tc.want {
			t.Errorf("RatingForScore(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}
