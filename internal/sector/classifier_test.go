package sector

import "testing"

func TestClassifyKnownLabels(t *testing.T) {
	cases := []struct {
		label string
		want  Theme
	}{
		{"Software - Infrastructure", HighGrowthTech},
		{"Information Technology", HighGrowthTech},
		{"Semiconductors", HighGrowthTech},
		{"Technology", MatureTech},
		{"Consumer Electronics", MatureTech},
		{"Communication Services", MatureTech},
		{"Banks - Diversified", Financials},
		{"Insurance - Life", Financials},
		{"Capital Markets", Financials},
		{"Financial Services", Financials},
		{"Healthcare Plans", Healthcare},
		{"Drug Manufacturers", Healthcare},
		{"Biotechnology", Healthcare},
		{"Consumer Cyclical", ConsumerCyclical},
		{"Specialty Retail", ConsumerCyclical},
		{"Auto Manufacturers", ConsumerCyclical},
		{"Consumer Defensive", ConsumerDefensive},
		{"Packaged Foods", ConsumerDefensive},
		{"Beverages - Non-Alcoholic", ConsumerDefensive},
		{"Oil & Gas Integrated", EnergyMaterials},
		{"Basic Materials", EnergyMaterials},
		{"Specialty Chemicals", EnergyMaterials},
		{"Aerospace & Defense", Industrials},
		{"Industrial Machinery", Industrials},
		{"REIT - Residential", RealEstate},
		{"Real Estate Services", RealEstate},
		{"Utilities - Regulated Electric", Utilities},
		{"Water Utilities", Utilities},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			if got := Classify(tc.label, "TEST"); got != tc.want {
				t.Errorf("Classify(%q) = %s, want %s", tc.label, got, tc.want)
			}
		})
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	if got := Classify("SOFTWARE - application", ""); got != HighGrowthTech {
		t.Errorf("expected case-insensitive match, got %s", got)
	}
}

// Narrow keyword sets must win over broad ones: a label mentioning both
// software and technology is a growth-tech label, not a mature-tech one.
func TestClassifyRuleOrdering(t *testing.T) {
	if got := Classify("Technology - Software", ""); got != HighGrowthTech {
		t.Errorf("expected software rule to precede technology rule, got %s", got)
	}
	if got := Classify("Real Estate - Development", ""); got != RealEstate {
		t.Errorf("expected real estate rule to win, got %s", got)
	}
}

func TestClassifyFallback(t *testing.T) {
	for _, label := range []string{"", "   ", "Conglomerates", "Shell Companies", "???"} {
		if got := Classify(label, ""); got != MatureTech {
			t.Errorf("Classify(%q) = %s, want fallback %s", label, got, MatureTech)
		}
	}
}

// The classifier is total: every output is one of the ten canonical themes,
// and repeated calls agree.
func TestClassifyTotalAndDeterministic(t *testing.T) {
	valid := make(map[Theme]bool)
	for _, theme := range Themes() {
		valid[theme] = true
	}
	if len(valid) != 10 {
		t.Fatalf("expected 10 canonical themes, got %d", len(valid))
	}

	labels := []string{
		"Software", "banks", "oil", "gibberish", "", "REIT", "Water",
		"Consumer Cyclical", "healthcare", "industrial conglomerate",
	}
	for _, label := range labels {
		first := Classify(label, "")
		if !valid[first] {
			t.Errorf("Classify(%q) returned out-of-set theme %q", label, first)
		}
		if second := Classify(label, ""); second != first {
			t.Errorf("Classify(%q) not deterministic: %s then %s", label, first, second)
		}
	}
}
