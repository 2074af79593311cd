package sector

import "strings"

// Theme is one of the ten canonical sector buckets used for benchmark
// lookup. Raw provider labels are folded onto these; benchmarks are never
// keyed by provider strings.
type Theme string

const (
	HighGrowthTech    Theme = "High Growth Tech"
	MatureTech        Theme = "Mature Tech"
	Financials        Theme = "Financials"
	Healthcare        Theme = "Healthcare"
	ConsumerCyclical  Theme = "Consumer Cyclical"
	ConsumerDefensive Theme = "Consumer Defensive"
	EnergyMaterials   Theme = "Energy & Materials"
	Industrials       Theme = "Industrials"
	RealEstate        Theme = "Real Estate"
	Utilities         Theme = "Utilities"
)

// Themes lists every canonical theme in display order.
func Themes() []Theme {
	return []Theme{
		HighGrowthTech, MatureTech, Financials, Healthcare,
		ConsumerCyclical, ConsumerDefensive, EnergyMaterials,
		Industrials, RealEstate, Utilities,
	}
}

// rule maps a set of label keywords onto a theme. Rules are evaluated
// top-to-bottom and the first keyword hit wins, so narrower keyword sets
// must precede broader ones ("software" before "technology", "real estate"
// before "estate"-free consumer rules, and so on).
type rule struct {
	keywords []string
	theme    Theme
}

var rules = []rule{
	{[]string{"software", "information", "internet", "semiconductor", "cloud"}, HighGrowthTech},
	{[]string{"real estate", "reit", "property"}, RealEstate},
	{[]string{"utilit", "electric", "water", "gas distribution", "power"}, Utilities},
	{[]string{"bank", "insurance", "capital", "financial", "asset management"}, Financials},
	{[]string{"health", "pharma", "biotech", "medical", "drug", "life science"}, Healthcare},
	{[]string{"defensive", "staple", "food", "beverage", "household", "grocery", "tobacco"}, ConsumerDefensive},
	{[]string{"cyclical", "retail", "auto", "apparel", "travel", "leisure", "restaurant", "luxury"}, ConsumerCyclical},
	{[]string{"energy", "oil", "mining", "material", "chemical", "metal"}, EnergyMaterials},
	{[]string{"industrial", "aerospace", "defense", "machinery", "transport", "construction", "logistics"}, Industrials},
	{[]string{"technology", "hardware", "electronic", "communication", "telecom"}, MatureTech},
}

// Classify folds a raw, free-text sector label onto exactly one canonical
// theme. Matching is case-insensitive substring matching over the ordered
// rule list. The function is total: empty or unrecognized labels fall back
// to MatureTech. The ticker is accepted for interface stability but does
// not influence classification today.
func Classify(rawSector, ticker string) Theme {
	_ = ticker

	label := strings.ToLower(strings.TrimSpace(rawSector))
	if label == "" {
		return MatureTech
	}

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(label, kw) {
				return r.theme
			}
		}
	}

	return MatureTech
}
