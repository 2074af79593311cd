package domain

// Fundamentals holds the precomputed fundamental ratios for one instrument.
// All ratios are supplied by the upstream data layer; nothing here is fetched
// or derived. Percent-style fields keep the provider's scale: institutional
// ownership is 0-100, margins and growth are fractions.
type Fundamentals struct {
	PERatio           Metric `json:"pe_ratio"`
	ForwardPE         Metric `json:"forward_pe"`
	PEGRatio          Metric `json:"peg_ratio"`
	ProfitMargin      Metric `json:"profit_margin"`
	OperatingMargin   Metric `json:"operating_margin"`
	ROE               Metric `json:"roe"`
	ROA               Metric `json:"roa"`
	DebtToEquity      Metric `json:"debt_to_equity"`
	CurrentRatio      Metric `json:"current_ratio"`
	EarningsGrowthQoQ Metric `json:"earnings_growth_qoq"`
	InstOwnership     Metric `json:"inst_ownership"`
	FCFYield          Metric `json:"fcf_yield"`
	EPSSurprisePct    Metric `json:"eps_surprise_pct"`

	// SectorName is the raw provider label ("Technology", "Consumer
	// Cyclical", ...). It is classified onto a canonical theme during
	// evaluation; the canonical theme is reported on the result and the
	// input is left untouched.
	SectorName string `json:"sector_name"`
}

// Technicals holds the precomputed technical indicators. SMA200 and Price
// act as denominators for the trend gate, which is skipped when either is
// absent or non-positive.
type Technicals struct {
	Price         Metric `json:"price"`
	SMA50         Metric `json:"sma50"`
	SMA200        Metric `json:"sma200"`
	RSI           Metric `json:"rsi"`
	MomentumLabel string `json:"momentum_label"`
	VolumeTrend   string `json:"volume_trend"`
}

// Sentiment is carried through for narrative use only. It is never weighted
// into the numeric score.
type Sentiment struct {
	Label        string  `json:"label"`
	Score        float64 `json:"score"`
	ArticleCount int     `json:"article_count"`
}

// Projections is the terminal-price percentile distribution produced by the
// external Monte-Carlo simulator for a fixed horizon. CurrentPrice must be
// positive for the downside gate to run.
type Projections struct {
	MonteCarloP10 Metric `json:"monte_carlo_p10"`
	MonteCarloP50 Metric `json:"monte_carlo_p50"`
	MonteCarloP90 Metric `json:"monte_carlo_p90"`
	CurrentPrice  Metric `json:"current_price"`
}

// StockData is the aggregate snapshot the engine scores. It is treated as
// read-only: evaluation never mutates it, including the sector label.
type StockData struct {
	Ticker           string       `json:"ticker"`
	Beta             Metric       `json:"beta"`
	DividendYield    Metric       `json:"dividend_yield"` // percentage units
	MarketBullRegime bool         `json:"market_bull_regime"`
	Fundamentals     Fundamentals `json:"fundamentals"`
	Technicals       Technicals   `json:"technicals"`
	Sentiment        Sentiment    `json:"sentiment"`
	Projections      Projections  `json:"projections"`
}
