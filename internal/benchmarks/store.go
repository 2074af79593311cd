package benchmarks

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/marketlens/marketlens/internal/sector"
)

// Record holds the named reference points for one sector theme. Each value
// is the "ideal" anchor for its metric; the matching "zero" anchor is
// derived per metric in the fundamentals aggregator.
type Record struct {
	PEMedian         float64 `yaml:"pe_median" json:"pe_median"`
	PEGFair          float64 `yaml:"peg_fair" json:"peg_fair"`
	ForwardPEFair    float64 `yaml:"forward_pe_fair" json:"forward_pe_fair"`
	MarginHealthy    float64 `yaml:"margin_healthy" json:"margin_healthy"`
	ROEStrong        float64 `yaml:"roe_strong" json:"roe_strong"`
	ROAStrong        float64 `yaml:"roa_strong" json:"roa_strong"`
	DebtSafe         float64 `yaml:"debt_safe" json:"debt_safe"`
	CurrentRatioSafe float64 `yaml:"current_ratio_safe" json:"current_ratio_safe"`
	GrowthStrong     float64 `yaml:"growth_strong" json:"growth_strong"`
	FCFYieldStrong   float64 `yaml:"fcf_yield_strong" json:"fcf_yield_strong"`
	EPSSurpriseHuge  float64 `yaml:"eps_surprise_huge" json:"eps_surprise_huge"`
}

// Config is the on-disk shape of the benchmark document.
type Config struct {
	Sectors         map[string]Record  `yaml:"sectors"`
	Defaults        Record             `yaml:"defaults"`
	MarketReference map[string]float64 `yaml:"market_reference"`
}

// Store resolves benchmark records by canonical theme. It is built once at
// engine construction and read-only afterwards, so concurrent lookups need
// no synchronization.
type Store struct {
	sectors   map[sector.Theme]Record
	defaults  Record
	marketRef map[string]float64
}

// DefaultRecord returns the built-in benchmark record used when no
// configuration is available. Evaluation must never fail for lack of a
// config file, so these constants are the floor the engine always stands on.
func DefaultRecord() Record {
	return Record{
		PEMedian:         20,
		PEGFair:          1.5,
		ForwardPEFair:    18,
		MarginHealthy:    0.12,
		ROEStrong:        0.15,
		ROAStrong:        0.07,
		DebtSafe:         1.0,
		CurrentRatioSafe: 2.0,
		GrowthStrong:     0.10,
		FCFYieldStrong:   0.05,
		EPSSurpriseHuge:  10,
	}
}

// NewStoreWithDefaults builds a store backed solely by the built-in record.
// Every theme resolves to the defaults. Used as the config-load fallback and
// by tests that do not care about per-sector anchors.
func NewStoreWithDefaults() *Store {
	return &Store{
		sectors:  map[sector.Theme]Record{},
		defaults: DefaultRecord(),
	}
}

// NewStore builds a store from an already-parsed config. Sector records
// with omitted fields inherit those fields from the defaults record, and an
// all-zero defaults record is replaced by the built-in one, so a partially
// filled document still yields complete anchors everywhere.
func NewStore(cfg Config) *Store {
	defaults := cfg.Defaults
	if defaults == (Record{}) {
		defaults = DefaultRecord()
	}
	defaults = fillFrom(defaults, DefaultRecord())

	sectors := make(map[sector.Theme]Record, len(cfg.Sectors))
	for name, rec := range cfg.Sectors {
		sectors[sector.Theme(name)] = fillFrom(rec, defaults)
	}

	return &Store{
		sectors:   sectors,
		defaults:  defaults,
		marketRef: cfg.MarketReference,
	}
}

// LoadStore reads the benchmark document at path. A missing or malformed
// file is not an error: the built-in defaults take over and a warning is
// logged, because a scoring run must never be blocked by configuration.
func LoadStore(path string) *Store {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).
			Msg("Benchmark config unavailable, using built-in defaults")
		return NewStoreWithDefaults()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Warn().Err(err).Str("path", path).
			Msg("Benchmark config malformed, using built-in defaults")
		return NewStoreWithDefaults()
	}

	store := NewStore(cfg)
	log.Debug().Str("path", path).Int("sectors", len(store.sectors)).
		Msg("Benchmark config loaded")
	return store
}

// Lookup returns the benchmark record for a theme, falling back to the
// defaults record when the theme is absent. It never fails.
func (s *Store) Lookup(theme sector.Theme) Record {
	if rec, ok := s.sectors[theme]; ok {
		return rec
	}
	return s.defaults
}

// Defaults returns the resolved defaults record.
func (s *Store) Defaults() Record {
	return s.defaults
}

// Sectors returns a copy of the configured per-theme records.
func (s *Store) Sectors() map[sector.Theme]Record {
	out := make(map[sector.Theme]Record, len(s.sectors))
	for theme, rec := range s.sectors {
		out[theme] = rec
	}
	return out
}

// MarketReference returns the display-only market reference table, which
// may be empty. It carries no scoring weight.
func (s *Store) MarketReference() map[string]float64 {
	return s.marketRef
}

// Validate reports configuration values that would produce degenerate
// interpolation anchors. Used by the CLI to lint a benchmark document; the
// engine itself tolerates anything.
func (s *Store) Validate() error {
	check := func(theme string, rec Record) error {
		if rec.ForwardPEFair <= 0 {
			return fmt.Errorf("%s: forward_pe_fair must be positive", theme)
		}
		if rec.DebtSafe <= 0 {
			return fmt.Errorf("%s: debt_safe must be positive", theme)
		}
		if rec.CurrentRatioSafe <= 0 {
			return fmt.Errorf("%s: current_ratio_safe must be positive", theme)
		}
		if rec.MarginHealthy <= 0 || rec.ROEStrong <= 0 || rec.ROAStrong <= 0 {
			return fmt.Errorf("%s: margin and return anchors must be positive", theme)
		}
		if rec.GrowthStrong <= 0 || rec.FCFYieldStrong <= 0 || rec.EPSSurpriseHuge <= 0 {
			return fmt.Errorf("%s: growth anchors must be positive", theme)
		}
		return nil
	}

	if err := check("defaults", s.defaults); err != nil {
		return err
	}
	for theme, rec := range s.sectors {
		if err := check(string(theme), rec); err != nil {
			return err
		}
	}
	return nil
}

// fillFrom replaces zero-valued fields of rec with the matching fields of
// base, so sparse sector overrides stay usable.
func fillFrom(rec, base Record) Record {
	if rec.PEMedian == 0 {
		rec.PEMedian = base.PEMedian
	}
	if rec.PEGFair == 0 {
		rec.PEGFair = base.PEGFair
	}
	if rec.ForwardPEFair == 0 {
		rec.ForwardPEFair = base.ForwardPEFair
	}
	if rec.MarginHealthy == 0 {
		rec.MarginHealthy = base.MarginHealthy
	}
	if rec.ROEStrong == 0 {
		rec.ROEStrong = base.ROEStrong
	}
	if rec.ROAStrong == 0 {
		rec.ROAStrong = base.ROAStrong
	}
	if rec.DebtSafe == 0 {
		rec.DebtSafe = base.DebtSafe
	}
	if rec.CurrentRatioSafe == 0 {
		rec.CurrentRatioSafe = base.CurrentRatioSafe
	}
	if rec.GrowthStrong == 0 {
		rec.GrowthStrong = base.GrowthStrong
	}
	if rec.FCFYieldStrong == 0 {
		rec.FCFYieldStrong = base.FCFYieldStrong
	}
	if rec.EPSSurpriseHuge == 0 {
		rec.EPSSurpriseHuge = base.EPSSurpriseHuge
	}
	return rec
}
