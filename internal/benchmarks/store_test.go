package benchmarks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/marketlens/marketlens/internal/sector"
)

func TestLoadStoreFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "benchmarks.yaml")

	cfg := Config{
		Sectors: map[string]Record{
			"Financials": {ForwardPEFair: 11, ROEStrong: 0.12, DebtSafe: 2.0},
		},
		Defaults:        DefaultRecord(),
		MarketReference: map[string]float64{"sp500_pe": 24.5},
	}

	data, err := yaml.Marshal(&cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(configPath, data, 0644))

	store := LoadStore(configPath)

	fin := store.Lookup(sector.Financials)
	assert.Equal(t, 11.0, fin.ForwardPEFair)
	assert.Equal(t, 0.12, fin.ROEStrong)
	assert.Equal(t, 2.0, fin.DebtSafe)
	assert.Equal(t, 24.5, store.MarketReference()["sp500_pe"])
}

// Sparse sector records inherit every omitted field from defaults, so a
// partially filled document still yields complete anchors.
func TestSectorRecordInheritsDefaults(t *testing.T) {
	store := NewStore(Config{
		Sectors: map[string]Record{
			"Utilities": {DebtSafe: 1.6},
		},
	})

	util := store.Lookup(sector.Utilities)
	assert.Equal(t, 1.6, util.DebtSafe)
	assert.Equal(t, DefaultRecord().MarginHealthy, util.MarginHealthy)
	assert.Equal(t, DefaultRecord().GrowthStrong, util.GrowthStrong)
}

func TestLookupFallsBackToDefaults(t *testing.T) {
	store := NewStore(Config{
		Sectors:  map[string]Record{"Financials": {ForwardPEFair: 11}},
		Defaults: DefaultRecord(),
	})

	rec := store.Lookup(sector.Healthcare)
	assert.Equal(t, DefaultRecord(), rec, "unknown theme must resolve to defaults")
}

// A missing or malformed document must never block evaluation: the built-in
// record takes over silently (modulo a warning log).
func TestLoadStoreFallsBackOnBadConfig(t *testing.T) {
	missing := LoadStore(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Equal(t, DefaultRecord(), missing.Lookup(sector.MatureTech))

	badPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(badPath, []byte("sectors: [not, a, map"), 0644))
	malformed := LoadStore(badPath)
	assert.Equal(t, DefaultRecord(), malformed.Lookup(sector.MatureTech))
}

func TestBuiltInDefaults(t *testing.T) {
	rec := DefaultRecord()
	assert.Equal(t, 20.0, rec.PEMedian)
	assert.Equal(t, 1.5, rec.PEGFair)
	assert.Equal(t, 0.10, rec.GrowthStrong)
	assert.Equal(t, 0.12, rec.MarginHealthy)
	assert.Equal(t, 1.0, rec.DebtSafe)
	assert.Equal(t, 0.05, rec.FCFYieldStrong)
}

func TestValidateRejectsDegenerateAnchors(t *testing.T) {
	good := NewStoreWithDefaults()
	assert.NoError(t, good.Validate())

	bad := NewStore(Config{Defaults: DefaultRecord()})
	bad.defaults.ForwardPEFair = 0
	assert.Error(t, bad.Validate())
}

func TestShippedConfigParses(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "config", "benchmarks.yaml"))
	if err != nil {
		t.Skip("shipped config not present in this build context")
	}

	var cfg Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Len(t, cfg.Sectors, 10, "shipped config should cover all ten themes")

	store := NewStore(cfg)
	require.NoError(t, store.Validate())
	for _, theme := range sector.Themes() {
		rec := store.Lookup(theme)
		assert.Positivef(t, rec.ForwardPEFair, "theme %s forward P/E", theme)
	}
}
