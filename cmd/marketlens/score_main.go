package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marketlens/marketlens/internal/benchmarks"
	"github.com/marketlens/marketlens/internal/domain"
	"github.com/marketlens/marketlens/internal/metrics"
	"github.com/marketlens/marketlens/internal/reports"
	"github.com/marketlens/marketlens/internal/score/engine"
)

// runScore evaluates each snapshot file and renders the result. In "auto"
// output mode a TTY gets the console report and a pipe gets JSON, mirroring
// how the reports are consumed in practice.
func runScore(cmd *cobra.Command, args []string) error {
	benchPath, _ := cmd.Flags().GetString("benchmarks")
	output, _ := cmd.Flags().GetString("output")

	if output == "auto" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			output = "table"
		} else {
			output = "json"
		}
	}
	if output != "table" && output != "json" {
		return fmt.Errorf("unknown output mode %q (want auto|table|json)", output)
	}

	store := benchmarks.LoadStore(benchPath)
	eng := engine.New(store, engine.WithMetrics(metrics.NewRegistry()))
	renderer := reports.NewRenderer(os.Stdout)

	for i, path := range args {
		stock, err := loadSnapshot(path)
		if err != nil {
			return err
		}

		result := eng.Evaluate(stock)

		log.Info().
			Str("ticker", result.Ticker).
			Int("score", result.TotalScore).
			Str("rating", string(result.Rating)).
			Msg("Snapshot scored")

		if output == "json" {
			if err := renderer.RenderJSON(result); err != nil {
				return err
			}
			continue
		}

		if i > 0 {
			fmt.Println()
		}
		renderer.RenderConsole(result)
	}

	return nil
}

// loadSnapshot reads one StockData JSON document produced by the upstream
// data layer. Null metric fields stay distinguishable from real zeros.
func loadSnapshot(path string) (domain.StockData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.StockData{}, fmt.Errorf("read snapshot: %w", err)
	}

	var stock domain.StockData
	if err := json.Unmarshal(data, &stock); err != nil {
		return domain.StockData{}, fmt.Errorf("parse snapshot %s: %w", path, err)
	}

	if stock.Ticker == "" {
		return domain.StockData{}, fmt.Errorf("snapshot %s has no ticker", path)
	}

	return stock, nil
}
