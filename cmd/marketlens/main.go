package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	appName = "MarketLens"
	version = "v1.2.0"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	rootCmd := &cobra.Command{
		Use:     "marketlens",
		Short:   "Deterministic equity investability scoring",
		Version: version,
		Long: `MarketLens converts a precomputed stock snapshot — fundamentals, technicals,
sentiment and Monte-Carlo price projections — into a 0-100 investability
score, a rating, and a fully itemized per-metric breakdown.

The engine fetches nothing: snapshots are supplied as JSON files produced by
an upstream data layer.`,
	}

	scoreCmd := &cobra.Command{
		Use:   "score [snapshot.json ...]",
		Short: "Score one or more stock snapshots",
		Long:  "Evaluate snapshot files against sector benchmarks and print the rating, breakdown and itemized scoring table",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runScore,
	}
	scoreCmd.Flags().String("benchmarks", "config/benchmarks.yaml", "Path to the benchmark YAML document")
	scoreCmd.Flags().String("output", "auto", "Output mode (auto|table|json)")

	classifyCmd := &cobra.Command{
		Use:   "classify [sector label ...]",
		Short: "Map raw sector labels onto canonical themes",
		Args:  cobra.MinimumNArgs(1),
		Run:   runClassify,
	}

	benchmarksCmd := &cobra.Command{
		Use:   "benchmarks",
		Short: "Show the resolved benchmark anchor table",
		RunE:  runBenchmarks,
	}
	benchmarksCmd.Flags().String("benchmarks", "config/benchmarks.yaml", "Path to the benchmark YAML document")
	benchmarksCmd.Flags().Bool("validate", false, "Lint the document for degenerate anchors")

	rootCmd.AddCommand(scoreCmd, classifyCmd, benchmarksCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
