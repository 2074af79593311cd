package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/marketlens/marketlens/internal/benchmarks"
	"github.com/marketlens/marketlens/internal/reports"
)

// runBenchmarks prints the anchor table the engine would score with,
// including the built-in fallback when the document is absent.
func runBenchmarks(cmd *cobra.Command, args []string) error {
	benchPath, _ := cmd.Flags().GetString("benchmarks")
	validate, _ := cmd.Flags().GetBool("validate")

	store := benchmarks.LoadStore(benchPath)

	if validate {
		if err := store.Validate(); err != nil {
			return err
		}
	}

	reports.NewRenderer(os.Stdout).RenderBenchmarks(store)
	return nil
}
