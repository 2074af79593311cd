package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marketlens/marketlens/internal/sector"
)

// runClassify shows which canonical theme each raw label folds onto.
func runClassify(cmd *cobra.Command, args []string) {
	for _, label := range args {
		fmt.Printf("%-30s → %s\n", label, sector.Classify(label, ""))
	}
}
