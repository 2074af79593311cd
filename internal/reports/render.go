// Package reports renders ScoreResult values for humans and for pipes:
// a box-drawing console report with the itemized metric table, and compact
// JSON for downstream tooling.
package reports

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/marketlens/marketlens/internal/benchmarks"
	"github.com/marketlens/marketlens/internal/domain"
	"github.com/marketlens/marketlens/internal/sector"
)

// breakdownOrder fixes the display order of the breakdown rows; the six
// fundamental categories first, adjustments last.
var breakdownOrder = []string{
	domain.CategoryValuation,
	domain.CategoryProfitability,
	domain.CategoryEfficiency,
	domain.CategorySolvency,
	domain.CategoryGrowth,
	domain.CategoryConviction,
	domain.CategoryBonuses,
	domain.CategoryPenalties,
}

// Renderer writes evaluation reports to a single destination.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// RenderJSON writes the result as indented JSON.
func (r *Renderer) RenderJSON(result domain.ScoreResult) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode score result: %w", err)
	}
	return nil
}

// RenderConsole writes the full human-readable report: header, verdict,
// breakdown table, itemized detail table and the fired adjustments.
func (r *Renderer) RenderConsole(result domain.ScoreResult) {
	fmt.Fprintf(r.out, "=== %s — %s (%d/100) ===\n", result.Ticker, result.Rating, result.TotalScore)
	fmt.Fprintf(r.out, "Sector: %s   Evaluated: %s   ID: %s\n\n",
		result.Sector, result.Timestamp.Format("2006-01-02 15:04:05"), result.EvaluationID)

	fmt.Fprintf(r.out, "%s\n\n", result.Verdict)

	r.renderBreakdown(result)
	fmt.Fprintln(r.out)

	r.renderDetails(result)

	if len(result.Modifications) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, "ADJUSTMENTS")
		for _, mod := range result.Modifications {
			fmt.Fprintf(r.out, "  • %s\n", mod)
		}
	}
}

func (r *Renderer) renderBreakdown(result domain.ScoreResult) {
	fmt.Fprintln(r.out, "SCORE BREAKDOWN")
	fmt.Fprintln(r.out, "┌─────────────────┬─────────┐")
	fmt.Fprintln(r.out, "│ Category        │  Points │")
	fmt.Fprintln(r.out, "├─────────────────┼─────────┤")
	for _, key := range breakdownOrder {
		points, ok := result.Breakdown[key]
		if !ok {
			continue
		}
		fmt.Fprintf(r.out, "│ %-15s │ %7.1f │\n", key, points)
	}
	fmt.Fprintln(r.out, "└─────────────────┴─────────┘")
}

func (r *Renderer) renderDetails(result domain.ScoreResult) {
	fmt.Fprintln(r.out, "ITEMIZED SCORING")
	fmt.Fprintln(r.out, "┌───────────────┬─────────────────────────┬──────────┬───────────┬──────────┬───────────┐")
	fmt.Fprintln(r.out, "│ Category      │ Metric                  │ Value    │ Benchmark │ Score    │ Status    │")
	fmt.Fprintln(r.out, "├───────────────┼─────────────────────────┼──────────┼───────────┼──────────┼───────────┤")
	for _, d := range result.Details {
		fmt.Fprintf(r.out, "│ %-13s │ %-23s │ %-8s │ %-9s │ %-8s │ %-9s │\n",
			d.Category, d.Metric, d.Value, d.Benchmark, d.Score, d.Status)
	}
	fmt.Fprintln(r.out, "└───────────────┴─────────────────────────┴──────────┴───────────┴──────────┴───────────┘")
}

// RenderBenchmarks writes the resolved benchmark table for one store:
// defaults first, then each configured theme in lexical order. Used by the
// CLI's benchmarks command to show exactly what the engine will score with.
func (r *Renderer) RenderBenchmarks(store *benchmarks.Store) {
	themes := store.Sectors()
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, string(name))
	}
	sort.Strings(names)

	fmt.Fprintln(r.out, "BENCHMARK ANCHORS")
	fmt.Fprintln(r.out, "┌──────────────────────┬───────┬───────┬───────┬────────┬────────┬───────┬───────┬───────┬────────┬───────┬────────┐")
	fmt.Fprintln(r.out, "│ Theme                │ PEMed │ FwdPE │ PEG   │ Margin │ ROE    │ ROA   │ Debt  │ CurRa │ Growth │ FCF   │ EPSSur │")
	fmt.Fprintln(r.out, "├──────────────────────┼───────┼───────┼───────┼────────┼────────┼───────┼───────┼───────┼────────┼───────┼────────┤")

	row := func(name string, rec benchmarks.Record) {
		fmt.Fprintf(r.out, "│ %-20s │ %5.1f │ %5.1f │ %5.2f │ %5.1f%% │ %5.1f%% │ %4.1f%% │ %5.2f │ %5.2f │ %5.1f%% │ %4.1f%% │ %6.1f │\n",
			name, rec.PEMedian, rec.ForwardPEFair, rec.PEGFair, rec.MarginHealthy*100,
			rec.ROEStrong*100, rec.ROAStrong*100, rec.DebtSafe,
			rec.CurrentRatioSafe, rec.GrowthStrong*100,
			rec.FCFYieldStrong*100, rec.EPSSurpriseHuge)
	}

	row("defaults", store.Defaults())
	for _, name := range names {
		row(name, themes[sector.Theme(name)])
	}
	fmt.Fprintln(r.out, "└──────────────────────┴───────┴───────┴───────┴────────┴────────┴───────┴───────┴────────┴───────┴────────┘")

	if ref := store.MarketReference(); len(ref) > 0 {
		keys := make([]string, 0, len(ref))
		for k := range ref {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, "MARKET REFERENCE (display only)")
		for _, k := range keys {
			fmt.Fprintf(r.out, "  %-24s %.2f\n", k, ref[k])
		}
	}
}
