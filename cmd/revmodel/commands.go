package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"revenue_model/pkg/core/analysis"
	"revenue_model/pkg/core/export"
	"revenue_model/pkg/core/model"
	"revenue_model/pkg/core/scenario"
)

var (
	flagPeriods int
	flagMonths  int
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Run the periodic partnership revenue projection",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildModel()
		if err != nil {
			return err
		}
		table, err := m.RunProjection(flagPeriods)
		if err != nil {
			return err
		}
		w, done, err := outWriter()
		if err != nil {
			return err
		}
		defer done()
		switch flagFormat {
		case "csv":
			return export.WriteCSV(w, table)
		case "json":
			return export.WriteJSON(w, table)
		case "table":
			return printProjection(w, table)
		default:
			return fmt.Errorf("unknown format %q", flagFormat)
		}
	},
}

var tcoCmd = &cobra.Command{
	Use:   "tco",
	Short: "Calculate vehicle total cost of ownership",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildModel()
		if err != nil {
			return err
		}
		res, err := m.CalculateTCO()
		if err != nil {
			return err
		}
		return emit(res, func(w *tabwriter.Writer) {
			fmt.Fprintf(w, "Total TCO\t$%.2f\n", res.TotalTCO)
			fmt.Fprintf(w, "TCO per mile\t$%.4f\n", res.TCOPerMile)
			for _, name := range sortedKeys(res.CategoryTotals) {
				fmt.Fprintf(w, "%s\t$%.2f\n", name, res.CategoryTotals[name])
			}
		})
	},
}

var revenueCmd = &cobra.Command{
	Use:   "revenue",
	Short: "Calculate vehicle-variant aggregate revenue over the ownership horizon",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildModel()
		if err != nil {
			return err
		}
		res, err := m.CalculateRevenueStreams(flagMonths)
		if err != nil {
			return err
		}
		return emit(res, func(w *tabwriter.Writer) {
			fmt.Fprintf(w, "Total revenue\t$%.2f\n", res.TotalRevenue)
			fmt.Fprintf(w, "Revenue growth\t%.1f%%\n", res.RevenueGrowthPct)
			for _, name := range res.StreamNames {
				fmt.Fprintf(w, "%s\t$%.2f\n", name, res.StreamTotals[name])
			}
			for y, v := range res.AnnualRevenue {
				fmt.Fprintf(w, "year %d\t$%.2f\n", y+1, v)
			}
		})
	},
}

var breakevenCmd = &cobra.Command{
	Use:   "breakeven",
	Short: "Report net profit, ROI and break-even timing",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildModel()
		if err != nil {
			return err
		}
		profit, err := analysis.NetProfit(m)
		if err != nil {
			return err
		}
		be, err := analysis.BreakEven(m)
		if err != nil {
			return err
		}
		out := struct {
			Profit    *analysis.ProfitReport    `json:"profit"`
			BreakEven *analysis.BreakEvenReport `json:"break_even"`
		}{profit, be}
		return emit(out, func(w *tabwriter.Writer) {
			fmt.Fprintf(w, "Net profit\t$%.2f\n", profit.NetProfit)
			fmt.Fprintf(w, "ROI\t%.1f%%\n", profit.ROI)
			fmt.Fprintf(w, "Annual TCO\t$%.2f\n", be.AnnualTCO)
			fmt.Fprintf(w, "Annual revenue\t$%.2f\n", be.AnnualRevenue)
			if math.IsInf(be.BreakEvenMonths, 1) {
				fmt.Fprintf(w, "Break-even\tnever\n")
			} else {
				fmt.Fprintf(w, "Break-even\t%.1f months\n", be.BreakEvenMonths)
			}
		})
	},
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print optimization recommendations for the scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildModel()
		if err != nil {
			return err
		}
		recs, err := analysis.Recommendations(m)
		if err != nil {
			return err
		}
		w, done, err := outWriter()
		if err != nil {
			return err
		}
		defer done()
		if flagFormat == "json" {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(recs)
		}
		for _, r := range recs {
			fmt.Fprintf(w, "- %s\n", r)
		}
		return nil
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List available scenario presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range scenario.Names() {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	projectCmd.Flags().IntVarP(&flagPeriods, "periods", "p", 24, "Projection horizon in periods")
	revenueCmd.Flags().IntVarP(&flagMonths, "months", "m", 60, "Population horizon in months behind the annual figures")
	rootCmd.AddCommand(projectCmd, tcoCmd, revenueCmd, breakevenCmd, recommendCmd, presetsCmd)
}

func buildModel() (*model.Model, error) {
	b, err := resolveBundle()
	if err != nil {
		return nil, err
	}
	return model.New(b)
}

// emit routes a result either through the JSON encoder or a tabwriter
// rendering callback, honoring --format and --out.
func emit(v interface{}, render func(w *tabwriter.Writer)) error {
	w, done, err := outWriter()
	if err != nil {
		return err
	}
	defer done()
	if flagFormat == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	render(tw)
	return tw.Flush()
}

func printProjection(w io.Writer, t *model.ProjectionTable) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := append([]string{"period", "total_users", "active_users", "engaged_users"}, t.StreamNames...)
	header = append(header, "total_revenue")
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range t.Rows {
		cols := []string{
			fmt.Sprintf("%d", row.Period),
			fmt.Sprintf("%.2f", row.TotalUsers),
			fmt.Sprintf("%.2f", row.ActiveUsers),
			fmt.Sprintf("%.2f", row.EngagedUsers),
		}
		for _, name := range t.StreamNames {
			cols = append(cols, fmt.Sprintf("%.2f", row.Streams[name]))
		}
		cols = append(cols, fmt.Sprintf("%.2f", row.TotalRevenue))
		fmt.Fprintln(tw, strings.Join(cols, "\t"))
	}
	if t.Degenerate {
		fmt.Fprintln(tw, "warning: population went negative; growth assumptions are not viable")
	}
	return tw.Flush()
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
