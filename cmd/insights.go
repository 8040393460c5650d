package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/menulens/menulens-cli/internal/dataset"
	"github.com/menulens/menulens-cli/internal/stats"
	"github.com/menulens/menulens-cli/internal/visualizer"
)

// comparison tables and charts default to the same metrics the interactive
// transcript shows.
var (
	printMetrics = []string{"mean", "min"}
	chartMetrics = []string{"mean"}
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Print descriptive statistics and render bar charts",
	RunE: func(cmd *cobra.Command, args []string) error {
		food, drinks, err := loadDatasets()
		if err != nil {
			return err
		}
		runInsights(os.Stdout, food, drinks, cfg.StatsChart, cfg.ComparisonChart)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

// runInsights computes and prints statistics for both datasets plus their
// comparison, then renders the bar charts. Chart write failures are reported
// and skipped; they never abort the session. Empty chart paths skip
// rendering.
func runInsights(w io.Writer, food, drinks *dataset.Dataset, statsChart, comparisonChart string) {
	foodStats := stats.Describe(food)
	drinksStats := stats.Describe(drinks)
	visualizer.PrintStats(w, foodStats, drinksStats)

	comparison, err := stats.Compare(food, drinks)
	if err != nil {
		fmt.Fprintf(w, "⚠ Warning: comparison skipped: %v\n", err)
	} else {
		visualizer.PrintComparison(w, comparison, printMetrics)
	}

	if statsChart != "" {
		reports := []*stats.StatisticsReport{foodStats, drinksStats}
		if err := visualizer.RenderStatsChart(reports, chartMetrics, statsChart); err != nil {
			fmt.Fprintf(w, "⚠ Warning: %v\n", err)
		} else {
			fmt.Fprintf(w, "Bar chart for descriptive statistics saved as %s\n", statsChart)
		}
	}
	if comparisonChart != "" && comparison != nil {
		if err := visualizer.RenderComparisonChart(comparison, chartMetrics, comparisonChart); err != nil {
			fmt.Fprintf(w, "⚠ Warning: %v\n", err)
		} else {
			fmt.Fprintf(w, "Bar chart for comparison statistics saved as %s\n", comparisonChart)
		}
	}
}
