package visualizer

import (
	"fmt"
	"io"
	"strings"

	"github.com/menulens/menulens-cli/internal/dataset"
	"github.com/menulens/menulens-cli/internal/stats"
)

const bannerWidth = 80

// MetricNames lists the statistic rows in display order.
var MetricNames = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

// metricValue selects one statistic from a ColumnStats by display name.
func metricValue(cs stats.ColumnStats, metric string) float64 {
	switch metric {
	case "count":
		return float64(cs.Count)
	case "mean":
		return cs.Mean
	case "std":
		return cs.Std
	case "min":
		return cs.Min
	case "25%":
		return cs.P25
	case "50%":
		return cs.Median
	case "75%":
		return cs.P75
	case "max":
		return cs.Max
	}
	return 0
}

func banner(b *strings.Builder, ch, title string) {
	b.WriteString(strings.Repeat(ch, bannerWidth))
	b.WriteString("\n")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat(ch, bannerWidth))
	b.WriteString("\n")
}

// FormatStats renders a StatisticsReport as an aligned text table with fixed
// 2-decimal floats, followed by the nutrient ratios.
func FormatStats(r *stats.StatisticsReport) string {
	var b strings.Builder
	banner(&b, "=", fmt.Sprintf("%s DESCRIPTIVE STATISTICS", strings.ToUpper(r.Dataset)))

	b.WriteString("\nBasic Statistics:\n")
	b.WriteString(fmt.Sprintf("%-8s", ""))
	for _, col := range r.Columns {
		b.WriteString(fmt.Sprintf("%12s", col))
	}
	b.WriteString("\n")
	for _, metric := range MetricNames {
		b.WriteString(fmt.Sprintf("%-8s", metric))
		for _, col := range r.Columns {
			b.WriteString(fmt.Sprintf("%12.2f", metricValue(r.Stats[col], metric)))
		}
		b.WriteString("\n")
	}

	if len(r.Ratios) > 0 {
		b.WriteString("\nRatios:\n")
		for _, name := range stats.RatioNames {
			if v, ok := r.Ratios[name]; ok {
				b.WriteString(fmt.Sprintf("  %-16s: %.2f\n", name, v))
			}
		}
	}
	return b.String()
}

// FormatComparison renders one side-by-side table per requested metric.
// A nil metrics slice prints every metric.
func FormatComparison(r *stats.ComparisonReport, metrics []string) string {
	if metrics == nil {
		metrics = MetricNames
	}
	var b strings.Builder
	banner(&b, "=", "DATASETS COMPARISON")

	for _, metric := range metrics {
		b.WriteString("\n")
		banner(&b, "-", fmt.Sprintf("%s COMPARISON", strings.ToUpper(metric)))
		b.WriteString(fmt.Sprintf("%-12s%12s%12s\n", "", r.Left, r.Right))
		for _, col := range r.Columns {
			pair := r.Stats[col]
			b.WriteString(fmt.Sprintf("%-12s%12.2f%12.2f\n",
				col, metricValue(pair.Left, metric), metricValue(pair.Right, metric)))
		}
	}
	b.WriteString("\n")
	return b.String()
}

// FormatFiltered renders a filtered dataset with its row count.
func FormatFiltered(ds *dataset.Dataset) string {
	var b strings.Builder
	banner(&b, "=", "FILTERED RESULTS:")
	b.WriteString("\n")
	b.WriteString(ds.String())
	b.WriteString(fmt.Sprintf("\nTotal rows after filtering: %d\n", ds.NumRows()))
	return b.String()
}

// PrintStats writes formatted statistics for each report.
func PrintStats(w io.Writer, reports ...*stats.StatisticsReport) {
	for _, r := range reports {
		fmt.Fprintln(w)
		fmt.Fprint(w, FormatStats(r))
	}
}

// PrintComparison writes the formatted comparison tables.
func PrintComparison(w io.Writer, r *stats.ComparisonReport, metrics []string) {
	fmt.Fprintln(w)
	fmt.Fprint(w, FormatComparison(r, metrics))
}
