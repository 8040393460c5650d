package llm

import (
	"fmt"
	"math"
	"strings"

	"github.com/menulens/menulens-cli/internal/dataset"
	"github.com/menulens/menulens-cli/internal/stats"
)

// BuildContext condenses the datasets into the text summary embedded in each
// prompt: row counts, per-column mean/min/max, and the item holding each
// column's maximum. The summary is what the provider sees instead of raw
// rows.
func BuildContext(datasets ...*dataset.Dataset) string {
	var b strings.Builder
	for _, ds := range datasets {
		if ds == nil {
			continue
		}
		report := stats.Describe(ds)
		fmt.Fprintf(&b, "%s data: %d items\n", ds.Name, ds.NumRows())
		for _, col := range report.Columns {
			cs := report.Stats[col]
			if cs.Count == 0 {
				fmt.Fprintf(&b, "- %s: no measurements\n", col)
				continue
			}
			fmt.Fprintf(&b, "- %s: mean %.2f, min %.2f, max %.2f", col, cs.Mean, cs.Min, cs.Max)
			if item := maxItem(ds, col, cs.Max); item != "" {
				fmt.Fprintf(&b, " (highest: %s)", item)
			}
			b.WriteString("\n")
		}
		for _, name := range stats.RatioNames {
			if v, ok := report.Ratios[name]; ok && !math.IsNaN(v) {
				fmt.Fprintf(&b, "- %s: %.2f\n", name, v)
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// maxItem returns the name of the first item whose column value equals the
// column maximum.
func maxItem(ds *dataset.Dataset, col string, max float64) string {
	values, err := ds.Column(col)
	if err != nil {
		return ""
	}
	items := ds.Items()
	for i, v := range values {
		if v == max && i < len(items) {
			return items[i]
		}
	}
	return ""
}
