package stats

import (
	"errors"

	"github.com/menulens/menulens-cli/internal/dataset"
)

// Compare builds per-column statistics for the numeric columns two datasets
// have in common. Swapping the arguments swaps the two sides of each pair but
// not the column set.
func Compare(a, b *dataset.Dataset) (*ComparisonReport, error) {
	if a == nil || b == nil {
		return nil, errors.New("compare: need two datasets")
	}
	shared := intersect(a.NumericColumns(), b.NumericColumns())
	report := &ComparisonReport{
		Left:    a.Name,
		Right:   b.Name,
		Columns: shared,
		Stats:   make(map[string]StatsPair, len(shared)),
	}
	for _, col := range shared {
		left, _ := a.Column(col)
		right, _ := b.Column(col)
		report.Stats[col] = StatsPair{
			Left:  describeColumn(left),
			Right: describeColumn(right),
		}
	}
	return report, nil
}

// intersect keeps the elements of a that also appear in b, preserving a's
// order so comparison output is stable.
func intersect(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, s := range b {
		set[s] = true
	}
	var out []string
	for _, s := range a {
		if set[s] {
			out = append(out, s)
		}
	}
	return out
}
