package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/menulens/menulens-cli/internal/dataset"
)

// Describe computes descriptive statistics for every numeric column of a
// dataset, ignoring NaN sentinels, plus the nutrient ratios when the
// Fat/Protein/Carb columns are all present.
func Describe(ds *dataset.Dataset) *StatisticsReport {
	report := &StatisticsReport{
		Dataset: ds.Name,
		Columns: ds.NumericColumns(),
		Stats:   make(map[string]ColumnStats),
		Ratios:  make(map[string]float64),
	}
	for _, col := range report.Columns {
		values, err := ds.Column(col)
		if err != nil {
			continue
		}
		report.Stats[col] = describeColumn(values)
	}

	if ds.HasColumn("Fat") && ds.HasColumn("Protein") && ds.HasColumn("Carb") {
		fat := report.Stats["Fat"].Mean
		protein := report.Stats["Protein"].Mean
		carb := report.Stats["Carb"].Mean
		report.Ratios[RatioFatToProtein] = ratio(fat, protein)
		report.Ratios[RatioProteinToCarb] = ratio(protein, carb)
		report.Ratios[RatioCarbToFat] = ratio(carb, fat)
	}
	return report
}

// describeColumn aggregates the non-NaN values of a single column.
func describeColumn(values []float64) ColumnStats {
	xs := dropNaN(values)
	if len(xs) == 0 {
		nan := math.NaN()
		return ColumnStats{Count: 0, Mean: nan, Std: nan, Min: nan, P25: nan, Median: nan, P75: nan, Max: nan}
	}
	sort.Float64s(xs)
	return ColumnStats{
		Count:  len(xs),
		Mean:   stat.Mean(xs, nil),
		Std:    stat.StdDev(xs, nil),
		Min:    floats.Min(xs),
		P25:    quantile(xs, 0.25),
		Median: quantile(xs, 0.50),
		P75:    quantile(xs, 0.75),
		Max:    floats.Max(xs),
	}
}

// quantile interpolates linearly between order statistics, matching the
// convention where position p*(n-1) indexes the sorted sample. Input must be
// sorted and non-empty.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// ratio divides two column means; undefined denominators yield NaN rather
// than an error so reports stay printable.
func ratio(num, den float64) float64 {
	if den == 0 || math.IsNaN(den) || math.IsNaN(num) {
		return math.NaN()
	}
	return num / den
}

func dropNaN(values []float64) []float64 {
	xs := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			xs = append(xs, v)
		}
	}
	return xs
}
