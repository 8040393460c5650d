package stats

// ColumnStats holds descriptive statistics for one numeric column. Count
// reflects non-missing values only; the remaining fields are NaN when the
// column has no measurements.
type ColumnStats struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	P25    float64
	Median float64
	P75    float64
	Max    float64
}

// Ratio keys reported by Describe.
const (
	RatioFatToProtein  = "fat_to_protein"
	RatioProteinToCarb = "protein_to_carb"
	RatioCarbToFat     = "carb_to_fat"
)

// RatioNames lists ratio keys in display order.
var RatioNames = []string{RatioFatToProtein, RatioProteinToCarb, RatioCarbToFat}

// StatisticsReport is the result of Describe: per-column statistics plus
// nutrient ratios derived from column means. Recomputed on each request.
type StatisticsReport struct {
	Dataset string
	Columns []string
	Stats   map[string]ColumnStats
	Ratios  map[string]float64
}

// StatsPair holds one column's statistics for the two sides of a comparison.
type StatsPair struct {
	Left  ColumnStats
	Right ColumnStats
}

// ComparisonReport compares two datasets over the numeric columns they share.
type ComparisonReport struct {
	Left    string
	Right   string
	Columns []string
	Stats   map[string]StatsPair
}
