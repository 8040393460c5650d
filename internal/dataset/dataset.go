package dataset

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Dataset is a named, column-typed nutrition table. The first column holds
// item names; every other column is numeric with NaN marking missing values.
// Datasets are read-only after loading: filtering produces a new Dataset.
type Dataset struct {
	Name string
	df   dataframe.DataFrame
}

// FromFrame wraps an existing dataframe under a dataset name. Used when
// filtering produces a derived subset.
func FromFrame(name string, df dataframe.DataFrame) *Dataset {
	return &Dataset{Name: name, df: df}
}

// Frame returns the underlying dataframe.
func (d *Dataset) Frame() dataframe.DataFrame {
	return d.df
}

// Columns returns all column names in order.
func (d *Dataset) Columns() []string {
	return d.df.Names()
}

// NumericColumns returns the names of float-typed columns in order.
func (d *Dataset) NumericColumns() []string {
	names := d.df.Names()
	types := d.df.Types()
	var cols []string
	for i, name := range names {
		if types[i] == series.Float {
			cols = append(cols, name)
		}
	}
	return cols
}

// HasColumn reports whether the dataset contains the named column.
func (d *Dataset) HasColumn(name string) bool {
	for _, n := range d.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// IsNumeric reports whether the named column is float-typed.
func (d *Dataset) IsNumeric(name string) bool {
	names := d.df.Names()
	types := d.df.Types()
	for i, n := range names {
		if n == name {
			return types[i] == series.Float
		}
	}
	return false
}

// NumRows returns the number of data rows.
func (d *Dataset) NumRows() int {
	return d.df.Nrow()
}

// Column returns the values of a numeric column, NaN included for missing
// measurements.
func (d *Dataset) Column(name string) ([]float64, error) {
	if !d.HasColumn(name) {
		return nil, fmt.Errorf("column %q not found in dataset %q", name, d.Name)
	}
	return d.df.Col(name).Float(), nil
}

// Items returns the item-name column (always the first column).
func (d *Dataset) Items() []string {
	return d.df.Col(d.df.Names()[0]).Records()
}

// Head returns a dataset holding at most n leading rows.
func (d *Dataset) Head(n int) *Dataset {
	if n >= d.df.Nrow() {
		return d
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return &Dataset{Name: d.Name, df: d.df.Subset(idx)}
}

// String renders the dataset as a record table.
func (d *Dataset) String() string {
	return d.df.String()
}
