package stats

import (
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/menulens/menulens-cli/internal/dataset"
)

// Operator is the comparison applied by a FilterSpec.
type Operator int

const (
	OpGreater Operator = iota
	OpLess
	OpEqual
	OpBetween
)

// OperatorTokens lists the tokens accepted by ParseOperator.
var OperatorTokens = []string{">", "<", "==", "between"}

func (op Operator) String() string {
	switch op {
	case OpGreater:
		return ">"
	case OpLess:
		return "<"
	case OpEqual:
		return "=="
	case OpBetween:
		return "between"
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// ParseOperator maps a user-supplied token to an Operator.
func ParseOperator(token string) (Operator, error) {
	switch strings.TrimSpace(token) {
	case ">":
		return OpGreater, nil
	case "<":
		return OpLess, nil
	case "==":
		return OpEqual, nil
	case "between":
		return OpBetween, nil
	}
	return 0, &ValidationError{Field: "operator", Value: token, Valid: OperatorTokens}
}

// FilterSpec selects a row subset of a dataset. Value is used by the
// comparison operators; Low/High (inclusive on both bounds) by OpBetween.
type FilterSpec struct {
	Column string
	Op     Operator
	Value  float64
	Low    float64
	High   float64
}

// ValidationError reports a filter input that does not match the dataset
// schema or the accepted operator tokens, along with the valid options.
type ValidationError struct {
	Field string
	Value string
	Valid []string
}

func (e *ValidationError) Error() string {
	if len(e.Valid) > 0 {
		return fmt.Sprintf("invalid %s %q (valid: %s)", e.Field, e.Value, strings.Join(e.Valid, ", "))
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

// Apply returns a new derived dataset holding only the rows that satisfy the
// spec. Rows with a NaN sentinel in the filtered column never satisfy any
// operator. The input dataset is not mutated.
func Apply(ds *dataset.Dataset, spec FilterSpec) (*dataset.Dataset, error) {
	col := dataset.NormalizeColumn(spec.Column)
	if !ds.HasColumn(col) || !ds.IsNumeric(col) {
		return nil, &ValidationError{Field: "column", Value: spec.Column, Valid: ds.NumericColumns()}
	}

	df := ds.Frame()
	switch spec.Op {
	case OpGreater:
		df = df.Filter(dataframe.F{Colname: col, Comparator: series.Greater, Comparando: spec.Value})
	case OpLess:
		df = df.Filter(dataframe.F{Colname: col, Comparator: series.Less, Comparando: spec.Value})
	case OpEqual:
		df = df.Filter(dataframe.F{Colname: col, Comparator: series.Eq, Comparando: spec.Value})
	case OpBetween:
		if spec.Low > spec.High {
			return nil, &ValidationError{Field: "range", Value: fmt.Sprintf("%g..%g", spec.Low, spec.High)}
		}
		df = df.
			Filter(dataframe.F{Colname: col, Comparator: series.GreaterEq, Comparando: spec.Low}).
			Filter(dataframe.F{Colname: col, Comparator: series.LessEq, Comparando: spec.High})
	default:
		return nil, &ValidationError{Field: "operator", Value: spec.Op.String(), Valid: OperatorTokens}
	}
	if df.Err != nil {
		return nil, fmt.Errorf("filter %s %s: %w", col, spec.Op, df.Err)
	}
	return dataset.FromFrame(ds.Name, df), nil
}
