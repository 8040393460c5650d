package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/menulens/menulens-cli/internal/stats"
	"github.com/menulens/menulens-cli/internal/visualizer"
)

var (
	filterCategory string
	filterColumn   string
	filterOp       string
	filterValue    string
	filterMin      string
	filterMax      string
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter a dataset by a nutritional criterion",
	Example: `  menulens filter --category food --column fat --op '<' --value 3
  menulens filter --category drinks --column calories --op between --min 100 --max 250`,
	RunE: func(cmd *cobra.Command, args []string) error {
		food, drinks, err := loadDatasets()
		if err != nil {
			return err
		}
		var ds = food
		switch strings.ToLower(filterCategory) {
		case "food":
		case "drinks":
			ds = drinks
		default:
			return &stats.ValidationError{Field: "category", Value: filterCategory, Valid: []string{"food", "drinks"}}
		}
		spec, err := makeSpec(filterColumn, filterOp, filterValue, filterMin, filterMax)
		if err != nil {
			return err
		}
		filtered, err := stats.Apply(ds, spec)
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, visualizer.FormatFiltered(filtered))
		return nil
	},
}

func init() {
	filterCmd.Flags().StringVar(&filterCategory, "category", "food", "dataset to filter (food or drinks)")
	filterCmd.Flags().StringVar(&filterColumn, "column", "", "nutrient column to filter by")
	filterCmd.Flags().StringVar(&filterOp, "op", "", "operator: >, <, ==, between")
	filterCmd.Flags().StringVar(&filterValue, "value", "", "comparison value (for >, <, ==)")
	filterCmd.Flags().StringVar(&filterMin, "min", "", "lower bound (for between, inclusive)")
	filterCmd.Flags().StringVar(&filterMax, "max", "", "upper bound (for between, inclusive)")
	_ = filterCmd.MarkFlagRequired("column")
	_ = filterCmd.MarkFlagRequired("op")
	rootCmd.AddCommand(filterCmd)
}

// makeSpec builds a FilterSpec from raw user input, shared by the filter
// subcommand and the interactive prompts.
func makeSpec(column, opTok, value, low, high string) (stats.FilterSpec, error) {
	op, err := stats.ParseOperator(opTok)
	if err != nil {
		return stats.FilterSpec{}, err
	}
	spec := stats.FilterSpec{Column: column, Op: op}
	if op == stats.OpBetween {
		if spec.Low, err = parseNumber("min value", low); err != nil {
			return stats.FilterSpec{}, err
		}
		if spec.High, err = parseNumber("max value", high); err != nil {
			return stats.FilterSpec{}, err
		}
		return spec, nil
	}
	if spec.Value, err = parseNumber("value", value); err != nil {
		return stats.FilterSpec{}, err
	}
	return spec, nil
}

func parseNumber(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &stats.ValidationError{Field: field, Value: s, Valid: []string{"a number"}}
	}
	return v, nil
}
