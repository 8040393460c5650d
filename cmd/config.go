package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/menulens/menulens-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set MenuLens configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("food_csv: %s\n", cfg.FoodCSV)
		fmt.Printf("drinks_csv: %s\n", cfg.DrinksCSV)
		fmt.Printf("model: %s\n", cfg.Model)
		fmt.Printf("groq_api_key: %s\n", mask(cfg.GroqAPIKey))
		fmt.Printf("http_timeout_sec: %d\n", cfg.HTTPTimeoutSec)
		fmt.Printf("temperature: %.3f\n", cfg.Temperature)
		fmt.Printf("stats_chart: %s\n", cfg.StatsChart)
		fmt.Printf("comparison_chart: %s\n", cfg.ComparisonChart)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "food_csv":
			cfg.FoodCSV = val
		case "drinks_csv":
			cfg.DrinksCSV = val
		case "model":
			cfg.Model = val
		case "http_timeout_sec":
			n, err := strconv.Atoi(val)
			if err != nil || n <= 0 {
				return fmt.Errorf("invalid http_timeout_sec: %s", val)
			}
			cfg.HTTPTimeoutSec = n
		case "temperature":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f < 0 {
				return fmt.Errorf("invalid temperature: %s", val)
			}
			cfg.Temperature = f
		case "stats_chart":
			cfg.StatsChart = val
		case "comparison_chart":
			cfg.ComparisonChart = val
		default:
			return fmt.Errorf("unknown config key: %s (the API key is read from GROQ_API_KEY)", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("✓ Saved")
		return nil
	},
}

func mask(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "..." + s[len(s)-4:]
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
