package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	cfgpkg "github.com/menulens/menulens-cli/internal/config"
	"github.com/menulens/menulens-cli/internal/dataset"
	"github.com/menulens/menulens-cli/internal/llm"
)

var (
	// Global flags
	cfgFile       string
	flagFoodCSV   string
	flagDrinksCSV string

	// Loaded configuration
	cfg *cfgpkg.Config
)

var rootCmd = &cobra.Command{
	Use:   "menulens",
	Short: "MenuLens: explore Starbucks menu nutrition data",
	Long: `MenuLens is a CLI tool that loads the Starbucks food and drinks nutrition
datasets, computes descriptive statistics and nutrient ratios, renders bar
charts, filters items by nutritional criteria, and answers free-text
questions through the Groq LLM API.

Run without a subcommand for the interactive menu.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		food, drinks, err := loadDatasets()
		if err != nil {
			return err
		}
		return runMenu(os.Stdin, os.Stdout, food, drinks, newLLMService())
	},
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.menulens/menulens.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagFoodCSV, "food", "", "path to the food CSV (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDrinksCSV, "drinks", "", "path to the drinks CSV (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Config{}
	}
	cfg = c
	if flagFoodCSV != "" {
		cfg.FoodCSV = flagFoodCSV
	}
	if flagDrinksCSV != "" {
		cfg.DrinksCSV = flagDrinksCSV
	}
}

// loadDatasets loads both CSVs once at startup. A failure here is
// unrecoverable and aborts the command with a descriptive error.
func loadDatasets() (food, drinks *dataset.Dataset, err error) {
	food, err = dataset.Load("food", cfg.FoodCSV)
	if err != nil {
		return nil, nil, err
	}
	drinks, err = dataset.Load("drinks", cfg.DrinksCSV)
	if err != nil {
		return nil, nil, err
	}
	return food, drinks, nil
}

func newLLMService() *llm.Service {
	client := llm.NewClient(cfg.GroqAPIKey, time.Duration(cfg.HTTPTimeoutSec)*time.Second)
	return llm.NewService(client, cfg.Model).WithTemperature(cfg.Temperature)
}
