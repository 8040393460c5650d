package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the effective application configuration.
type Config struct {
	FoodCSV         string  `mapstructure:"food_csv" yaml:"food_csv"`
	DrinksCSV       string  `mapstructure:"drinks_csv" yaml:"drinks_csv"`
	Model           string  `mapstructure:"model" yaml:"model"`
	GroqAPIKey      string  `mapstructure:"groq_api_key" yaml:"groq_api_key"`
	HTTPTimeoutSec  int     `mapstructure:"http_timeout_sec" yaml:"http_timeout_sec"`
	Temperature     float64 `mapstructure:"temperature" yaml:"temperature"`
	StatsChart      string  `mapstructure:"stats_chart" yaml:"stats_chart"`
	ComparisonChart string  `mapstructure:"comparison_chart" yaml:"comparison_chart"`
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. The API key is read from
// GROQ_API_KEY (or MENULENS_GROQ_API_KEY).
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MENULENS")
	v.AutomaticEnv()
	_ = v.BindEnv("groq_api_key", "GROQ_API_KEY", "MENULENS_GROQ_API_KEY")

	v.SetDefault("food_csv", "data/starbucks-menu-nutrition-food.csv")
	v.SetDefault("drinks_csv", "data/starbucks-menu-nutrition-drinks.csv")
	v.SetDefault("model", "llama-3.3-70b-versatile")
	v.SetDefault("http_timeout_sec", 60)
	v.SetDefault("temperature", 0.0)
	v.SetDefault("stats_chart", "descriptive_stats_bar_chart.png")
	v.SetDefault("comparison_chart", "comparison_stats_bar_chart.png")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".menulens"))
		}
		v.SetConfigName("menulens")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Save writes the configuration to cfgFile, or to ~/.menulens/menulens.yaml
// when cfgFile is empty, creating the directory if necessary.
func Save(c *Config, cfgFile string) error {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".menulens")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "menulens.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
