package application

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Thresholds tune when insight rules fire.
type Thresholds struct {
	// CompletionRateFloor is the completion-rate percentage below which
	// a payment plan is suggested.
	CompletionRateFloor float64 `yaml:"completion_rate_floor"`
	// ExpenseRatioCeiling is the expenses-to-income ratio above which
	// spending draws a warning.
	ExpenseRatioCeiling float64 `yaml:"expense_ratio_ceiling"`
}

// Config defines insight engine configuration.
type Config struct {
	Thresholds Thresholds `yaml:"thresholds"`
}

// DefaultConfig returns the built-in thresholds.
func DefaultConfig() Config {
	return Config{
		Thresholds: Thresholds{
			CompletionRateFloor: 70,
			ExpenseRatioCeiling: 0.8,
		},
	}
}

// LoadConfig loads config from a yaml file, falling back to defaults for
// anything unset. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return cfg, err
	}
	if loaded.Thresholds.CompletionRateFloor > 0 {
		cfg.Thresholds.CompletionRateFloor = loaded.Thresholds.CompletionRateFloor
	}
	if loaded.Thresholds.ExpenseRatioCeiling > 0 {
		cfg.Thresholds.ExpenseRatioCeiling = loaded.Thresholds.ExpenseRatioCeiling
	}
	return cfg, nil
}
