package store

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Config holds the report settings shared by the batch binaries. Provider
// credentials and endpoint URLs deliberately live in the environment, not
// here; this file only shapes what the reports look like.
type Config struct {
	WindowDays int    `yaml:"window_days"`
	TopK       int    `yaml:"top_k"`
	OutputDir  string `yaml:"output_dir"`

	Screen struct {
		Exchanges     []string `yaml:"exchanges"`
		MinPrice      float64  `yaml:"min_price"`
		MinAbsChange  float64  `yaml:"min_abs_change"`
		SymbolPattern string   `yaml:"symbol_pattern"`
		TableRows     int      `yaml:"table_rows"`
	} `yaml:"screen"`

	Earnings struct {
		SymbolsPerDate int `yaml:"symbols_per_date"`
	} `yaml:"earnings"`

	Chart struct {
		GainColor string `yaml:"gain_color"`
		LossColor string `yaml:"loss_color"`
	} `yaml:"chart"`
}

// Validate checks the parts a typo would silently break.
func (c *Config) Validate() error {
	if c.WindowDays <= 0 {
		return fmt.Errorf("window_days must be positive, got %d", c.WindowDays)
	}
	if c.TopK <= 0 {
		return fmt.Errorf("top_k must be positive, got %d", c.TopK)
	}
	if _, err := regexp.Compile(c.Screen.SymbolPattern); err != nil {
		return fmt.Errorf("invalid screen.symbol_pattern: %w", err)
	}
	if c.Screen.MinPrice < 0 {
		return fmt.Errorf("screen.min_price must not be negative, got %.2f", c.Screen.MinPrice)
	}
	return nil
}

// SymbolRegexp compiles the configured ticker pattern. Call Validate first.
func (c *Config) SymbolRegexp() *regexp.Regexp {
	return regexp.MustCompile(c.Screen.SymbolPattern)
}

// Default returns the settings the original reports shipped with.
func Default() *Config {
	var c Config
	applyDefaults(&c)
	return &c
}

// LoadConfig reads a yaml config file and applies defaults for anything the
// file leaves unset. A missing file is not an error: the defaults stand.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func applyDefaults(c *Config) {
	if c.WindowDays == 0 {
		c.WindowDays = 5
	}
	if c.TopK == 0 {
		c.TopK = 5
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if len(c.Screen.Exchanges) == 0 {
		c.Screen.Exchanges = []string{"NASDAQ", "NYSE"}
	}
	if c.Screen.MinPrice == 0 {
		c.Screen.MinPrice = 50
	}
	if c.Screen.MinAbsChange == 0 {
		c.Screen.MinAbsChange = 10
	}
	if c.Screen.SymbolPattern == "" {
		c.Screen.SymbolPattern = `^[a-zA-Z]{1,4}$`
	}
	if c.Screen.TableRows == 0 {
		c.Screen.TableRows = 10
	}
	if c.Earnings.SymbolsPerDate == 0 {
		c.Earnings.SymbolsPerDate = 10
	}
	if c.Chart.GainColor == "" {
		c.Chart.GainColor = "#5A06F5"
	}
	if c.Chart.LossColor == "" {
		c.Chart.LossColor = "#632E62"
	}
}
