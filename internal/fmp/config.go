package fmp

import (
	"errors"

	"github.com/kelseyhightower/envconfig"
)

// Config carries the provider credential and endpoint URLs. It is read from
// the environment once at startup (the binaries load .env first) and passed
// into NewClient; nothing downstream of the client ever sees it.
type Config struct {
	APIKey                 string `envconfig:"FMP_API_KEY"`
	EarningsCalendarURL    string `envconfig:"EARNINGS_CALENDAR_URL"`
	IndustryPerformanceURL string `envconfig:"INDUSTRY_PERFORMANCE_URL"`
	SectorPerformanceURL   string `envconfig:"SECTOR_PERFORMANCE_URL"`
	AvailableIndustriesURL string `envconfig:"AVAILABLE_INDUSTRIES"`
	TopGainersURL          string `envconfig:"TOP_GAINERS_URL"`
	TopLosersURL           string `envconfig:"TOP_LOSERS_URL"`
}

// ConfigFromEnv populates a Config from the process environment.
func ConfigFromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.APIKey == "" {
		return nil, errors.New("FMP_API_KEY is not set")
	}
	return &cfg, nil
}
