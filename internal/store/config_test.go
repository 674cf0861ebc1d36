package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := Default()

	if c.WindowDays != 5 {
		t.Errorf("expected window_days 5, got %d", c.WindowDays)
	}
	if c.TopK != 5 {
		t.Errorf("expected top_k 5, got %d", c.TopK)
	}
	if c.Screen.MinPrice != 50 {
		t.Errorf("expected min_price 50, got %.2f", c.Screen.MinPrice)
	}
	if c.Screen.TableRows != 10 {
		t.Errorf("expected table_rows 10, got %d", c.Screen.TableRows)
	}
	if len(c.Screen.Exchanges) != 2 {
		t.Errorf("expected NASDAQ and NYSE, got %v", c.Screen.Exchanges)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}

	re := c.SymbolRegexp()
	if !re.MatchString("AAPL") || !re.MatchString("F") {
		t.Error("expected 1-4 letter tickers to match")
	}
	if re.MatchString("BRK.B") || re.MatchString("GOOGL") {
		t.Error("expected dotted and 5-letter tickers to be rejected")
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing config file must not error: %v", err)
	}
	if c.WindowDays != 5 {
		t.Errorf("expected default window_days, got %d", c.WindowDays)
	}
}

func TestLoadConfigOverridesAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	data := "window_days: 10\nscreen:\n  min_price: 25\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.WindowDays != 10 {
		t.Errorf("expected window_days 10, got %d", c.WindowDays)
	}
	if c.Screen.MinPrice != 25 {
		t.Errorf("expected min_price 25, got %.2f", c.Screen.MinPrice)
	}
	// Unset keys still get defaults.
	if c.TopK != 5 {
		t.Errorf("expected default top_k, got %d", c.TopK)
	}
	if c.Chart.GainColor != "#5A06F5" {
		t.Errorf("expected default gain color, got %s", c.Chart.GainColor)
	}
}

func TestLoadConfigRejectsBadPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	data := "screen:\n  symbol_pattern: '['\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for unparseable symbol pattern")
	}
}

func TestValidateRejectsNonPositiveWindow(t *testing.T) {
	c := Default()
	c.WindowDays = -1
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for negative window_days")
	}
}
