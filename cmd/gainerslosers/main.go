package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"market-reports/internal/aggregate"
	"market-reports/internal/fmp"
	"market-reports/internal/logger"
	"market-reports/internal/report"
	"market-reports/internal/store"
)

func main() {
	_ = godotenv.Load()
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	ctx := context.Background()
	defer logger.Shutdown(ctx)

	cfg, err := store.LoadConfig("report.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	provCfg, err := fmp.ConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load provider config: %v\n", err)
		os.Exit(1)
	}
	client := fmp.NewClient(provCfg)

	fmt.Println("--- Starting Professional Report Generation ---")

	gainersRaw := fetchMovers(ctx, "gainers", client.TopGainers, cfg.OutputDir)
	losersRaw := fetchMovers(ctx, "losers", client.TopLosers, cfg.OutputDir)

	screen := report.Screen{
		Exchanges:    cfg.Screen.Exchanges,
		MinPrice:     cfg.Screen.MinPrice,
		MinAbsChange: cfg.Screen.MinAbsChange,
		Symbol:       cfg.SymbolRegexp(),
		MaxRows:      cfg.Screen.TableRows,
	}
	gainers := report.ScreenMovers(gainersRaw, screen, true)
	losers := report.ScreenMovers(losersRaw, screen, false)

	if len(gainers) == 0 && len(losers) == 0 {
		fmt.Println("No data matched the criteria today.")
		return
	}

	report.PrintMovers(os.Stdout, "TOP GAINERS", gainers)
	fmt.Println()
	report.PrintMovers(os.Stdout, "TOP LOSERS", losers)

	deckPath := filepath.Join(cfg.OutputDir, "top_gainers_and_losers_for_the_day.xlsx")
	err = report.WriteMoversDeck(deckPath, gainers, losers, report.DeckOptions{
		Source: "Source: Prepared by Ki-Wealth based on FMP data",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Error writing workbook: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Success! One-pager saved as %s\n", deckPath)
}

// fetchMovers fetches one movers dataset and snapshots the raw payload. A
// fetch failure yields an empty set, mirroring how a missing day is a
// zero-contribution day elsewhere.
func fetchMovers(ctx context.Context, name string, fetch func(context.Context) ([]aggregate.Record, error), outDir string) []aggregate.Record {
	records, err := fetch(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Error fetching %s: %v\n", name, err)
		return nil
	}

	if len(records) > 0 {
		path := filepath.Join(outDir, fmt.Sprintf("top_%s_raw.json", name))
		if err := fmp.SaveSnapshot(path, records); err != nil {
			logger.Warn(ctx, "failed to save raw snapshot", "dataset", name, "error", err)
		}
	}
	return records
}
