package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"market-reports/internal/aggregate"
	"market-reports/internal/calendar"
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

	fmt.Printf("\nFetching sector performance data for the past %d trading days...\n", cfg.WindowDays)
	fmt.Println(strings.Repeat("=", 80))

	window := calendar.Window(time.Now(), cfg.WindowDays, calendar.Backward)
	fmt.Printf("Trading days to fetch: %s\n", strings.Join(calendar.Format(window), ", "))
	fmt.Println(strings.Repeat("=", 80))

	// One HTTP call per day; reruns with the fallback value field replay
	// the pages from memory.
	fetch := memoize(client.SectorPerformance)

	ranking, err := aggregate.Aggregate(ctx, window, fetch, aggregate.Options{
		GroupField: "sector",
		ValueField: "changesPercentage",
	})
	var missing *aggregate.MissingFieldError
	if errors.As(err, &missing) && missing.Field == "changesPercentage" {
		// Some plan tiers name the column averageChange instead.
		logger.Warn(ctx, "changesPercentage not present, retrying with averageChange")
		ranking, err = aggregate.Aggregate(ctx, window, fetch, aggregate.Options{
			GroupField: "sector",
			ValueField: "averageChange",
		})
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Aggregation failed: %v\n", err)
		os.Exit(1)
	}

	title := fmt.Sprintf("CUMULATIVE %d-DAY SECTOR PERFORMANCE", cfg.WindowDays)
	report.PrintRanking(os.Stdout, title, ranking)

	if len(ranking) == 0 {
		fmt.Println("\n⚠ No sector performance data available.")
		return
	}

	bars := make([]report.Bar, len(ranking))
	for i, g := range ranking {
		bars[i] = report.Bar{Label: g.Key, Value: g.Sum}
	}

	chartPath := filepath.Join(cfg.OutputDir, "sector_performance_bar_chart.svg")
	err = report.WriteBarChartSVG(chartPath, bars, report.BarChartOptions{
		Title:     fmt.Sprintf("Sector Performance - Cumulative %d-Day Change (%%)", cfg.WindowDays),
		XLabel:    fmt.Sprintf("Cumulative %d-Day Performance (%%)", cfg.WindowDays),
		Source:    "Source: prepared by Ki-Wealth based on FMP data",
		GainColor: cfg.Chart.GainColor,
		LossColor: cfg.Chart.LossColor,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Error writing chart: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\n✓ Bar chart saved as '%s'\n", chartPath)
	fmt.Println("\n✓ Data fetching and visualization completed successfully!")
}

// memoize caches day pages so a value-field retry does not refetch.
func memoize(fetch aggregate.FetchFunc) aggregate.FetchFunc {
	type page struct {
		records []aggregate.Record
		err     error
	}
	seen := map[string]page{}
	return func(ctx context.Context, date time.Time) ([]aggregate.Record, error) {
		key := date.Format(calendar.DateFormat)
		if p, ok := seen[key]; ok {
			return p.records, p.err
		}
		records, err := fetch(ctx, date)
		seen[key] = page{records: records, err: err}
		return records, err
	}
}
