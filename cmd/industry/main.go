package main

import (
	"context"
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

	fmt.Println("Loading available industries...")
	universe, err := client.AvailableIndustries(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Error loading industries: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✓ Loaded %d target industries.\n", len(universe))

	fmt.Printf("\nFetching industry performance data for the past %d trading days...\n", cfg.WindowDays)
	fmt.Println(strings.Repeat("=", 40))

	window := calendar.Window(time.Now(), cfg.WindowDays, calendar.Backward)
	fmt.Printf("Trading days to fetch: %s\n", strings.Join(calendar.Format(window), ", "))
	fmt.Println(strings.Repeat("=", 40))

	ranking, err := aggregate.Aggregate(ctx, window, client.IndustryPerformance, aggregate.Options{
		GroupField: "industry",
		ValueField: "averageChange",
		Filter: func(r aggregate.Record) bool {
			industry, _ := r["industry"].(string)
			return universe[industry]
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Aggregation failed: %v\n", err)
		os.Exit(1)
	}

	report.PrintTopBottom(os.Stdout, "industries", ranking, cfg.TopK)
	if len(ranking) == 0 {
		fmt.Println("\n⚠ No matching data found for the target industries.")
		return
	}

	chartPath := filepath.Join(cfg.OutputDir, "performance_by_industry_chart.svg")
	err = report.WriteBarChartSVG(chartPath, topBottomBars(ranking, cfg.TopK, cfg.Chart.GainColor, cfg.Chart.LossColor), report.BarChartOptions{
		Title:  fmt.Sprintf("Industry Performance: Top %d vs Worst %d (%d-Day Cumulative)", cfg.TopK, cfg.TopK, cfg.WindowDays),
		XLabel: fmt.Sprintf("Cumulative %d-Day Performance (%%)", cfg.WindowDays),
		Source: fmt.Sprintf("Source: Ki-Wealth | %d-Day Cumulative Performance", cfg.WindowDays),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Error writing chart: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\n✓ Chart saved as '%s'\n", chartPath)
}

// topBottomBars combines the best and worst k groups into one descending
// bar list, colored by which end each group came from. With k at or above
// half the ranking the two slices overlap; each group is drawn once.
func topBottomBars(r aggregate.Ranking, k int, gainColor, lossColor string) []report.Bar {
	bottom := map[string]bool{}
	for _, g := range r.Bottom(k) {
		bottom[g.Key] = true
	}

	var bars []report.Bar
	seen := map[string]bool{}
	for _, g := range append(append(aggregate.Ranking{}, r.Top(k)...), r.Bottom(k)...) {
		if seen[g.Key] {
			continue
		}
		seen[g.Key] = true
		color := gainColor
		if bottom[g.Key] {
			color = lossColor
		}
		bars = append(bars, report.Bar{Label: g.Key, Value: g.Sum, Color: color})
	}
	return bars
}
