package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

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

	window := calendar.Window(time.Now(), cfg.WindowDays, calendar.Forward)
	if len(window) == 0 {
		fmt.Fprintln(os.Stderr, "✗ Empty trading-day window")
		os.Exit(1)
	}
	from, to := window[0], window[len(window)-1]

	fmt.Println("📅 Automatically calculated trading days:")
	fmt.Printf("   From: %s (next trading day)\n", from.Format(calendar.DateFormat))
	fmt.Printf("   To:   %s\n", to.Format(calendar.DateFormat))
	fmt.Printf("   Trading days: %s\n\n", strings.Join(calendar.Format(window), ", "))

	fmt.Printf("Fetching earnings data from %s to %s...\n", from.Format(calendar.DateFormat), to.Format(calendar.DateFormat))
	records, err := client.EarningsCalendar(ctx, from, to)
	if err != nil {
		logger.ErrorWithErr(ctx, "earnings fetch failed", err)
		records = nil
	}
	if len(records) == 0 {
		fmt.Println("⚠ No earnings data found for the specified date range")
		return
	}
	fmt.Printf("✓ Successfully fetched %d earnings records\n", len(records))

	snapshotPath := filepath.Join(cfg.OutputDir, "earnings_week_data.json")
	if err := fmp.SaveSnapshot(snapshotPath, records); err != nil {
		fmt.Fprintf(os.Stderr, "✗ Error saving raw data: %v\n", err)
	} else {
		fmt.Printf("✓ Data saved to %s\n", snapshotPath)
	}

	summary := report.Summarize(records)
	fmt.Println("\nSummary:")
	fmt.Printf("  Total records: %d\n", summary.Records)
	fmt.Printf("  Unique dates: %d\n", summary.UniqueDates)
	fmt.Printf("  Date range: %s to %s\n\n", summary.FirstDate, summary.LastDate)

	// Full view first, then the 1-4 letter watchlist cut.
	allWeek := report.GroupWeek(records, nil, cfg.Earnings.SymbolsPerDate)
	report.PrintWeek(os.Stdout, allWeek)

	watchlist := report.GroupWeek(records, cfg.SymbolRegexp(), cfg.Earnings.SymbolsPerDate)
	if len(watchlist) == 0 {
		fmt.Printf("\n⚠ No symbols found matching pattern: %s\n", cfg.Screen.SymbolPattern)
		return
	}
	report.PrintWeek(os.Stdout, watchlist)

	tablePath := filepath.Join(cfg.OutputDir, "earnings_to_watch_this_week.svg")
	err = report.WriteWeekTableSVG(tablePath, watchlist, report.WeekTableOptions{
		Source: "Source: Prepared by Ki-Wealth based on FMP data",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Error writing week table: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\n✓ Table saved as %s\n", tablePath)
}
