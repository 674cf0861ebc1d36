// Package report renders aggregated market data for people: console
// tables, SVG bar charts and an Excel one-pager. All formatting and layout
// lives here; nothing in this package fetches or computes.
package report

import (
	"fmt"
	"io"
	"strings"

	"market-reports/internal/aggregate"
)

const rule = 80

// Banner writes an =-ruled section header.
func Banner(w io.Writer, title string) {
	fmt.Fprintln(w, strings.Repeat("=", rule))
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", rule))
}

// PrintRanking writes a numbered ranking with signed percentages.
func PrintRanking(w io.Writer, title string, r aggregate.Ranking) {
	Banner(w, title)
	if len(r) == 0 {
		fmt.Fprintln(w, "⚠ No data")
		fmt.Fprintln(w, strings.Repeat("=", rule))
		return
	}
	for i, g := range r {
		fmt.Fprintf(w, "%2d. %-50s %+.2f%%\n", i+1, g.Key, g.Sum)
	}
	fmt.Fprintln(w, strings.Repeat("=", rule))
}

// PrintTopBottom writes the best and worst k groups of one ranking.
func PrintTopBottom(w io.Writer, subject string, r aggregate.Ranking, k int) {
	PrintRanking(w, fmt.Sprintf("TOP %d PERFORMING %s (CUMULATIVE)", k, strings.ToUpper(subject)), r.Top(k))
	fmt.Fprintln(w)
	PrintRanking(w, fmt.Sprintf("WORST %d PERFORMING %s (CUMULATIVE)", k, strings.ToUpper(subject)), r.Bottom(k))
}

// PrintMovers writes a gainers or losers table.
func PrintMovers(w io.Writer, title string, movers []Mover) {
	Banner(w, title)
	if len(movers) == 0 {
		fmt.Fprintln(w, "⚠ No data matched the criteria")
		fmt.Fprintln(w, strings.Repeat("=", rule))
		return
	}
	fmt.Fprintf(w, "%-6s %-34s %10s %8s %9s\n", "Ticker", "Company Name", "Price", "Chg%", "Exchange")
	for _, m := range movers {
		fmt.Fprintf(w, "%-6s %-34s %10s %8s %9s\n",
			m.Symbol, clip(m.Name, 34), fmt.Sprintf("$%.2f", m.Price),
			fmt.Sprintf("%+.1f%%", m.ChangePct), m.Exchange)
	}
	fmt.Fprintln(w, strings.Repeat("=", rule))
}

// PrintWeek writes the earnings week view, one row per trading day.
func PrintWeek(w io.Writer, week []DayGroup) {
	Banner(w, "EARNINGS TO WATCH THIS WEEK")
	if len(week) == 0 {
		fmt.Fprintln(w, "⚠ No data to display")
		fmt.Fprintln(w, strings.Repeat("=", rule))
		return
	}
	for _, day := range week {
		fmt.Fprintf(w, "\n%s\n", day.Label)
		fmt.Fprintf(w, "  Symbols: %s\n", strings.Join(day.Symbols, ", "))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", rule))
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
