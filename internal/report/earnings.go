package report

import (
	"regexp"
	"sort"
	"time"

	"market-reports/internal/aggregate"
	"market-reports/internal/calendar"
)

// DayGroup is one earnings-week row: a trading day and the tickers
// reporting on it.
type DayGroup struct {
	Date    time.Time
	Label   string // "2025-01-16 (Thursday, January 16)"
	Symbols []string
}

// WeekSummary describes the fetched earnings set before any filtering.
type WeekSummary struct {
	Records     int
	UniqueDates int
	FirstDate   string
	LastDate    string
}

// Summarize counts records and the distinct announcement dates they span.
func Summarize(records []aggregate.Record) WeekSummary {
	dates := map[string]bool{}
	for _, rec := range records {
		if d, ok := rec["date"].(string); ok && d != "" {
			dates[d] = true
		}
	}

	summary := WeekSummary{Records: len(records), UniqueDates: len(dates)}
	if len(dates) > 0 {
		sorted := make([]string, 0, len(dates))
		for d := range dates {
			sorted = append(sorted, d)
		}
		sort.Strings(sorted)
		summary.FirstDate = sorted[0]
		summary.LastDate = sorted[len(sorted)-1]
	}
	return summary
}

// GroupWeek filters announcement records down to tickers matching pattern
// and groups them per date, at most perDate symbols each, dates ascending.
// Symbols keep their provider order within a date. Records without a date
// or symbol are skipped; this view is cosmetic, not a schema check.
func GroupWeek(records []aggregate.Record, pattern *regexp.Regexp, perDate int) []DayGroup {
	byDate := map[string][]string{}
	for _, rec := range records {
		symbol, _ := rec["symbol"].(string)
		dateStr, _ := rec["date"].(string)
		if symbol == "" || dateStr == "" {
			continue
		}
		if pattern != nil && !pattern.MatchString(symbol) {
			continue
		}
		if perDate > 0 && len(byDate[dateStr]) >= perDate {
			continue
		}
		byDate[dateStr] = append(byDate[dateStr], symbol)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	week := make([]DayGroup, 0, len(dates))
	for _, dateStr := range dates {
		date, err := time.Parse(calendar.DateFormat, dateStr)
		if err != nil {
			continue
		}
		week = append(week, DayGroup{
			Date:    date,
			Label:   dateStr + " (" + date.Format("Monday, January 02") + ")",
			Symbols: byDate[dateStr],
		})
	}
	return week
}
