package report

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"market-reports/internal/aggregate"
)

func TestPrintRankingEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintRanking(&buf, "CUMULATIVE SECTOR PERFORMANCE", nil)

	out := buf.String()
	if !strings.Contains(out, "No data") {
		t.Errorf("empty ranking should report no data, got:\n%s", out)
	}
}

func TestPrintTopBottom(t *testing.T) {
	r := aggregate.Ranking{
		{Key: "Software", Sum: 4.2},
		{Key: "Banks", Sum: 1.1},
		{Key: "Airlines", Sum: -3.7},
	}

	var buf bytes.Buffer
	PrintTopBottom(&buf, "industries", r, 2)

	out := buf.String()
	for _, want := range []string{"TOP 2", "WORST 2", "Software", "+4.20%", "-3.70%"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestScreenMovers(t *testing.T) {
	records := []aggregate.Record{
		{"symbol": "ABCD", "name": "Abcd Corp", "price": 120.0, "changesPercentage": 14.5, "exchange": "NASDAQ"},
		{"symbol": "WXYZ", "name": "Wxyz Inc", "price": 88.0, "changesPercentage": 22.0, "exchange": "NYSE"},
		{"symbol": "CHEAP", "name": "Too Long", "price": 95.0, "changesPercentage": 30.0, "exchange": "NASDAQ"},  // 5 letters
		{"symbol": "PNNY", "name": "Penny Co", "price": 3.0, "changesPercentage": 45.0, "exchange": "NASDAQ"},    // price floor
		{"symbol": "OTCX", "name": "Otc Ltd", "price": 70.0, "changesPercentage": 18.0, "exchange": "OTC"},       // exchange
		{"symbol": "MEH", "name": "Meh Plc", "price": 60.0, "changesPercentage": 4.0, "exchange": "NYSE"},        // small move
		{"symbol": "DOWN", "name": "Down Corp", "price": 75.0, "changesPercentage": -12.0, "exchange": "NASDAQ"}, // wrong sign
	}

	screen := Screen{
		Exchanges:    []string{"NASDAQ", "NYSE"},
		MinPrice:     50,
		MinAbsChange: 10,
		Symbol:       regexp.MustCompile(`^[a-zA-Z]{1,4}$`),
		MaxRows:      10,
	}

	gainers := ScreenMovers(records, screen, true)
	if len(gainers) != 2 {
		t.Fatalf("expected 2 gainers, got %d: %v", len(gainers), gainers)
	}
	if gainers[0].Symbol != "WXYZ" || gainers[1].Symbol != "ABCD" {
		t.Errorf("gainers not sorted by change descending: %v", gainers)
	}

	losers := ScreenMovers(records, screen, false)
	if len(losers) != 1 || losers[0].Symbol != "DOWN" {
		t.Errorf("expected only DOWN as loser, got %v", losers)
	}
}

func TestScreenMoversRowCap(t *testing.T) {
	var records []aggregate.Record
	for _, sym := range []string{"AA", "BB", "CC", "DD"} {
		records = append(records, aggregate.Record{
			"symbol": sym, "name": sym, "price": 100.0,
			"changesPercentage": 15.0, "exchange": "NYSE",
		})
	}

	got := ScreenMovers(records, Screen{
		Exchanges:    []string{"NYSE"},
		MinAbsChange: 10,
		MaxRows:      2,
	}, true)
	if len(got) != 2 {
		t.Errorf("expected cap at 2 rows, got %d", len(got))
	}
}

func TestGroupWeek(t *testing.T) {
	records := []aggregate.Record{
		{"symbol": "MSFT", "date": "2025-01-17"},
		{"symbol": "AAPL", "date": "2025-01-16"},
		{"symbol": "TOOLONG", "date": "2025-01-16"},
		{"symbol": "IBM", "date": "2025-01-16"},
	}

	week := GroupWeek(records, regexp.MustCompile(`^[a-zA-Z]{1,4}$`), 10)
	if len(week) != 2 {
		t.Fatalf("expected 2 days, got %d", len(week))
	}
	if week[0].Date.After(week[1].Date) {
		t.Error("days not sorted ascending")
	}
	if len(week[0].Symbols) != 2 || week[0].Symbols[0] != "AAPL" || week[0].Symbols[1] != "IBM" {
		t.Errorf("unexpected day one symbols: %v", week[0].Symbols)
	}
	if !strings.Contains(week[0].Label, "Thursday") {
		t.Errorf("expected weekday name in label, got %q", week[0].Label)
	}
}

func TestGroupWeekPerDateCap(t *testing.T) {
	var records []aggregate.Record
	for _, sym := range []string{"AA", "BB", "CC"} {
		records = append(records, aggregate.Record{"symbol": sym, "date": "2025-01-16"})
	}

	week := GroupWeek(records, nil, 2)
	if len(week) != 1 || len(week[0].Symbols) != 2 {
		t.Errorf("expected 2 capped symbols, got %v", week)
	}
}

func TestSummarize(t *testing.T) {
	records := []aggregate.Record{
		{"symbol": "A", "date": "2025-01-17"},
		{"symbol": "B", "date": "2025-01-16"},
		{"symbol": "C", "date": "2025-01-16"},
	}

	s := Summarize(records)
	if s.Records != 3 || s.UniqueDates != 2 {
		t.Errorf("unexpected counts: %+v", s)
	}
	if s.FirstDate != "2025-01-16" || s.LastDate != "2025-01-17" {
		t.Errorf("unexpected range: %+v", s)
	}
}

func TestRenderBarChartSVG(t *testing.T) {
	bars := []Bar{
		{Label: "Software", Value: 4.25},
		{Label: "Banks", Value: 0.8},
		{Label: "Airlines", Value: -3.1},
	}

	data, err := RenderBarChartSVG(bars, BarChartOptions{
		Title:  "Industry Performance",
		XLabel: "Cumulative 5-Day Performance (%)",
		Source: "Source: Ki-Wealth",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svg := string(data)
	for _, want := range []string{"<svg", "Software", "Airlines", "+4.25%", "-3.10%", "Industry Performance", "Source: Ki-Wealth", "#5A06F5", "#632E62"} {
		if !strings.Contains(svg, want) {
			t.Errorf("expected %q in svg output", want)
		}
	}
}

func TestRenderBarChartSVGEmpty(t *testing.T) {
	if _, err := RenderBarChartSVG(nil, BarChartOptions{}); err == nil {
		t.Fatal("expected error for empty chart")
	}
}

func TestWriteBarChartSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts", "sector.svg")
	err := WriteBarChartSVG(path, []Bar{{Label: "Energy", Value: 1.0}}, BarChartOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("chart file not written: %v", err)
	}
}

func TestWriteMoversDeck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "top_gainers_and_losers.xlsx")
	gainers := []Mover{{Symbol: "ABCD", Name: "Abcd Corp", Price: 120, ChangePct: 14.5, Exchange: "NASDAQ"}}
	losers := []Mover{{Symbol: "DOWN", Name: "Down Corp", Price: 75, ChangePct: -12, Exchange: "NYSE"}}

	if err := WriteMoversDeck(path, gainers, losers, DeckOptions{Source: "Source: Ki-Wealth"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("deck file not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("deck file is empty")
	}
}

func TestWriteMoversDeckEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.xlsx")
	if err := WriteMoversDeck(path, nil, nil, DeckOptions{}); err == nil {
		t.Fatal("expected error when both tables are empty")
	}
}
