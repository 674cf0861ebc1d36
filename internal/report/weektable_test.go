package report

import (
	"strings"
	"testing"
	"time"
)

func TestRenderWeekTableSVG(t *testing.T) {
	week := []DayGroup{
		{
			Date:    time.Date(2025, time.January, 16, 0, 0, 0, 0, time.UTC),
			Label:   "2025-01-16 (Thursday, January 16)",
			Symbols: []string{"AAPL", "IBM"},
		},
		{
			Date:    time.Date(2025, time.January, 17, 0, 0, 0, 0, time.UTC),
			Label:   "2025-01-17 (Friday, January 17)",
			Symbols: []string{"MSFT"},
		},
	}

	data, err := RenderWeekTableSVG(week, WeekTableOptions{Source: "Source: Ki-Wealth"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svg := string(data)
	for _, want := range []string{"Earnings to Watch This Week", "AAPL, IBM", "MSFT", "Thursday", "Source: Ki-Wealth"} {
		if !strings.Contains(svg, want) {
			t.Errorf("expected %q in svg output", want)
		}
	}
}

func TestRenderWeekTableSVGEmpty(t *testing.T) {
	if _, err := RenderWeekTableSVG(nil, WeekTableOptions{}); err == nil {
		t.Fatal("expected error for empty week")
	}
}
