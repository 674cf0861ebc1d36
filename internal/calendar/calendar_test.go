package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWindowForwardFromWednesday(t *testing.T) {
	// 2025-01-15 is a Wednesday.
	anchor := date(2025, time.January, 15)

	got := Window(anchor, 5, Forward)
	if len(got) != 5 {
		t.Fatalf("expected 5 trading days, got %d", len(got))
	}

	want := []time.Time{
		date(2025, time.January, 16), // Thu
		date(2025, time.January, 17), // Fri
		date(2025, time.January, 20), // Mon
		date(2025, time.January, 21), // Tue
		date(2025, time.January, 22), // Wed
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("day %d: expected %s, got %s", i, want[i].Format(DateFormat), got[i].Format(DateFormat))
		}
	}
}

func TestWindowBackwardSkipsWeekend(t *testing.T) {
	// 2025-01-13 is a Monday; the previous trading day is Friday the 10th.
	anchor := date(2025, time.January, 13)

	got := Window(anchor, 3, Backward)
	if len(got) != 3 {
		t.Fatalf("expected 3 trading days, got %d", len(got))
	}

	want := []time.Time{
		date(2025, time.January, 10), // Fri
		date(2025, time.January, 9),  // Thu
		date(2025, time.January, 8),  // Wed
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("day %d: expected %s, got %s", i, want[i].Format(DateFormat), got[i].Format(DateFormat))
		}
	}
}

func TestWindowExcludesAnchorAndWeekends(t *testing.T) {
	anchors := []time.Time{
		date(2025, time.March, 3),  // Mon
		date(2025, time.March, 7),  // Fri
		date(2025, time.March, 8),  // Sat
		date(2025, time.March, 9),  // Sun
		date(2025, time.March, 12), // Wed
	}

	for _, anchor := range anchors {
		for _, dir := range []Direction{Forward, Backward} {
			for count := 1; count <= 10; count++ {
				got := Window(anchor, count, dir)
				if len(got) > count {
					t.Fatalf("anchor %s %s count %d: window too long: %d",
						anchor.Format(DateFormat), dir, count, len(got))
				}
				seen := map[string]bool{}
				for i, d := range got {
					if d.Equal(anchor) {
						t.Errorf("anchor %s must not appear in its own window", anchor.Format(DateFormat))
					}
					if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
						t.Errorf("weekend date %s in window", d.Format(DateFormat))
					}
					key := d.Format(DateFormat)
					if seen[key] {
						t.Errorf("duplicate date %s in window", key)
					}
					seen[key] = true
					if i > 0 {
						prev := got[i-1]
						if dir == Forward && !d.After(prev) {
							t.Errorf("forward window not increasing at %d", i)
						}
						if dir == Backward && !d.Before(prev) {
							t.Errorf("backward window not decreasing at %d", i)
						}
					}
				}
			}
		}
	}
}

func TestWindowMirrorProperty(t *testing.T) {
	// Walking forward from an anchor and backward from the reflected anchor
	// produces reflected dates: day deltas match with sign flipped, modulo
	// which side of the weekend each walk lands on. Saturday/Sunday are
	// symmetric around the weekend midpoint, so reflecting a forward walk
	// from a Wednesday around that Wednesday gives exactly the backward
	// walk's dates.
	anchor := date(2025, time.June, 11) // Wednesday

	fwd := Window(anchor, 5, Forward)
	bwd := Window(anchor, 5, Backward)
	if len(fwd) != len(bwd) {
		t.Fatalf("length mismatch: forward %d backward %d", len(fwd), len(bwd))
	}

	// Wednesday is the weekday-week midpoint, so delta magnitudes line up
	// pairwise: +1/-1, +2/-2, +5/-5, +6/-6, +7/-7.
	for i := range fwd {
		fd := int(fwd[i].Sub(anchor).Hours() / 24)
		bd := int(anchor.Sub(bwd[i]).Hours() / 24)
		if fd != bd {
			t.Errorf("delta %d: forward +%d days, backward -%d days", i, fd, bd)
		}
	}
}

func TestWindowNonPositiveCount(t *testing.T) {
	anchor := date(2025, time.January, 15)
	if got := Window(anchor, 0, Forward); len(got) != 0 {
		t.Errorf("count 0: expected empty window, got %d dates", len(got))
	}
	if got := Window(anchor, -3, Backward); len(got) != 0 {
		t.Errorf("negative count: expected empty window, got %d dates", len(got))
	}
}

func TestFormat(t *testing.T) {
	dates := []time.Time{date(2025, time.January, 16), date(2025, time.January, 17)}
	got := Format(dates)
	if len(got) != 2 || got[0] != "2025-01-16" || got[1] != "2025-01-17" {
		t.Errorf("unexpected formatting: %v", got)
	}
	if got := Format(nil); len(got) != 0 {
		t.Errorf("expected empty slice for nil input, got %v", got)
	}
}
