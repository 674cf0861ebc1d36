// Package calendar generates windows of trading days around an anchor date.
// A trading day here is strictly a weekday; market holidays are not
// considered (the upstream data provider publishes nothing on holidays, so
// those days simply contribute no records downstream).
package calendar

import "time"

// Direction controls which way the window extends from the anchor.
type Direction int

const (
	// Forward walks into the future, e.g. the next week of earnings dates.
	Forward Direction = iota
	// Backward walks into the past, e.g. the trailing week of performance.
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// DateFormat is the wire format the data provider expects for date query
// parameters.
const DateFormat = "2006-01-02"

// Window returns up to count trading days stepped out from anchor in the
// given direction. The anchor itself is never included. Dates are strictly
// monotonic in the walk direction and never fall on a Saturday or Sunday.
//
// At most 2*count calendar days are examined; if that budget runs out the
// result is shorter than count. Callers must treat a short window as a
// valid outcome. With the weekday calendar the budget cannot actually be
// exhausted early, the cap only bounds the walk.
func Window(anchor time.Time, count int, dir Direction) []time.Time {
	if count <= 0 {
		return nil
	}

	step := 1
	if dir == Backward {
		step = -1
	}

	days := make([]time.Time, 0, count)
	current := anchor
	for examined := 0; len(days) < count && examined < 2*count; examined++ {
		current = current.AddDate(0, 0, step)
		if wd := current.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days = append(days, current)
		}
	}
	return days
}

// Format renders a window in the provider's YYYY-MM-DD form.
func Format(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(DateFormat)
	}
	return out
}
