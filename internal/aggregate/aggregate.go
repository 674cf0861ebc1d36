// Package aggregate folds per-day pages of provider records into a ranked
// cumulative score per group. It is the shared core behind the sector,
// industry and earnings reports: the caller supplies the date window, a
// per-day fetch capability and the field selectors, the engine owns the
// tagging, filtering, grouping and ranking.
package aggregate

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"market-reports/internal/calendar"
	"market-reports/internal/logger"
)

// Record is one row returned by the data provider for a single date. Keys
// and value types are whatever the provider's JSON carried; the engine only
// interprets the configured group and value fields.
type Record map[string]any

// FetchDateKey is the tag added to every record with the date its page was
// fetched for.
const FetchDateKey = "fetch_date"

// FetchFunc fetches one page of records for one date. Implementations own
// their timeout and retry policy; the engine calls each date exactly once,
// in window order, and treats an error or empty page as a day with no data.
type FetchFunc func(ctx context.Context, date time.Time) ([]Record, error)

// Options selects which record fields drive the aggregation.
type Options struct {
	// GroupField names the attribute records are grouped by, e.g. "sector".
	GroupField string
	// ValueField names the numeric attribute summed per group, e.g.
	// "changesPercentage".
	ValueField string
	// Filter, when set, keeps only records it returns true for. Dropped
	// records contribute nothing; they are not zero-weighted.
	Filter func(Record) bool
}

// Group is one ranked entry: a group key and its cumulative sum across the
// window.
type Group struct {
	Key string
	Sum float64
}

// Ranking is the aggregation result, ordered by descending sum. Equal sums
// are ordered alphabetically by key so that reruns over identical data are
// bit-identical regardless of page order.
type Ranking []Group

// MissingFieldError reports a post-filter record without a usable group or
// value field. It aborts the run: summing around a vanished column would
// silently produce wrong totals after an upstream schema change.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("record missing required field %q", e.Field)
}

// Aggregate fetches one page per date, tags and concatenates the records,
// applies the filter, groups by opts.GroupField and sums opts.ValueField,
// returning the descending ranking.
//
// A date whose fetch fails or returns nothing contributes zero and the run
// continues. An empty post-filter collection yields an empty ranking and a
// nil error.
func Aggregate(ctx context.Context, dates []time.Time, fetch FetchFunc, opts Options) (Ranking, error) {
	var records []Record

	for _, date := range dates {
		dayCtx, span := logger.StartSpan(ctx, "aggregate.fetch_page")
		page, err := fetch(dayCtx, date)
		span.End()
		if err != nil {
			logger.Warn(ctx, "no data for trading day",
				"date", date.Format(calendar.DateFormat), "error", err)
			continue
		}
		for _, rec := range page {
			tagged := make(Record, len(rec)+1)
			for k, v := range rec {
				tagged[k] = v
			}
			tagged[FetchDateKey] = date.Format(calendar.DateFormat)
			records = append(records, tagged)
		}
	}

	if opts.Filter != nil {
		kept := records[:0]
		for _, rec := range records {
			if opts.Filter(rec) {
				kept = append(kept, rec)
			}
		}
		records = kept
	}

	sums := make(map[string]float64, len(records))
	for _, rec := range records {
		key, ok := rec[opts.GroupField].(string)
		if !ok || key == "" {
			return nil, &MissingFieldError{Field: opts.GroupField}
		}
		value, ok := numeric(rec[opts.ValueField])
		if !ok {
			return nil, &MissingFieldError{Field: opts.ValueField}
		}
		sums[key] += value
	}

	ranking := make(Ranking, 0, len(sums))
	for key, sum := range sums {
		ranking = append(ranking, Group{Key: key, Sum: sum})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Sum != ranking[j].Sum {
			return ranking[i].Sum > ranking[j].Sum
		}
		return ranking[i].Key < ranking[j].Key
	})
	return ranking, nil
}

// Top returns the first k groups of the ranking (the best cumulative
// performers). k larger than the ranking returns the whole ranking.
func (r Ranking) Top(k int) Ranking {
	if k <= 0 {
		return nil
	}
	if k > len(r) {
		k = len(r)
	}
	return r[:k]
}

// Bottom returns the last k groups of the ranking, still in descending
// order, i.e. the worst performers with the most negative last. Top and
// Bottom slice the same ordering, so with k >= len they overlap rather
// than disagree.
func (r Ranking) Bottom(k int) Ranking {
	if k <= 0 {
		return nil
	}
	if k > len(r) {
		k = len(r)
	}
	return r[len(r)-k:]
}

// numeric converts the value kinds JSON decoding can produce for a number.
func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
