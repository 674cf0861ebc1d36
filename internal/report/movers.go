package report

import (
	"regexp"
	"sort"

	"market-reports/internal/aggregate"
)

// Mover is one screened gainers/losers row.
type Mover struct {
	Symbol    string
	Name      string
	Price     float64
	ChangePct float64
	Exchange  string
}

// Screen holds the gainers/losers filter. It mirrors the house rules the
// original report shipped with: big-board listings only, no penny stocks,
// plain 1-4 letter tickers, double-digit moves.
type Screen struct {
	Exchanges    []string
	MinPrice     float64
	MinAbsChange float64
	Symbol       *regexp.Regexp
	MaxRows      int
}

// ScreenMovers filters and ranks raw gainers/losers records. For gainers
// the change threshold is +MinAbsChange and the sort is descending; losers
// mirror it. The result is capped at MaxRows.
func ScreenMovers(records []aggregate.Record, s Screen, gainers bool) []Mover {
	exchanges := make(map[string]bool, len(s.Exchanges))
	for _, e := range s.Exchanges {
		exchanges[e] = true
	}

	var movers []Mover
	for _, rec := range records {
		symbol, _ := rec["symbol"].(string)
		exchange, _ := rec["exchange"].(string)
		price, okPrice := asFloat(rec["price"])
		change, okChange := asFloat(rec["changesPercentage"])
		if symbol == "" || !okPrice || !okChange {
			continue
		}
		if !exchanges[exchange] || price < s.MinPrice {
			continue
		}
		if s.Symbol != nil && !s.Symbol.MatchString(symbol) {
			continue
		}
		if gainers && change < s.MinAbsChange {
			continue
		}
		if !gainers && change > -s.MinAbsChange {
			continue
		}

		name, _ := rec["name"].(string)
		movers = append(movers, Mover{
			Symbol:    symbol,
			Name:      name,
			Price:     price,
			ChangePct: change,
			Exchange:  exchange,
		})
	}

	sort.SliceStable(movers, func(i, j int) bool {
		if gainers {
			return movers[i].ChangePct > movers[j].ChangePct
		}
		return movers[i].ChangePct < movers[j].ChangePct
	})

	if s.MaxRows > 0 && len(movers) > s.MaxRows {
		movers = movers[:s.MaxRows]
	}
	return movers
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
