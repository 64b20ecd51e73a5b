// Package snapshot decodes dated rate-snapshot files into exchange markets.
//
// A snapshot holds, for one date, the value of one unit of its base
// currency expressed in every quoted currency. Files come in two shapes: a
// JSON object (or array of objects) carrying the base in-band, and a CSV
// table with a Date column and one column per quoted currency.
package snapshot

import (
	"sort"
	"time"

	"github.com/unitfx/unitfx"
	"github.com/unitfx/unitfx/label"
)

// Snapshot is the decoded rate table of one date.
type Snapshot struct {
	Date  time.Time                `json:"date"`
	Base  label.Symbol             `json:"base"`
	Rates map[label.Symbol]float64 `json:"rates"`
}

// Market collapses the snapshot into base→quote market entries.
func (s Snapshot) Market() (unitfx.ExchangeMarket, error) {
	entries := make([]unitfx.Entry, 0, len(s.Rates))
	for _, sym := range s.symbols() {
		entries = append(entries, unitfx.Entry{
			Base:  string(s.Base),
			Quote: string(sym),
			Rate:  s.Rates[sym],
		})
	}

	return unitfx.NewMarket(entries...)
}

// Cross expands the snapshot into the full cross-rate matrix: for every
// ordered pair of quoted currencies (base included at rate 1) the entry
// rate(a, b) = rates[b] / rates[a].
func (s Snapshot) Cross() (unitfx.ExchangeMarket, error) {
	rates := make(map[label.Symbol]float64, len(s.Rates)+1)
	rates[s.Base] = 1
	for sym, v := range s.Rates {
		rates[sym] = v
	}

	symbols := make([]label.Symbol, 0, len(rates))
	for sym := range rates {
		symbols = append(symbols, sym)
	}

	sort.Slice(symbols, func(i, j int) bool {
		return symbols[i] < symbols[j]
	})

	entries := make([]unitfx.Entry, 0, len(symbols)*(len(symbols)-1))
	for _, from := range symbols {
		for _, to := range symbols {
			if from == to {
				continue
			}

			entries = append(entries, unitfx.Entry{
				Base:  string(from),
				Quote: string(to),
				Rate:  rates[to] / rates[from],
			})
		}
	}

	return unitfx.NewMarket(entries...)
}

func (s Snapshot) symbols() []label.Symbol {
	list := make([]label.Symbol, 0, len(s.Rates))
	for sym := range s.Rates {
		list = append(list, sym)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i] < list[j]
	})

	return list
}
