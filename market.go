package unitfx

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/unitfx/unitfx/label"
)

// ErrInvalidRate reports an exchange rate that is not strictly positive.
var ErrInvalidRate = errors.New("exchange rate must be positive")

// Pair is an ordered (base, quote) currency pair: the rate keyed by it
// states how many quote units buy one base unit. (EUR,USD) and (USD,EUR)
// are different pairs.
type Pair struct {
	base  label.Symbol
	quote label.Symbol
}

// NewPair validates both codes and returns the pair. Codes are not
// normalized: lowercase input fails rather than being coerced.
func NewPair(base, quote string) (Pair, error) {
	if !label.Valid(base) {
		return Pair{}, fmt.Errorf("%w: %q", label.ErrInvalidCode, base)
	}

	if !label.Valid(quote) {
		return Pair{}, fmt.Errorf("%w: %q", label.ErrInvalidCode, quote)
	}

	return Pair{base: label.Symbol(base), quote: label.Symbol(quote)}, nil
}

// ParsePair parses the "BASE/QUOTE" form used by NewMarketFromMap keys.
func ParsePair(s string) (Pair, error) {
	base, quote, ok := strings.Cut(s, "/")
	if !ok {
		return Pair{}, fmt.Errorf("%w: %q", label.ErrInvalidCode, s)
	}

	return NewPair(base, quote)
}

func (p Pair) Base() label.Symbol {
	return p.base
}

func (p Pair) Quote() label.Symbol {
	return p.quote
}

func (p Pair) String() string {
	return fmt.Sprintf("%s/%s", p.base, p.quote)
}

// Rate is a validated positive exchange rate value.
type Rate struct {
	value float64
}

// NewRate fails with ErrInvalidRate unless v > 0. NaN is rejected too.
func NewRate(v float64) (Rate, error) {
	if !(v > 0) {
		return Rate{}, fmt.Errorf("%w: %v", ErrInvalidRate, v)
	}

	return Rate{value: v}, nil
}

func (r Rate) Value() float64 {
	return r.value
}

// Entry is one raw (base, quote, rate) triple fed to a market builder.
type Entry struct {
	Base  string
	Quote string
	Rate  float64
}

// ExchangeMarket is a snapshot of known exchange rates: a mapping from
// ordered currency pair to rate, each pair present at most once. It is
// built once per snapshot and then only read; the conversion engine never
// owns or mutates it.
type ExchangeMarket map[Pair]Rate

// NewMarket builds a market from entries, validating each one. The build
// is fail-fast: the first invalid entry aborts it and no partial market is
// returned. A pair occurring several times keeps the last entry.
func NewMarket(entries ...Entry) (ExchangeMarket, error) {
	m := make(ExchangeMarket, len(entries))

	for _, e := range entries {
		pair, err := NewPair(e.Base, e.Quote)
		if err != nil {
			return nil, err
		}

		rate, err := NewRate(e.Rate)
		if err != nil {
			return nil, fmt.Errorf("pair %s: %w", pair, err)
		}

		m[pair] = rate
	}

	return m, nil
}

// NewMarketFromMap builds a market from a mapping of "BASE/QUOTE" keys to
// rate values.
func NewMarketFromMap(quotes map[string]float64) (ExchangeMarket, error) {
	m := make(ExchangeMarket, len(quotes))

	for key, v := range quotes {
		pair, err := ParsePair(key)
		if err != nil {
			return nil, err
		}

		rate, err := NewRate(v)
		if err != nil {
			return nil, fmt.Errorf("pair %s: %w", pair, err)
		}

		m[pair] = rate
	}

	return m, nil
}

// NewMarketFromBase builds a market from the rate-snapshot shape: one base
// currency and, per quote currency, the value of one base unit in it.
func NewMarketFromBase(base string, quotes map[string]float64) (ExchangeMarket, error) {
	m := make(ExchangeMarket, len(quotes))

	for quote, v := range quotes {
		pair, err := NewPair(base, quote)
		if err != nil {
			return nil, err
		}

		rate, err := NewRate(v)
		if err != nil {
			return nil, fmt.Errorf("pair %s: %w", pair, err)
		}

		m[pair] = rate
	}

	return m, nil
}

// Rate returns the rate stored for the (base, quote) pair.
func (m ExchangeMarket) Rate(base, quote label.Symbol) (Rate, bool) {
	r, ok := m[Pair{base: base, quote: quote}]

	return r, ok
}

// Symbols returns every currency occurring in the market, base or quote
// side, sorted lexicographically. The chained conversion modes enumerate
// intermediate candidates in this order.
func (m ExchangeMarket) Symbols() []label.Symbol {
	uniq := make(map[label.Symbol]struct{}, len(m)*2)
	for pair := range m {
		uniq[pair.base] = struct{}{}
		uniq[pair.quote] = struct{}{}
	}

	list := make([]label.Symbol, 0, len(uniq))
	for sym := range uniq {
		list = append(list, sym)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i] < list[j]
	})

	return list
}
