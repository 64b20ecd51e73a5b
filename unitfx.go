// Package unitfx converts typed monetary quantities between currencies.
//
// Each currency is a distinct dimension of the unit algebra (package unit),
// so "1 EUR" and "1 USD" never convert implicitly. Convert resolves the
// exchange rate from a caller-supplied ExchangeMarket snapshot instead,
// directly, inversely or through a two-hop chain, depending on the mode.
package unitfx

import (
	"errors"
	"fmt"

	"github.com/unitfx/unitfx/label"
	"github.com/unitfx/unitfx/unit"
)

var (
	// ErrNotACurrency reports a conversion where at least one unit does not
	// belong to a registered currency dimension.
	ErrNotACurrency = errors.New("unit is not a registered currency")

	// ErrRateUnavailable reports that the market holds no rate or chain
	// satisfying the requested mode.
	ErrRateUnavailable = errors.New("no applicable exchange rate")

	// ErrInvalidMode reports a mode outside {1, -1, 2, -2}.
	ErrInvalidMode = errors.New("unknown conversion mode")
)

// Mode selects the rate-resolution strategy of a conversion.
type Mode int

const (
	// ModeDirect uses the (source, target) pair stored in the market.
	ModeDirect Mode = 1
	// ModeInverse uses the reciprocal of the stored (target, source) pair.
	ModeInverse Mode = -1
	// ModeChained multiplies two stored rates forming source→v→target for
	// some intermediate currency v.
	ModeChained Mode = 2
	// ModeChainedInverse uses the reciprocal of a stored target→v→source
	// chain.
	ModeChainedInverse Mode = -2
)

type convOptions struct {
	mode Mode
}

type ConvertOption func(*convOptions)

// WithMode overrides the default ModeDirect resolution strategy.
func WithMode(m Mode) ConvertOption {
	return func(o *convOptions) {
		o.mode = m
	}
}

// Convert re-expresses q in target's currency using a rate resolved from
// market. It is a pure function of its arguments: the market is only read
// and no state survives the call. The returned quantity carries target as
// its unit exactly, whatever scale q was expressed in.
func Convert(target unit.Unit, q unit.Quantity, market ExchangeMarket, opts ...ConvertOption) (unit.Quantity, error) {
	o := convOptions{mode: ModeDirect}
	for _, opt := range opts {
		opt(&o)
	}

	src, ok := q.Unit().Dimension().Currency()
	if !ok {
		return unit.Quantity{}, fmt.Errorf("%w: %s", ErrNotACurrency, q.Unit().Symbol())
	}

	dst, ok := target.Dimension().Currency()
	if !ok {
		return unit.Quantity{}, fmt.Errorf("%w: %s", ErrNotACurrency, target.Symbol())
	}

	switch o.mode {
	case ModeDirect, ModeInverse, ModeChained, ModeChainedInverse:
	default:
		return unit.Quantity{}, fmt.Errorf("%w: %d", ErrInvalidMode, o.mode)
	}

	srcRef, _ := unit.CurrencyUnit(src)
	dstRef, _ := unit.CurrencyUnit(dst)

	// Normalize to the source reference unit before touching the market, so
	// quantities in derived units (kEUR and the like) convert correctly.
	base, err := q.Convert(srcRef)
	if err != nil {
		return unit.Quantity{}, err
	}

	// Same currency needs no market: the unit algebra alone covers it.
	if src == dst {
		return base.Convert(target)
	}

	factor, ok := resolve(src, dst, market, o.mode)
	if !ok {
		return unit.Quantity{}, fmt.Errorf(
			"%w: %s -> %s (mode %d)", ErrRateUnavailable, q.Unit().Symbol(), target.Symbol(), o.mode,
		)
	}

	return unit.New(base.Value()*factor, dstRef).Convert(target)
}

// resolve finds the multiplier taking one source reference unit into target
// reference units under the given mode.
func resolve(src, dst label.Symbol, market ExchangeMarket, mode Mode) (float64, bool) {
	switch mode {
	case ModeDirect:
		if r, ok := market.Rate(src, dst); ok {
			return r.Value(), true
		}
	case ModeInverse:
		if r, ok := market.Rate(dst, src); ok {
			return 1 / r.Value(), true
		}
	case ModeChained:
		if first, second, ok := chain(src, dst, market); ok {
			return first.Value() * second.Value(), true
		}
	case ModeChainedInverse:
		if first, second, ok := chain(dst, src, market); ok {
			return 1 / (first.Value() * second.Value()), true
		}
	}

	return 0, false
}

// chain finds two market entries forming from→v→to. Candidate intermediates
// are enumerated in lexicographic order over the currencies occurring in
// the market, endpoints excluded, and the first complete chain wins; the
// choice between several valid intermediates is therefore deterministic.
func chain(from, to label.Symbol, market ExchangeMarket) (Rate, Rate, bool) {
	for _, via := range market.Symbols() {
		if via == from || via == to {
			continue
		}

		first, ok := market.Rate(from, via)
		if !ok {
			continue
		}

		second, ok := market.Rate(via, to)
		if !ok {
			continue
		}

		return first, second, true
	}

	return Rate{}, Rate{}, false
}
