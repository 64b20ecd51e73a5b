package unit

import (
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/unitfx/unitfx/label"
)

var (
	loadOnce sync.Once
	loadErr  error

	currencyDims  map[label.Symbol]*Dimension
	currencyUnits map[label.Symbol]Unit
)

// Load registers one dimension and one reference unit per entry of the
// generated label.Currencies table. The first call does the work; every
// later call returns the same cached result, so redefinition is impossible.
// Entries whose code fails the format check are rejected and aggregated
// into the returned configuration error; valid entries still register.
func Load() error {
	loadOnce.Do(func() {
		currencyDims = make(map[label.Symbol]*Dimension, len(label.Currencies))
		currencyUnits = make(map[label.Symbol]Unit, len(label.Currencies))

		var multiErr *multierror.Error

		for _, sym := range label.All() {
			ccy := label.Currencies[sym]
			if err := register(sym, ccy.Name); err != nil {
				multiErr = multierror.Append(multiErr, err)
			}
		}

		loadErr = multiErr.ErrorOrNil()
	})

	return loadErr
}

// register creates the nominal dimension for one currency code and its
// reference unit of scale 1, symbol equal to the code. The name is the
// human-readable display name kept for documentation.
func register(sym label.Symbol, name string) error {
	if !label.Valid(string(sym)) {
		return fmt.Errorf("%w: %q", label.ErrInvalidCode, sym)
	}

	dim := &Dimension{name: name, currency: sym}
	currencyDims[sym] = dim
	currencyUnits[sym] = Unit{symbol: string(sym), scale: 1, dim: dim}

	return nil
}

// CurrencyUnit returns the reference unit registered for sym.
func CurrencyUnit(sym label.Symbol) (Unit, bool) {
	_ = Load()

	u, ok := currencyUnits[sym]

	return u, ok
}

// CurrencyDimension returns the dimension registered for sym.
func CurrencyDimension(sym label.Symbol) (*Dimension, bool) {
	_ = Load()

	d, ok := currencyDims[sym]

	return d, ok
}

// IsCurrency reports whether u belongs to a registered currency dimension.
func IsCurrency(u Unit) bool {
	if u.dim == nil {
		return false
	}

	_, ok := u.dim.Currency()

	return ok
}
