// Package unit provides the minimal quantity algebra the conversion engine
// is built on: nominal dimensions, scaled units and typed quantities.
//
// Every currency is registered as its own dimension, so quantities in
// different currencies never convert through the unit algebra alone; they
// require an explicit exchange market (see the root package).
package unit

import (
	"errors"
	"fmt"

	"github.com/unitfx/unitfx/label"
)

var (
	// ErrDimensionMismatch reports a conversion between units of different
	// dimensions. For currencies this is the rule, not the exception: use
	// the conversion engine with a market instead.
	ErrDimensionMismatch = errors.New("units have different dimensions")

	// ErrInvalidScale reports a derived unit scale that is not strictly
	// positive.
	ErrInvalidScale = errors.New("unit scale must be positive")
)

// Dimension is a nominal physical dimension. Identity is pointer identity:
// two dimensions are the same only if they were registered as one.
type Dimension struct {
	name     string
	currency label.Symbol
}

func (d *Dimension) Name() string {
	return d.name
}

// Currency returns the currency symbol this dimension was registered for.
// The second result is false for non-currency dimensions. Safe on the nil
// dimension of a zero Unit.
func (d *Dimension) Currency() (label.Symbol, bool) {
	if d == nil {
		return "", false
	}

	return d.currency, d.currency != ""
}

// Unit is a named scale of a dimension. The reference unit of a dimension
// has scale 1; derived units relate to it by a fixed positive factor.
type Unit struct {
	symbol string
	scale  float64
	dim    *Dimension
}

func (u Unit) Symbol() string {
	return u.symbol
}

func (u Unit) Dimension() *Dimension {
	return u.dim
}

func (u Unit) String() string {
	return u.symbol
}

// Derive returns a new unit of the same dimension as base, scaled by factor
// relative to base. Derive(base, "kEUR", 1000) makes a unit worth one
// thousand base units.
func Derive(base Unit, symbol string, factor float64) (Unit, error) {
	if !(factor > 0) {
		return Unit{}, fmt.Errorf("%w: %v", ErrInvalidScale, factor)
	}

	return Unit{symbol: symbol, scale: base.scale * factor, dim: base.dim}, nil
}

// Quantity is a numeric value tagged with a unit.
type Quantity struct {
	value float64
	unit  Unit
}

func New(value float64, u Unit) Quantity {
	return Quantity{value: value, unit: u}
}

func (q Quantity) Value() float64 {
	return q.value
}

func (q Quantity) Unit() Unit {
	return q.unit
}

func (q Quantity) String() string {
	return fmt.Sprintf("%v %s", q.value, q.unit.symbol)
}

// Convert re-expresses the quantity in another unit of the same dimension.
// Cross-dimension conversion fails with ErrDimensionMismatch.
func (q Quantity) Convert(to Unit) (Quantity, error) {
	if q.unit.dim != to.dim {
		return Quantity{}, fmt.Errorf(
			"%w: %s and %s", ErrDimensionMismatch, q.unit.symbol, to.symbol,
		)
	}

	if q.unit.scale == to.scale {
		return Quantity{value: q.value, unit: to}, nil
	}

	return Quantity{value: q.value * q.unit.scale / to.scale, unit: to}, nil
}
