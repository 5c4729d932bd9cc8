package domain

import (
	"fmt"

	"github.com/BenjaminTMilnes/PhysicsParticles/internal/numeric"
)

// Quantity is a physical value before display normalization: a number in a
// unit. Quantities are immutable.
type Quantity struct {
	number numeric.Decimal
	unit   Unit
}

// NewQuantity returns number expressed in unit. It fails if unit is not a
// known unit tag.
func NewQuantity(number numeric.Decimal, unit Unit) (Quantity, error) {
	if unit.Kind() == "" {
		return Quantity{}, fmt.Errorf("%w: unknown unit %q", ErrUnitMismatch, unit)
	}
	return Quantity{number: number, unit: unit}, nil
}

// ZeroQuantity returns a zero-valued quantity in kind's default unit.
func ZeroQuantity(kind Kind) Quantity {
	return Quantity{number: numeric.Zero, unit: kind.DefaultUnit()}
}

// Number returns the numeric value.
func (q Quantity) Number() numeric.Decimal {
	return q.number
}

// Unit returns the unit tag.
func (q Quantity) Unit() Unit {
	return q.unit
}

// Kind returns the kind implied by the unit.
func (q Quantity) Kind() Kind {
	return q.unit.Kind()
}

// IsZero reports whether the value is zero.
func (q Quantity) IsZero() bool {
	return q.number.IsZero()
}

// String formats the quantity for logs in plain notation, e.g. "0.511 MeV".
func (q Quantity) String() string {
	return q.number.Text() + " " + string(q.unit)
}
