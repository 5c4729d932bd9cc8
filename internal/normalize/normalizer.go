// Package normalize reduces quantities to a significand and a decimal
// exponent.
package normalize

import (
	"fmt"

	"github.com/BenjaminTMilnes/PhysicsParticles/internal/domain"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/numeric"
)

// Orders of magnitude that read well as plain decimals. Values from 1 up to
// four integer digits keep exponent 0; everything below 1 or from 10^4 up is
// written in scientific form.
const (
	windowLow  int32 = 0
	windowHigh int32 = 3
)

// InWindow reports whether a value of the given order of magnitude is shown
// without an exponent.
func InWindow(order int32) bool {
	return order >= windowLow && order <= windowHigh
}

// Split returns significand and exponent with x == significand × 10^exponent.
// Zero splits into (0, 0). Outside the plain window the significand lies in
// [1, 10). Splitting only shifts the exponent, so the significand keeps every
// digit of x.
func Split(x numeric.Decimal) (numeric.Decimal, int32, error) {
	if x.IsZero() {
		return numeric.Zero, 0, nil
	}

	order, err := x.Magnitude()
	if err != nil {
		return numeric.Decimal{}, 0, err
	}
	if InWindow(order) {
		return x, 0, nil
	}
	return x.Scale(-order), order, nil
}

// Normalize turns q into a Measurement in the same unit.
func Normalize(q domain.Quantity) (domain.Measurement, error) {
	significand, exponent, err := Split(q.Number())
	if err != nil {
		return domain.Measurement{}, fmt.Errorf("failed to normalize %s: %w", q, err)
	}

	return domain.Measurement{
		Significand: significand,
		Exponent:    exponent,
		Unit:        q.Unit(),
	}, nil
}
